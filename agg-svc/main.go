package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loyalty-storefront/agg-svc/internal/service"
	"loyalty-storefront/agg-svc/internal/storage"
	"loyalty-storefront/config"
)

func main() {
	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(config.OrderEventsTopic(), config.Getenv("KAFKA_GROUP_ID", "agg-svc"))
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, storage.NewStore(rdb, 24*time.Hour))
	consumer.Start(ctx)
}
