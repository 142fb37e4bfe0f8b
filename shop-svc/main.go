package main

import (
	"context"
	"log"
	"time"

	"loyalty-storefront/config"
	httpapi "loyalty-storefront/shop-svc/internal/api/http"
	"loyalty-storefront/shop-svc/internal/service"
	"loyalty-storefront/shop-svc/internal/storage"
)

func main() {
	ctx := context.Background()

	var store service.Store
	switch config.Getenv("STORAGE", "postgres") {
	case "memory":
		log.Println("WARNING: [shop-svc] using in-memory storage; data is lost on restart and writes copy the whole store")
		store = storage.NewMemoryStore()
	default:
		db := config.MustInitPostgres()
		defer db.Close()
		repo := storage.NewPostgresRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatal("Failed to ensure schema:", err)
		}
		store = repo
	}

	if config.Getenv("SEED_DATA", "true") == "true" {
		if err := storage.Seed(ctx, store); err != nil {
			log.Fatal("Failed to seed data:", err)
		}
	}

	var publisher service.EventPublisher
	if writer := config.NewKafkaWriter(config.OrderEventsTopic()); writer != nil {
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		log.Println("WARNING: KAFKA_BROKER not set, order events are not published")
	}

	qr := service.DefaultQRGenerator{BaseURL: config.Getenv("PUBLIC_BASE_URL", "http://localhost")}

	points := service.NewPointsLedger(store, time.Now)
	handler := httpapi.NewHandler(
		service.NewCatalogService(store),
		service.NewOrderService(store, points, publisher, qr, time.Now),
		points,
		service.NewRewardService(store, points, publisher, time.Now),
	)

	httpapi.StartServer(":"+config.Getenv("PORT", "8081"), httpapi.NewRouter(handler))
}
