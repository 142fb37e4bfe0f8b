package main

import (
	"strconv"
	"time"

	"loyalty-storefront/config"
	httpapi "loyalty-storefront/report-svc/internal/api/http"
	"loyalty-storefront/report-svc/internal/service"
	"loyalty-storefront/report-svc/internal/storage"
)

func main() {
	db := config.MustInitPostgres()
	defer db.Close()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	ttl, err := strconv.Atoi(config.Getenv("DASHBOARD_CACHE_SECONDS", "60"))
	if err != nil || ttl <= 0 {
		ttl = 60
	}

	svc := service.NewDashboardService(
		storage.NewPostgresRepository(db),
		storage.NewRedisCache(rdb, time.Duration(ttl)*time.Second),
		config.Location(),
		time.Now,
	)

	handler := httpapi.NewHandler(svc)
	httpapi.StartServer(":"+config.Getenv("PORT", "8083"), httpapi.NewRouter(handler))
}
