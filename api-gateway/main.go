package main

import (
	"log"
	"net/http"
	"strconv"

	"loyalty-storefront/api-gateway/internal/gateway"
	"loyalty-storefront/config"

	"github.com/rs/cors"
)

func main() {
	cfg := gateway.Config{
		ShopSvcURL:   config.Getenv("SHOP_SVC_URL", "http://localhost:8081"),
		ReportSvcURL: config.Getenv("REPORT_SVC_URL", "http://localhost:8083"),
	}
	trust, err := strconv.ParseBool(config.Getenv("TRUST_IDENTITY_HEADERS", "false"))
	if err != nil {
		log.Printf("WARNING: invalid TRUST_IDENTITY_HEADERS, identity headers will be stripped: %v", err)
	}
	cfg.TrustIdentityHeaders = trust

	allowedHeaders := []string{"Content-Type"}
	if cfg.TrustIdentityHeaders {
		allowedHeaders = append(allowedHeaders, gateway.IdentityHeaders...)
	} else {
		log.Println("WARNING: identity headers are stripped; set TRUST_IDENTITY_HEADERS=true behind an auth proxy")
	}

	gw := gateway.NewGateway(cfg, &http.Client{})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: allowedHeaders,
	})
	handler := c.Handler(gw.SetupRoutes())

	port := config.Getenv("PORT", "8080")
	log.Printf("API Gateway starting on :%s", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
