package main

import (
	"log"
	"net/http"
	"time"

	"foodmarket/api-gateway/internal/gateway"
	"foodmarket/config"

	"github.com/rs/cors"
)

func main() {
	settings := config.Load()
	if err := settings.Require("JWT_SECRET"); err != nil {
		log.Fatal(err)
	}

	gw := gateway.NewGateway(gateway.Config{
		MarketplaceURL: settings.MarketplaceURL,
		JWTSecret:      settings.JWTSecret,
	}, &http.Client{Timeout: 30 * time.Second})

	r := gw.SetupRoutes()

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	handler := c.Handler(r)

	log.Printf("API Gateway starting on port %s", settings.GatewayPort)
	log.Fatal(http.ListenAndServe(":"+settings.GatewayPort, handler))
}
