package main

import (
	"context"
	"log"

	"foodmarket/config"
	httpapi "foodmarket/marketplace-svc/internal/api/http"
	"foodmarket/marketplace-svc/internal/cache"
	"foodmarket/marketplace-svc/internal/service"
	"foodmarket/marketplace-svc/internal/storage"
)

func main() {
	settings := config.Load()
	if err := settings.Require("S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_BUCKET", "S3_PUBLIC_BASE_URL", "GOOGLE_MAPS_API_KEY"); err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()

	db := config.MustInitPostgres(settings)
	defer db.Close()
	rdb := config.MustInitRedis(settings)
	defer rdb.Close()
	writer := config.NewKafkaWriter(settings, settings.NotificationsTopic)
	defer writer.Close()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to create schema:", err)
	}

	objects, err := storage.NewS3Store(ctx, storage.S3Settings{
		Endpoint:      settings.S3Endpoint,
		Region:        settings.S3Region,
		AccessKey:     settings.S3AccessKey,
		SecretKey:     settings.S3SecretKey,
		Bucket:        settings.S3Bucket,
		PublicBaseURL: settings.S3PublicBaseURL,
	})
	if err != nil {
		log.Fatal("Failed to init object storage:", err)
	}
	geocoder, err := storage.NewGoogleGeocoder(settings.GoogleMapsAPIKey, settings.GeocodeRegion)
	if err != nil {
		log.Fatal("Failed to init geocoder:", err)
	}
	notifier := storage.NewKafkaNotifier(writer)

	caches := service.NewCaches(cache.NewRedisStore(rdb))
	menuSvc := service.NewMenuService(repo, repo, caches)
	pricer := service.NewPricer(menuSvc)
	orderSvc := service.NewOrderService(repo, repo, pricer, notifier, service.DefaultQRGenerator{BaseURL: settings.PublicBaseURL}, caches)
	restSvc := service.NewRestaurantService(repo, objects, geocoder, caches, settings.SearchRadiusMeters)
	authz := service.NewAuthorizer(repo, caches)

	if _, err := restSvc.SetPrepop(ctx); err != nil {
		log.Printf("[RESTAURANTS] initial prepop: %v", err)
	}

	handler := httpapi.NewHandler(restSvc, menuSvc, orderSvc, pricer, authz)
	httpapi.StartServer(":"+settings.MarketplacePort, httpapi.NewRouter(handler))
}
