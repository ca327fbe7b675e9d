package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"foodmarket/config"
	"foodmarket/notify-svc/internal/service"
	"foodmarket/notify-svc/internal/sms"
)

func main() {
	settings := config.Load()
	if err := settings.Require("SMS_GATEWAY_URL"); err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reader := config.NewKafkaReader(settings, settings.NotificationsTopic, settings.NotifyGroupID)
	defer reader.Close()

	sender := sms.NewClient(settings.SMSGatewayURL, settings.SMSGatewayUser, settings.SMSGatewayPassword)
	service.NewConsumer(reader, sender).Start(ctx)
}
