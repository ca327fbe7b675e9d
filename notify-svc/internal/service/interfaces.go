package service

import (
	"context"

	"foodmarket/notify-svc/internal/domain"
	"foodmarket/notify-svc/internal/sms"

	"github.com/segmentio/kafka-go"
)

type SenderInterface interface {
	Send(ctx context.Context, to, message string) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Process(ctx context.Context, msg domain.Notification)
}

var (
	_ SenderInterface   = (*sms.Client)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
