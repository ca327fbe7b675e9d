package service

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"foodmarket/notify-svc/internal/domain"
)

type Consumer struct {
	Reader MessageReader
	Sender SenderInterface
}

func NewConsumer(reader MessageReader, sender SenderInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Sender: sender,
	}
}

// Start reads notifications until ctx is cancelled. Delivery is best-effort:
// a message that cannot be decoded or sent is logged and skipped.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Notification Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				log.Println("Notification consumer stopped")
				return
			}
			log.Printf("[NOTIFY] read message: %v", err)
			continue
		}

		var msg domain.Notification
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			log.Printf("[NOTIFY] decode message at offset %d: %v", message.Offset, err)
			continue
		}

		c.Process(ctx, msg)
	}
}

func (c *Consumer) Process(ctx context.Context, msg domain.Notification) {
	if msg.Type != domain.TypeSMS {
		log.Printf("[NOTIFY] skipping notification of type %q", msg.Type)
		return
	}
	if msg.Destination == "" || msg.Message == "" {
		log.Println("[NOTIFY] skipping notification without destination or message")
		return
	}

	if err := c.Sender.Send(ctx, msg.Destination, msg.Message); err != nil {
		log.Printf("[NOTIFY] failed to send sms to %s: %v", msg.Destination, err)
		return
	}
	log.Printf("[NOTIFY] sms sent to %s", msg.Destination)
}
