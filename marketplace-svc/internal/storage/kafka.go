package storage

import (
	"context"
	"encoding/json"
	"time"

	"foodmarket/marketplace-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaNotifier hands SMS notifications to notify-svc over Kafka.
type KafkaNotifier struct {
	Writer MessageWriter
}

func NewKafkaNotifier(writer MessageWriter) *KafkaNotifier {
	return &KafkaNotifier{Writer: writer}
}

func (n *KafkaNotifier) Notify(ctx context.Context, destination, message string) error {
	payload, err := json.Marshal(domain.Notification{
		Type:        domain.NotificationSMS,
		Destination: destination,
		Message:     message,
		Timestamp:   time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	return n.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(destination),
		Value: payload,
	})
}
