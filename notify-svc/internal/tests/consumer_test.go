package tests

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodmarket/notify-svc/internal/domain"
	"foodmarket/notify-svc/internal/mocks"
	"foodmarket/notify-svc/internal/service"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"
)

func TestConsumer_Process(t *testing.T) {
	tests := []struct {
		name            string
		inputMessage    domain.Notification
		setupMockSender func(*mocks.SenderInterface)
	}{
		{
			name:         "success",
			inputMessage: domain.Notification{Type: domain.TypeSMS, Destination: "0821234567", Message: "New order #42 received. Total: R20.00"},
			setupMockSender: func(m *mocks.SenderInterface) {
				m.On("Send", mock.Anything, "0821234567", "New order #42 received. Total: R20.00").Return(nil).Once()
			},
		},
		{
			name:         "gateway failure is swallowed",
			inputMessage: domain.Notification{Type: domain.TypeSMS, Destination: "0821234567", Message: "hi"},
			setupMockSender: func(m *mocks.SenderInterface) {
				m.On("Send", mock.Anything, "0821234567", "hi").Return(errors.New("gateway down")).Once()
			},
		},
		{
			name:            "unknown type",
			inputMessage:    domain.Notification{Type: "email", Destination: "a@b.c", Message: "hi"},
			setupMockSender: func(m *mocks.SenderInterface) {},
		},
		{
			name:            "missing destination",
			inputMessage:    domain.Notification{Type: domain.TypeSMS, Message: "hi"},
			setupMockSender: func(m *mocks.SenderInterface) {},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			mockSender := mocks.NewSenderInterface(t)
			testCase.setupMockSender(mockSender)

			consumer := &service.Consumer{Sender: mockSender}
			consumer.Process(context.Background(), testCase.inputMessage)
		})
	}
}

func TestConsumer_StartSkipsBadMessagesAndStops(t *testing.T) {
	reader := mocks.NewMessageReader(t)
	sender := mocks.NewSenderInterface(t)

	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{Value: []byte(`{not json`)}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{}, errors.New("broker hiccup")).Once()
	reader.On("ReadMessage", mock.Anything).
		Return(kafka.Message{Value: []byte(`{"type":"sms","destination":"0831112222","message":"Your order #42 has been accepted and is being prepared.","timestamp":"2024-03-06T10:00:00Z"}`)}, nil).Once()
	reader.On("ReadMessage", mock.Anything).Return(kafka.Message{}, context.Canceled).Once()
	sender.On("Send", mock.Anything, "0831112222", "Your order #42 has been accepted and is being prepared.").Return(nil).Once()

	done := make(chan struct{})
	go func() {
		service.NewConsumer(reader, sender).Start(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not stop")
	}
}
