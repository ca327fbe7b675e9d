package domain

import "time"

const TypeSMS = "sms"

// Notification is published by marketplace-svc on the notifications topic.
type Notification struct {
	Type        string    `json:"type"`
	Destination string    `json:"destination"`
	Message     string    `json:"message"`
	Timestamp   time.Time `json:"timestamp"`
}
