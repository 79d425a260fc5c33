package messaging

import (
	"context"
)

// Broker defines the interface for message brokers
type Broker interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Subscribe(ctx context.Context, channel string) (<-chan []byte, error)
	Close() error
}

// Event channels published by the booking service
const (
	ChannelAppointmentCreated       = "appointment.created"
	ChannelAppointmentStatusChanged = "appointment.status_changed"
)

// Message is the envelope for published events
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}
