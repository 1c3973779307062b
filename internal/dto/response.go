package dto

import (
	"time"

	"github.com/BarkinBalci/event-ingestion-service/internal/domain"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string   `json:"error" example:"validation_error"`
	Details []string `json:"details,omitempty" example:"userId is required and must be a non-empty string"`
}

// GenerateEventResponse represents a successful event ingestion response
type GenerateEventResponse struct {
	Message   string    `json:"message" example:"event accepted"`
	EventID   string    `json:"eventId" example:"9d2f4d0a-7aab-4f07-a1b4-3f6dc5ff8f3a"`
	Timestamp time.Time `json:"timestamp" example:"2025-08-31T12:00:00Z"`
}

// EventData is the public projection of a stored event
type EventData struct {
	EventID   string                 `json:"eventId" example:"9d2f4d0a-7aab-4f07-a1b4-3f6dc5ff8f3a"`
	UserID    string                 `json:"userId" example:"user-123"`
	EventType string                 `json:"eventType" example:"PRODUCT_VIEW"`
	Timestamp time.Time              `json:"timestamp" example:"2025-08-31T12:00:00Z"`
	Payload   map[string]interface{} `json:"payload" swaggertype:"object,string" example:"productId:prod-456"`
}

// ProcessedEventsResponse represents the full store snapshot
type ProcessedEventsResponse struct {
	Count  int         `json:"count" example:"42"`
	Events []EventData `json:"events"`
}

// KafkaHealth reports broker connectivity per role
type KafkaHealth struct {
	Producer string `json:"producer" example:"connected"`
}

// EventStoreHealth reports the store size
type EventStoreHealth struct {
	ProcessedEvents int `json:"processedEvents" example:"42"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status     string           `json:"status" example:"healthy"`
	Timestamp  time.Time        `json:"timestamp" example:"2025-08-31T12:00:00Z"`
	Service    string           `json:"service" example:"event-ingestion-service"`
	Kafka      KafkaHealth      `json:"kafka"`
	EventStore EventStoreHealth `json:"eventStore"`
}

// NewEventData projects a domain event to its public fields.
func NewEventData(event domain.Event) EventData {
	return EventData{
		EventID:   event.EventID,
		UserID:    event.UserID,
		EventType: string(event.EventType),
		Timestamp: event.Timestamp,
		Payload:   event.Payload,
	}
}
