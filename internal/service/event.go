package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BarkinBalci/event-ingestion-service/internal/domain"
	"github.com/BarkinBalci/event-ingestion-service/internal/queue"
	"github.com/BarkinBalci/event-ingestion-service/internal/store"
	"github.com/BarkinBalci/event-ingestion-service/internal/validator"
)

// HealthStatus is a snapshot of the dependencies the API reports on.
type HealthStatus struct {
	ProducerConnected bool
	ProcessedEvents   int
}

// EventService orchestrates validation, enrichment, and publishing for
// inbound requests, and exposes the store snapshot for queries.
type EventService struct {
	publisher queue.Publisher
	store     store.EventStore
	log       *zap.Logger
}

// NewEventService creates a new event service.
func NewEventService(publisher queue.Publisher, eventStore store.EventStore, log *zap.Logger) *EventService {
	return &EventService{
		publisher: publisher,
		store:     eventStore,
		log:       log,
	}
}

// ValidateAndPublish checks the untyped candidate, constructs the typed event
// with a generated id and ingestion timestamp, and publishes it. Returns a
// *ValidationError for rejected candidates; publish failures are propagated
// unchanged so the caller can tell queue.ErrNotConnected apart.
func (s *EventService) ValidateAndPublish(ctx context.Context, candidate map[string]interface{}) (*domain.Event, error) {
	result := validator.Validate(candidate)
	if !result.Valid {
		s.log.Warn("Event rejected by validation",
			zap.Strings("errors", result.Errors))
		return nil, &ValidationError{Details: result.Errors}
	}

	// The validator guarantees these assertions hold.
	userID := candidate["userId"].(string)
	eventType := domain.EventType(candidate["eventType"].(string))

	payload := map[string]interface{}{}
	if raw, ok := candidate["payload"].(map[string]interface{}); ok {
		payload = raw
	}

	event := &domain.Event{
		EventID:   uuid.NewString(),
		UserID:    userID,
		EventType: eventType,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}

	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		return nil, err
	}

	s.log.Info("Event accepted",
		zap.String("event_id", event.EventID),
		zap.String("user_id", event.UserID),
		zap.String("event_type", string(event.EventType)))

	return event, nil
}

// GetProcessedEvents returns a snapshot of all stored events in insertion order.
func (s *EventService) GetProcessedEvents() []domain.Event {
	return s.store.GetAllEvents()
}

// ClearEvents resets the event store. Administrative use only.
func (s *EventService) ClearEvents() {
	s.store.Clear()
	s.log.Info("Event store cleared")
}

// Health reports producer connectivity and the current store size.
func (s *EventService) Health() HealthStatus {
	return HealthStatus{
		ProducerConnected: s.publisher.Connected(),
		ProcessedEvents:   s.store.GetEventCount(),
	}
}
