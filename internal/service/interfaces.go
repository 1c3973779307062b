package service

import (
	"context"

	"github.com/BarkinBalci/event-ingestion-service/internal/domain"
)

// EventServicer defines the interface for event service operations
type EventServicer interface {
	ValidateAndPublish(ctx context.Context, candidate map[string]interface{}) (*domain.Event, error)
	GetProcessedEvents() []domain.Event
	ClearEvents()
	Health() HealthStatus
}
