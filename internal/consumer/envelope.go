package consumer

import (
	"context"

	"github.com/BarkinBalci/event-ingestion-service/internal/domain"
)

// Envelope wraps a domain event with acknowledgment callbacks
type Envelope struct {
	Event *domain.Event
	ack   func(context.Context) error
}

// NewEnvelope creates a new message envelope
func NewEnvelope(event *domain.Event, ack func(context.Context) error) *Envelope {
	return &Envelope{
		Event: event,
		ack:   ack,
	}
}

// Ack commits the message offset after the event has settled in the store.
// An uncommitted message is redelivered on restart and absorbed by
// deduplication.
func (e *Envelope) Ack(ctx context.Context) error {
	if e.ack != nil {
		return e.ack(ctx)
	}
	return nil
}
