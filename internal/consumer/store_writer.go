package consumer

import (
	"context"

	"go.uber.org/zap"

	"github.com/BarkinBalci/event-ingestion-service/internal/metrics"
	"github.com/BarkinBalci/event-ingestion-service/internal/store"
)

// StoreWriter feeds parsed events into the idempotent store and commits their
// offsets. Duplicates are absorbed silently; a consumed observation is logged
// only for newly stored events.
type StoreWriter struct {
	store store.EventStore
	log   *zap.Logger
}

// NewStoreWriter creates a new store writer
func NewStoreWriter(eventStore store.EventStore, log *zap.Logger) *StoreWriter {
	return &StoreWriter{
		store: eventStore,
		log:   log,
	}
}

// Start begins processing envelopes and writing to the store
func (w *StoreWriter) Start(ctx context.Context, in <-chan *Envelope) {
	for {
		select {
		case <-ctx.Done():
			w.log.Info("Store writer shutting down")
			return
		case envelope, ok := <-in:
			if !ok {
				w.log.Info("Store writer input channel closed")
				return
			}

			w.processEnvelope(ctx, envelope)
		}
	}
}

// processEnvelope stores one event and commits its offset. Per-message
// failures are logged and never abort processing of subsequent messages.
func (w *StoreWriter) processEnvelope(ctx context.Context, envelope *Envelope) {
	event := envelope.Event

	if w.store.AddEvent(event) {
		metrics.EventsConsumed.Inc()
		w.log.Info("Event consumed",
			zap.String("event_id", event.EventID),
			zap.String("user_id", event.UserID),
			zap.String("event_type", string(event.EventType)))
	} else {
		metrics.DuplicateEvents.Inc()
		w.log.Info("Duplicate event absorbed",
			zap.String("event_id", event.EventID))
	}

	if err := envelope.Ack(ctx); err != nil {
		w.log.Error("Failed to commit message offset",
			zap.String("event_id", event.EventID),
			zap.Error(err))
	}
}
