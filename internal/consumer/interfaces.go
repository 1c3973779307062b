package consumer

import (
	"github.com/BarkinBalci/event-ingestion-service/internal/domain"
)

// MessageParser defines the interface for parsing raw message bytes into events
type MessageParser interface {
	Parse(value []byte) (*domain.Event, error)
}
