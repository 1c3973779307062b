package consumer

import (
	"encoding/json"
	"fmt"

	"github.com/BarkinBalci/event-ingestion-service/internal/domain"
)

// JSONEventParser implements MessageParser for JSON-formatted event messages.
// Beyond decoding, it enforces minimal structural completeness: an event
// without eventId, userId, or eventType is rejected so it never reaches the
// store.
type JSONEventParser struct{}

// NewJSONEventParser creates a new JSON event parser
func NewJSONEventParser() *JSONEventParser {
	return &JSONEventParser{}
}

// Parse parses a JSON message value into an Event
func (p *JSONEventParser) Parse(value []byte) (*domain.Event, error) {
	var event domain.Event
	if err := json.Unmarshal(value, &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message value: %w", err)
	}

	if event.EventID == "" {
		return nil, fmt.Errorf("event is missing eventId")
	}
	if event.UserID == "" {
		return nil, fmt.Errorf("event is missing userId")
	}
	if event.EventType == "" {
		return nil, fmt.Errorf("event is missing eventType")
	}

	if event.Payload == nil {
		event.Payload = map[string]interface{}{}
	}

	return &event, nil
}
