package domain

import "time"

// EventType is a closed enumeration of the event kinds accepted by the service.
type EventType string

const (
	EventTypeLogin       EventType = "LOGIN"
	EventTypeLogout      EventType = "LOGOUT"
	EventTypeProductView EventType = "PRODUCT_VIEW"
	EventTypeAddToCart   EventType = "ADD_TO_CART"
	EventTypePurchase    EventType = "PURCHASE"
)

// EventTypes returns the full enumeration in declaration order.
func EventTypes() []EventType {
	return []EventType{
		EventTypeLogin,
		EventTypeLogout,
		EventTypeProductView,
		EventTypeAddToCart,
		EventTypePurchase,
	}
}

// Valid reports whether t is a member of the enumeration. Externally-sourced
// strings must pass this check at the validation boundary.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeLogin, EventTypeLogout, EventTypeProductView, EventTypeAddToCart, EventTypePurchase:
		return true
	}
	return false
}

// Event is the unit of record. EventID is generated at ingestion and never
// mutated afterward; UserID doubles as the Kafka partition key.
type Event struct {
	EventID   string                 `json:"eventId"`
	UserID    string                 `json:"userId"`
	EventType EventType              `json:"eventType"`
	Timestamp time.Time              `json:"timestamp"`
	Payload   map[string]interface{} `json:"payload"`
}
