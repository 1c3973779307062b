package store

import (
	"sync"

	"github.com/BarkinBalci/event-ingestion-service/internal/domain"
)

// EventStore defines the interface for the idempotent event ledger.
type EventStore interface {
	// AddEvent appends the event if its id has not been seen before. It is
	// the sole idempotency gate for consumption.
	AddEvent(event *domain.Event) bool

	// GetAllEvents returns a defensive copy of the stored sequence in
	// insertion order.
	GetAllEvents() []domain.Event

	// GetEventCount returns the current sequence length.
	GetEventCount() int

	// HasEvent reports whether the id has been stored.
	HasEvent(eventID string) bool

	// Clear resets the ledger; used for administrative reset and test isolation.
	Clear()
}

// MemoryStore is an in-memory EventStore. A single mutex covers both the
// sequence and the id set so the duplicate check and insert are one critical
// section under concurrent callers.
type MemoryStore struct {
	mu      sync.Mutex
	events  []domain.Event
	seenIDs map[string]struct{}
}

// NewMemoryStore creates an empty in-memory event store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		seenIDs: make(map[string]struct{}),
	}
}

// AddEvent records the event if it carries an unseen id. Returns false without
// mutation for a nil event, a missing eventId, or a duplicate.
func (s *MemoryStore) AddEvent(event *domain.Event) bool {
	if event == nil || event.EventID == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, seen := s.seenIDs[event.EventID]; seen {
		return false
	}

	s.seenIDs[event.EventID] = struct{}{}

	stored := *event
	stored.Payload = copyPayload(event.Payload)
	s.events = append(s.events, stored)
	return true
}

// GetAllEvents returns a copy of the stored events in insertion order.
// Payload maps are copied as well, so mutating the returned value does not
// affect the store.
func (s *MemoryStore) GetAllEvents() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]domain.Event, len(s.events))
	for i, event := range s.events {
		snapshot[i] = event
		snapshot[i].Payload = copyPayload(event.Payload)
	}
	return snapshot
}

func copyPayload(payload map[string]interface{}) map[string]interface{} {
	if payload == nil {
		return nil
	}
	copied := make(map[string]interface{}, len(payload))
	for key, value := range payload {
		copied[key] = value
	}
	return copied
}

// GetEventCount returns the number of stored events.
func (s *MemoryStore) GetEventCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.events)
}

// HasEvent reports whether eventID has already been stored.
func (s *MemoryStore) HasEvent(eventID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, seen := s.seenIDs[eventID]
	return seen
}

// Clear empties both the sequence and the id set.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = nil
	s.seenIDs = make(map[string]struct{})
}
