package queue

import (
	"context"
	"errors"

	segmentio "github.com/segmentio/kafka-go"

	"github.com/BarkinBalci/event-ingestion-service/internal/domain"
)

// ErrNotConnected is returned by publish and fetch operations attempted before
// Connect has succeeded or after Disconnect.
var ErrNotConnected = errors.New("kafka client is not connected")

// Publisher defines the interface for publishing events to the broker.
type Publisher interface {
	// Connect establishes the broker connection and sets the connected flag.
	// Calling it while already connected is a no-op.
	Connect(ctx context.Context) error

	// PublishEvent serializes the event and sends it keyed by the event's
	// UserID. Fails fast with ErrNotConnected when disconnected.
	PublishEvent(ctx context.Context, event *domain.Event) error

	// Connected reports whether the publisher holds an established connection.
	Connected() bool

	// Disconnect releases resources and clears the connected flag. Idempotent.
	Disconnect() error
}

// MessageConsumer defines the interface for receiving messages from the broker.
type MessageConsumer interface {
	// Connect establishes the connection and subscribes to the configured
	// topic from the earliest retained offset.
	Connect(ctx context.Context) error

	// FetchMessage blocks until the next message is delivered. Fails with
	// ErrNotConnected when called before Connect.
	FetchMessage(ctx context.Context) (segmentio.Message, error)

	// CommitMessages marks the messages as processed in the consumer group.
	CommitMessages(ctx context.Context, msgs ...segmentio.Message) error

	// Connected reports whether the consumer is subscribed.
	Connected() bool

	// Disconnect stops the subscription and releases the connection. Idempotent.
	Disconnect() error
}
