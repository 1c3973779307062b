package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	segmentio "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/BarkinBalci/event-ingestion-service/internal/config"
	"github.com/BarkinBalci/event-ingestion-service/internal/domain"
	"github.com/BarkinBalci/event-ingestion-service/internal/metrics"
	"github.com/BarkinBalci/event-ingestion-service/internal/queue"
)

// Publisher publishes events to a Kafka topic. Messages are keyed by the
// event's UserID through a hash balancer, so all events for one user land on
// one partition and are delivered in publish order.
type Publisher struct {
	mu        sync.Mutex
	writer    *segmentio.Writer
	connected bool
	config    config.Kafka
	log       *zap.Logger
}

// NewPublisher creates a Kafka publisher. No connection is made until Connect.
func NewPublisher(cfg config.Kafka, log *zap.Logger) *Publisher {
	return &Publisher{
		config: cfg,
		log:    log,
	}
}

// Connect verifies broker reachability and creates the writer. Calling it
// while already connected is a no-op. Connection failures are propagated
// without retries; the writer's MaxAttempts is the only retry policy.
func (p *Publisher) Connect(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.connected {
		return nil
	}

	dialer := &segmentio.Dialer{
		Timeout: time.Duration(p.config.DialTimeoutSec) * time.Second,
	}

	conn, err := dialer.DialContext(ctx, "tcp", p.config.Brokers[0])
	if err != nil {
		return fmt.Errorf("failed to dial kafka broker %s: %w", p.config.Brokers[0], err)
	}
	if err := conn.Close(); err != nil {
		p.log.Warn("Failed to close kafka dial probe", zap.Error(err))
	}

	p.writer = &segmentio.Writer{
		Addr:                   segmentio.TCP(p.config.Brokers...),
		Topic:                  p.config.Topic,
		Balancer:               &segmentio.Hash{},
		MaxAttempts:            p.config.MaxAttempts,
		WriteTimeout:           time.Duration(p.config.WriteTimeoutSec) * time.Second,
		Async:                  false,
		AllowAutoTopicCreation: true,
		Completion:             p.logCompletion,
	}
	p.connected = true

	p.log.Info("Kafka producer connected",
		zap.Strings("brokers", p.config.Brokers),
		zap.String("topic", p.config.Topic))

	return nil
}

// Connected reports whether Connect has succeeded.
func (p *Publisher) Connected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.connected
}

// PublishEvent serializes the event as JSON and sends it keyed by UserID,
// with the event type and timestamp attached as message headers for
// broker-side filtering. Fails fast when not connected.
func (p *Publisher) PublishEvent(ctx context.Context, event *domain.Event) error {
	p.mu.Lock()
	writer := p.writer
	connected := p.connected
	p.mu.Unlock()

	if !connected {
		return queue.ErrNotConnected
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", event.EventID, err)
	}

	msg := segmentio.Message{
		Key:   []byte(event.UserID),
		Value: value,
		Headers: []segmentio.Header{
			{Key: "eventType", Value: []byte(event.EventType)},
			{Key: "timestamp", Value: []byte(event.Timestamp.Format(time.RFC3339Nano))},
		},
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		metrics.PublishErrors.Inc()
		p.log.Error("Failed to publish event",
			zap.String("event_id", event.EventID),
			zap.String("user_id", event.UserID),
			zap.Error(err))
		return fmt.Errorf("failed to publish event to kafka: %w", err)
	}

	metrics.EventsPublished.Inc()
	p.log.Info("Event published",
		zap.String("event_id", event.EventID),
		zap.String("user_id", event.UserID),
		zap.String("event_type", string(event.EventType)),
		zap.String("topic", p.config.Topic))

	return nil
}

// logCompletion records per-partition delivery metadata for written batches.
// The writer does not return partition and offset synchronously from
// WriteMessages; this hook is where they become observable.
func (p *Publisher) logCompletion(messages []segmentio.Message, err error) {
	if err != nil {
		p.log.Error("Message batch delivery failed",
			zap.Int("message_count", len(messages)),
			zap.Error(err))
		return
	}

	for _, msg := range messages {
		p.log.Info("Event delivered",
			zap.String("key", string(msg.Key)),
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset))
	}
}

// Disconnect closes the writer and clears the connected flag. Idempotent.
func (p *Publisher) Disconnect() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.connected {
		return nil
	}

	p.connected = false
	writer := p.writer
	p.writer = nil

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka writer: %w", err)
	}

	p.log.Info("Kafka producer disconnected")
	return nil
}
