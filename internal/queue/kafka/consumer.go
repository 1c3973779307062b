package kafka

import (
	"context"
	"fmt"
	"sync"
	"time"

	segmentio "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/BarkinBalci/event-ingestion-service/internal/config"
	"github.com/BarkinBalci/event-ingestion-service/internal/queue"
)

// Consumer wraps a Kafka consumer-group reader. Connect subscribes from the
// earliest retained offset so a fresh group misses nothing; reprocessing on
// restart is absorbed by the store's deduplication.
type Consumer struct {
	mu        sync.Mutex
	reader    *segmentio.Reader
	connected bool
	config    config.Kafka
	log       *zap.Logger
}

// NewConsumer creates a Kafka consumer. No connection is made until Connect.
func NewConsumer(cfg config.Kafka, log *zap.Logger) *Consumer {
	return &Consumer{
		config: cfg,
		log:    log,
	}
}

// Connect creates the group reader and subscribes to the configured topic.
// Calling it while already connected is a no-op.
func (c *Consumer) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		return nil
	}

	dialer := &segmentio.Dialer{
		Timeout: time.Duration(c.config.DialTimeoutSec) * time.Second,
	}

	conn, err := dialer.DialContext(ctx, "tcp", c.config.Brokers[0])
	if err != nil {
		return fmt.Errorf("failed to dial kafka broker %s: %w", c.config.Brokers[0], err)
	}
	if err := conn.Close(); err != nil {
		c.log.Warn("Failed to close kafka dial probe", zap.Error(err))
	}

	c.reader = segmentio.NewReader(segmentio.ReaderConfig{
		Brokers:     c.config.Brokers,
		Topic:       c.config.Topic,
		GroupID:     c.config.GroupID,
		MinBytes:    1,
		MaxBytes:    10e6,
		MaxWait:     1 * time.Second,
		Dialer:      dialer,
		StartOffset: segmentio.FirstOffset,
	})
	c.connected = true

	c.log.Info("Kafka consumer connected",
		zap.Strings("brokers", c.config.Brokers),
		zap.String("topic", c.config.Topic),
		zap.String("group_id", c.config.GroupID))

	return nil
}

// Connected reports whether Connect has succeeded.
func (c *Consumer) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.connected
}

// FetchMessage blocks until the next message is delivered or ctx is done.
func (c *Consumer) FetchMessage(ctx context.Context) (segmentio.Message, error) {
	c.mu.Lock()
	reader := c.reader
	connected := c.connected
	c.mu.Unlock()

	if !connected {
		return segmentio.Message{}, queue.ErrNotConnected
	}

	return reader.FetchMessage(ctx)
}

// CommitMessages commits the offsets of the given messages in the group.
func (c *Consumer) CommitMessages(ctx context.Context, msgs ...segmentio.Message) error {
	c.mu.Lock()
	reader := c.reader
	connected := c.connected
	c.mu.Unlock()

	if !connected {
		return queue.ErrNotConnected
	}

	return reader.CommitMessages(ctx, msgs...)
}

// Disconnect closes the reader and clears the connected flag. Idempotent.
func (c *Consumer) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil
	}

	c.connected = false
	reader := c.reader
	c.reader = nil

	if err := reader.Close(); err != nil {
		return fmt.Errorf("failed to close kafka reader: %w", err)
	}

	c.log.Info("Kafka consumer disconnected")
	return nil
}
