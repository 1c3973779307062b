package consumer

import (
	"context"
	"sync"

	segmentio "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/BarkinBalci/event-ingestion-service/internal/config"
	"github.com/BarkinBalci/event-ingestion-service/internal/queue"
	"github.com/BarkinBalci/event-ingestion-service/internal/store"
)

// Consumer orchestrates a pipeline of stages to process Kafka messages:
// receive → parse → store. One logical consumer loop per process; the store's
// deduplication makes at-least-once delivery safe.
type Consumer struct {
	queueConsumer queue.MessageConsumer
	receiver      *Receiver
	parser        *ParserStage
	storeWriter   *StoreWriter
	bufferSize    int
}

// NewConsumer creates a new consumer with a pipeline architecture
func NewConsumer(cfg *config.Config, queueConsumer queue.MessageConsumer, eventStore store.EventStore, log *zap.Logger) *Consumer {
	receiver := NewReceiver(queueConsumer, ReceiverConfig{}, log)
	parser := NewParserStage(queueConsumer, NewJSONEventParser(), log)
	storeWriter := NewStoreWriter(eventStore, log)

	return &Consumer{
		queueConsumer: queueConsumer,
		receiver:      receiver,
		parser:        parser,
		storeWriter:   storeWriter,
		bufferSize:    cfg.Consumer.BufferSize,
	}
}

// Start begins the consumer pipeline. It fails if the underlying consumer has
// not connected and subscribed, and blocks until every stage has drained.
func (c *Consumer) Start(ctx context.Context) error {
	if !c.queueConsumer.Connected() {
		return queue.ErrNotConnected
	}

	messageChan := make(chan segmentio.Message, c.bufferSize)
	envelopeChan := make(chan *Envelope, c.bufferSize)

	var wg sync.WaitGroup
	wg.Add(3)

	// Stage 1: Receive messages from Kafka
	go func() {
		defer wg.Done()
		c.receiver.Start(ctx, messageChan)
	}()

	// Stage 2: Parse messages into envelopes
	go func() {
		defer wg.Done()
		c.parser.Start(ctx, messageChan, envelopeChan)
	}()

	// Stage 3: Deduplicate and write to the store
	go func() {
		defer wg.Done()
		c.storeWriter.Start(ctx, envelopeChan)
	}()

	wg.Wait()
	return nil
}
