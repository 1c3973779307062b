package consumer

import (
	"context"

	segmentio "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/BarkinBalci/event-ingestion-service/internal/metrics"
	"github.com/BarkinBalci/event-ingestion-service/internal/queue"
)

const maxLoggedValueBytes = 256

// ParserStage handles parsing Kafka messages into domain envelopes
type ParserStage struct {
	consumer queue.MessageConsumer
	parser   MessageParser
	log      *zap.Logger
}

// NewParserStage creates a new parser stage
func NewParserStage(consumer queue.MessageConsumer, parser MessageParser, log *zap.Logger) *ParserStage {
	return &ParserStage{
		consumer: consumer,
		parser:   parser,
		log:      log,
	}
}

// Start begins parsing messages and outputs envelopes
func (p *ParserStage) Start(ctx context.Context, in <-chan segmentio.Message, out chan<- *Envelope) {
	defer close(out)

	for {
		select {
		case <-ctx.Done():
			p.log.Info("Parser stage shutting down")
			return
		case msg, ok := <-in:
			if !ok {
				p.log.Info("Parser stage input channel closed")
				return
			}

			envelope := p.parseMessage(ctx, msg)
			if envelope == nil {
				continue
			}

			select {
			case <-ctx.Done():
				return
			case out <- envelope:
				// Envelope sent to next stage
			}
		}
	}
}

// parseMessage parses a single Kafka message into an envelope. Malformed
// messages are logged with their delivery coordinates, committed so they are
// not redelivered, and dropped without stopping the loop.
func (p *ParserStage) parseMessage(ctx context.Context, msg segmentio.Message) *Envelope {
	event, err := p.parser.Parse(msg.Value)
	if err != nil {
		metrics.MalformedMessages.Inc()
		p.log.Warn("Dropping malformed message",
			zap.String("topic", msg.Topic),
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
			zap.String("value", truncateValue(msg.Value)),
			zap.Error(err))
		if err := p.consumer.CommitMessages(ctx, msg); err != nil {
			p.log.Error("Failed to commit malformed message",
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
				zap.Error(err))
		}
		return nil
	}

	ack := func(ctx context.Context) error {
		return p.consumer.CommitMessages(ctx, msg)
	}

	return NewEnvelope(event, ack)
}

func truncateValue(value []byte) string {
	if len(value) > maxLoggedValueBytes {
		return string(value[:maxLoggedValueBytes]) + "..."
	}
	return string(value)
}
