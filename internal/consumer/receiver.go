package consumer

import (
	"context"
	"errors"
	"io"
	"time"

	segmentio "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/BarkinBalci/event-ingestion-service/internal/queue"
)

// ReceiverConfig configures the Kafka receiver
type ReceiverConfig struct {
	RetryBackoff time.Duration
}

// Receiver blocks on the Kafka reader and feeds delivered messages to the
// next stage. Fetch errors never end the loop; only context cancellation or
// a closed reader does.
type Receiver struct {
	consumer queue.MessageConsumer
	config   ReceiverConfig
	log      *zap.Logger
}

// NewReceiver creates a new Kafka receiver
func NewReceiver(consumer queue.MessageConsumer, config ReceiverConfig, log *zap.Logger) *Receiver {
	if config.RetryBackoff == 0 {
		config.RetryBackoff = 1 * time.Second
	}

	return &Receiver{
		consumer: consumer,
		config:   config,
		log:      log,
	}
}

// Start begins receiving messages and sends them to the output channel
func (r *Receiver) Start(ctx context.Context, out chan<- segmentio.Message) {
	defer close(out)

	for {
		msg, err := r.consumer.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				r.log.Info("Receiver shutting down")
				return
			}
			if errors.Is(err, io.EOF) || errors.Is(err, queue.ErrNotConnected) {
				r.log.Info("Receiver stopping, reader closed")
				return
			}

			r.log.Error("Error fetching message from Kafka", zap.Error(err))
			time.Sleep(r.config.RetryBackoff)
			continue
		}

		select {
		case <-ctx.Done():
			r.log.Info("Receiver shutting down while sending message")
			return
		case out <- msg:
			// Message sent to next stage
		}
	}
}
