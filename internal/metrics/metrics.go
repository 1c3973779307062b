package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "events_published_total",
		Help: "The total number of events published to Kafka",
	})
	PublishErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "events_publish_errors_total",
		Help: "The total number of failed publish attempts",
	})
	EventsConsumed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "events_consumed_total",
		Help: "The total number of newly stored events",
	})
	DuplicateEvents = promauto.NewCounter(prometheus.CounterOpts{
		Name: "events_duplicate_total",
		Help: "The total number of duplicate events absorbed by the store",
	})
	MalformedMessages = promauto.NewCounter(prometheus.CounterOpts{
		Name: "consumer_malformed_messages_total",
		Help: "The total number of undeserializable or incomplete messages dropped",
	})
)
