package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all environment-driven settings for both binaries.
type Config struct {
	Service  Service
	Kafka    Kafka
	Consumer Consumer
}

// Service holds settings shared by the HTTP surface.
type Service struct {
	Environment string `envconfig:"SERVICE_ENVIRONMENT" default:"development"`
	Name        string `envconfig:"SERVICE_NAME" default:"event-ingestion-service"`
	APIPort     string `envconfig:"SERVICE_API_PORT" default:"8080"`
	Host        string `envconfig:"SERVICE_HOST" default:"localhost:8080"`
}

// Kafka holds broker connection settings. MaxAttempts is the declarative
// retry policy for the writer; this service adds no retries of its own.
type Kafka struct {
	Brokers         []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	Topic           string   `envconfig:"KAFKA_TOPIC" default:"user-events"`
	GroupID         string   `envconfig:"KAFKA_GROUP_ID" default:"event-store-group"`
	MaxAttempts     int      `envconfig:"KAFKA_MAX_ATTEMPTS" default:"5"`
	DialTimeoutSec  int      `envconfig:"KAFKA_DIAL_TIMEOUT_SEC" default:"10"`
	WriteTimeoutSec int      `envconfig:"KAFKA_WRITE_TIMEOUT_SEC" default:"10"`
}

// Consumer holds settings for the consumer pipeline.
type Consumer struct {
	HealthCheckPort string `envconfig:"CONSUMER_HEALTH_CHECK_PORT" default:"8081"`
	BufferSize      int    `envconfig:"CONSUMER_BUFFER_SIZE" default:"100"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
