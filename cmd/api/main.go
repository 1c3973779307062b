package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/BarkinBalci/event-ingestion-service/docs"
	"github.com/BarkinBalci/event-ingestion-service/internal/config"
	"github.com/BarkinBalci/event-ingestion-service/internal/consumer"
	"github.com/BarkinBalci/event-ingestion-service/internal/handler"
	"github.com/BarkinBalci/event-ingestion-service/internal/logger"
	"github.com/BarkinBalci/event-ingestion-service/internal/queue/kafka"
	"github.com/BarkinBalci/event-ingestion-service/internal/service"
	"github.com/BarkinBalci/event-ingestion-service/internal/store"
)

// @title Event Ingestion Service API
// @version 1.0
// @description API for publishing, consuming, and querying idempotent events
// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Initialize logger
	log, err := logger.New(cfg.Service.Environment)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer func(log *zap.Logger) {
		err := log.Sync()
		if err != nil {
			log.Error("Failed to sync logger", zap.Error(err))
		}
	}(log)

	log.Info("Starting API service",
		zap.String("environment", cfg.Service.Environment),
		zap.String("port", cfg.Service.APIPort))

	// Configure Swagger host dynamically
	docs.SwaggerInfo.Host = cfg.Service.Host

	ctx := context.Background()

	// Composition root: one store, one publisher, one consumer per process.
	eventStore := store.NewMemoryStore()

	publisher := kafka.NewPublisher(cfg.Kafka, log)
	if err := publisher.Connect(ctx); err != nil {
		log.Fatal("Failed to connect Kafka producer", zap.Error(err))
	}

	queueConsumer := kafka.NewConsumer(cfg.Kafka, log)
	if err := queueConsumer.Connect(ctx); err != nil {
		log.Fatal("Failed to connect Kafka consumer", zap.Error(err))
	}

	eventService := service.NewEventService(publisher, eventStore, log)
	h := handler.NewHandler(eventService, cfg.Service.Name, log)

	// Start the consume loop
	consumerCtx, cancelConsumer := context.WithCancel(ctx)
	defer cancelConsumer()

	c := consumer.NewConsumer(cfg, queueConsumer, eventStore, log)
	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		if err := c.Start(consumerCtx); err != nil {
			log.Error("Consumer stopped with error", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf(":%s", cfg.Service.APIPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: h,
	}

	go func() {
		log.Info("API server starting", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start API server", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Shutdown order: stop accepting requests, stop the consume loop, then
	// close broker connections, so accepted work settles before connections die.
	log.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Failed to shut down API server", zap.Error(err))
	}

	cancelConsumer()
	<-consumerDone

	if err := publisher.Disconnect(); err != nil {
		log.Error("Failed to disconnect Kafka producer", zap.Error(err))
	}
	if err := queueConsumer.Disconnect(); err != nil {
		log.Error("Failed to disconnect Kafka consumer", zap.Error(err))
	}

	log.Info("Shutdown complete")
}
