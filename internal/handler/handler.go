package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/BarkinBalci/event-ingestion-service/docs"
	"github.com/BarkinBalci/event-ingestion-service/internal/dto"
	"github.com/BarkinBalci/event-ingestion-service/internal/queue"
	"github.com/BarkinBalci/event-ingestion-service/internal/service"
)

type Handler struct {
	eventService service.EventServicer
	serviceName  string
	router       *gin.Engine
	log          *zap.Logger
}

func NewHandler(eventService service.EventServicer, serviceName string, log *zap.Logger) *Handler {
	h := &Handler{
		eventService: eventService,
		serviceName:  serviceName,
		router:       gin.Default(),
		log:          log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.POST("/events/generate", h.generateEvent)
	h.router.GET("/events/processed", h.processedEvents)
	h.router.POST("/admin/events/clear", h.clearEvents)
	h.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Report producer connectivity and event store size
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	health := h.eventService.Health()

	status := "healthy"
	code := http.StatusOK
	producer := "connected"
	if !health.ProducerConnected {
		status = "unhealthy"
		code = http.StatusServiceUnavailable
		producer = "disconnected"
	}

	c.JSON(code, dto.HealthResponse{
		Status:     status,
		Timestamp:  time.Now().UTC(),
		Service:    h.serviceName,
		Kafka:      dto.KafkaHealth{Producer: producer},
		EventStore: dto.EventStoreHealth{ProcessedEvents: health.ProcessedEvents},
	})
}

// generateEvent handles POST /events/generate
// @Summary Generate an event
// @Description Validate, enrich, and publish an event to Kafka
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.GenerateEventRequest true "Event data"
// @Success 201 {object} dto.GenerateEventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /events/generate [post]
func (h *Handler) generateEvent(c *gin.Context) {
	// The body is bound untyped so the validator can collect every
	// violation instead of failing on the first binding error.
	var candidate map[string]interface{}
	if err := c.ShouldBindJSON(&candidate); err != nil && !errors.Is(err, io.EOF) {
		h.log.Warn("Invalid event request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Details: []string{"request body must be valid JSON"},
		})
		return
	}

	event, err := h.eventService.ValidateAndPublish(c.Request.Context(), candidate)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "validation_error",
				Details: validationErr.Details,
			})
		case errors.Is(err, queue.ErrNotConnected):
			h.log.Error("Event producer unavailable", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
				Error: "event producer is not connected",
			})
		default:
			h.log.Error("Failed to publish event", zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "failed to publish event",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.GenerateEventResponse{
		Message:   "event accepted",
		EventID:   event.EventID,
		Timestamp: event.Timestamp,
	})
}

// processedEvents handles GET /events/processed
// @Summary List processed events
// @Description Return the full snapshot of consumed events in insertion order
// @Tags events
// @Produce json
// @Success 200 {object} dto.ProcessedEventsResponse
// @Router /events/processed [get]
func (h *Handler) processedEvents(c *gin.Context) {
	events := h.eventService.GetProcessedEvents()

	data := make([]dto.EventData, 0, len(events))
	for _, event := range events {
		data = append(data, dto.NewEventData(event))
	}

	c.JSON(http.StatusOK, dto.ProcessedEventsResponse{
		Count:  len(data),
		Events: data,
	})
}

// clearEvents handles POST /admin/events/clear
// @Summary Clear the event store
// @Description Administrative reset of the in-memory event store
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Router /admin/events/clear [post]
func (h *Handler) clearEvents(c *gin.Context) {
	h.eventService.ClearEvents()
	c.JSON(http.StatusOK, gin.H{"message": "event store cleared"})
}
