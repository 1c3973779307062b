package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/BarkinBalci/event-ingestion-service/internal/domain"
	"github.com/BarkinBalci/event-ingestion-service/internal/dto"
	"github.com/BarkinBalci/event-ingestion-service/internal/queue"
	"github.com/BarkinBalci/event-ingestion-service/internal/service"
)

const testService = "event-ingestion-service"

// MockEventService is a mock implementation of service.EventServicer
type MockEventService struct {
	mock.Mock
}

func (m *MockEventService) ValidateAndPublish(ctx context.Context, candidate map[string]interface{}) (*domain.Event, error) {
	args := m.Called(ctx, candidate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventService) GetProcessedEvents() []domain.Event {
	args := m.Called()
	return args.Get(0).([]domain.Event)
}

func (m *MockEventService) ClearEvents() {
	m.Called()
}

func (m *MockEventService) Health() service.HealthStatus {
	args := m.Called()
	return args.Get(0).(service.HealthStatus)
}

func TestHandler_GenerateEvent_Success(t *testing.T) {
	mockService := new(MockEventService)
	log := zap.NewNop()

	h := NewHandler(mockService, testService, log)

	event := &domain.Event{
		EventID:   "evt-123",
		UserID:    "user-999",
		EventType: domain.EventTypeProductView,
		Timestamp: time.Now().UTC(),
		Payload:   map[string]interface{}{"productId": "prod-456"},
	}

	mockService.On("ValidateAndPublish", mock.Anything, mock.Anything).Return(event, nil)

	body := []byte(`{"userId":"user-999","eventType":"PRODUCT_VIEW","payload":{"productId":"prod-456"}}`)
	req := httptest.NewRequest(http.MethodPost, "/events/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response dto.GenerateEventResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "event accepted", response.Message)
	assert.Equal(t, "evt-123", response.EventID)
	mockService.AssertExpectations(t)
}

func TestHandler_GenerateEvent_ValidationError(t *testing.T) {
	mockService := new(MockEventService)
	log := zap.NewNop()

	h := NewHandler(mockService, testService, log)

	validationErr := &service.ValidationError{
		Details: []string{"userId is required and must be a non-empty string"},
	}
	mockService.On("ValidateAndPublish", mock.Anything, mock.Anything).Return(nil, validationErr)

	body := []byte(`{"eventType":"LOGIN"}`)
	req := httptest.NewRequest(http.MethodPost, "/events/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "validation_error", response.Error)
	assert.Equal(t, validationErr.Details, response.Details)
}

func TestHandler_GenerateEvent_EmptyBody(t *testing.T) {
	mockService := new(MockEventService)
	log := zap.NewNop()

	h := NewHandler(mockService, testService, log)

	validationErr := &service.ValidationError{Details: []string{"payload is required"}}
	mockService.On("ValidateAndPublish", mock.Anything, mock.Anything).Return(nil, validationErr)

	req := httptest.NewRequest(http.MethodPost, "/events/generate", nil)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response dto.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, []string{"payload is required"}, response.Details)
}

func TestHandler_GenerateEvent_InvalidJSON(t *testing.T) {
	mockService := new(MockEventService)
	log := zap.NewNop()

	h := NewHandler(mockService, testService, log)

	body := []byte(`{"userId": "u1", invalid}`)
	req := httptest.NewRequest(http.MethodPost, "/events/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "ValidateAndPublish")
}

func TestHandler_GenerateEvent_ProducerNotConnected(t *testing.T) {
	mockService := new(MockEventService)
	log := zap.NewNop()

	h := NewHandler(mockService, testService, log)

	mockService.On("ValidateAndPublish", mock.Anything, mock.Anything).Return(nil, queue.ErrNotConnected)

	body := []byte(`{"userId":"u1","eventType":"LOGIN"}`)
	req := httptest.NewRequest(http.MethodPost, "/events/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandler_GenerateEvent_PublishFailure(t *testing.T) {
	mockService := new(MockEventService)
	log := zap.NewNop()

	h := NewHandler(mockService, testService, log)

	mockService.On("ValidateAndPublish", mock.Anything, mock.Anything).Return(nil, errors.New("broker timeout"))

	body := []byte(`{"userId":"u1","eventType":"LOGIN"}`)
	req := httptest.NewRequest(http.MethodPost, "/events/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_ProcessedEvents(t *testing.T) {
	mockService := new(MockEventService)
	log := zap.NewNop()

	h := NewHandler(mockService, testService, log)

	events := []domain.Event{
		{
			EventID:   "evt-1",
			UserID:    "user-999",
			EventType: domain.EventTypeProductView,
			Timestamp: time.Now().UTC(),
			Payload:   map[string]interface{}{"productId": "prod-456"},
		},
	}
	mockService.On("GetProcessedEvents").Return(events)

	req := httptest.NewRequest(http.MethodGet, "/events/processed", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.ProcessedEventsResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, 1, response.Count)
	assert.Equal(t, "evt-1", response.Events[0].EventID)
	assert.Equal(t, "user-999", response.Events[0].UserID)
	assert.Equal(t, "PRODUCT_VIEW", response.Events[0].EventType)
}

func TestHandler_ProcessedEvents_Empty(t *testing.T) {
	mockService := new(MockEventService)
	log := zap.NewNop()

	h := NewHandler(mockService, testService, log)

	mockService.On("GetProcessedEvents").Return([]domain.Event{})

	req := httptest.NewRequest(http.MethodGet, "/events/processed", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.ProcessedEventsResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, 0, response.Count)
	assert.NotNil(t, response.Events)
}

func TestHandler_HealthCheck_Healthy(t *testing.T) {
	mockService := new(MockEventService)
	log := zap.NewNop()

	h := NewHandler(mockService, testService, log)

	mockService.On("Health").Return(service.HealthStatus{ProducerConnected: true, ProcessedEvents: 3})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.HealthResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "healthy", response.Status)
	assert.Equal(t, testService, response.Service)
	assert.Equal(t, "connected", response.Kafka.Producer)
	assert.Equal(t, 3, response.EventStore.ProcessedEvents)
}

func TestHandler_HealthCheck_Unhealthy(t *testing.T) {
	mockService := new(MockEventService)
	log := zap.NewNop()

	h := NewHandler(mockService, testService, log)

	mockService.On("Health").Return(service.HealthStatus{ProducerConnected: false, ProcessedEvents: 0})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var response dto.HealthResponse
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "unhealthy", response.Status)
	assert.Equal(t, "disconnected", response.Kafka.Producer)
}

func TestHandler_ClearEvents(t *testing.T) {
	mockService := new(MockEventService)
	log := zap.NewNop()

	h := NewHandler(mockService, testService, log)

	mockService.On("ClearEvents").Return()

	req := httptest.NewRequest(http.MethodPost, "/admin/events/clear", nil)
	w := httptest.NewRecorder()

	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}
