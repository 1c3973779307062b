package consumer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BarkinBalci/event-ingestion-service/internal/domain"
)

func TestJSONEventParser_Parse_Success(t *testing.T) {
	parser := NewJSONEventParser()

	value := []byte(`{
		"eventId": "evt-1",
		"userId": "user-999",
		"eventType": "PRODUCT_VIEW",
		"timestamp": "2025-08-31T12:00:00Z",
		"payload": {"productId": "prod-456"}
	}`)

	event, err := parser.Parse(value)

	assert.NoError(t, err)
	assert.Equal(t, "evt-1", event.EventID)
	assert.Equal(t, "user-999", event.UserID)
	assert.Equal(t, domain.EventTypeProductView, event.EventType)
	assert.Equal(t, map[string]interface{}{"productId": "prod-456"}, event.Payload)
}

func TestJSONEventParser_Parse_DefaultsPayload(t *testing.T) {
	parser := NewJSONEventParser()

	value := []byte(`{"eventId": "evt-1", "userId": "u1", "eventType": "LOGIN", "timestamp": "2025-08-31T12:00:00Z"}`)

	event, err := parser.Parse(value)

	assert.NoError(t, err)
	assert.NotNil(t, event.Payload)
	assert.Empty(t, event.Payload)
}

func TestJSONEventParser_Parse_InvalidJSON(t *testing.T) {
	parser := NewJSONEventParser()

	event, err := parser.Parse([]byte(`not json`))

	assert.Error(t, err)
	assert.Nil(t, event)
}

func TestJSONEventParser_Parse_MissingStructuralFields(t *testing.T) {
	parser := NewJSONEventParser()

	cases := []struct {
		name  string
		value string
	}{
		{"missing eventId", `{"userId": "u1", "eventType": "LOGIN"}`},
		{"missing userId", `{"eventId": "evt-1", "eventType": "LOGIN"}`},
		{"missing eventType", `{"eventId": "evt-1", "userId": "u1"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			event, err := parser.Parse([]byte(tc.value))
			assert.Error(t, err)
			assert.Nil(t, event)
		})
	}
}
