package dto

// GenerateEventRequest documents the ingestion request body. The handler
// binds the body untyped so the validator can report every violation; this
// type exists for the API documentation.
type GenerateEventRequest struct {
	UserID    string                 `json:"userId" example:"user-123"`
	EventType string                 `json:"eventType" example:"PRODUCT_VIEW"`
	Payload   map[string]interface{} `json:"payload" swaggertype:"object,string" example:"productId:prod-456"`
}
