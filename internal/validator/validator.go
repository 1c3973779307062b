package validator

import (
	"fmt"
	"strings"

	"github.com/BarkinBalci/event-ingestion-service/internal/domain"
)

// Result holds the outcome of validating a candidate event body.
type Result struct {
	Valid  bool
	Errors []string
}

// Validate checks an untyped candidate body against the event contract. All
// rule violations are collected in rule order, except that a nil candidate
// short-circuits with a single error. Deterministic, no side effects.
func Validate(candidate map[string]interface{}) Result {
	if candidate == nil {
		return Result{Valid: false, Errors: []string{"payload is required"}}
	}

	var errs []string

	if userID, ok := candidate["userId"].(string); !ok || userID == "" {
		errs = append(errs, "userId is required and must be a non-empty string")
	}

	if eventType, ok := candidate["eventType"].(string); !ok {
		errs = append(errs, "eventType is required and must be a string")
	} else if !domain.EventType(eventType).Valid() {
		errs = append(errs, fmt.Sprintf("eventType must be one of: %s", eventTypeList()))
	}

	if payload, present := candidate["payload"]; present && payload != nil {
		if _, ok := payload.(map[string]interface{}); !ok {
			errs = append(errs, "payload must be an object")
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

func eventTypeList() string {
	types := domain.EventTypes()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
