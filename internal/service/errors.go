package service

import "strings"

// ValidationError carries the itemized reasons an ingestion request was
// rejected. It is reported synchronously to the caller and never retried.
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	return "event validation failed: " + strings.Join(e.Details, "; ")
}
