package wbapi

import "fmt"

// ValidationError indicates a caller-supplied argument was missing or
// out of range. It is returned before any network call is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid argument %q: %s", e.Field, e.Reason)
}

// NetworkError indicates the upstream API answered with a non-success
// HTTP status. The request is not retried.
type NetworkError struct {
	StatusCode int
	Status     string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("World Bank API request failed: %s", e.Status)
}

// NotFoundError indicates a document lookup matched no record.
type NotFoundError struct {
	DocumentID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("document %q not found", e.DocumentID)
}
