package provider

import (
	"errors"
	"fmt"
)

// ErrInvalidResponse indicates a 2xx response whose envelope could not be decoded.
var ErrInvalidResponse = errors.New("invalid provider response")

// StatusError is returned when a provider answers with a non-2xx status.
// Body is kept for logs only; callers classify by StatusCode.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d", e.Provider, e.StatusCode)
}
