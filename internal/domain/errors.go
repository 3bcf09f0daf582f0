package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrValidation = errors.New("validation error")
	ErrExtraction = errors.New("extraction failed")
)

// User-facing failure messages. They are shown verbatim by clients.
const (
	MsgNotConfigured     = "Gemini API Key is not configured. Please check your .env file."
	MsgImageUnreadable   = "Could not read the selected image. Please try another photo."
	MsgOffline           = "No internet connection. Please check your network and try again."
	MsgTimeout           = "The request timed out. Please check your connection and try again."
	MsgRateLimited       = "Too many requests. Please wait a moment and try again."
	MsgServerUnavailable = "The AI service is temporarily unavailable. Please try again later."
	MsgBadRequest        = "The image could not be processed. Please try a different photo."
	MsgInvalidAPIKey     = "Invalid Gemini API key. Please check your configuration."
	MsgEndpointNotFound  = "The AI model endpoint was not found. Please check your configuration."
	MsgTryAgain          = "Something went wrong. Please try again."
	MsgEmptyResponse     = "Empty response from AI"
	MsgMalformedResponse = "The AI response could not be understood. Please try again."
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// ExtractionError is a classified extraction failure. Message is safe to
// show to end users; Err keeps the underlying cause for logs.
type ExtractionError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// NewExtractionError creates an ExtractionError wrapping cause.
func NewExtractionError(kind ErrorKind, message string, cause error) *ExtractionError {
	return &ExtractionError{Kind: kind, Message: message, Err: cause}
}

func (e *ExtractionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
}

// Unwrap exposes both the cause and ErrExtraction to errors.Is.
func (e *ExtractionError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrExtraction}
	}
	return []error{ErrExtraction, e.Err}
}

// Retryable reports whether the failure may succeed on another attempt.
func (e *ExtractionError) Retryable() bool { return e.Kind.Retryable() }

// KindOf returns the ErrorKind carried by err, or "" if err is not an ExtractionError.
func KindOf(err error) ErrorKind {
	var ee *ExtractionError
	if errors.As(err, &ee) {
		return ee.Kind
	}
	return ""
}
