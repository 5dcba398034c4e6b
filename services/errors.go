package services

import (
	"errors"
	"fmt"
	"net/http"
)

// ValidationError means the client sent unusable input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// UpstreamError carries a non-success answer from the chat-completion API.
// StatusCode and Body are passed through to the caller verbatim.
type UpstreamError struct {
	StatusCode int
	Body       string
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Perplexity API error: %d", e.StatusCode)
}

// TimeoutError means the upstream call ran past its time budget.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	return "Request timeout - Perplexity API took too long to respond"
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// NetworkError is a transport failure talking to the upstream API.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("Network error: %v", e.Err) }

func (e *NetworkError) Unwrap() error { return e.Err }

// DocumentGenerationError means a PDF could not be rendered or serialized.
type DocumentGenerationError struct {
	Err error
}

func (e *DocumentGenerationError) Error() string {
	return fmt.Sprintf("PDF generation error: %v", e.Err)
}

func (e *DocumentGenerationError) Unwrap() error { return e.Err }

// InternalError is anything else that went wrong while serving a request.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string { return fmt.Sprintf("Server error: %v", e.Err) }

func (e *InternalError) Unwrap() error { return e.Err }

// HTTPStatus maps an error from this package to the response status.
// Unknown errors are 500.
func HTTPStatus(err error) int {
	var (
		validation *ValidationError
		upstream   *UpstreamError
		timeout    *TimeoutError
	)
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &upstream):
		if upstream.StatusCode < 400 || upstream.StatusCode > 599 {
			return http.StatusBadGateway
		}
		return upstream.StatusCode
	case errors.As(err, &timeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// typed passes errors of this package through and wraps anything else as
// an InternalError.
func typed(err error) error {
	var (
		validation *ValidationError
		upstream   *UpstreamError
		timeout    *TimeoutError
		network    *NetworkError
		document   *DocumentGenerationError
		internal   *InternalError
	)
	if errors.As(err, &validation) || errors.As(err, &upstream) || errors.As(err, &timeout) ||
		errors.As(err, &network) || errors.As(err, &document) || errors.As(err, &internal) {
		return err
	}
	return &InternalError{Err: err}
}
