// Package errors provides custom error types for the analyzer API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import (
	"errors"
	"fmt"
	"net/http"

	"reanalyzer/internal/engine"
)

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// FromEngine converts an engine validation failure into an INVALID_INPUT
// error naming the offending field. Any other error is wrapped as internal.
func FromEngine(err error) *AppError {
	var invalid *engine.InvalidInputError
	if errors.As(err, &invalid) {
		return &AppError{
			Code:       ErrInvalidInput.Code,
			Message:    fmt.Sprintf("%s %s", invalid.Field, invalid.Reason),
			Field:      invalid.Field,
			StatusCode: ErrInvalidInput.StatusCode,
			Internal:   err,
		}
	}
	return Wrap(ErrInternalServer, err)
}

// Access errors.
var (
	ErrInvalidAPIKey = &AppError{Code: "INVALID_API_KEY", Message: "Invalid or missing API key", StatusCode: http.StatusUnauthorized}
	ErrRateLimited   = &AppError{Code: "RATE_LIMITED", Message: "Too many requests, slow down", StatusCode: http.StatusTooManyRequests}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Scenario errors.
var (
	ErrScenarioNotFound  = &AppError{Code: "SCENARIO_NOT_FOUND", Message: "Scenario not found", StatusCode: http.StatusNotFound}
	ErrDuplicateScenario = &AppError{Code: "DUPLICATE_SCENARIO", Message: "A scenario with this name already exists", StatusCode: http.StatusConflict}
)
