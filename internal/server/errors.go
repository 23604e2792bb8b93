package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/NathiDhliso/ReelApps/internal/analysis"
	"github.com/NathiDhliso/ReelApps/internal/schemas"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("validation error: %s", e.Message)
	}
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Batch-level matching failures such as *ranking.JobError map to 500.
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		schemaErr     *schemas.ValidationError
		formatErr     *analysis.ResponseFormatError
		apiErr        *analysis.APICallError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	case errors.Is(err, analysis.ErrAIUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.As(err, &formatErr), errors.As(err, &apiErr):
		return http.StatusBadGateway
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// publicMessage returns the client-facing message for err, or fallback for
// internal failures.
func publicMessage(err error, fallback string) string {
	var (
		formatErr *analysis.ResponseFormatError
		validErr  *ErrValidation
		schemaErr *schemas.ValidationError
	)

	switch {
	case errors.As(err, &validErr):
		return validErr.Error()
	case errors.As(err, &schemaErr):
		return schemaErr.Error()
	case errors.Is(err, analysis.ErrAIUnavailable):
		return "AI service temporarily unavailable"
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	case errors.As(err, &formatErr):
		return "AI service returned invalid response format"
	case HTTPStatus(err) == http.StatusBadGateway:
		return "AI service error"
	default:
		return fallback
	}
}
