package analysis

import (
	"errors"
	"fmt"
)

// ErrAIUnavailable is returned by operations that have no offline fallback when
// no oracle client is configured.
var ErrAIUnavailable = errors.New("AI analysis service not configured")

// APICallError represents a failed call to the generative-text oracle.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ResponseFormatError represents an oracle response that is not valid JSON.
type ResponseFormatError struct {
	Message string
	Cause   error
}

func (e *ResponseFormatError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid response format: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid response format: %s", e.Message)
}

func (e *ResponseFormatError) Unwrap() error {
	return e.Cause
}
