package crossmint

import (
	"errors"
	"fmt"

	dErrors "vcpipe/pkg/domain-errors"
)

// ErrorCategory classifies Crossmint API failures independently of the endpoint.
type ErrorCategory string

const (
	ErrorTimeout        ErrorCategory = "timeout"
	ErrorBadData        ErrorCategory = "bad_data"
	ErrorBadRequest     ErrorCategory = "bad_request"
	ErrorAuthentication ErrorCategory = "authentication"
	ErrorOutage         ErrorCategory = "outage"
	ErrorNotFound       ErrorCategory = "not_found"
	ErrorRateLimited    ErrorCategory = "rate_limited"
	ErrorInternal       ErrorCategory = "internal"
)

// Error is returned by every Client method that fails.
type Error struct {
	Category   ErrorCategory
	Operation  string
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("crossmint %s [%s]: %s: %v", e.Operation, e.Category, e.Message, e.Err)
	}
	return fmt.Sprintf("crossmint %s [%s]: %s", e.Operation, e.Category, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether the failure is transient.
func (e *Error) Retryable() bool {
	return e.Category == ErrorTimeout || e.Category == ErrorOutage || e.Category == ErrorRateLimited
}

func newError(category ErrorCategory, operation, message string, err error) *Error {
	return &Error{Category: category, Operation: operation, Message: message, Err: err}
}

// Category extracts the category of a Crossmint error, or ErrorInternal.
func Category(err error) ErrorCategory {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Category
	}
	return ErrorInternal
}

// DomainCode maps a Crossmint failure onto the domain error code used for
// responses to our own callers.
func DomainCode(err error) dErrors.Code {
	switch Category(err) {
	case ErrorNotFound:
		return dErrors.CodeNotFound
	case ErrorBadRequest:
		return dErrors.CodeBadRequest
	case ErrorTimeout:
		return dErrors.CodeTimeout
	case ErrorOutage, ErrorRateLimited, ErrorAuthentication, ErrorBadData:
		return dErrors.CodeUnavailable
	default:
		return dErrors.CodeInternal
	}
}
