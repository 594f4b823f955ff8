// Package errors provides the standardized error taxonomy for API calls.
//
// Every failure surfaced to a view is one of three kinds: a transport failure
// (no response at all), a structured HTTP error carrying the status code and
// any field-level validation messages the backend returned, or a local
// validation failure raised before the request was ever sent. All of them are
// caught at the view/controller boundary and converted to user-visible
// messages; nothing is retried automatically.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"
)

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeTransport          ErrorCode = "TRANSPORT_FAILURE"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeAccountDisabled    ErrorCode = "ACCOUNT_DISABLED"
	ErrCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrCodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	ErrCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrCodeServerFailure      ErrorCode = "SERVER_FAILURE"
	ErrCodePhotoLimit         ErrorCode = "PHOTO_LIMIT_EXCEEDED"
	ErrCodeFormInvalid        ErrorCode = "FORM_INVALID"
)

// APIError is a structured error for a failed API call.
type APIError struct {
	Code        ErrorCode         `json:"code"`
	StatusCode  int               `json:"statusCode,omitempty"`
	Message     string            `json:"message"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("APIError[%s]: %s (HTTP %d)", e.Code, e.Message, e.StatusCode)
	}
	return fmt.Sprintf("APIError[%s]: %s", e.Code, e.Message)
}

// FlattenFieldErrors joins per-field validation messages into one display
// string, in stable field order.
func (e *APIError) FlattenFieldErrors() string {
	if len(e.FieldErrors) == 0 {
		return e.Message
	}
	fields := make([]string, 0, len(e.FieldErrors))
	for f := range e.FieldErrors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, e.FieldErrors[f])
	}
	return strings.Join(parts, ". ")
}

// codeForStatus maps an HTTP status to an internal code.
func codeForStatus(status int) ErrorCode {
	switch status {
	case http.StatusUnauthorized:
		return ErrCodeInvalidCredentials
	case http.StatusForbidden:
		return ErrCodeAccountDisabled
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrCodeValidationFailed
	default:
		if status >= 500 {
			return ErrCodeServerFailure
		}
		return ErrCodeUnauthorized
	}
}

// NewHTTPError builds an APIError from a response status and decoded body.
//
// Some backend builds wrap a missing-resource condition in a 500 whose
// message still says "not found"; those are reclassified as NOT_FOUND so
// callers run their stale-data refresh. Compatibility shim until the backend
// returns 404 directly.
func NewHTTPError(status int, message string, fieldErrors map[string]string) *APIError {
	code := codeForStatus(status)
	if status >= 500 && strings.Contains(strings.ToLower(message), "not found") {
		code = ErrCodeNotFound
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return &APIError{
		Code:        code,
		StatusCode:  status,
		Message:     message,
		FieldErrors: fieldErrors,
		Timestamp:   time.Now().UTC(),
	}
}

// NewTransportError wraps a failure that produced no HTTP response.
func NewTransportError(err error) *APIError {
	return &APIError{
		Code:      ErrCodeTransport,
		Message:   fmt.Sprintf("request failed: %v", err),
		Timestamp: time.Now().UTC(),
	}
}

// NewPhotoLimitError reports an attempt to stage more photos than allowed.
func NewPhotoLimitError(limit int) *APIError {
	return &APIError{
		Code:      ErrCodePhotoLimit,
		Message:   fmt.Sprintf("Maximum %d photos allowed", limit),
		Timestamp: time.Now().UTC(),
	}
}

// NewFormError reports client-side validation failures, keyed by field.
func NewFormError(fieldErrors map[string]string) *APIError {
	return &APIError{
		Code:        ErrCodeFormInvalid,
		Message:     "form validation failed",
		FieldErrors: fieldErrors,
		Timestamp:   time.Now().UTC(),
	}
}

// AsAPIError extracts an *APIError from an error chain.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsNotFound reports whether err represents a missing resource, including the
// wrapped-500 compatibility case.
func IsNotFound(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Code == ErrCodeNotFound
}

// IsUnauthorized reports whether err is a 401.
func IsUnauthorized(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == http.StatusUnauthorized
}

// IsValidation reports whether err carries backend or local field errors.
func IsValidation(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && (apiErr.Code == ErrCodeValidationFailed || apiErr.Code == ErrCodeFormInvalid)
}

// IsTransport reports whether err is a network failure with no response.
func IsTransport(err error) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.Code == ErrCodeTransport
}

// LoginMessage maps a login failure to the user-facing message.
func LoginMessage(err error) string {
	const generic = "Login failed. Please check your credentials and try again."
	apiErr, ok := AsAPIError(err)
	if !ok {
		return generic
	}
	switch apiErr.StatusCode {
	case http.StatusUnauthorized:
		return "Invalid username or password. Please check your credentials and try again."
	case http.StatusForbidden:
		return "Account is disabled. Please contact support."
	case http.StatusNotFound:
		return "User not found. Please check your username and try again."
	default:
		if apiErr.Code != ErrCodeTransport && apiErr.StatusCode > 0 && apiErr.Message != http.StatusText(apiErr.StatusCode) {
			return apiErr.Message
		}
		return generic
	}
}
