package errors

import (
	stderrors "errors"
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports input rejected before any remote call is made,
// or configuration that failed validation.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NotFoundError means the upstream service answered but had no matching records.
type NotFoundError struct {
	Resource string
	Key      string
	Status   int
}

// NewNotFoundError constructs a NotFoundError. Status is the HTTP status the
// upstream returned, or 200 when it answered with an empty result.
func NewNotFoundError(resource, key string, status int) error {
	return &NotFoundError{Resource: resource, Key: key, Status: status}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("not found: %s %q", e.Resource, e.Key)
	}
	return fmt.Sprintf("not found: %s", e.Resource)
}

// NetworkError wraps transport failures, timeouts, undecodable bodies and
// non-2xx statuses that are not a plain "not found".
type NetworkError struct {
	Op     string
	URL    string
	Status int
	Err    error
}

// NewNetworkError constructs a NetworkError.
func NewNetworkError(op, url string, status int, err error) error {
	return &NetworkError{Op: op, URL: url, Status: status, Err: err}
}

func (e *NetworkError) Error() string {
	if e == nil {
		return ""
	}
	if e.Status > 0 {
		return fmt.Sprintf("network error: %s %s: unexpected status %d", e.Op, e.URL, e.Status)
	}
	return fmt.Sprintf("network error: %s %s: %v", e.Op, e.URL, e.Err)
}

// Unwrap exposes the transport error.
func (e *NetworkError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return stderrors.As(err, &target)
}

// IsNotFound reports whether err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return stderrors.As(err, &target)
}

// IsNetwork reports whether err is or wraps a NetworkError.
func IsNetwork(err error) bool {
	var target *NetworkError
	return stderrors.As(err, &target)
}
