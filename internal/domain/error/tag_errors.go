// Package error defines domain-specific errors for the FinanceHub application.
package error

import "errors"

// Tag domain errors.
var (
	// ErrTagNotFound is returned when a tag is not found in the system.
	ErrTagNotFound = errors.New("tag not found")

	// ErrInvalidTagName is returned when a tag name is empty or too long.
	ErrInvalidTagName = errors.New("invalid tag name")
)

// TagErrorCode defines error codes for tag errors.
// Format: TAG-XXYYYY where XX is category and YYYY is specific error.
type TagErrorCode string

const (
	ErrCodeTagNotFound    TagErrorCode = "TAG-010001"
	ErrCodeInvalidTagName TagErrorCode = "TAG-010002"
)

// TagError represents a tag error with code and message.
type TagError struct {
	Code    TagErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TagError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TagError) Unwrap() error {
	return e.Err
}

// NewTagError creates a new TagError with the given code and message.
func NewTagError(code TagErrorCode, message string, err error) *TagError {
	return &TagError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
