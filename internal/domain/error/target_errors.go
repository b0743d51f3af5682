// Package error defines domain-specific errors for the FinanceHub application.
package error

import "errors"

// Target domain errors.
var (
	// ErrTargetNotFound is returned when a target is not found in the system.
	ErrTargetNotFound = errors.New("target not found")

	// ErrTargetAlreadyExists is returned when a target already exists for the
	// same (month, year, tag) key.
	ErrTargetAlreadyExists = errors.New("target already exists for this tag and month")

	// ErrInvalidTargetAmount is returned when the budgeted amount is not positive.
	ErrInvalidTargetAmount = errors.New("invalid target amount")

	// ErrInvalidTargetPeriod is returned when the month or year is out of range.
	ErrInvalidTargetPeriod = errors.New("invalid target period")
)

// TargetErrorCode defines error codes for target errors.
// Format: TGT-XXYYYY where XX is category and YYYY is specific error.
type TargetErrorCode string

const (
	ErrCodeTargetNotFound       TargetErrorCode = "TGT-010001"
	ErrCodeTargetAlreadyExists  TargetErrorCode = "TGT-010002"
	ErrCodeInvalidTargetAmount  TargetErrorCode = "TGT-010003"
	ErrCodeInvalidTargetPeriod  TargetErrorCode = "TGT-010004"
	ErrCodeTargetTagNotFound    TargetErrorCode = "TGT-010005"
)

// TargetError represents a target error with code and message.
type TargetError struct {
	Code    TargetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TargetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TargetError) Unwrap() error {
	return e.Err
}

// NewTargetError creates a new TargetError with the given code and message.
func NewTargetError(code TargetErrorCode, message string, err error) *TargetError {
	return &TargetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
