// Package error defines domain-specific errors for the FinanceHub application.
package error

import "errors"

// Sync domain errors.
var (
	// ErrSyncRateLimited is returned when a client submits batches too quickly.
	ErrSyncRateLimited = errors.New("sync rate limited")

	// ErrInvalidSyncOperation is returned when a batch carries an operation the
	// server does not recognize.
	ErrInvalidSyncOperation = errors.New("invalid sync operation")
)

// SyncErrorCode defines error codes for sync errors.
// Format: SYN-XXYYYY where XX is category and YYYY is specific error.
type SyncErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidSyncOperation SyncErrorCode = "SYN-010001"

	// Throttling errors (02XXXX)
	ErrCodeSyncRateLimited SyncErrorCode = "SYN-020001"
)
