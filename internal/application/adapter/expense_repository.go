// Package adapter defines interfaces for external dependencies (ports).
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/financehub/server/internal/domain/entity"
)

// ExpenseFilter represents filter criteria for expense queries.
type ExpenseFilter struct {
	Since  *time.Time
	TagIDs []uuid.UUID
}

// ExpensePagination represents pagination parameters for expense queries.
type ExpensePagination struct {
	Limit  int
	Offset int
}

// ExpenseRepository defines the read side of expense persistence.
type ExpenseRepository interface {
	// FindByID retrieves a non-deleted expense by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)

	// FindByFilter retrieves non-deleted expenses matching the filter, newest
	// first, with pagination.
	FindByFilter(ctx context.Context, filter ExpenseFilter, pagination ExpensePagination) (*entity.ExpenseListResult, error)

	// ChangedSince returns non-deleted expenses created or updated after the
	// given instant, for sync deltas.
	ChangedSince(ctx context.Context, since time.Time) ([]*entity.Expense, error)
}
