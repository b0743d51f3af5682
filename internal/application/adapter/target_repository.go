// Package adapter defines interfaces for external dependencies (ports).
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/financehub/server/internal/domain/entity"
)

// TargetFilter represents filter criteria for target queries.
type TargetFilter struct {
	Month *int
	Year  *int
	TagID *uuid.UUID
}

// TargetRepository defines persistence for budget targets.
type TargetRepository interface {
	// Create persists a new target row.
	Create(ctx context.Context, target *entity.Target) error

	// FindByID retrieves a non-deleted target by its ID, or ErrTargetNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Target, error)

	// FindByKey retrieves a non-deleted target by its (month, year, tag) key,
	// or ErrTargetNotFound.
	FindByKey(ctx context.Context, tagID uuid.UUID, month, year int) (*entity.Target, error)

	// UpdateAmount overwrites the budget amount of a target. The spent counter
	// is server-maintained and never touched here.
	UpdateAmount(ctx context.Context, id uuid.UUID, amount int64) error

	// Delete soft-deletes a target by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByFilter retrieves non-deleted targets matching the filter, newest
	// period first, with their tags.
	FindByFilter(ctx context.Context, filter TargetFilter) ([]*entity.TargetWithTag, error)

	// SumExpensesForTagMonth sums the amounts of non-deleted expenses linked to
	// the tag in the given month and year. Used to seed a new target's spent
	// counter.
	SumExpensesForTagMonth(ctx context.Context, tagID uuid.UUID, month, year int) (int64, error)

	// ChangedSince returns non-deleted targets created or updated after the
	// given instant, for sync deltas.
	ChangedSince(ctx context.Context, since time.Time) ([]*entity.Target, error)
}
