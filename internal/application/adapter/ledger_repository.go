// Package adapter defines interfaces for external dependencies (ports).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/financehub/server/internal/domain/entity"
)

// LedgerStore exposes the write primitives an expense mutation needs. All
// methods operate within the caller's transaction boundary; none of them
// commit on their own.
//
// The counter mutations (AddTagAmount, SubtractTagAmount, AddTargetSpent,
// SubtractTargetSpent, IncrementEdge) must be implemented as atomic
// read-modify-write statements so that two concurrent mutations against the
// same row never lose an update.
type LedgerStore interface {
	// InsertExpense persists a new expense row.
	InsertExpense(ctx context.Context, expense *entity.Expense) error
	// ExpenseByID loads a non-deleted expense, or ErrExpenseNotFound.
	ExpenseByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error)
	// SaveExpense overwrites the scalar fields of an existing expense.
	SaveExpense(ctx context.Context, expense *entity.Expense) error
	// SoftDeleteExpense stamps the expense's tombstone. Associations and graph
	// edges are left in place.
	SoftDeleteExpense(ctx context.Context, id uuid.UUID) error

	// TagByID loads a non-deleted tag, or ErrTagNotFound.
	TagByID(ctx context.Context, id uuid.UUID) (*entity.Tag, error)
	// TagByName loads a non-deleted tag by exact name, or ErrTagNotFound.
	TagByName(ctx context.Context, name string) (*entity.Tag, error)
	// InsertTag persists a new tag row.
	InsertTag(ctx context.Context, tag *entity.Tag) error
	// AddTagAmount adds amount to the tag's cumulative counter and moves the
	// current month/year markers.
	AddTagAmount(ctx context.Context, tagID uuid.UUID, amount int64, month, year int) error
	// SubtractTagAmount subtracts amount from the tag's cumulative counter,
	// floored at zero.
	SubtractTagAmount(ctx context.Context, tagID uuid.UUID, amount int64) error

	// LinkTag associates an expense with a tag. A duplicate link is a no-op.
	LinkTag(ctx context.Context, expenseID, tagID uuid.UUID) error
	// UnlinkTag removes the association if present, reporting whether it existed.
	UnlinkTag(ctx context.Context, expenseID, tagID uuid.UUID) (bool, error)
	// TagIDsForExpense returns the ids of all tags currently linked to the expense.
	TagIDsForExpense(ctx context.Context, expenseID uuid.UUID) ([]uuid.UUID, error)
	// TagSetsByExpense returns every expense's linked tag set, for graph rebuilds.
	TagSetsByExpense(ctx context.Context) ([]entity.TagSet, error)

	// AddTargetSpent adds amount to the spent counter of the target matching
	// (tag, month, year). A missing target is a no-op.
	AddTargetSpent(ctx context.Context, tagID uuid.UUID, month, year int, amount int64) error
	// SubtractTargetSpent subtracts amount from the matching target's spent
	// counter, floored at zero. A missing target is a no-op.
	SubtractTargetSpent(ctx context.Context, tagID uuid.UUID, month, year int, amount int64) error

	// IncrementEdge raises the directed edge weight by one, creating the edge
	// with weight 1 when absent.
	IncrementEdge(ctx context.Context, fromTagID, toTagID uuid.UUID) error
	// DeleteAllEdges clears the affinity graph prior to a full rebuild.
	DeleteAllEdges(ctx context.Context) error
}

// LedgerRepository is the transactional entry point for the ledger. Atomic
// runs fn against a transaction-scoped LedgerStore; every write inside fn
// commits together or not at all.
type LedgerRepository interface {
	LedgerStore

	// Atomic executes fn in a single database transaction, rolling back every
	// constituent write when fn returns an error.
	Atomic(ctx context.Context, fn func(store LedgerStore) error) error
}
