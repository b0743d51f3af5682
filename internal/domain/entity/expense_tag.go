// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ExpenseTag links an expense to a tag. The (expense, tag) pair is unique and
// the link is created or destroyed only as a side effect of expense mutations.
type ExpenseTag struct {
	ID        uuid.UUID
	ExpenseID uuid.UUID
	TagID     uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewExpenseTag creates a new association between an expense and a tag.
func NewExpenseTag(expenseID, tagID uuid.UUID) *ExpenseTag {
	now := time.Now().UTC()

	return &ExpenseTag{
		ID:        uuid.New(),
		ExpenseID: expenseID,
		TagID:     tagID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TagSet represents the set of tags attached to a single expense, used when
// replaying co-occurrences into the affinity graph.
type TagSet struct {
	ExpenseID uuid.UUID
	TagIDs    []uuid.UUID
}
