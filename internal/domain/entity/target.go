// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Target represents a budgeted amount for a tag in a given month and year.
// Unique per (month, year, tag). Spent is a running counter maintained in
// lock-step with expense-tag associations for that month and year.
type Target struct {
	ID        uuid.UUID
	Month     int
	Year      int
	TagID     uuid.UUID
	Amount    int64
	Spent     int64
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewTarget creates a new Target entity. Spent is seeded with the sum of
// already-recorded expenses for the tag in that month, not zero.
func NewTarget(tagID uuid.UUID, month, year int, amount, spent int64) *Target {
	now := time.Now().UTC()

	return &Target{
		ID:        uuid.New(),
		Month:     month,
		Year:      year,
		TagID:     tagID,
		Amount:    amount,
		Spent:     spent,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TargetWithTag represents a target with its associated tag.
type TargetWithTag struct {
	Target *Target
	Tag    *Tag
}
