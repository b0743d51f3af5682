// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tag represents a user-defined spending category.
//
// MonthlyAmount is an additive running total maintained incrementally by every
// associated expense mutation. It is never recomputed on read, so a skipped
// update path makes it drift from ground truth until a reconciliation rebuild.
type Tag struct {
	ID            uuid.UUID
	LocalID       *int64
	Name          string
	MonthlyAmount int64
	CurrentMonth  int
	CurrentYear   int
	CreatedDay    int
	CreatedMonth  int
	CreatedYear   int
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time // Soft-delete support
}

// NewTag creates a new Tag seeded from the expense that first introduced it.
func NewTag(name string, amount int64, year, month, day int) *Tag {
	now := time.Now().UTC()

	return &Tag{
		ID:            uuid.New(),
		Name:          name,
		MonthlyAmount: amount,
		CurrentMonth:  month,
		CurrentYear:   year,
		CreatedDay:    day,
		CreatedMonth:  month,
		CreatedYear:   year,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
