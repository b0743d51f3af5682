// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Expense represents a single spending record in the FinanceHub ledger.
// Amounts are stored in minor currency units.
type Expense struct {
	ID        uuid.UUID
	LocalID   *int64 // Originating-client local identifier, kept for offline sync
	Title     string
	Amount    int64
	Year      int
	Month     int
	Date      int // Day of month
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time // Soft-delete support
}

// NewExpense creates a new Expense entity.
func NewExpense(title string, amount int64, year, month, date int, localID *int64) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:        uuid.New(),
		LocalID:   localID,
		Title:     title,
		Amount:    amount,
		Year:      year,
		Month:     month,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ExpenseListResult represents the result of listing expenses.
type ExpenseListResult struct {
	Expenses []*Expense
	Total    int64
	Limit    int
	Offset   int
}
