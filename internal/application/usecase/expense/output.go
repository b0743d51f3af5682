// Package expense contains expense-related use cases.
package expense

import (
	"time"

	"github.com/google/uuid"

	"github.com/financehub/server/internal/domain/entity"
)

// ExpenseOutput represents an expense in use case outputs.
type ExpenseOutput struct {
	ID        uuid.UUID
	LocalID   *int64
	Title     string
	Amount    int64
	Year      int
	Month     int
	Date      int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TagOutput represents a tag in use case outputs.
type TagOutput struct {
	ID            uuid.UUID
	Name          string
	MonthlyAmount int64
	CurrentMonth  int
	CurrentYear   int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func toExpenseOutput(expense *entity.Expense) *ExpenseOutput {
	return &ExpenseOutput{
		ID:        expense.ID,
		LocalID:   expense.LocalID,
		Title:     expense.Title,
		Amount:    expense.Amount,
		Year:      expense.Year,
		Month:     expense.Month,
		Date:      expense.Date,
		CreatedAt: expense.CreatedAt,
		UpdatedAt: expense.UpdatedAt,
	}
}

func toTagOutput(tag *entity.Tag) *TagOutput {
	return &TagOutput{
		ID:            tag.ID,
		Name:          tag.Name,
		MonthlyAmount: tag.MonthlyAmount,
		CurrentMonth:  tag.CurrentMonth,
		CurrentYear:   tag.CurrentYear,
		CreatedAt:     tag.CreatedAt,
		UpdatedAt:     tag.UpdatedAt,
	}
}
