// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/financehub/server/internal/application/adapter"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// ListExpensesInput represents the input for listing expenses.
type ListExpensesInput struct {
	Since  *time.Time
	TagIDs []uuid.UUID
	Limit  int
	Offset int
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*ExpenseOutput
	Total    int64
	Limit    int
	Offset   int
}

// ListExpensesUseCase retrieves expenses newest first, optionally filtered by
// creation instant and tag membership.
type ListExpensesUseCase struct {
	expenses adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenses adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenses: expenses}
}

// Execute performs the expense listing.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := input.Offset
	if offset < 0 {
		offset = 0
	}

	result, err := uc.expenses.FindByFilter(ctx,
		adapter.ExpenseFilter{Since: input.Since, TagIDs: input.TagIDs},
		adapter.ExpensePagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	output := &ListExpensesOutput{
		Expenses: make([]*ExpenseOutput, len(result.Expenses)),
		Total:    result.Total,
		Limit:    result.Limit,
		Offset:   result.Offset,
	}
	for i, expense := range result.Expenses {
		output.Expenses[i] = toExpenseOutput(expense)
	}
	return output, nil
}
