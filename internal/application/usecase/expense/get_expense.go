// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/financehub/server/internal/application/adapter"
	domainerror "github.com/financehub/server/internal/domain/error"
)

// GetExpenseInput represents the input for fetching a single expense.
type GetExpenseInput struct {
	ExpenseID uuid.UUID
}

// GetExpenseOutput represents the output of fetching a single expense.
type GetExpenseOutput struct {
	Expense *ExpenseOutput
	TagIDs  []uuid.UUID
}

// GetExpenseUseCase retrieves an expense with its associated tag IDs.
type GetExpenseUseCase struct {
	expenses adapter.ExpenseRepository
	ledger   adapter.LedgerRepository
}

// NewGetExpenseUseCase creates a new GetExpenseUseCase instance.
func NewGetExpenseUseCase(expenses adapter.ExpenseRepository, ledger adapter.LedgerRepository) *GetExpenseUseCase {
	return &GetExpenseUseCase{
		expenses: expenses,
		ledger:   ledger,
	}
}

// Execute performs the expense lookup.
func (uc *GetExpenseUseCase) Execute(ctx context.Context, input GetExpenseInput) (*GetExpenseOutput, error) {
	expense, err := uc.expenses.FindByID(ctx, input.ExpenseID)
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find expense: %w", err)
	}

	tagIDs, err := uc.ledger.TagIDsForExpense(ctx, expense.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tag set: %w", err)
	}

	return &GetExpenseOutput{
		Expense: toExpenseOutput(expense),
		TagIDs:  tagIDs,
	}, nil
}
