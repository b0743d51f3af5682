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

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	ExpenseID uuid.UUID
}

// DeleteExpenseOutput represents the output of expense deletion.
type DeleteExpenseOutput struct {
	AffectedTagIDs []uuid.UUID
}

// DeleteExpenseUseCase soft-deletes an expense and refunds its amount from
// every associated tag's monthly counter and matching target's spent counter.
// Associations and graph edges survive the delete.
type DeleteExpenseUseCase struct {
	ledger adapter.LedgerRepository
	cache  adapter.RecommendationCache
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(ledger adapter.LedgerRepository, cache adapter.RecommendationCache) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		ledger: ledger,
		cache:  cache,
	}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	var affected []uuid.UUID

	err := uc.ledger.Atomic(ctx, func(store adapter.LedgerStore) error {
		expense, err := store.ExpenseByID(ctx, input.ExpenseID)
		if err != nil {
			return err
		}

		tagIDs, err := store.TagIDsForExpense(ctx, expense.ID)
		if err != nil {
			return fmt.Errorf("failed to load tag set: %w", err)
		}

		for _, tagID := range tagIDs {
			if err := store.SubtractTagAmount(ctx, tagID, expense.Amount); err != nil {
				return fmt.Errorf("failed to refund tag amount: %w", err)
			}
			if err := store.SubtractTargetSpent(ctx, tagID, expense.Month, expense.Year, expense.Amount); err != nil {
				return fmt.Errorf("failed to refund target spent: %w", err)
			}
			affected = append(affected, tagID)
		}

		return store.SoftDeleteExpense(ctx, expense.ID)
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to delete expense: %w", err)
	}

	invalidateRecommendations(ctx, uc.cache, affected)

	return &DeleteExpenseOutput{AffectedTagIDs: affected}, nil
}
