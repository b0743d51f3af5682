// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/financehub/server/internal/application/adapter"
	"github.com/financehub/server/internal/application/usecase/graph"
	"github.com/financehub/server/internal/domain/entity"
	domainerror "github.com/financehub/server/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense update. The scalar
// fields overwrite the stored expense unconditionally; tag changes are
// expressed as explicit add/remove deltas.
type UpdateExpenseInput struct {
	ExpenseID         uuid.UUID
	Title             string
	Amount            int64
	Year              int
	Month             int
	Date              int
	AddExistingTagIDs []uuid.UUID
	RemoveTagIDs      []uuid.UUID
	AddNewTagNames    []string
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense        *ExpenseOutput
	CreatedTags    []*TagOutput
	AffectedTagIDs []uuid.UUID
}

// UpdateExpenseUseCase coordinates expense update. Removed tags are refunded
// with the expense's old amount; added tags are charged with the new amount.
type UpdateExpenseUseCase struct {
	ledger adapter.LedgerRepository
	cache  adapter.RecommendationCache
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(ledger adapter.LedgerRepository, cache adapter.RecommendationCache) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		ledger: ledger,
		cache:  cache,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	if err := validateExpenseFields(input.Title, input.Amount, input.Year, input.Month, input.Date); err != nil {
		return nil, err
	}

	var (
		expense     *entity.Expense
		createdTags []*entity.Tag
		affected    []uuid.UUID
	)

	err := uc.ledger.Atomic(ctx, func(store adapter.LedgerStore) error {
		var err error
		expense, err = store.ExpenseByID(ctx, input.ExpenseID)
		if err != nil {
			return err
		}

		// The old amount only matters when refunding removed tags; every
		// other aggregate mutation uses the new amount.
		oldAmount := expense.Amount

		expense.Title = input.Title
		expense.Amount = input.Amount
		expense.Year = input.Year
		expense.Month = input.Month
		expense.Date = input.Date
		if err := store.SaveExpense(ctx, expense); err != nil {
			return fmt.Errorf("failed to save expense: %w", err)
		}

		for _, tagID := range input.RemoveTagIDs {
			if err := detachTag(ctx, store, expense.ID, tagID, oldAmount); err != nil {
				return err
			}
			affected = append(affected, tagID)
		}

		for _, tagID := range input.AddExistingTagIDs {
			tag, err := store.TagByID(ctx, tagID)
			if err != nil {
				if errors.Is(err, domainerror.ErrTagNotFound) {
					slog.Debug("Skipping unresolved tag reference",
						"expenseID", expense.ID,
						"tagID", tagID,
					)
					continue
				}
				return fmt.Errorf("failed to resolve tag: %w", err)
			}
			if err := attachTag(ctx, store, expense, tag.ID); err != nil {
				return err
			}
			affected = append(affected, tag.ID)
		}

		for _, name := range input.AddNewTagNames {
			tag, err := store.TagByName(ctx, name)
			if err != nil && !errors.Is(err, domainerror.ErrTagNotFound) {
				return fmt.Errorf("failed to resolve tag by name: %w", err)
			}

			if tag == nil {
				tag = entity.NewTag(name, input.Amount, input.Year, input.Month, input.Date)
				if err := store.InsertTag(ctx, tag); err != nil {
					return fmt.Errorf("failed to insert tag: %w", err)
				}
				if err := store.LinkTag(ctx, expense.ID, tag.ID); err != nil {
					return fmt.Errorf("failed to link tag: %w", err)
				}
				createdTags = append(createdTags, tag)
				affected = append(affected, tag.ID)
				continue
			}

			if err := attachTag(ctx, store, expense, tag.ID); err != nil {
				return err
			}
			affected = append(affected, tag.ID)
		}

		// Strengthen edges from the full current association set. Removals do
		// not weaken existing edges; the graph keeps historical affinity.
		currentTagIDs, err := store.TagIDsForExpense(ctx, expense.ID)
		if err != nil {
			return fmt.Errorf("failed to load current tag set: %w", err)
		}
		return graph.UpdateFromTagSet(ctx, store, currentTagIDs)
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrExpenseNotFound) {
			return nil, domainerror.NewExpenseError(
				domainerror.ErrCodeExpenseNotFound,
				"expense not found",
				domainerror.ErrExpenseNotFound,
			)
		}
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	invalidateRecommendations(ctx, uc.cache, affected)

	output := &UpdateExpenseOutput{
		Expense:        toExpenseOutput(expense),
		CreatedTags:    make([]*TagOutput, len(createdTags)),
		AffectedTagIDs: affected,
	}
	for i, tag := range createdTags {
		output.CreatedTags[i] = toTagOutput(tag)
	}
	return output, nil
}
