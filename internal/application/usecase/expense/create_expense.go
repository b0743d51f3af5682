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

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	Title          string
	Amount         int64
	Year           int
	Month          int
	Date           int
	LocalID        *int64
	ExistingTagIDs []uuid.UUID
	NewTagNames    []string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense        *ExpenseOutput
	CreatedTags    []*TagOutput
	AffectedTagIDs []uuid.UUID
}

// CreateExpenseUseCase coordinates expense creation: it inserts the expense,
// resolves tag references, maintains the tag and target aggregates, and
// strengthens the affinity graph, all in one transaction.
type CreateExpenseUseCase struct {
	ledger adapter.LedgerRepository
	cache  adapter.RecommendationCache
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(ledger adapter.LedgerRepository, cache adapter.RecommendationCache) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		ledger: ledger,
		cache:  cache,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := validateExpenseFields(input.Title, input.Amount, input.Year, input.Month, input.Date); err != nil {
		return nil, err
	}

	var (
		expense     *entity.Expense
		createdTags []*entity.Tag
		affected    []uuid.UUID
	)

	err := uc.ledger.Atomic(ctx, func(store adapter.LedgerStore) error {
		expense = entity.NewExpense(input.Title, input.Amount, input.Year, input.Month, input.Date, input.LocalID)
		if err := store.InsertExpense(ctx, expense); err != nil {
			return fmt.Errorf("failed to insert expense: %w", err)
		}

		attached := make(map[uuid.UUID]bool)

		for _, tagID := range input.ExistingTagIDs {
			tag, err := store.TagByID(ctx, tagID)
			if err != nil {
				if errors.Is(err, domainerror.ErrTagNotFound) {
					// A stale tag reference must not lose the expense itself.
					slog.Debug("Skipping unresolved tag reference",
						"expenseID", expense.ID,
						"tagID", tagID,
					)
					continue
				}
				return fmt.Errorf("failed to resolve tag: %w", err)
			}
			if attached[tag.ID] {
				continue
			}
			if err := attachTag(ctx, store, expense, tag.ID); err != nil {
				return err
			}
			attached[tag.ID] = true
			affected = append(affected, tag.ID)
		}

		for _, name := range input.NewTagNames {
			tag, err := store.TagByName(ctx, name)
			if err != nil && !errors.Is(err, domainerror.ErrTagNotFound) {
				return fmt.Errorf("failed to resolve tag by name: %w", err)
			}

			if tag == nil {
				// Unknown name: create the tag seeded with this expense's
				// amount and date fields, then associate it.
				tag = entity.NewTag(name, input.Amount, input.Year, input.Month, input.Date)
				if err := store.InsertTag(ctx, tag); err != nil {
					return fmt.Errorf("failed to insert tag: %w", err)
				}
				if err := store.LinkTag(ctx, expense.ID, tag.ID); err != nil {
					return fmt.Errorf("failed to link tag: %w", err)
				}
				createdTags = append(createdTags, tag)
				attached[tag.ID] = true
				affected = append(affected, tag.ID)
				continue
			}

			if attached[tag.ID] {
				continue
			}
			if err := attachTag(ctx, store, expense, tag.ID); err != nil {
				return err
			}
			attached[tag.ID] = true
			affected = append(affected, tag.ID)
		}

		return graph.UpdateFromTagSet(ctx, store, affected)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	invalidateRecommendations(ctx, uc.cache, affected)

	output := &CreateExpenseOutput{
		Expense:        toExpenseOutput(expense),
		CreatedTags:    make([]*TagOutput, len(createdTags)),
		AffectedTagIDs: affected,
	}
	for i, tag := range createdTags {
		output.CreatedTags[i] = toTagOutput(tag)
	}
	return output, nil
}

// invalidateRecommendations drops cached recommendation lists for the touched
// tags after a successful commit. Best-effort: cache failures are logged, not
// surfaced.
func invalidateRecommendations(ctx context.Context, cache adapter.RecommendationCache, tagIDs []uuid.UUID) {
	if cache == nil || len(tagIDs) == 0 {
		return
	}
	if err := cache.Invalidate(ctx, tagIDs); err != nil {
		slog.Warn("Failed to invalidate recommendation cache",
			"tags", len(tagIDs),
			"error", err,
		)
	}
}
