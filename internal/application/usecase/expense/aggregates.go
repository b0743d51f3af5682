// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/financehub/server/internal/application/adapter"
	"github.com/financehub/server/internal/domain/entity"
)

// attachTag links a tag to an expense and maintains the dependent aggregates:
// the tag's cumulative monthly amount, its current month/year markers, and the
// spent counter of any target matching (tag, expense month, expense year).
// Runs inside the coordinator's transaction.
func attachTag(ctx context.Context, store adapter.LedgerStore, expense *entity.Expense, tagID uuid.UUID) error {
	if err := store.LinkTag(ctx, expense.ID, tagID); err != nil {
		return fmt.Errorf("failed to link tag: %w", err)
	}
	if err := store.AddTagAmount(ctx, tagID, expense.Amount, expense.Month, expense.Year); err != nil {
		return fmt.Errorf("failed to add tag amount: %w", err)
	}
	if err := store.AddTargetSpent(ctx, tagID, expense.Month, expense.Year, expense.Amount); err != nil {
		return fmt.Errorf("failed to add target spent: %w", err)
	}
	return nil
}

// detachTag removes the expense-tag association if present and gives back the
// removed amount to the tag's cumulative counter, floored at zero. The target
// spent counter is intentionally left untouched on tag removal; only expense
// deletion refunds it.
func detachTag(ctx context.Context, store adapter.LedgerStore, expenseID, tagID uuid.UUID, oldAmount int64) error {
	removed, err := store.UnlinkTag(ctx, expenseID, tagID)
	if err != nil {
		return fmt.Errorf("failed to unlink tag: %w", err)
	}
	if !removed {
		slog.Debug("Tag removal requested for absent association",
			"expenseID", expenseID,
			"tagID", tagID,
		)
		return nil
	}
	if err := store.SubtractTagAmount(ctx, tagID, oldAmount); err != nil {
		return fmt.Errorf("failed to subtract tag amount: %w", err)
	}
	return nil
}
