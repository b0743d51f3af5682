// Package graph maintains the tag co-occurrence affinity graph.
package graph

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/financehub/server/internal/application/adapter"
)

// RebuildGraphOutput represents the output of a full graph rebuild.
type RebuildGraphOutput struct {
	ExpensesReplayed int
}

// RebuildGraphUseCase rebuilds the affinity graph from the current
// expense-tag associations, for recovery or reindexing. The result depends
// only on the association snapshot, not on mutation history, so repeated
// rebuilds with no intervening changes produce identical edge weights.
type RebuildGraphUseCase struct {
	ledger adapter.LedgerRepository
}

// NewRebuildGraphUseCase creates a new RebuildGraphUseCase instance.
func NewRebuildGraphUseCase(ledger adapter.LedgerRepository) *RebuildGraphUseCase {
	return &RebuildGraphUseCase{
		ledger: ledger,
	}
}

// Execute clears all edges and replays every expense's tag set, atomically.
func (uc *RebuildGraphUseCase) Execute(ctx context.Context) (*RebuildGraphOutput, error) {
	var replayed int

	err := uc.ledger.Atomic(ctx, func(store adapter.LedgerStore) error {
		if err := store.DeleteAllEdges(ctx); err != nil {
			return fmt.Errorf("failed to clear graph edges: %w", err)
		}

		tagSets, err := store.TagSetsByExpense(ctx)
		if err != nil {
			return fmt.Errorf("failed to load expense tag sets: %w", err)
		}

		for _, tagSet := range tagSets {
			if err := UpdateFromTagSet(ctx, store, tagSet.TagIDs); err != nil {
				return fmt.Errorf("failed to replay tag set: %w", err)
			}
		}
		replayed = len(tagSets)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Affinity graph rebuilt", "expenses_replayed", replayed)

	return &RebuildGraphOutput{
		ExpensesReplayed: replayed,
	}, nil
}
