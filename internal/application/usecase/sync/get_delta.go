// Package sync contains client synchronization use cases.
package sync

import (
	"context"
	"fmt"
	"time"

	"github.com/financehub/server/internal/application/adapter"
	"github.com/financehub/server/internal/domain/entity"
)

// GetDeltaInput represents the input for a sync delta query. A nil Since
// requests a full snapshot.
type GetDeltaInput struct {
	Since *int64 // Unix seconds of the client's last sync
}

// GetDeltaOutput carries everything created or updated since the client's
// last sync, plus the server timestamp the client should store for the next
// round.
type GetDeltaOutput struct {
	Expenses          []*entity.Expense
	Tags              []*entity.Tag
	Targets           []*entity.Target
	GraphEdges        []*entity.GraphEdge
	LastSyncTimestamp int64
}

// GetDeltaUseCase computes sync deltas across all synchronized entities.
type GetDeltaUseCase struct {
	expenses adapter.ExpenseRepository
	tags     adapter.TagRepository
	targets  adapter.TargetRepository
	graph    adapter.GraphRepository
}

// NewGetDeltaUseCase creates a new GetDeltaUseCase instance.
func NewGetDeltaUseCase(
	expenses adapter.ExpenseRepository,
	tags adapter.TagRepository,
	targets adapter.TargetRepository,
	graph adapter.GraphRepository,
) *GetDeltaUseCase {
	return &GetDeltaUseCase{
		expenses: expenses,
		tags:     tags,
		targets:  targets,
		graph:    graph,
	}
}

// Execute gathers the delta. The server timestamp is taken before the reads
// so a concurrent write lands in the next delta rather than being skipped.
func (uc *GetDeltaUseCase) Execute(ctx context.Context, input GetDeltaInput) (*GetDeltaOutput, error) {
	var since time.Time // zero value matches everything
	if input.Since != nil {
		since = time.Unix(*input.Since, 0).UTC()
	}

	serverTime := time.Now().UTC()

	expenses, err := uc.expenses.ChangedSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load expense delta: %w", err)
	}
	tags, err := uc.tags.ChangedSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load tag delta: %w", err)
	}
	targets, err := uc.targets.ChangedSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load target delta: %w", err)
	}
	edges, err := uc.graph.ChangedSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to load graph delta: %w", err)
	}

	return &GetDeltaOutput{
		Expenses:          expenses,
		Tags:              tags,
		Targets:           targets,
		GraphEdges:        edges,
		LastSyncTimestamp: serverTime.Unix(),
	}, nil
}
