// Package target contains budget-target use cases.
package target

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/financehub/server/internal/application/adapter"
	domainerror "github.com/financehub/server/internal/domain/error"
)

// DeleteTargetInput represents the input for deleting a target.
type DeleteTargetInput struct {
	TargetID uuid.UUID
}

// DeleteTargetOutput represents the output of deleting a target.
type DeleteTargetOutput struct {
	TargetID uuid.UUID
}

// DeleteTargetUseCase soft-deletes a budget target. Expenses recorded against
// the tag are untouched; only the budget disappears.
type DeleteTargetUseCase struct {
	targets adapter.TargetRepository
}

// NewDeleteTargetUseCase creates a new DeleteTargetUseCase instance.
func NewDeleteTargetUseCase(targets adapter.TargetRepository) *DeleteTargetUseCase {
	return &DeleteTargetUseCase{targets: targets}
}

// Execute performs the target deletion.
func (uc *DeleteTargetUseCase) Execute(ctx context.Context, input DeleteTargetInput) (*DeleteTargetOutput, error) {
	target, err := uc.targets.FindByID(ctx, input.TargetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTargetNotFound) {
			return nil, domainerror.NewTargetError(
				domainerror.ErrCodeTargetNotFound,
				"target not found",
				domainerror.ErrTargetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find target: %w", err)
	}

	if err := uc.targets.Delete(ctx, target.ID); err != nil {
		return nil, fmt.Errorf("failed to delete target: %w", err)
	}

	slog.Info("Target deleted", "targetID", target.ID)

	return &DeleteTargetOutput{TargetID: target.ID}, nil
}
