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

// UpdateTargetInput represents the input for updating a target's budget.
type UpdateTargetInput struct {
	TargetID uuid.UUID
	Amount   int64
}

// UpdateTargetOutput represents the output of updating a target.
type UpdateTargetOutput struct {
	Target *TargetOutput
}

// UpdateTargetUseCase overwrites the budgeted amount of an existing target.
// The spent counter is maintained by expense writes and never changed here.
type UpdateTargetUseCase struct {
	targets adapter.TargetRepository
	tags    adapter.TagRepository
}

// NewUpdateTargetUseCase creates a new UpdateTargetUseCase instance.
func NewUpdateTargetUseCase(targets adapter.TargetRepository, tags adapter.TagRepository) *UpdateTargetUseCase {
	return &UpdateTargetUseCase{
		targets: targets,
		tags:    tags,
	}
}

// Execute performs the target update.
func (uc *UpdateTargetUseCase) Execute(ctx context.Context, input UpdateTargetInput) (*UpdateTargetOutput, error) {
	if input.Amount <= 0 {
		return nil, domainerror.NewTargetError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be positive",
			domainerror.ErrInvalidTargetAmount,
		)
	}

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

	if err := uc.targets.UpdateAmount(ctx, target.ID, input.Amount); err != nil {
		return nil, fmt.Errorf("failed to update target: %w", err)
	}
	target.Amount = input.Amount

	tagName := ""
	if tag, err := uc.tags.FindByID(ctx, target.TagID); err == nil {
		tagName = tag.Name
	}

	slog.Info("Target updated",
		"targetID", target.ID,
		"amount", input.Amount,
	)

	return &UpdateTargetOutput{Target: toTargetOutput(target, tagName)}, nil
}
