// Package target contains budget-target use cases.
package target

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/financehub/server/internal/application/adapter"
	"github.com/financehub/server/internal/domain/entity"
	domainerror "github.com/financehub/server/internal/domain/error"
)

// CreateTargetInput represents the input for target creation.
type CreateTargetInput struct {
	TagID  uuid.UUID
	Month  int
	Year   int
	Amount int64
}

// CreateTargetOutput represents the output of target creation.
type CreateTargetOutput struct {
	Target *TargetOutput
}

// CreateTargetUseCase creates a budget target for a (tag, month, year) key.
// The spent counter is seeded with the sum of expenses already recorded for
// the tag in that period, so targets created mid-month start accurate.
type CreateTargetUseCase struct {
	targets adapter.TargetRepository
	tags    adapter.TagRepository
}

// NewCreateTargetUseCase creates a new CreateTargetUseCase instance.
func NewCreateTargetUseCase(targets adapter.TargetRepository, tags adapter.TagRepository) *CreateTargetUseCase {
	return &CreateTargetUseCase{
		targets: targets,
		tags:    tags,
	}
}

// Execute performs the target creation.
func (uc *CreateTargetUseCase) Execute(ctx context.Context, input CreateTargetInput) (*CreateTargetOutput, error) {
	if input.Amount <= 0 {
		return nil, domainerror.NewTargetError(
			domainerror.ErrCodeInvalidTargetAmount,
			"target amount must be positive",
			domainerror.ErrInvalidTargetAmount,
		)
	}
	if input.Month < 1 || input.Month > 12 || input.Year < 2000 || input.Year > 3000 {
		return nil, domainerror.NewTargetError(
			domainerror.ErrCodeInvalidTargetPeriod,
			"target period out of range",
			domainerror.ErrInvalidTargetPeriod,
		)
	}

	tag, err := uc.tags.FindByID(ctx, input.TagID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTagNotFound) {
			return nil, domainerror.NewTargetError(
				domainerror.ErrCodeTargetTagNotFound,
				"tag not found for target",
				domainerror.ErrTagNotFound,
			)
		}
		return nil, fmt.Errorf("failed to resolve tag: %w", err)
	}

	_, err = uc.targets.FindByKey(ctx, input.TagID, input.Month, input.Year)
	if err == nil {
		return nil, domainerror.NewTargetError(
			domainerror.ErrCodeTargetAlreadyExists,
			"target already exists for this tag and period",
			domainerror.ErrTargetAlreadyExists,
		)
	}
	if !errors.Is(err, domainerror.ErrTargetNotFound) {
		return nil, fmt.Errorf("failed to check existing target: %w", err)
	}

	spent, err := uc.targets.SumExpensesForTagMonth(ctx, input.TagID, input.Month, input.Year)
	if err != nil {
		return nil, fmt.Errorf("failed to seed spent counter: %w", err)
	}

	target := entity.NewTarget(input.TagID, input.Month, input.Year, input.Amount, spent)
	if err := uc.targets.Create(ctx, target); err != nil {
		return nil, fmt.Errorf("failed to create target: %w", err)
	}

	slog.Info("Target created",
		"targetID", target.ID,
		"tagID", target.TagID,
		"month", target.Month,
		"year", target.Year,
		"seededSpent", spent,
	)

	return &CreateTargetOutput{Target: toTargetOutput(target, tag.Name)}, nil
}
