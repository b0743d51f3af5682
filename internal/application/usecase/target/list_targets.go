// Package target contains budget-target use cases.
package target

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/financehub/server/internal/application/adapter"
)

// ListTargetsInput represents the input for listing targets. Nil fields match
// everything.
type ListTargetsInput struct {
	Month *int
	Year  *int
	TagID *uuid.UUID
}

// ListTargetsOutput represents the output of listing targets.
type ListTargetsOutput struct {
	Targets []*TargetOutput
}

// ListTargetsUseCase retrieves targets with their tags and spending progress,
// newest period first.
type ListTargetsUseCase struct {
	targets adapter.TargetRepository
}

// NewListTargetsUseCase creates a new ListTargetsUseCase instance.
func NewListTargetsUseCase(targets adapter.TargetRepository) *ListTargetsUseCase {
	return &ListTargetsUseCase{targets: targets}
}

// Execute performs the target listing.
func (uc *ListTargetsUseCase) Execute(ctx context.Context, input ListTargetsInput) (*ListTargetsOutput, error) {
	rows, err := uc.targets.FindByFilter(ctx, adapter.TargetFilter{
		Month: input.Month,
		Year:  input.Year,
		TagID: input.TagID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list targets: %w", err)
	}

	output := &ListTargetsOutput{Targets: make([]*TargetOutput, len(rows))}
	for i, row := range rows {
		tagName := ""
		if row.Tag != nil {
			tagName = row.Tag.Name
		}
		output.Targets[i] = toTargetOutput(row.Target, tagName)
	}
	return output, nil
}
