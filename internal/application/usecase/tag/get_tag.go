// Package tag contains tag-related use cases.
package tag

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/financehub/server/internal/application/adapter"
	domainerror "github.com/financehub/server/internal/domain/error"
)

// GetTagInput represents the input for fetching a single tag.
type GetTagInput struct {
	TagID uuid.UUID
}

// GetTagOutput represents the output of fetching a single tag.
type GetTagOutput struct {
	Tag *TagOutput
}

// GetTagUseCase retrieves a tag by its ID.
type GetTagUseCase struct {
	tags adapter.TagRepository
}

// NewGetTagUseCase creates a new GetTagUseCase instance.
func NewGetTagUseCase(tags adapter.TagRepository) *GetTagUseCase {
	return &GetTagUseCase{tags: tags}
}

// Execute performs the tag lookup.
func (uc *GetTagUseCase) Execute(ctx context.Context, input GetTagInput) (*GetTagOutput, error) {
	tag, err := uc.tags.FindByID(ctx, input.TagID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTagNotFound) {
			return nil, domainerror.NewTagError(
				domainerror.ErrCodeTagNotFound,
				"tag not found",
				domainerror.ErrTagNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find tag: %w", err)
	}

	return &GetTagOutput{Tag: toTagOutput(tag)}, nil
}
