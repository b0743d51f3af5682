// Package tag contains tag-related use cases.
package tag

import (
	"context"
	"fmt"

	"github.com/financehub/server/internal/application/adapter"
)

const defaultTagListLimit = 100

// ListTagsInput represents the input for listing tags.
type ListTagsInput struct {
	Search string
	Limit  int
}

// ListTagsOutput represents the output of listing tags.
type ListTagsOutput struct {
	Tags []*TagOutput
}

// ListTagsUseCase retrieves tags ordered by name, optionally filtered by a
// case-insensitive substring search.
type ListTagsUseCase struct {
	tags adapter.TagRepository
}

// NewListTagsUseCase creates a new ListTagsUseCase instance.
func NewListTagsUseCase(tags adapter.TagRepository) *ListTagsUseCase {
	return &ListTagsUseCase{tags: tags}
}

// Execute performs the tag listing.
func (uc *ListTagsUseCase) Execute(ctx context.Context, input ListTagsInput) (*ListTagsOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultTagListLimit
	}

	tags, err := uc.tags.List(ctx, input.Search, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	output := &ListTagsOutput{Tags: make([]*TagOutput, len(tags))}
	for i, t := range tags {
		output.Tags[i] = toTagOutput(t)
	}
	return output, nil
}
