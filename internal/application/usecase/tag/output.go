// Package tag contains tag-related use cases.
package tag

import (
	"time"

	"github.com/google/uuid"

	"github.com/financehub/server/internal/domain/entity"
)

// TagOutput represents a tag in use case outputs.
type TagOutput struct {
	ID            uuid.UUID
	Name          string
	MonthlyAmount int64
	CurrentMonth  int
	CurrentYear   int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func toTagOutput(tag *entity.Tag) *TagOutput {
	return &TagOutput{
		ID:            tag.ID,
		Name:          tag.Name,
		MonthlyAmount: tag.MonthlyAmount,
		CurrentMonth:  tag.CurrentMonth,
		CurrentYear:   tag.CurrentYear,
		CreatedAt:     tag.CreatedAt,
		UpdatedAt:     tag.UpdatedAt,
	}
}
