// Package target contains budget-target use cases.
package target

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financehub/server/internal/domain/entity"
)

// TargetOutput represents a target in use case outputs. Progress is the ratio
// of spent over budgeted amount, rounded to four decimal places.
type TargetOutput struct {
	ID        uuid.UUID
	Month     int
	Year      int
	TagID     uuid.UUID
	TagName   string
	Amount    int64
	Spent     int64
	Progress  decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

func toTargetOutput(target *entity.Target, tagName string) *TargetOutput {
	progress := decimal.Zero
	if target.Amount > 0 {
		progress = decimal.NewFromInt(target.Spent).
			Div(decimal.NewFromInt(target.Amount)).
			Round(4)
	}

	return &TargetOutput{
		ID:        target.ID,
		Month:     target.Month,
		Year:      target.Year,
		TagID:     target.TagID,
		TagName:   tagName,
		Amount:    target.Amount,
		Spent:     target.Spent,
		Progress:  progress,
		CreatedAt: target.CreatedAt,
		UpdatedAt: target.UpdatedAt,
	}
}
