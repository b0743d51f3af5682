// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/financehub/server/internal/application/usecase/target"
)

// CreateTargetRequest represents the request body for target creation.
// Amount is in minor currency units.
type CreateTargetRequest struct {
	TagID  string `json:"tag_id" binding:"required"`
	Month  int    `json:"month" binding:"required,min=1,max=12"`
	Year   int    `json:"year" binding:"required"`
	Amount int64  `json:"amount" binding:"required,gt=0"`
}

// TargetResponse represents a single target in API responses. Progress is
// spent over amount as a decimal string.
type TargetResponse struct {
	ID        string    `json:"id"`
	TagID     string    `json:"tag_id"`
	TagName   string    `json:"tag_name"`
	Month     int       `json:"month"`
	Year      int       `json:"year"`
	Amount    int64     `json:"amount"`
	Spent     int64     `json:"spent"`
	Progress  string    `json:"progress"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TargetListResponse represents the response for listing targets.
type TargetListResponse struct {
	Targets []TargetResponse `json:"targets"`
}

// ToTargetResponse converts a TargetOutput to a TargetResponse DTO.
func ToTargetResponse(t *target.TargetOutput) TargetResponse {
	return TargetResponse{
		ID:        t.ID.String(),
		TagID:     t.TagID.String(),
		TagName:   t.TagName,
		Month:     t.Month,
		Year:      t.Year,
		Amount:    t.Amount,
		Spent:     t.Spent,
		Progress:  t.Progress.String(),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

// ToTargetListResponse converts a ListTargetsOutput to a TargetListResponse DTO.
func ToTargetListResponse(output *target.ListTargetsOutput) TargetListResponse {
	response := TargetListResponse{Targets: make([]TargetResponse, len(output.Targets))}
	for i, t := range output.Targets {
		response.Targets[i] = ToTargetResponse(t)
	}
	return response
}
