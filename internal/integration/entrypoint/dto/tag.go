// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/financehub/server/internal/application/usecase/tag"
)

// TagResponse represents a single tag in API responses. MonthlyAmount is the
// cumulative amount of expenses associated with the tag, in minor currency
// units.
type TagResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	MonthlyAmount int64     `json:"monthly_amount"`
	CurrentMonth  int       `json:"current_month"`
	CurrentYear   int       `json:"current_year"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TagListResponse represents the response for listing tags.
type TagListResponse struct {
	Tags []TagResponse `json:"tags"`
}

// ToTagResponse converts a TagOutput to a TagResponse DTO.
func ToTagResponse(t *tag.TagOutput) TagResponse {
	return TagResponse{
		ID:            t.ID.String(),
		Name:          t.Name,
		MonthlyAmount: t.MonthlyAmount,
		CurrentMonth:  t.CurrentMonth,
		CurrentYear:   t.CurrentYear,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// ToTagListResponse converts a ListTagsOutput to a TagListResponse DTO.
func ToTagListResponse(output *tag.ListTagsOutput) TagListResponse {
	response := TagListResponse{Tags: make([]TagResponse, len(output.Tags))}
	for i, t := range output.Tags {
		response.Tags[i] = ToTagResponse(t)
	}
	return response
}
