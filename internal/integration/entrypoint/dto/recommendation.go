// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/financehub/server/internal/application/usecase/recommendation"
)

// RecommendationResponse represents a single ranked recommendation.
type RecommendationResponse struct {
	TagID   string  `json:"tag_id"`
	TagName string  `json:"tag_name"`
	Score   float64 `json:"score"`
}

// RecommendationListResponse represents the response for a recommendation run.
type RecommendationListResponse struct {
	Recommendations []RecommendationResponse `json:"recommendations"`
	FromCache       bool                     `json:"from_cache"`
}

// ToRecommendationListResponse converts a RecommendOutput to its DTO.
func ToRecommendationListResponse(output *recommendation.RecommendOutput) RecommendationListResponse {
	response := RecommendationListResponse{
		Recommendations: make([]RecommendationResponse, len(output.Recommendations)),
		FromCache:       output.FromCache,
	}
	for i, rec := range output.Recommendations {
		response.Recommendations[i] = RecommendationResponse{
			TagID:   rec.TagID.String(),
			TagName: rec.TagName,
			Score:   rec.Score,
		}
	}
	return response
}
