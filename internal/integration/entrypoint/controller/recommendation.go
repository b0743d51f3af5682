// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/financehub/server/internal/application/usecase/recommendation"
	"github.com/financehub/server/internal/integration/entrypoint/dto"
)

// RecommendationController handles recommendation endpoints.
type RecommendationController struct {
	recommendUseCase *recommendation.RecommendUseCase
}

// NewRecommendationController creates a new recommendation controller instance.
func NewRecommendationController(recommendUseCase *recommendation.RecommendUseCase) *RecommendationController {
	return &RecommendationController{recommendUseCase: recommendUseCase}
}

// Recommend handles GET /tags/:id/recommendations requests.
func (c *RecommendationController) Recommend(ctx *gin.Context) {
	seedTagID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid tag ID format",
		})
		return
	}

	input := recommendation.RecommendInput{SeedTagID: seedTagID}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}

	output, err := c.recommendUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute recommendations",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecommendationListResponse(output))
}
