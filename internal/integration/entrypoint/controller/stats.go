// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/financehub/server/internal/application/usecase/stats"
	"github.com/financehub/server/internal/integration/entrypoint/dto"
)

// StatsController handles dashboard statistics endpoints.
type StatsController struct {
	summaryUseCase *stats.GetSummaryUseCase
}

// NewStatsController creates a new stats controller instance.
func NewStatsController(summaryUseCase *stats.GetSummaryUseCase) *StatsController {
	return &StatsController{summaryUseCase: summaryUseCase}
}

// Summary handles GET /stats/summary requests.
func (c *StatsController) Summary(ctx *gin.Context) {
	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatsSummaryResponse(output))
}
