// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/financehub/server/internal/application/usecase/graph"
	"github.com/financehub/server/internal/integration/entrypoint/dto"
)

// GraphController handles affinity graph maintenance endpoints.
type GraphController struct {
	rebuildUseCase *graph.RebuildGraphUseCase
}

// RebuildGraphResponse represents the response for a graph rebuild.
type RebuildGraphResponse struct {
	ExpensesReplayed int `json:"expenses_replayed"`
}

// NewGraphController creates a new graph controller instance.
func NewGraphController(rebuildUseCase *graph.RebuildGraphUseCase) *GraphController {
	return &GraphController{rebuildUseCase: rebuildUseCase}
}

// Rebuild handles POST /graph/rebuild requests.
func (c *GraphController) Rebuild(ctx *gin.Context) {
	output, err := c.rebuildUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to rebuild graph",
		})
		return
	}

	ctx.JSON(http.StatusOK, RebuildGraphResponse{ExpensesReplayed: output.ExpensesReplayed})
}
