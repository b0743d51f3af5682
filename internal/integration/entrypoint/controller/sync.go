// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	synccase "github.com/financehub/server/internal/application/usecase/sync"
	"github.com/financehub/server/internal/integration/entrypoint/dto"
)

// SyncController handles client synchronization endpoints.
type SyncController struct {
	getDeltaUseCase   *synccase.GetDeltaUseCase
	applyBatchUseCase *synccase.ApplyBatchUseCase
}

// NewSyncController creates a new sync controller instance.
func NewSyncController(getDeltaUseCase *synccase.GetDeltaUseCase, applyBatchUseCase *synccase.ApplyBatchUseCase) *SyncController {
	return &SyncController{
		getDeltaUseCase:   getDeltaUseCase,
		applyBatchUseCase: applyBatchUseCase,
	}
}

// GetDelta handles GET /sync/delta requests.
func (c *SyncController) GetDelta(ctx *gin.Context) {
	input := synccase.GetDeltaInput{}
	if sinceStr := ctx.Query("since"); sinceStr != "" {
		since, err := strconv.ParseInt(sinceStr, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid since timestamp",
			})
			return
		}
		input.Since = &since
	}

	output, err := c.getDeltaUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute sync delta",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSyncDeltaResponse(output))
}

// ApplyBatch handles POST /sync/batch requests.
func (c *SyncController) ApplyBatch(ctx *gin.Context) {
	var req dto.BatchSyncRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	operations := make([]synccase.Operation, len(req.Operations))
	for i, opReq := range req.Operations {
		op, err := opReq.ToOperation()
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid operation: " + err.Error(),
			})
			return
		}
		operations[i] = op
	}

	output, err := c.applyBatchUseCase.Execute(ctx.Request.Context(), synccase.ApplyBatchInput{Operations: operations})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to apply batch",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBatchSyncResponse(output))
}
