// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/financehub/server/internal/application/usecase/target"
	domainerror "github.com/financehub/server/internal/domain/error"
	"github.com/financehub/server/internal/integration/entrypoint/dto"
)

// TargetController handles budget target endpoints.
type TargetController struct {
	createUseCase *target.CreateTargetUseCase
	listUseCase   *target.ListTargetsUseCase
}

// NewTargetController creates a new target controller instance.
func NewTargetController(createUseCase *target.CreateTargetUseCase, listUseCase *target.ListTargetsUseCase) *TargetController {
	return &TargetController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /targets requests.
func (c *TargetController) Create(ctx *gin.Context) {
	var req dto.CreateTargetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	tagID, err := uuid.Parse(req.TagID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid tag ID format",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), target.CreateTargetInput{
		TagID:  tagID,
		Month:  req.Month,
		Year:   req.Year,
		Amount: req.Amount,
	})
	if err != nil {
		c.handleTargetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTargetResponse(output.Target))
}

// List handles GET /targets requests.
func (c *TargetController) List(ctx *gin.Context) {
	input := target.ListTargetsInput{}

	if monthStr := ctx.Query("month"); monthStr != "" {
		if month, err := strconv.Atoi(monthStr); err == nil {
			input.Month = &month
		}
	}
	if yearStr := ctx.Query("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			input.Year = &year
		}
	}
	if tagIDStr := ctx.Query("tagId"); tagIDStr != "" {
		if tagID, err := uuid.Parse(tagIDStr); err == nil {
			input.TagID = &tagID
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve targets",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTargetListResponse(output))
}

// handleTargetError maps use case errors to HTTP responses.
func (c *TargetController) handleTargetError(ctx *gin.Context, err error) {
	var tgtErr *domainerror.TargetError
	if errors.As(err, &tgtErr) {
		ctx.JSON(c.getStatusCodeForTargetError(tgtErr.Code), dto.ErrorResponse{
			Error: tgtErr.Message,
			Code:  string(tgtErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTargetError maps target error codes to HTTP status codes.
func (c *TargetController) getStatusCodeForTargetError(code domainerror.TargetErrorCode) int {
	switch code {
	case domainerror.ErrCodeTargetNotFound, domainerror.ErrCodeTargetTagNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeTargetAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidTargetAmount, domainerror.ErrCodeInvalidTargetPeriod:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
