// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/financehub/server/internal/application/usecase/tag"
	domainerror "github.com/financehub/server/internal/domain/error"
	"github.com/financehub/server/internal/integration/entrypoint/dto"
)

// TagController handles tag endpoints.
type TagController struct {
	listUseCase *tag.ListTagsUseCase
	getUseCase  *tag.GetTagUseCase
}

// NewTagController creates a new tag controller instance.
func NewTagController(listUseCase *tag.ListTagsUseCase, getUseCase *tag.GetTagUseCase) *TagController {
	return &TagController{
		listUseCase: listUseCase,
		getUseCase:  getUseCase,
	}
}

// List handles GET /tags requests.
func (c *TagController) List(ctx *gin.Context) {
	input := tag.ListTagsInput{
		Search: ctx.Query("search"),
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve tags",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTagListResponse(output))
}

// Get handles GET /tags/:id requests.
func (c *TagController) Get(ctx *gin.Context) {
	tagID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid tag ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), tag.GetTagInput{TagID: tagID})
	if err != nil {
		var tagErr *domainerror.TagError
		if errors.As(err, &tagErr) && tagErr.Code == domainerror.ErrCodeTagNotFound {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: tagErr.Message,
				Code:  string(tagErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTagResponse(output.Tag))
}
