// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/financehub/server/internal/application/usecase/expense"
	domainerror "github.com/financehub/server/internal/domain/error"
	"github.com/financehub/server/internal/integration/entrypoint/dto"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	createUseCase *expense.CreateExpenseUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
	getUseCase    *expense.GetExpenseUseCase
	listUseCase   *expense.ListExpensesUseCase
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	getUseCase *expense.GetExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
) *ExpenseController {
	return &ExpenseController{
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
	}
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	tagIDs, err := parseUUIDList(req.TagIDs)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid tag ID format",
		})
		return
	}

	input := expense.CreateExpenseInput{
		Title:          req.Title,
		Amount:         req.Amount,
		Year:           req.Year,
		Month:          req.Month,
		Date:           req.Date,
		LocalID:        req.LocalID,
		ExistingTagIDs: tagIDs,
		NewTagNames:    req.NewTags,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toExpenseMutationResponse(output.Expense, output.CreatedTags, output.AffectedTagIDs))
}

// List handles GET /expenses requests.
func (c *ExpenseController) List(ctx *gin.Context) {
	input := expense.ListExpensesInput{}

	if sinceStr := ctx.Query("since"); sinceStr != "" {
		if since, err := strconv.ParseInt(sinceStr, 10, 64); err == nil {
			t := time.Unix(since, 0).UTC()
			input.Since = &t
		}
	}

	if tagIDsStr := ctx.Query("tagIds"); tagIDsStr != "" {
		for _, idStr := range strings.Split(tagIDsStr, ",") {
			if id, err := uuid.Parse(strings.TrimSpace(idStr)); err == nil {
				input.TagIDs = append(input.TagIDs, id)
			}
		}
	}

	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}
	if offsetStr := ctx.Query("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil {
			input.Offset = offset
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve expenses",
		})
		return
	}

	response := dto.ExpenseListResponse{
		Expenses: make([]dto.ExpenseResponse, len(output.Expenses)),
		Pagination: dto.ExpensePaginationResponse{
			Limit:  output.Limit,
			Offset: output.Offset,
			Total:  output.Total,
		},
	}
	for i, exp := range output.Expenses {
		response.Expenses[i] = dto.ToExpenseResponse(exp)
	}
	ctx.JSON(http.StatusOK, response)
}

// Get handles GET /expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), expense.GetExpenseInput{ExpenseID: expenseID})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	response := dto.ExpenseDetailResponse{
		Expense: dto.ToExpenseResponse(output.Expense),
		TagIDs:  uuidStrings(output.TagIDs),
	}
	ctx.JSON(http.StatusOK, response)
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	addTagIDs, err := parseUUIDList(req.AddTagIDs)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid tag ID format",
		})
		return
	}
	removeTagIDs, err := parseUUIDList(req.RemoveTagIDs)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid tag ID format",
		})
		return
	}

	input := expense.UpdateExpenseInput{
		ExpenseID:         expenseID,
		Title:             req.Title,
		Amount:            req.Amount,
		Year:              req.Year,
		Month:             req.Month,
		Date:              req.Date,
		AddExistingTagIDs: addTagIDs,
		RemoveTagIDs:      removeTagIDs,
		AddNewTagNames:    req.NewTags,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toExpenseMutationResponse(output.Expense, output.CreatedTags, output.AffectedTagIDs))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	expenseID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense ID format",
		})
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), expense.DeleteExpenseInput{ExpenseID: expenseID})
	if err != nil {
		c.handleExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.DeleteExpenseResponse{
		AffectedTagIDs: uuidStrings(output.AffectedTagIDs),
	})
}

// handleExpenseError maps use case errors to HTTP responses.
func (c *ExpenseController) handleExpenseError(ctx *gin.Context, err error) {
	var expErr *domainerror.ExpenseError
	if errors.As(err, &expErr) {
		ctx.JSON(c.getStatusCodeForExpenseError(expErr.Code), dto.ErrorResponse{
			Error: expErr.Message,
			Code:  string(expErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForExpenseError maps expense error codes to HTTP status codes.
func (c *ExpenseController) getStatusCodeForExpenseError(code domainerror.ExpenseErrorCode) int {
	switch code {
	case domainerror.ErrCodeExpenseNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidExpenseTitle,
		domainerror.ErrCodeInvalidExpenseAmount,
		domainerror.ErrCodeInvalidExpenseDate:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func toExpenseMutationResponse(exp *expense.ExpenseOutput, createdTags []*expense.TagOutput, affected []uuid.UUID) dto.ExpenseMutationResponse {
	response := dto.ExpenseMutationResponse{
		Expense:        dto.ToExpenseResponse(exp),
		CreatedTags:    make([]dto.TagResponse, len(createdTags)),
		AffectedTagIDs: uuidStrings(affected),
	}
	for i, tag := range createdTags {
		response.CreatedTags[i] = dto.ToExpenseTagResponse(tag)
	}
	return response
}

func parseUUIDList(values []string) ([]uuid.UUID, error) {
	if len(values) == 0 {
		return nil, nil
	}
	ids := make([]uuid.UUID, len(values))
	for i, v := range values {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}
