// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/financehub/server/internal/application/usecase/expense"
)

// CreateExpenseRequest represents the request body for expense creation.
// Amount is in minor currency units. TagIDs reference existing tags; NewTags
// are names to create on the fly.
type CreateExpenseRequest struct {
	Title   string   `json:"title" binding:"required,min=1,max=255"`
	Amount  int64    `json:"amount" binding:"required,gt=0"`
	Year    int      `json:"year" binding:"required"`
	Month   int      `json:"month" binding:"required,min=1,max=12"`
	Date    int      `json:"date" binding:"required,min=1,max=31"`
	LocalID *int64   `json:"local_id,omitempty"`
	TagIDs  []string `json:"tag_ids,omitempty"`
	NewTags []string `json:"new_tags,omitempty"`
}

// UpdateExpenseRequest represents the request body for expense update. Tag
// changes are explicit add/remove deltas.
type UpdateExpenseRequest struct {
	Title        string   `json:"title" binding:"required,min=1,max=255"`
	Amount       int64    `json:"amount" binding:"required,gt=0"`
	Year         int      `json:"year" binding:"required"`
	Month        int      `json:"month" binding:"required,min=1,max=12"`
	Date         int      `json:"date" binding:"required,min=1,max=31"`
	AddTagIDs    []string `json:"add_tag_ids,omitempty"`
	RemoveTagIDs []string `json:"remove_tag_ids,omitempty"`
	NewTags      []string `json:"new_tags,omitempty"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID        string    `json:"id"`
	LocalID   *int64    `json:"local_id,omitempty"`
	Title     string    `json:"title"`
	Amount    int64     `json:"amount"`
	Year      int       `json:"year"`
	Month     int       `json:"month"`
	Date      int       `json:"date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExpenseMutationResponse represents the response for expense creation and
// update, including tags created on the fly and every tag whose aggregates
// the mutation touched.
type ExpenseMutationResponse struct {
	Expense        ExpenseResponse `json:"expense"`
	CreatedTags    []TagResponse   `json:"created_tags"`
	AffectedTagIDs []string        `json:"affected_tag_ids"`
}

// ExpenseDetailResponse represents the response for fetching a single expense.
type ExpenseDetailResponse struct {
	Expense ExpenseResponse `json:"expense"`
	TagIDs  []string        `json:"tag_ids"`
}

// ExpensePaginationResponse represents pagination information in list responses.
type ExpensePaginationResponse struct {
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
	Total  int64 `json:"total"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses   []ExpenseResponse         `json:"expenses"`
	Pagination ExpensePaginationResponse `json:"pagination"`
}

// DeleteExpenseResponse represents the response for expense deletion.
type DeleteExpenseResponse struct {
	AffectedTagIDs []string `json:"affected_tag_ids"`
}

// ToExpenseResponse converts an ExpenseOutput to an ExpenseResponse DTO.
func ToExpenseResponse(exp *expense.ExpenseOutput) ExpenseResponse {
	return ExpenseResponse{
		ID:        exp.ID.String(),
		LocalID:   exp.LocalID,
		Title:     exp.Title,
		Amount:    exp.Amount,
		Year:      exp.Year,
		Month:     exp.Month,
		Date:      exp.Date,
		CreatedAt: exp.CreatedAt,
		UpdatedAt: exp.UpdatedAt,
	}
}

// ToExpenseTagResponse converts an expense-side TagOutput to a TagResponse DTO.
func ToExpenseTagResponse(tag *expense.TagOutput) TagResponse {
	return TagResponse{
		ID:            tag.ID.String(),
		Name:          tag.Name,
		MonthlyAmount: tag.MonthlyAmount,
		CurrentMonth:  tag.CurrentMonth,
		CurrentYear:   tag.CurrentYear,
		CreatedAt:     tag.CreatedAt,
		UpdatedAt:     tag.UpdatedAt,
	}
}
