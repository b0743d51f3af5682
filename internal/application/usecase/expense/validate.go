// Package expense contains expense-related use cases.
package expense

import (
	"fmt"

	domainerror "github.com/financehub/server/internal/domain/error"
)

const (
	// MaxTitleLength is the maximum allowed length for expense titles.
	MaxTitleLength = 255
	// MinYear and MaxYear bound the accepted year range.
	MinYear = 2000
	MaxYear = 3000
)

// validateExpenseFields checks the scalar fields shared by create and update.
func validateExpenseFields(title string, amount int64, year, month, date int) error {
	if title == "" || len(title) > MaxTitleLength {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseTitle,
			fmt.Sprintf("title must be between 1 and %d characters", MaxTitleLength),
			domainerror.ErrInvalidExpenseTitle,
		)
	}
	if amount <= 0 {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"amount must be a positive number of minor currency units",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	if year < MinYear || year > MaxYear || month < 1 || month > 12 || date < 1 || date > 31 {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseDate,
			"expense date fields out of range",
			domainerror.ErrInvalidExpenseDate,
		)
	}
	return nil
}
