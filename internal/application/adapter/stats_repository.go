// Package adapter defines interfaces for external dependencies (ports).
package adapter

import "context"

// StatsRepository defines aggregate read queries for the summary dashboard.
type StatsRepository interface {
	// MonthTotal sums the amounts of non-deleted expenses in the given month.
	MonthTotal(ctx context.Context, month, year int) (int64, error)

	// CountExpenses counts non-deleted expenses.
	CountExpenses(ctx context.Context) (int64, error)

	// CountTags counts non-deleted tags.
	CountTags(ctx context.Context) (int64, error)

	// CountActiveTargets counts non-deleted targets for the given month.
	CountActiveTargets(ctx context.Context, month, year int) (int64, error)
}
