// Package stats contains dashboard aggregate use cases.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/financehub/server/internal/application/adapter"
)

// GetSummaryOutput carries the dashboard summary. Totals are minor currency
// units; MonthOverMonthChange is current minus last month and can be negative.
type GetSummaryOutput struct {
	CurrentMonthTotal    int64
	LastMonthTotal       int64
	MonthOverMonthChange int64
	TotalExpenses        int64
	TotalTags            int64
	ActiveTargets        int64
	Timestamp            int64
}

// GetSummaryUseCase computes summary statistics for the dashboard.
type GetSummaryUseCase struct {
	stats adapter.StatsRepository

	// now is swappable for tests pinning the month boundary.
	now func() time.Time
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(stats adapter.StatsRepository) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		stats: stats,
		now:   time.Now,
	}
}

// Execute computes the summary for the current calendar month.
func (uc *GetSummaryUseCase) Execute(ctx context.Context) (*GetSummaryOutput, error) {
	now := uc.now().UTC()
	currentMonth := int(now.Month())
	currentYear := now.Year()

	lastMonth := currentMonth - 1
	lastMonthYear := currentYear
	if currentMonth == 1 {
		lastMonth = 12
		lastMonthYear = currentYear - 1
	}

	currentTotal, err := uc.stats.MonthTotal(ctx, currentMonth, currentYear)
	if err != nil {
		return nil, fmt.Errorf("failed to sum current month: %w", err)
	}
	lastTotal, err := uc.stats.MonthTotal(ctx, lastMonth, lastMonthYear)
	if err != nil {
		return nil, fmt.Errorf("failed to sum last month: %w", err)
	}
	totalExpenses, err := uc.stats.CountExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count expenses: %w", err)
	}
	totalTags, err := uc.stats.CountTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tags: %w", err)
	}
	activeTargets, err := uc.stats.CountActiveTargets(ctx, currentMonth, currentYear)
	if err != nil {
		return nil, fmt.Errorf("failed to count targets: %w", err)
	}

	return &GetSummaryOutput{
		CurrentMonthTotal:    currentTotal,
		LastMonthTotal:       lastTotal,
		MonthOverMonthChange: currentTotal - lastTotal,
		TotalExpenses:        totalExpenses,
		TotalTags:            totalTags,
		ActiveTargets:        activeTargets,
		Timestamp:            now.Unix(),
	}, nil
}
