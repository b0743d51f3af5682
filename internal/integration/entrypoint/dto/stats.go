// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/financehub/server/internal/application/usecase/stats"
)

// StatsSummaryResponse represents the dashboard summary. Totals are minor
// currency units.
type StatsSummaryResponse struct {
	CurrentMonthTotal    int64 `json:"current_month_total"`
	LastMonthTotal       int64 `json:"last_month_total"`
	MonthOverMonthChange int64 `json:"month_over_month_change"`
	TotalExpenses        int64 `json:"total_expenses"`
	TotalTags            int64 `json:"total_tags"`
	ActiveTargets        int64 `json:"active_targets"`
	Timestamp            int64 `json:"timestamp"`
}

// ToStatsSummaryResponse converts a GetSummaryOutput to its DTO.
func ToStatsSummaryResponse(output *stats.GetSummaryOutput) StatsSummaryResponse {
	return StatsSummaryResponse{
		CurrentMonthTotal:    output.CurrentMonthTotal,
		LastMonthTotal:       output.LastMonthTotal,
		MonthOverMonthChange: output.MonthOverMonthChange,
		TotalExpenses:        output.TotalExpenses,
		TotalTags:            output.TotalTags,
		ActiveTargets:        output.ActiveTargets,
		Timestamp:            output.Timestamp,
	}
}
