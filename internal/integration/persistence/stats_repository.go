// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/financehub/server/internal/application/adapter"
	"github.com/financehub/server/internal/integration/persistence/model"
)

// statsRepository implements the adapter.StatsRepository interface.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository instance.
func NewStatsRepository(db *gorm.DB) adapter.StatsRepository {
	return &statsRepository{
		db: db,
	}
}

// MonthTotal sums the amounts of non-deleted expenses in the given month.
func (r *statsRepository) MonthTotal(ctx context.Context, month, year int) (int64, error) {
	var sum struct {
		Total int64
	}
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Select("COALESCE(SUM(amount), 0) as total").
		Where("month = ? AND year = ?", month, year).
		Scan(&sum)
	if result.Error != nil {
		return 0, result.Error
	}
	return sum.Total, nil
}

// CountExpenses counts non-deleted expenses.
func (r *statsRepository) CountExpenses(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.ExpenseModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// CountTags counts non-deleted tags.
func (r *statsRepository) CountTags(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.TagModel{}).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}

// CountActiveTargets counts non-deleted targets for the given month.
func (r *statsRepository) CountActiveTargets(ctx context.Context, month, year int) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TargetModel{}).
		Where("month = ? AND year = ?", month, year).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
