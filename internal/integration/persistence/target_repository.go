// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/financehub/server/internal/application/adapter"
	"github.com/financehub/server/internal/domain/entity"
	domainerror "github.com/financehub/server/internal/domain/error"
	"github.com/financehub/server/internal/integration/persistence/model"
)

// targetRepository implements the adapter.TargetRepository interface.
type targetRepository struct {
	db *gorm.DB
}

// NewTargetRepository creates a new target repository instance.
func NewTargetRepository(db *gorm.DB) adapter.TargetRepository {
	return &targetRepository{
		db: db,
	}
}

// Create persists a new target row.
func (r *targetRepository) Create(ctx context.Context, target *entity.Target) error {
	return r.db.WithContext(ctx).Create(model.TargetFromEntity(target)).Error
}

// FindByID retrieves a non-deleted target by its ID.
func (r *targetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Target, error) {
	var targetModel model.TargetModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&targetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTargetNotFound
		}
		return nil, result.Error
	}
	return targetModel.ToEntity(), nil
}

// FindByKey retrieves a non-deleted target by its (month, year, tag) key.
func (r *targetRepository) FindByKey(ctx context.Context, tagID uuid.UUID, month, year int) (*entity.Target, error) {
	var targetModel model.TargetModel
	result := r.db.WithContext(ctx).
		Where("tag_id = ? AND month = ? AND year = ?", tagID, month, year).
		First(&targetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTargetNotFound
		}
		return nil, result.Error
	}
	return targetModel.ToEntity(), nil
}

// FindByFilter retrieves non-deleted targets matching the filter, newest
// period first, with their tags preloaded.
func (r *targetRepository) FindByFilter(ctx context.Context, filter adapter.TargetFilter) ([]*entity.TargetWithTag, error) {
	query := r.db.WithContext(ctx).Model(&model.TargetModel{})

	if filter.Month != nil {
		query = query.Where("month = ?", *filter.Month)
	}
	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
	}
	if filter.TagID != nil {
		query = query.Where("tag_id = ?", *filter.TagID)
	}

	var targetModels []model.TargetModel
	result := query.
		Preload("Tag").
		Order("year DESC, month DESC").
		Find(&targetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	targets := make([]*entity.TargetWithTag, len(targetModels))
	for i, tm := range targetModels {
		targets[i] = tm.ToEntityWithTag()
	}
	return targets, nil
}

// SumExpensesForTagMonth sums the amounts of non-deleted expenses linked to
// the tag in the given month and year.
func (r *targetRepository) SumExpensesForTagMonth(ctx context.Context, tagID uuid.UUID, month, year int) (int64, error) {
	var sum struct {
		Total int64
	}
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Select("COALESCE(SUM(expenses.amount), 0) as total").
		Joins("JOIN expense_tags ON expense_tags.expense_id = expenses.id").
		Where("expense_tags.tag_id = ?", tagID).
		Where("expenses.month = ? AND expenses.year = ?", month, year).
		Scan(&sum)
	if result.Error != nil {
		return 0, result.Error
	}
	return sum.Total, nil
}

// UpdateAmount overwrites the budget amount of a target.
func (r *targetRepository) UpdateAmount(ctx context.Context, id uuid.UUID, amount int64) error {
	return r.db.WithContext(ctx).
		Model(&model.TargetModel{}).
		Where("id = ?", id).
		Update("amount", amount).Error
}

// Delete soft-deletes a target by its ID.
func (r *targetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.TargetModel{}, "id = ?", id).Error
}

// ChangedSince returns non-deleted targets created or updated after the given instant.
func (r *targetRepository) ChangedSince(ctx context.Context, since time.Time) ([]*entity.Target, error) {
	var targetModels []model.TargetModel
	result := r.db.WithContext(ctx).
		Where("created_at > ? OR updated_at > ?", since, since).
		Order("created_at ASC").
		Find(&targetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	targets := make([]*entity.Target, len(targetModels))
	for i, tm := range targetModels {
		targets[i] = tm.ToEntity()
	}
	return targets, nil
}
