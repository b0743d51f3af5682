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

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// FindByID retrieves a non-deleted expense by its ID.
func (r *expenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByFilter retrieves expenses matching the filter criteria with pagination.
func (r *expenseRepository) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter, pagination adapter.ExpensePagination) (*entity.ExpenseListResult, error) {
	query := r.db.WithContext(ctx).Model(&model.ExpenseModel{})

	if filter.Since != nil {
		query = query.Where("expenses.created_at >= ?", filter.Since)
	}
	byTag := len(filter.TagIDs) > 0
	if byTag {
		query = query.
			Joins("JOIN expense_tags ON expense_tags.expense_id = expenses.id").
			Where("expense_tags.tag_id IN ?", filter.TagIDs)
	}

	// An expense matching several requested tags joins to several rows, so
	// both the count and the page dedup on the expense key.
	countQuery := query.Session(&gorm.Session{})
	if byTag {
		countQuery = countQuery.Distinct("expenses.id")
	}
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, err
	}

	rowQuery := query.Session(&gorm.Session{})
	if byTag {
		rowQuery = rowQuery.Group("expenses.id")
	}
	var expenseModels []model.ExpenseModel
	result := rowQuery.
		Order("expenses.created_at DESC").
		Offset(pagination.Offset).
		Limit(pagination.Limit).
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}

	return &entity.ExpenseListResult{
		Expenses: expenses,
		Total:    total,
		Limit:    pagination.Limit,
		Offset:   pagination.Offset,
	}, nil
}

// ChangedSince returns non-deleted expenses created or updated after the given instant.
func (r *expenseRepository) ChangedSince(ctx context.Context, since time.Time) ([]*entity.Expense, error) {
	var expenseModels []model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("created_at > ? OR updated_at > ?", since, since).
		Order("created_at ASC").
		Find(&expenseModels)
	if result.Error != nil {
		return nil, result.Error
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}
