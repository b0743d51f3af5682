// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/financehub/server/internal/application/adapter"
	"github.com/financehub/server/internal/domain/entity"
	domainerror "github.com/financehub/server/internal/domain/error"
	"github.com/financehub/server/internal/integration/persistence/model"
)

// ledgerRepository implements the adapter.LedgerRepository interface.
//
// Counter updates are issued as single UPDATE statements that compute the new
// value in SQL (`monthly_amount + ?`, CASE floors), so the row lock taken by
// the UPDATE itself is enough to prevent lost updates between concurrent
// transactions. Edge and association writes use ON CONFLICT upserts, turning
// duplicate-key races into increments or no-ops instead of errors.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) adapter.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// Atomic runs fn against a transaction-scoped store. Any error from fn rolls
// back every write issued through the store.
func (r *ledgerRepository) Atomic(ctx context.Context, fn func(store adapter.LedgerStore) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ledgerRepository{db: tx})
	})
}

// InsertExpense persists a new expense row.
func (r *ledgerRepository) InsertExpense(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).Create(model.ExpenseFromEntity(expense)).Error
}

// ExpenseByID retrieves a non-deleted expense by its ID.
func (r *ledgerRepository) ExpenseByID(ctx context.Context, id uuid.UUID) (*entity.Expense, error) {
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

// SaveExpense overwrites the scalar fields of an existing expense.
func (r *ledgerRepository) SaveExpense(ctx context.Context, expense *entity.Expense) error {
	return r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("id = ?", expense.ID).
		Updates(map[string]interface{}{
			"title":      expense.Title,
			"amount":     expense.Amount,
			"year":       expense.Year,
			"month":      expense.Month,
			"date":       expense.Date,
			"updated_at": time.Now().UTC(),
		}).Error
}

// SoftDeleteExpense stamps the expense's tombstone.
func (r *ledgerRepository) SoftDeleteExpense(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.ExpenseModel{}, "id = ?", id).Error
}

// TagByID retrieves a non-deleted tag by its ID.
func (r *ledgerRepository) TagByID(ctx context.Context, id uuid.UUID) (*entity.Tag, error) {
	var tagModel model.TagModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&tagModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTagNotFound
		}
		return nil, result.Error
	}
	return tagModel.ToEntity(), nil
}

// TagByName retrieves a non-deleted tag by exact (case-sensitive) name.
func (r *ledgerRepository) TagByName(ctx context.Context, name string) (*entity.Tag, error) {
	var tagModel model.TagModel
	result := r.db.WithContext(ctx).Where("name = ?", name).First(&tagModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTagNotFound
		}
		return nil, result.Error
	}
	return tagModel.ToEntity(), nil
}

// InsertTag persists a new tag row.
func (r *ledgerRepository) InsertTag(ctx context.Context, tag *entity.Tag) error {
	return r.db.WithContext(ctx).Create(model.TagFromEntity(tag)).Error
}

// AddTagAmount adds amount to the tag's cumulative counter and moves the
// current month/year markers.
func (r *ledgerRepository) AddTagAmount(ctx context.Context, tagID uuid.UUID, amount int64, month, year int) error {
	return r.db.WithContext(ctx).
		Model(&model.TagModel{}).
		Where("id = ?", tagID).
		Updates(map[string]interface{}{
			"monthly_amount": gorm.Expr("monthly_amount + ?", amount),
			"current_month":  month,
			"current_year":   year,
			"updated_at":     time.Now().UTC(),
		}).Error
}

// SubtractTagAmount subtracts amount from the tag's cumulative counter,
// floored at zero.
func (r *ledgerRepository) SubtractTagAmount(ctx context.Context, tagID uuid.UUID, amount int64) error {
	return r.db.WithContext(ctx).
		Model(&model.TagModel{}).
		Where("id = ?", tagID).
		Updates(map[string]interface{}{
			"monthly_amount": gorm.Expr(
				"CASE WHEN monthly_amount - ? < 0 THEN 0 ELSE monthly_amount - ? END",
				amount, amount,
			),
			"updated_at": time.Now().UTC(),
		}).Error
}

// LinkTag associates an expense with a tag; a duplicate link is a no-op.
func (r *ledgerRepository) LinkTag(ctx context.Context, expenseID, tagID uuid.UUID) error {
	link := model.ExpenseTagFromEntity(entity.NewExpenseTag(expenseID, tagID))
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "expense_id"}, {Name: "tag_id"}},
			DoNothing: true,
		}).
		Create(link).Error
}

// UnlinkTag removes the association if present, reporting whether it existed.
func (r *ledgerRepository) UnlinkTag(ctx context.Context, expenseID, tagID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("expense_id = ? AND tag_id = ?", expenseID, tagID).
		Delete(&model.ExpenseTagModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// TagIDsForExpense returns the ids of all tags currently linked to the expense.
func (r *ledgerRepository) TagIDsForExpense(ctx context.Context, expenseID uuid.UUID) ([]uuid.UUID, error) {
	var tagIDs []uuid.UUID
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseTagModel{}).
		Where("expense_id = ?", expenseID).
		Order("created_at ASC").
		Pluck("tag_id", &tagIDs)
	if result.Error != nil {
		return nil, result.Error
	}
	return tagIDs, nil
}

// TagSetsByExpense returns every expense's linked tag set, grouped in memory to
// stay portable between PostgreSQL and the SQLite test database.
func (r *ledgerRepository) TagSetsByExpense(ctx context.Context) ([]entity.TagSet, error) {
	var links []model.ExpenseTagModel
	result := r.db.WithContext(ctx).
		Order("expense_id ASC, created_at ASC").
		Find(&links)
	if result.Error != nil {
		return nil, result.Error
	}

	var sets []entity.TagSet
	for _, link := range links {
		if n := len(sets); n > 0 && sets[n-1].ExpenseID == link.ExpenseID {
			sets[n-1].TagIDs = append(sets[n-1].TagIDs, link.TagID)
			continue
		}
		sets = append(sets, entity.TagSet{
			ExpenseID: link.ExpenseID,
			TagIDs:    []uuid.UUID{link.TagID},
		})
	}
	return sets, nil
}

// AddTargetSpent adds amount to the matching target's spent counter; a missing
// target is a no-op.
func (r *ledgerRepository) AddTargetSpent(ctx context.Context, tagID uuid.UUID, month, year int, amount int64) error {
	return r.db.WithContext(ctx).
		Model(&model.TargetModel{}).
		Where("tag_id = ? AND month = ? AND year = ?", tagID, month, year).
		Updates(map[string]interface{}{
			"spent":      gorm.Expr("spent + ?", amount),
			"updated_at": time.Now().UTC(),
		}).Error
}

// SubtractTargetSpent subtracts amount from the matching target's spent
// counter, floored at zero; a missing target is a no-op.
func (r *ledgerRepository) SubtractTargetSpent(ctx context.Context, tagID uuid.UUID, month, year int, amount int64) error {
	return r.db.WithContext(ctx).
		Model(&model.TargetModel{}).
		Where("tag_id = ? AND month = ? AND year = ?", tagID, month, year).
		Updates(map[string]interface{}{
			"spent": gorm.Expr(
				"CASE WHEN spent - ? < 0 THEN 0 ELSE spent - ? END",
				amount, amount,
			),
			"updated_at": time.Now().UTC(),
		}).Error
}

// IncrementEdge raises the directed edge weight by one, creating the edge with
// weight 1 when absent.
func (r *ledgerRepository) IncrementEdge(ctx context.Context, fromTagID, toTagID uuid.UUID) error {
	edge := model.GraphEdgeFromEntity(entity.NewGraphEdge(fromTagID, toTagID))
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "from_tag_id"}, {Name: "to_tag_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"weight":     gorm.Expr("graph_edges.weight + 1"),
				"updated_at": time.Now().UTC(),
			}),
		}).
		Create(edge).Error
}

// DeleteAllEdges clears the affinity graph prior to a full rebuild.
func (r *ledgerRepository) DeleteAllEdges(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.GraphEdgeModel{}).Error
}
