package expense

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/financehub/server/internal/application/adapter"
	"github.com/financehub/server/internal/domain/entity"
	"github.com/financehub/server/internal/integration/persistence"
	"github.com/financehub/server/internal/integration/persistence/model"
)

// newTestDB opens a fresh in-memory database with the full schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.ExpenseModel{},
		&model.TagModel{},
		&model.ExpenseTagModel{},
		&model.TargetModel{},
		&model.GraphEdgeModel{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// mustCreateTag inserts a tag with a zeroed counter and returns it.
func mustCreateTag(t *testing.T, ledger adapter.LedgerRepository, name string) *entity.Tag {
	t.Helper()

	tag := entity.NewTag(name, 0, 2025, 3, 1)
	if err := ledger.InsertTag(context.Background(), tag); err != nil {
		t.Fatalf("failed to insert tag %q: %v", name, err)
	}
	return tag
}

// tagAmount reads the tag's cumulative counter straight from the database.
func tagAmount(t *testing.T, db *gorm.DB, tagID uuid.UUID) int64 {
	t.Helper()

	var m model.TagModel
	if err := db.First(&m, "id = ?", tagID).Error; err != nil {
		t.Fatalf("failed to load tag %s: %v", tagID, err)
	}
	return m.MonthlyAmount
}

// edgeWeight reads a directed edge weight; 0 means the edge does not exist.
func edgeWeight(t *testing.T, db *gorm.DB, from, to uuid.UUID) int64 {
	t.Helper()

	var m model.GraphEdgeModel
	err := db.First(&m, "from_tag_id = ? AND to_tag_id = ?", from, to).Error
	if err == gorm.ErrRecordNotFound {
		return 0
	}
	if err != nil {
		t.Fatalf("failed to load edge %s->%s: %v", from, to, err)
	}
	return m.Weight
}

// linkCount counts live expense-tag associations for an expense.
func linkCount(t *testing.T, db *gorm.DB, expenseID uuid.UUID) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&model.ExpenseTagModel{}).Where("expense_id = ?", expenseID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count links: %v", err)
	}
	return count
}

// newLedger wires the real repository against the test database.
func newLedger(db *gorm.DB) adapter.LedgerRepository {
	return persistence.NewLedgerRepository(db)
}
