package stats

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/financehub/server/internal/domain/entity"
	"github.com/financehub/server/internal/integration/persistence"
	"github.com/financehub/server/internal/integration/persistence/model"
)

func newSummaryUseCase(t *testing.T, now time.Time) (*GetSummaryUseCase, *gorm.DB) {
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

	uc := NewGetSummaryUseCase(persistence.NewStatsRepository(db))
	uc.now = func() time.Time { return now }
	return uc, db
}

func insertExpense(t *testing.T, db *gorm.DB, amount int64, month, year int) *entity.Expense {
	t.Helper()

	ledger := persistence.NewLedgerRepository(db)
	expense := entity.NewExpense("fixture", amount, year, month, 5, nil)
	if err := ledger.InsertExpense(context.Background(), expense); err != nil {
		t.Fatalf("failed to insert expense: %v", err)
	}
	return expense
}

func TestGetSummaryUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("aggregates counts and month totals", func(t *testing.T) {
		now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
		uc, db := newSummaryUseCase(t, now)
		ledger := persistence.NewLedgerRepository(db)

		insertExpense(t, db, 1500, 3, 2025)
		insertExpense(t, db, 2500, 3, 2025)
		insertExpense(t, db, 1000, 2, 2025)
		// Out of both windows.
		insertExpense(t, db, 9000, 12, 2024)

		tag := entity.NewTag("groceries", 0, 2025, 3, 1)
		if err := ledger.InsertTag(ctx, tag); err != nil {
			t.Fatalf("failed to insert tag: %v", err)
		}
		target := entity.NewTarget(tag.ID, 3, 2025, 10000, 0)
		if err := persistence.NewTargetRepository(db).Create(ctx, target); err != nil {
			t.Fatalf("failed to create target: %v", err)
		}
		stale := entity.NewTarget(tag.ID, 1, 2025, 10000, 0)
		if err := persistence.NewTargetRepository(db).Create(ctx, stale); err != nil {
			t.Fatalf("failed to create target: %v", err)
		}

		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.CurrentMonthTotal != 4000 {
			t.Errorf("expected current month total 4000, got %d", output.CurrentMonthTotal)
		}
		if output.LastMonthTotal != 1000 {
			t.Errorf("expected last month total 1000, got %d", output.LastMonthTotal)
		}
		if output.MonthOverMonthChange != 3000 {
			t.Errorf("expected change 3000, got %d", output.MonthOverMonthChange)
		}
		if output.TotalExpenses != 4 {
			t.Errorf("expected 4 expenses, got %d", output.TotalExpenses)
		}
		if output.TotalTags != 1 {
			t.Errorf("expected 1 tag, got %d", output.TotalTags)
		}
		if output.ActiveTargets != 1 {
			t.Errorf("expected 1 active target, got %d", output.ActiveTargets)
		}
		if output.Timestamp != now.Unix() {
			t.Errorf("expected timestamp %d, got %d", now.Unix(), output.Timestamp)
		}
	})

	t.Run("january compares against december of the previous year", func(t *testing.T) {
		now := time.Date(2025, time.January, 5, 8, 0, 0, 0, time.UTC)
		uc, db := newSummaryUseCase(t, now)

		insertExpense(t, db, 500, 1, 2025)
		insertExpense(t, db, 2000, 12, 2024)

		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.LastMonthTotal != 2000 {
			t.Errorf("expected last month to roll into 2024, got %d", output.LastMonthTotal)
		}
		if output.MonthOverMonthChange != -1500 {
			t.Errorf("expected negative change -1500, got %d", output.MonthOverMonthChange)
		}
	})

	t.Run("empty ledger yields zeroes", func(t *testing.T) {
		now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
		uc, _ := newSummaryUseCase(t, now)

		output, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.CurrentMonthTotal != 0 || output.TotalExpenses != 0 || output.ActiveTargets != 0 {
			t.Errorf("expected zeroed summary, got %+v", output)
		}
	})
}
