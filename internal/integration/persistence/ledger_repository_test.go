package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/financehub/server/internal/application/adapter"
	"github.com/financehub/server/internal/domain/entity"
	domainerror "github.com/financehub/server/internal/domain/error"
	"github.com/financehub/server/internal/integration/persistence/model"
)

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

func insertTag(t *testing.T, repo adapter.LedgerRepository, name string, amount int64) *entity.Tag {
	t.Helper()

	tag := entity.NewTag(name, amount, 2025, 3, 1)
	if err := repo.InsertTag(context.Background(), tag); err != nil {
		t.Fatalf("failed to insert tag: %v", err)
	}
	return tag
}

func TestLedgerRepository_TagCounters(t *testing.T) {
	ctx := context.Background()

	t.Run("repeated adds accumulate to the exact sum", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewLedgerRepository(db)
		tag := insertTag(t, repo, "groceries", 0)

		for i := 0; i < 10; i++ {
			if err := repo.AddTagAmount(ctx, tag.ID, 250, 3, 2025); err != nil {
				t.Fatalf("add %d failed: %v", i, err)
			}
		}

		var m model.TagModel
		if err := db.First(&m, "id = ?", tag.ID).Error; err != nil {
			t.Fatalf("failed to reload tag: %v", err)
		}
		if m.MonthlyAmount != 2500 {
			t.Errorf("expected 2500, got %d", m.MonthlyAmount)
		}
		if m.CurrentMonth != 3 || m.CurrentYear != 2025 {
			t.Errorf("expected markers 3/2025, got %d/%d", m.CurrentMonth, m.CurrentYear)
		}
	})

	t.Run("concurrent adds do not lose an update", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewLedgerRepository(db)
		tag := insertTag(t, repo, "groceries", 0)

		const workers = 8
		const addsPerWorker = 25
		errs := make(chan error, workers)
		for w := 0; w < workers; w++ {
			go func() {
				for i := 0; i < addsPerWorker; i++ {
					if err := repo.AddTagAmount(ctx, tag.ID, 10, 3, 2025); err != nil {
						errs <- err
						return
					}
				}
				errs <- nil
			}()
		}
		for w := 0; w < workers; w++ {
			if err := <-errs; err != nil {
				t.Fatalf("concurrent add failed: %v", err)
			}
		}

		var m model.TagModel
		if err := db.First(&m, "id = ?", tag.ID).Error; err != nil {
			t.Fatalf("failed to reload tag: %v", err)
		}
		if want := int64(workers * addsPerWorker * 10); m.MonthlyAmount != want {
			t.Errorf("expected %d, got %d", want, m.MonthlyAmount)
		}
	})

	t.Run("subtract floors at zero", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewLedgerRepository(db)
		tag := insertTag(t, repo, "groceries", 300)

		if err := repo.SubtractTagAmount(ctx, tag.ID, 1000); err != nil {
			t.Fatalf("subtract failed: %v", err)
		}

		var m model.TagModel
		if err := db.First(&m, "id = ?", tag.ID).Error; err != nil {
			t.Fatalf("failed to reload tag: %v", err)
		}
		if m.MonthlyAmount != 0 {
			t.Errorf("expected floor at 0, got %d", m.MonthlyAmount)
		}
	})
}

func TestLedgerRepository_Associations(t *testing.T) {
	ctx := context.Background()

	t.Run("duplicate link is a no-op", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewLedgerRepository(db)
		tag := insertTag(t, repo, "groceries", 0)
		expense := entity.NewExpense("shop", 100, 2025, 3, 1, nil)
		if err := repo.InsertExpense(ctx, expense); err != nil {
			t.Fatalf("failed to insert expense: %v", err)
		}

		if err := repo.LinkTag(ctx, expense.ID, tag.ID); err != nil {
			t.Fatalf("first link failed: %v", err)
		}
		if err := repo.LinkTag(ctx, expense.ID, tag.ID); err != nil {
			t.Fatalf("duplicate link failed: %v", err)
		}

		var count int64
		if err := db.Model(&model.ExpenseTagModel{}).Where("expense_id = ?", expense.ID).Count(&count).Error; err != nil {
			t.Fatalf("failed to count links: %v", err)
		}
		if count != 1 {
			t.Errorf("expected 1 association row, got %d", count)
		}
	})

	t.Run("unlink reports whether the association existed", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewLedgerRepository(db)
		tag := insertTag(t, repo, "groceries", 0)
		expense := entity.NewExpense("shop", 100, 2025, 3, 1, nil)
		if err := repo.InsertExpense(ctx, expense); err != nil {
			t.Fatalf("failed to insert expense: %v", err)
		}
		if err := repo.LinkTag(ctx, expense.ID, tag.ID); err != nil {
			t.Fatalf("link failed: %v", err)
		}

		existed, err := repo.UnlinkTag(ctx, expense.ID, tag.ID)
		if err != nil {
			t.Fatalf("unlink failed: %v", err)
		}
		if !existed {
			t.Error("expected first unlink to report an existing association")
		}

		existed, err = repo.UnlinkTag(ctx, expense.ID, tag.ID)
		if err != nil {
			t.Fatalf("second unlink failed: %v", err)
		}
		if existed {
			t.Error("expected second unlink to report an absent association")
		}
	})
}

func TestLedgerRepository_Edges(t *testing.T) {
	ctx := context.Background()

	t.Run("increment creates then raises the edge weight", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewLedgerRepository(db)
		from, to := uuid.New(), uuid.New()

		for i := 0; i < 3; i++ {
			if err := repo.IncrementEdge(ctx, from, to); err != nil {
				t.Fatalf("increment %d failed: %v", i, err)
			}
		}

		var m model.GraphEdgeModel
		if err := db.First(&m, "from_tag_id = ? AND to_tag_id = ?", from, to).Error; err != nil {
			t.Fatalf("failed to load edge: %v", err)
		}
		if m.Weight != 3 {
			t.Errorf("expected weight 3, got %d", m.Weight)
		}

		// The reverse direction is a separate edge.
		err := db.First(&model.GraphEdgeModel{}, "from_tag_id = ? AND to_tag_id = ?", to, from).Error
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("expected no reverse edge, got %v", err)
		}
	})

	t.Run("delete all edges clears the graph", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewLedgerRepository(db)

		if err := repo.IncrementEdge(ctx, uuid.New(), uuid.New()); err != nil {
			t.Fatalf("increment failed: %v", err)
		}
		if err := repo.DeleteAllEdges(ctx); err != nil {
			t.Fatalf("delete failed: %v", err)
		}

		var count int64
		if err := db.Model(&model.GraphEdgeModel{}).Count(&count).Error; err != nil {
			t.Fatalf("failed to count edges: %v", err)
		}
		if count != 0 {
			t.Errorf("expected empty graph, got %d edges", count)
		}
	})
}

func TestLedgerRepository_TargetSpent(t *testing.T) {
	ctx := context.Background()

	t.Run("add and subtract are no-ops without a matching target", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewLedgerRepository(db)
		tagID := uuid.New()

		if err := repo.AddTargetSpent(ctx, tagID, 3, 2025, 500); err != nil {
			t.Fatalf("add without target failed: %v", err)
		}
		if err := repo.SubtractTargetSpent(ctx, tagID, 3, 2025, 500); err != nil {
			t.Fatalf("subtract without target failed: %v", err)
		}

		var count int64
		if err := db.Model(&model.TargetModel{}).Count(&count).Error; err != nil {
			t.Fatalf("failed to count targets: %v", err)
		}
		if count != 0 {
			t.Errorf("expected no target rows created, got %d", count)
		}
	})

	t.Run("only the matching period is touched", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewLedgerRepository(db)
		tagID := uuid.New()

		march := model.TargetModel{ID: uuid.New(), Month: 3, Year: 2025, TagID: tagID, Amount: 1000}
		april := model.TargetModel{ID: uuid.New(), Month: 4, Year: 2025, TagID: tagID, Amount: 1000}
		if err := db.Create(&march).Error; err != nil {
			t.Fatalf("failed to seed march target: %v", err)
		}
		if err := db.Create(&april).Error; err != nil {
			t.Fatalf("failed to seed april target: %v", err)
		}

		if err := repo.AddTargetSpent(ctx, tagID, 3, 2025, 400); err != nil {
			t.Fatalf("add failed: %v", err)
		}

		var reloaded model.TargetModel
		if err := db.First(&reloaded, "id = ?", march.ID).Error; err != nil {
			t.Fatalf("failed to reload march: %v", err)
		}
		if reloaded.Spent != 400 {
			t.Errorf("expected march spent 400, got %d", reloaded.Spent)
		}
		var reloadedApril model.TargetModel
		if err := db.First(&reloadedApril, "id = ?", april.ID).Error; err != nil {
			t.Fatalf("failed to reload april: %v", err)
		}
		if reloadedApril.Spent != 0 {
			t.Errorf("expected april spent untouched, got %d", reloadedApril.Spent)
		}
	})
}

func TestLedgerRepository_Atomic(t *testing.T) {
	ctx := context.Background()

	t.Run("an error rolls back every write", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewLedgerRepository(db)
		tag := insertTag(t, repo, "groceries", 0)

		boom := errors.New("boom")
		err := repo.Atomic(ctx, func(store adapter.LedgerStore) error {
			expense := entity.NewExpense("doomed", 900, 2025, 3, 1, nil)
			if err := store.InsertExpense(ctx, expense); err != nil {
				return err
			}
			if err := store.LinkTag(ctx, expense.ID, tag.ID); err != nil {
				return err
			}
			if err := store.AddTagAmount(ctx, tag.ID, 900, 3, 2025); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}

		var expenses, links int64
		if err := db.Model(&model.ExpenseModel{}).Count(&expenses).Error; err != nil {
			t.Fatalf("failed to count expenses: %v", err)
		}
		if err := db.Model(&model.ExpenseTagModel{}).Count(&links).Error; err != nil {
			t.Fatalf("failed to count links: %v", err)
		}
		if expenses != 0 || links != 0 {
			t.Errorf("expected rollback, got %d expenses and %d links", expenses, links)
		}

		var m model.TagModel
		if err := db.First(&m, "id = ?", tag.ID).Error; err != nil {
			t.Fatalf("failed to reload tag: %v", err)
		}
		if m.MonthlyAmount != 0 {
			t.Errorf("expected counter rolled back to 0, got %d", m.MonthlyAmount)
		}
	})

	t.Run("lookups map missing rows to domain errors", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewLedgerRepository(db)

		if _, err := repo.ExpenseByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Errorf("expected ErrExpenseNotFound, got %v", err)
		}
		if _, err := repo.TagByID(ctx, uuid.New()); !errors.Is(err, domainerror.ErrTagNotFound) {
			t.Errorf("expected ErrTagNotFound, got %v", err)
		}
		if _, err := repo.TagByName(ctx, "nope"); !errors.Is(err, domainerror.ErrTagNotFound) {
			t.Errorf("expected ErrTagNotFound, got %v", err)
		}
	})
}
