package expense

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	domainerror "github.com/financehub/server/internal/domain/error"
	"github.com/financehub/server/internal/integration/persistence/model"
)

func TestCreateExpenseUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("links existing tags and maintains counters and edges", func(t *testing.T) {
		db := newTestDB(t)
		ledger := newLedger(db)
		uc := NewCreateExpenseUseCase(ledger, nil)

		groceries := mustCreateTag(t, ledger, "groceries")
		food := mustCreateTag(t, ledger, "food")

		output, err := uc.Execute(ctx, CreateExpenseInput{
			Title:          "weekly shop",
			Amount:         4500,
			Year:           2025,
			Month:          3,
			Date:           14,
			ExistingTagIDs: []uuid.UUID{groceries.ID, food.ID},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := tagAmount(t, db, groceries.ID); got != 4500 {
			t.Errorf("expected groceries counter 4500, got %d", got)
		}
		if got := tagAmount(t, db, food.ID); got != 4500 {
			t.Errorf("expected food counter 4500, got %d", got)
		}
		if got := linkCount(t, db, output.Expense.ID); got != 2 {
			t.Errorf("expected 2 associations, got %d", got)
		}
		if got := edgeWeight(t, db, groceries.ID, food.ID); got != 1 {
			t.Errorf("expected edge groceries->food weight 1, got %d", got)
		}
		if got := edgeWeight(t, db, food.ID, groceries.ID); got != 1 {
			t.Errorf("expected edge food->groceries weight 1, got %d", got)
		}
		if len(output.AffectedTagIDs) != 2 {
			t.Errorf("expected 2 affected tags, got %d", len(output.AffectedTagIDs))
		}
	})

	t.Run("creates unknown tag names seeded with the expense amount", func(t *testing.T) {
		db := newTestDB(t)
		ledger := newLedger(db)
		uc := NewCreateExpenseUseCase(ledger, nil)

		output, err := uc.Execute(ctx, CreateExpenseInput{
			Title:       "lunch",
			Amount:      1200,
			Year:        2025,
			Month:       3,
			Date:        2,
			NewTagNames: []string{"restaurants"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.CreatedTags) != 1 {
			t.Fatalf("expected 1 created tag, got %d", len(output.CreatedTags))
		}

		created := output.CreatedTags[0]
		if created.Name != "restaurants" {
			t.Errorf("expected tag name restaurants, got %q", created.Name)
		}
		// Seeded on creation, not incremented afterwards.
		if got := tagAmount(t, db, created.ID); got != 1200 {
			t.Errorf("expected seeded counter 1200, got %d", got)
		}
		if got := linkCount(t, db, output.Expense.ID); got != 1 {
			t.Errorf("expected 1 association, got %d", got)
		}
	})

	t.Run("known tag name attaches instead of creating a duplicate", func(t *testing.T) {
		db := newTestDB(t)
		ledger := newLedger(db)
		uc := NewCreateExpenseUseCase(ledger, nil)

		groceries := mustCreateTag(t, ledger, "groceries")

		output, err := uc.Execute(ctx, CreateExpenseInput{
			Title:       "corner store",
			Amount:      800,
			Year:        2025,
			Month:       3,
			Date:        5,
			NewTagNames: []string{"groceries"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.CreatedTags) != 0 {
			t.Errorf("expected no created tags, got %d", len(output.CreatedTags))
		}
		if got := tagAmount(t, db, groceries.ID); got != 800 {
			t.Errorf("expected counter 800, got %d", got)
		}

		var tagCount int64
		if err := db.Model(&model.TagModel{}).Count(&tagCount).Error; err != nil {
			t.Fatalf("failed to count tags: %v", err)
		}
		if tagCount != 1 {
			t.Errorf("expected 1 tag row, got %d", tagCount)
		}
	})

	t.Run("duplicate tag references count once", func(t *testing.T) {
		db := newTestDB(t)
		ledger := newLedger(db)
		uc := NewCreateExpenseUseCase(ledger, nil)

		groceries := mustCreateTag(t, ledger, "groceries")

		output, err := uc.Execute(ctx, CreateExpenseInput{
			Title:          "double ref",
			Amount:         1000,
			Year:           2025,
			Month:          3,
			Date:           8,
			ExistingTagIDs: []uuid.UUID{groceries.ID, groceries.ID},
			NewTagNames:    []string{"groceries"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := tagAmount(t, db, groceries.ID); got != 1000 {
			t.Errorf("expected counter incremented once to 1000, got %d", got)
		}
		if got := linkCount(t, db, output.Expense.ID); got != 1 {
			t.Errorf("expected 1 association, got %d", got)
		}
		if len(output.AffectedTagIDs) != 1 {
			t.Errorf("expected 1 affected tag, got %d", len(output.AffectedTagIDs))
		}
	})

	t.Run("stale tag reference is skipped without losing the expense", func(t *testing.T) {
		db := newTestDB(t)
		ledger := newLedger(db)
		uc := NewCreateExpenseUseCase(ledger, nil)

		groceries := mustCreateTag(t, ledger, "groceries")

		output, err := uc.Execute(ctx, CreateExpenseInput{
			Title:          "partial refs",
			Amount:         500,
			Year:           2025,
			Month:          3,
			Date:           9,
			ExistingTagIDs: []uuid.UUID{uuid.New(), groceries.ID},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := linkCount(t, db, output.Expense.ID); got != 1 {
			t.Errorf("expected 1 association, got %d", got)
		}
		if got := tagAmount(t, db, groceries.ID); got != 500 {
			t.Errorf("expected counter 500, got %d", got)
		}
	})

	t.Run("concurrent creations accumulate both amounts", func(t *testing.T) {
		db := newTestDB(t)
		ledger := newLedger(db)
		uc := NewCreateExpenseUseCase(ledger, nil)

		groceries := mustCreateTag(t, ledger, "groceries")

		amounts := []int64{1500, 2500}
		var wg sync.WaitGroup
		errs := make([]error, len(amounts))
		for i, amount := range amounts {
			wg.Add(1)
			go func(i int, amount int64) {
				defer wg.Done()
				_, errs[i] = uc.Execute(ctx, CreateExpenseInput{
					Title:          "racing",
					Amount:         amount,
					Year:           2025,
					Month:          3,
					Date:           7,
					ExistingTagIDs: []uuid.UUID{groceries.ID},
				})
			}(i, amount)
		}
		wg.Wait()
		for i, err := range errs {
			if err != nil {
				t.Fatalf("creation %d failed: %v", i, err)
			}
		}

		if got := tagAmount(t, db, groceries.ID); got != 4000 {
			t.Errorf("expected counter 4000, got %d", got)
		}
	})

	t.Run("maintains the target spent counter for the expense period", func(t *testing.T) {
		db := newTestDB(t)
		ledger := newLedger(db)
		uc := NewCreateExpenseUseCase(ledger, nil)

		groceries := mustCreateTag(t, ledger, "groceries")
		target := model.TargetModel{
			ID:     uuid.New(),
			Month:  3,
			Year:   2025,
			TagID:  groceries.ID,
			Amount: 10000,
		}
		if err := db.Create(&target).Error; err != nil {
			t.Fatalf("failed to seed target: %v", err)
		}

		if _, err := uc.Execute(ctx, CreateExpenseInput{
			Title:          "market",
			Amount:         2500,
			Year:           2025,
			Month:          3,
			Date:           10,
			ExistingTagIDs: []uuid.UUID{groceries.ID},
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var reloaded model.TargetModel
		if err := db.First(&reloaded, "id = ?", target.ID).Error; err != nil {
			t.Fatalf("failed to reload target: %v", err)
		}
		if reloaded.Spent != 2500 {
			t.Errorf("expected target spent 2500, got %d", reloaded.Spent)
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		db := newTestDB(t)
		uc := NewCreateExpenseUseCase(newLedger(db), nil)

		cases := []struct {
			name  string
			input CreateExpenseInput
			want  error
		}{
			{"empty title", CreateExpenseInput{Title: "", Amount: 100, Year: 2025, Month: 3, Date: 1}, domainerror.ErrInvalidExpenseTitle},
			{"zero amount", CreateExpenseInput{Title: "x", Amount: 0, Year: 2025, Month: 3, Date: 1}, domainerror.ErrInvalidExpenseAmount},
			{"negative amount", CreateExpenseInput{Title: "x", Amount: -5, Year: 2025, Month: 3, Date: 1}, domainerror.ErrInvalidExpenseAmount},
			{"month out of range", CreateExpenseInput{Title: "x", Amount: 100, Year: 2025, Month: 13, Date: 1}, domainerror.ErrInvalidExpenseDate},
			{"day out of range", CreateExpenseInput{Title: "x", Amount: 100, Year: 2025, Month: 3, Date: 32}, domainerror.ErrInvalidExpenseDate},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := uc.Execute(ctx, tc.input)
				if !errors.Is(err, tc.want) {
					t.Errorf("expected %v, got %v", tc.want, err)
				}
			})
		}
	})
}
