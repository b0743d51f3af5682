package expense

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	domainerror "github.com/financehub/server/internal/domain/error"
	"github.com/financehub/server/internal/integration/persistence/model"
)

func TestUpdateExpenseUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("refunds removed tags with the old amount and charges added tags with the new one", func(t *testing.T) {
		db := newTestDB(t)
		ledger := newLedger(db)
		create := NewCreateExpenseUseCase(ledger, nil)
		update := NewUpdateExpenseUseCase(ledger, nil)

		groceries := mustCreateTag(t, ledger, "groceries")
		transport := mustCreateTag(t, ledger, "transport")

		created, err := create.Execute(ctx, CreateExpenseInput{
			Title:          "misc",
			Amount:         3000,
			Year:           2025,
			Month:          3,
			Date:           4,
			ExistingTagIDs: []uuid.UUID{groceries.ID},
		})
		if err != nil {
			t.Fatalf("failed to create expense: %v", err)
		}

		// Amount changes 3000 -> 5000; groceries is removed, transport added.
		// The refund uses the old amount, the charge uses the new one.
		output, err := update.Execute(ctx, UpdateExpenseInput{
			ExpenseID:         created.Expense.ID,
			Title:             "misc updated",
			Amount:            5000,
			Year:              2025,
			Month:             3,
			Date:              4,
			AddExistingTagIDs: []uuid.UUID{transport.ID},
			RemoveTagIDs:      []uuid.UUID{groceries.ID},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := tagAmount(t, db, groceries.ID); got != 0 {
			t.Errorf("expected groceries counter refunded to 0, got %d", got)
		}
		if got := tagAmount(t, db, transport.ID); got != 5000 {
			t.Errorf("expected transport counter 5000, got %d", got)
		}
		if output.Expense.Amount != 5000 {
			t.Errorf("expected amount 5000, got %d", output.Expense.Amount)
		}
		if output.Expense.Title != "misc updated" {
			t.Errorf("expected updated title, got %q", output.Expense.Title)
		}
		if got := linkCount(t, db, created.Expense.ID); got != 1 {
			t.Errorf("expected 1 association after swap, got %d", got)
		}
	})

	t.Run("removal floors the tag counter at zero", func(t *testing.T) {
		db := newTestDB(t)
		ledger := newLedger(db)
		create := NewCreateExpenseUseCase(ledger, nil)
		update := NewUpdateExpenseUseCase(ledger, nil)

		groceries := mustCreateTag(t, ledger, "groceries")

		created, err := create.Execute(ctx, CreateExpenseInput{
			Title:          "shrinking",
			Amount:         1000,
			Year:           2025,
			Month:          3,
			Date:           6,
			ExistingTagIDs: []uuid.UUID{groceries.ID},
		})
		if err != nil {
			t.Fatalf("failed to create expense: %v", err)
		}

		// Drain the counter behind the use case's back, then remove the tag.
		if err := db.Model(&model.TagModel{}).Where("id = ?", groceries.ID).Update("monthly_amount", 300).Error; err != nil {
			t.Fatalf("failed to drain counter: %v", err)
		}

		if _, err := update.Execute(ctx, UpdateExpenseInput{
			ExpenseID:    created.Expense.ID,
			Title:        "shrinking",
			Amount:       1000,
			Year:         2025,
			Month:        3,
			Date:         6,
			RemoveTagIDs: []uuid.UUID{groceries.ID},
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := tagAmount(t, db, groceries.ID); got != 0 {
			t.Errorf("expected counter floored at 0, got %d", got)
		}
	})

	t.Run("removing an absent association leaves counters alone", func(t *testing.T) {
		db := newTestDB(t)
		ledger := newLedger(db)
		create := NewCreateExpenseUseCase(ledger, nil)
		update := NewUpdateExpenseUseCase(ledger, nil)

		groceries := mustCreateTag(t, ledger, "groceries")
		unrelated := mustCreateTag(t, ledger, "unrelated")

		created, err := create.Execute(ctx, CreateExpenseInput{
			Title:          "stable",
			Amount:         700,
			Year:           2025,
			Month:          3,
			Date:           7,
			ExistingTagIDs: []uuid.UUID{groceries.ID},
		})
		if err != nil {
			t.Fatalf("failed to create expense: %v", err)
		}

		if _, err := update.Execute(ctx, UpdateExpenseInput{
			ExpenseID:    created.Expense.ID,
			Title:        "stable",
			Amount:       700,
			Year:         2025,
			Month:        3,
			Date:         7,
			RemoveTagIDs: []uuid.UUID{unrelated.ID},
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := tagAmount(t, db, unrelated.ID); got != 0 {
			t.Errorf("expected unrelated counter untouched, got %d", got)
		}
		if got := tagAmount(t, db, groceries.ID); got != 700 {
			t.Errorf("expected groceries counter unchanged at 700, got %d", got)
		}
	})

	t.Run("strengthens edges from the resulting tag set", func(t *testing.T) {
		db := newTestDB(t)
		ledger := newLedger(db)
		create := NewCreateExpenseUseCase(ledger, nil)
		update := NewUpdateExpenseUseCase(ledger, nil)

		groceries := mustCreateTag(t, ledger, "groceries")
		food := mustCreateTag(t, ledger, "food")

		created, err := create.Execute(ctx, CreateExpenseInput{
			Title:          "combo",
			Amount:         900,
			Year:           2025,
			Month:          3,
			Date:           11,
			ExistingTagIDs: []uuid.UUID{groceries.ID},
		})
		if err != nil {
			t.Fatalf("failed to create expense: %v", err)
		}

		if _, err := update.Execute(ctx, UpdateExpenseInput{
			ExpenseID:         created.Expense.ID,
			Title:             "combo",
			Amount:            900,
			Year:              2025,
			Month:             3,
			Date:              11,
			AddExistingTagIDs: []uuid.UUID{food.ID},
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got := edgeWeight(t, db, groceries.ID, food.ID); got != 1 {
			t.Errorf("expected edge groceries->food weight 1, got %d", got)
		}
		if got := edgeWeight(t, db, food.ID, groceries.ID); got != 1 {
			t.Errorf("expected edge food->groceries weight 1, got %d", got)
		}
	})

	t.Run("unknown expense yields a not found error", func(t *testing.T) {
		db := newTestDB(t)
		update := NewUpdateExpenseUseCase(newLedger(db), nil)

		_, err := update.Execute(ctx, UpdateExpenseInput{
			ExpenseID: uuid.New(),
			Title:     "ghost",
			Amount:    100,
			Year:      2025,
			Month:     3,
			Date:      1,
		})
		if !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Errorf("expected ErrExpenseNotFound, got %v", err)
		}
	})
}
