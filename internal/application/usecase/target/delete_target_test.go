package target

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainerror "github.com/financehub/server/internal/domain/error"
	"github.com/financehub/server/internal/integration/persistence/model"
)

func TestDeleteTargetUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("soft-deletes the target", func(t *testing.T) {
		f := newFixtures(t)
		create := NewCreateTargetUseCase(f.targets, f.tags)
		del := NewDeleteTargetUseCase(f.targets)

		tag := f.createTag(t, "groceries")
		created, err := create.Execute(ctx, CreateTargetInput{
			TagID:  tag.ID,
			Month:  3,
			Year:   2025,
			Amount: 10000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output, err := del.Execute(ctx, DeleteTargetInput{TargetID: created.Target.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.TargetID != created.Target.ID {
			t.Errorf("expected deleted id %s, got %s", created.Target.ID, output.TargetID)
		}

		err = f.db.First(&model.TargetModel{}, "id = ?", created.Target.ID).Error
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("expected target hidden from default scope, got %v", err)
		}
		var count int64
		if err := f.db.Unscoped().Model(&model.TargetModel{}).Where("id = ?", created.Target.ID).Count(&count).Error; err != nil {
			t.Fatalf("failed to count unscoped: %v", err)
		}
		if count != 1 {
			t.Errorf("expected soft-deleted row retained, got %d", count)
		}
	})

	t.Run("unknown target maps to a domain error", func(t *testing.T) {
		f := newFixtures(t)
		del := NewDeleteTargetUseCase(f.targets)

		_, err := del.Execute(ctx, DeleteTargetInput{TargetID: uuid.New()})
		if !errors.Is(err, domainerror.ErrTargetNotFound) {
			t.Errorf("expected ErrTargetNotFound, got %v", err)
		}
	})
}
