// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/financehub/server/internal/application/adapter"
	"github.com/financehub/server/internal/domain/entity"
	domainerror "github.com/financehub/server/internal/domain/error"
	"github.com/financehub/server/internal/integration/persistence/model"
)

// tagRepository implements the adapter.TagRepository interface.
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository instance.
func NewTagRepository(db *gorm.DB) adapter.TagRepository {
	return &tagRepository{
		db: db,
	}
}

// FindByID retrieves a non-deleted tag by its ID.
func (r *tagRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Tag, error) {
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

// List retrieves non-deleted tags ordered by name, optionally filtered by a
// case-insensitive substring search.
func (r *tagRepository) List(ctx context.Context, search string, limit int) ([]*entity.Tag, error) {
	query := r.db.WithContext(ctx).Model(&model.TagModel{})

	if search != "" {
		searchPattern := "%" + strings.ToLower(search) + "%"
		query = query.Where("LOWER(name) LIKE ?", searchPattern)
	}

	var tagModels []model.TagModel
	result := query.
		Order("name ASC").
		Limit(limit).
		Find(&tagModels)
	if result.Error != nil {
		return nil, result.Error
	}

	return toTagEntities(tagModels), nil
}

// FindAllActive retrieves every non-deleted tag.
func (r *tagRepository) FindAllActive(ctx context.Context) ([]*entity.Tag, error) {
	var tagModels []model.TagModel
	result := r.db.WithContext(ctx).Find(&tagModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTagEntities(tagModels), nil
}

// ChangedSince returns non-deleted tags created or updated after the given instant.
func (r *tagRepository) ChangedSince(ctx context.Context, since time.Time) ([]*entity.Tag, error) {
	var tagModels []model.TagModel
	result := r.db.WithContext(ctx).
		Where("created_at > ? OR updated_at > ?", since, since).
		Order("created_at ASC").
		Find(&tagModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toTagEntities(tagModels), nil
}

func toTagEntities(tagModels []model.TagModel) []*entity.Tag {
	tags := make([]*entity.Tag, len(tagModels))
	for i, tm := range tagModels {
		tags[i] = tm.ToEntity()
	}
	return tags
}
