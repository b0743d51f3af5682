// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/financehub/server/internal/application/adapter"
	"github.com/financehub/server/internal/domain/entity"
	"github.com/financehub/server/internal/integration/persistence/model"
)

// graphRepository implements the adapter.GraphRepository interface.
type graphRepository struct {
	db *gorm.DB
}

// NewGraphRepository creates a new graph repository instance.
func NewGraphRepository(db *gorm.DB) adapter.GraphRepository {
	return &graphRepository{
		db: db,
	}
}

// FindAllEdges retrieves every edge of the co-occurrence graph.
func (r *graphRepository) FindAllEdges(ctx context.Context) ([]*entity.GraphEdge, error) {
	var edgeModels []model.GraphEdgeModel
	result := r.db.WithContext(ctx).Find(&edgeModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEdgeEntities(edgeModels), nil
}

// ChangedSince returns edges created or updated after the given instant.
func (r *graphRepository) ChangedSince(ctx context.Context, since time.Time) ([]*entity.GraphEdge, error) {
	var edgeModels []model.GraphEdgeModel
	result := r.db.WithContext(ctx).
		Where("created_at > ? OR updated_at > ?", since, since).
		Order("created_at ASC").
		Find(&edgeModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toEdgeEntities(edgeModels), nil
}

func toEdgeEntities(edgeModels []model.GraphEdgeModel) []*entity.GraphEdge {
	edges := make([]*entity.GraphEdge, len(edgeModels))
	for i, em := range edgeModels {
		edges[i] = em.ToEntity()
	}
	return edges
}
