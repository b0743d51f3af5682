// Package adapter defines interfaces for external dependencies (ports).
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/financehub/server/internal/domain/entity"
)

// RecommendationCache caches ranked recommendation lists per seed tag.
// Implementations are best-effort: a cache failure must never fail a read.
type RecommendationCache interface {
	// Get returns the cached recommendations for the seed tag and whether a
	// cached entry was present.
	Get(ctx context.Context, seedTagID uuid.UUID) ([]entity.Recommendation, bool, error)

	// Set stores the recommendations for the seed tag.
	Set(ctx context.Context, seedTagID uuid.UUID, recommendations []entity.Recommendation) error

	// Invalidate drops cached entries for every given tag. Called after an
	// expense mutation touches their aggregates or edges.
	Invalidate(ctx context.Context, tagIDs []uuid.UUID) error
}
