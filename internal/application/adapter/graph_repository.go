// Package adapter defines interfaces for external dependencies (ports).
package adapter

import (
	"context"
	"time"

	"github.com/financehub/server/internal/domain/entity"
)

// GraphRepository defines the read side of the tag-affinity graph.
type GraphRepository interface {
	// FindAllEdges retrieves every edge of the co-occurrence graph.
	FindAllEdges(ctx context.Context) ([]*entity.GraphEdge, error)

	// ChangedSince returns edges created or updated after the given instant,
	// for sync deltas.
	ChangedSince(ctx context.Context, since time.Time) ([]*entity.GraphEdge, error)
}
