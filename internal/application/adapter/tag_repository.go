// Package adapter defines interfaces for external dependencies (ports).
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/financehub/server/internal/domain/entity"
)

// TagRepository defines the read side of tag persistence.
type TagRepository interface {
	// FindByID retrieves a non-deleted tag by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tag, error)

	// List retrieves non-deleted tags ordered by name, optionally filtered by
	// a case-insensitive substring search.
	List(ctx context.Context, search string, limit int) ([]*entity.Tag, error)

	// FindAllActive retrieves every non-deleted tag, for recommendation runs.
	FindAllActive(ctx context.Context) ([]*entity.Tag, error)

	// ChangedSince returns non-deleted tags created or updated after the given
	// instant, for sync deltas.
	ChangedSince(ctx context.Context, since time.Time) ([]*entity.Tag, error)
}
