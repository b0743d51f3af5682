// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GraphEdge is a directed weighted edge in the tag co-occurrence graph. The
// weight counts how often the two tags were applied to the same expense and is
// monotonically non-decreasing outside of a full rebuild.
type GraphEdge struct {
	ID        uuid.UUID
	FromTagID uuid.UUID
	ToTagID   uuid.UUID
	Weight    int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGraphEdge creates a new edge with an initial weight of 1.
func NewGraphEdge(fromTagID, toTagID uuid.UUID) *GraphEdge {
	now := time.Now().UTC()

	return &GraphEdge{
		ID:        uuid.New(),
		FromTagID: fromTagID,
		ToTagID:   toTagID,
		Weight:    1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Recommendation is a single ranked entry produced by the recommendation
// engine for a seed tag.
type Recommendation struct {
	TagID   uuid.UUID
	TagName string
	Score   float64
}
