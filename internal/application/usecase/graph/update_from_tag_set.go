// Package graph maintains the tag co-occurrence affinity graph.
package graph

import (
	"context"

	"github.com/google/uuid"
)

// EdgeWriter is the subset of the ledger store needed to strengthen edges.
type EdgeWriter interface {
	IncrementEdge(ctx context.Context, fromTagID, toTagID uuid.UUID) error
}

// UpdateFromTagSet records that the given tags co-occurred on one expense: for
// every unordered pair it increments the edge weight by one in both
// directions, creating missing edges with weight 1. Fewer than two tags is a
// no-op, and no self-loop edge is ever written.
//
// Edges are only ever strengthened by this path. Editing or deleting the
// originating expense does not weaken them; the graph models historical
// affinity, not current associations.
func UpdateFromTagSet(ctx context.Context, edges EdgeWriter, tagIDs []uuid.UUID) error {
	if len(tagIDs) < 2 {
		return nil
	}

	for i := 0; i < len(tagIDs); i++ {
		for j := i + 1; j < len(tagIDs); j++ {
			if tagIDs[i] == tagIDs[j] {
				continue
			}
			if err := edges.IncrementEdge(ctx, tagIDs[i], tagIDs[j]); err != nil {
				return err
			}
			if err := edges.IncrementEdge(ctx, tagIDs[j], tagIDs[i]); err != nil {
				return err
			}
		}
	}
	return nil
}
