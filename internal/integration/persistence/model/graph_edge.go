// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/financehub/server/internal/domain/entity"
)

// GraphEdgeModel represents the graph_edges table in the database.
type GraphEdgeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FromTagID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_graph_edge_pair;index"`
	ToTagID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_graph_edge_pair"`
	Weight    int64     `gorm:"type:bigint;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GraphEdgeModel.
func (GraphEdgeModel) TableName() string {
	return "graph_edges"
}

// ToEntity converts a GraphEdgeModel to a domain GraphEdge entity.
func (m *GraphEdgeModel) ToEntity() *entity.GraphEdge {
	return &entity.GraphEdge{
		ID:        m.ID,
		FromTagID: m.FromTagID,
		ToTagID:   m.ToTagID,
		Weight:    m.Weight,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// GraphEdgeFromEntity creates a GraphEdgeModel from a domain GraphEdge entity.
func GraphEdgeFromEntity(edge *entity.GraphEdge) *GraphEdgeModel {
	return &GraphEdgeModel{
		ID:        edge.ID,
		FromTagID: edge.FromTagID,
		ToTagID:   edge.ToTagID,
		Weight:    edge.Weight,
		CreatedAt: edge.CreatedAt,
		UpdatedAt: edge.UpdatedAt,
	}
}
