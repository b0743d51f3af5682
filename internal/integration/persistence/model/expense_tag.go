// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/financehub/server/internal/domain/entity"
)

// ExpenseTagModel represents the expense_tags table in the database.
type ExpenseTagModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExpenseID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_expense_tag_pair"`
	TagID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_expense_tag_pair;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the ExpenseTagModel.
func (ExpenseTagModel) TableName() string {
	return "expense_tags"
}

// ToEntity converts an ExpenseTagModel to a domain ExpenseTag entity.
func (m *ExpenseTagModel) ToEntity() *entity.ExpenseTag {
	return &entity.ExpenseTag{
		ID:        m.ID,
		ExpenseID: m.ExpenseID,
		TagID:     m.TagID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ExpenseTagFromEntity creates an ExpenseTagModel from a domain ExpenseTag entity.
func ExpenseTagFromEntity(link *entity.ExpenseTag) *ExpenseTagModel {
	return &ExpenseTagModel{
		ID:        link.ID,
		ExpenseID: link.ExpenseID,
		TagID:     link.TagID,
		CreatedAt: link.CreatedAt,
		UpdatedAt: link.UpdatedAt,
	}
}
