// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/financehub/server/internal/domain/entity"
)

// TargetModel represents the targets table in the database.
type TargetModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Month     int            `gorm:"not null;uniqueIndex:idx_target_key"`
	Year      int            `gorm:"not null;uniqueIndex:idx_target_key"`
	TagID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_target_key;index"`
	Amount    int64          `gorm:"type:bigint;not null"`
	Spent     int64          `gorm:"type:bigint;not null;default:0"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	Tag *TagModel `gorm:"foreignKey:TagID;references:ID"`
}

// TableName returns the table name for the TargetModel.
func (TargetModel) TableName() string {
	return "targets"
}

// ToEntity converts a TargetModel to a domain Target entity.
func (m *TargetModel) ToEntity() *entity.Target {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Target{
		ID:        m.ID,
		Month:     m.Month,
		Year:      m.Year,
		TagID:     m.TagID,
		Amount:    m.Amount,
		Spent:     m.Spent,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// ToEntityWithTag converts a TargetModel with its Tag to a TargetWithTag entity.
func (m *TargetModel) ToEntityWithTag() *entity.TargetWithTag {
	result := &entity.TargetWithTag{
		Target: m.ToEntity(),
	}

	if m.Tag != nil {
		result.Tag = m.Tag.ToEntity()
	}

	return result
}

// TargetFromEntity creates a TargetModel from a domain Target entity.
func TargetFromEntity(target *entity.Target) *TargetModel {
	var deletedAt gorm.DeletedAt
	if target.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *target.DeletedAt, Valid: true}
	}

	return &TargetModel{
		ID:        target.ID,
		Month:     target.Month,
		Year:      target.Year,
		TagID:     target.TagID,
		Amount:    target.Amount,
		Spent:     target.Spent,
		CreatedAt: target.CreatedAt,
		UpdatedAt: target.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
