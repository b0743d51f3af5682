// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/financehub/server/internal/domain/entity"
)

// TagModel represents the tags table in the database.
type TagModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	LocalID       *int64         `gorm:"type:bigint"`
	Name          string         `gorm:"type:varchar(100);not null;uniqueIndex:idx_tag_name"`
	MonthlyAmount int64          `gorm:"type:bigint;not null;default:0"`
	CurrentMonth  int            `gorm:"not null;default:0"`
	CurrentYear   int            `gorm:"not null;default:0"`
	CreatedDay    int            `gorm:"not null;default:0"`
	CreatedMonth  int            `gorm:"not null;default:0"`
	CreatedYear   int            `gorm:"not null;default:0"`
	CreatedAt     time.Time      `gorm:"not null"`
	UpdatedAt     time.Time      `gorm:"not null"`
	DeletedAt     gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the TagModel.
func (TagModel) TableName() string {
	return "tags"
}

// ToEntity converts a TagModel to a domain Tag entity.
func (m *TagModel) ToEntity() *entity.Tag {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Tag{
		ID:            m.ID,
		LocalID:       m.LocalID,
		Name:          m.Name,
		MonthlyAmount: m.MonthlyAmount,
		CurrentMonth:  m.CurrentMonth,
		CurrentYear:   m.CurrentYear,
		CreatedDay:    m.CreatedDay,
		CreatedMonth:  m.CreatedMonth,
		CreatedYear:   m.CreatedYear,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}

// TagFromEntity creates a TagModel from a domain Tag entity.
func TagFromEntity(tag *entity.Tag) *TagModel {
	var deletedAt gorm.DeletedAt
	if tag.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *tag.DeletedAt, Valid: true}
	}

	return &TagModel{
		ID:            tag.ID,
		LocalID:       tag.LocalID,
		Name:          tag.Name,
		MonthlyAmount: tag.MonthlyAmount,
		CurrentMonth:  tag.CurrentMonth,
		CurrentYear:   tag.CurrentYear,
		CreatedDay:    tag.CreatedDay,
		CreatedMonth:  tag.CreatedMonth,
		CreatedYear:   tag.CreatedYear,
		CreatedAt:     tag.CreatedAt,
		UpdatedAt:     tag.UpdatedAt,
		DeletedAt:     deletedAt,
	}
}
