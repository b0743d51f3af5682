// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/financehub/server/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	LocalID   *int64         `gorm:"type:bigint"`
	Title     string         `gorm:"type:varchar(255);not null"`
	Amount    int64          `gorm:"type:bigint;not null"`
	Year      int            `gorm:"not null;index:idx_expense_period"`
	Month     int            `gorm:"not null;index:idx_expense_period"`
	Date      int            `gorm:"not null"`
	CreatedAt time.Time      `gorm:"not null;index"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	ExpenseTags []ExpenseTagModel `gorm:"foreignKey:ExpenseID;references:ID"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Expense{
		ID:        m.ID,
		LocalID:   m.LocalID,
		Title:     m.Title,
		Amount:    m.Amount,
		Year:      m.Year,
		Month:     m.Month,
		Date:      m.Date,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	var deletedAt gorm.DeletedAt
	if expense.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *expense.DeletedAt, Valid: true}
	}

	return &ExpenseModel{
		ID:        expense.ID,
		LocalID:   expense.LocalID,
		Title:     expense.Title,
		Amount:    expense.Amount,
		Year:      expense.Year,
		Month:     expense.Month,
		Date:      expense.Date,
		CreatedAt: expense.CreatedAt,
		UpdatedAt: expense.UpdatedAt,
		DeletedAt: deletedAt,
	}
}
