// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/spendwise/backend/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	CategoryID  string          `gorm:"type:varchar(50);index"` // Catalog slug; empty = uncategorized
	Description string          `gorm:"type:varchar(255);not null"`
	Date        time.Time       `gorm:"type:timestamptz;not null;index"`
	Notes       string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
	DeletedAt   gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
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
		ID:          m.ID,
		Amount:      m.Amount,
		CategoryID:  m.CategoryID,
		Description: m.Description,
		Date:        m.Date,
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}

// ToEntityWithCategory converts an ExpenseModel with its Category to an ExpenseWithCategory entity.
func (m *ExpenseModel) ToEntityWithCategory() *entity.ExpenseWithCategory {
	result := &entity.ExpenseWithCategory{
		Expense: m.ToEntity(),
	}

	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}

	return result
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	var deletedAt gorm.DeletedAt
	if expense.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *expense.DeletedAt, Valid: true}
	}

	return &ExpenseModel{
		ID:          expense.ID,
		Amount:      expense.Amount,
		CategoryID:  expense.CategoryID,
		Description: expense.Description,
		Date:        expense.Date,
		Notes:       expense.Notes,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
		DeletedAt:   deletedAt,
	}
}
