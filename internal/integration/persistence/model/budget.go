// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/spendwise/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
// Cycles are never stored; they are recomputed from start_date on read.
type BudgetModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Amount     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Period     string          `gorm:"type:varchar(10);not null"`
	CategoryID *string         `gorm:"type:varchar(50);index"` // nil = whole-spend budget
	StartDate  time.Time       `gorm:"type:timestamptz;not null"`
	IsActive   bool            `gorm:"not null;default:true;index"`
	CreatedAt  time.Time       `gorm:"not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
	DeletedAt  gorm.DeletedAt  `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	Category *CategoryModel `gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	return &entity.Budget{
		ID:         m.ID,
		Amount:     m.Amount,
		Period:     entity.BudgetPeriod(m.Period),
		CategoryID: m.CategoryID,
		StartDate:  m.StartDate,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}

// ToEntityWithCategory converts a BudgetModel with its Category to a BudgetWithCategory entity.
func (m *BudgetModel) ToEntityWithCategory() *entity.BudgetWithCategory {
	result := &entity.BudgetWithCategory{
		Budget: m.ToEntity(),
	}

	if m.Category != nil {
		result.Category = m.Category.ToEntity()
	}

	return result
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	var deletedAt gorm.DeletedAt
	if budget.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *budget.DeletedAt, Valid: true}
	}

	return &BudgetModel{
		ID:         budget.ID,
		Amount:     budget.Amount,
		Period:     string(budget.Period),
		CategoryID: budget.CategoryID,
		StartDate:  budget.StartDate,
		IsActive:   budget.IsActive,
		CreatedAt:  budget.CreatedAt,
		UpdatedAt:  budget.UpdatedAt,
		DeletedAt:  deletedAt,
	}
}
