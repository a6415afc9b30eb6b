// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/lib/pq"

	"github.com/spendwise/backend/internal/domain/entity"
)

// CategoryModel represents the categories table in the database.
// The catalog is keyed by slug so expenses and budgets reference it without
// a lookup table.
type CategoryModel struct {
	ID        string         `gorm:"type:varchar(50);primaryKey"`
	Name      string         `gorm:"type:varchar(50);not null"`
	Color     string         `gorm:"type:varchar(7);default:'#6366F1'"`
	Emoji     string         `gorm:"type:varchar(8)"`
	Icon      string         `gorm:"type:varchar(50);default:'tag'"`
	Keywords  pq.StringArray `gorm:"type:text[]"` // Rule-based categorizer terms
	SortOrder int            `gorm:"not null;default:0"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity converts a CategoryModel to a domain Category entity.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:        m.ID,
		Name:      m.Name,
		Color:     m.Color,
		Emoji:     m.Emoji,
		Icon:      m.Icon,
		Keywords:  []string(m.Keywords),
		SortOrder: m.SortOrder,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// CategoryFromEntity creates a CategoryModel from a domain Category entity.
func CategoryFromEntity(category *entity.Category) *CategoryModel {
	return &CategoryModel{
		ID:        category.ID,
		Name:      category.Name,
		Color:     category.Color,
		Emoji:     category.Emoji,
		Icon:      category.Icon,
		Keywords:  pq.StringArray(category.Keywords),
		SortOrder: category.SortOrder,
		CreatedAt: category.CreatedAt,
		UpdatedAt: category.UpdatedAt,
	}
}
