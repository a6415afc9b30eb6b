// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// DefaultCategoryColor is the default color for categories.
const DefaultCategoryColor = "#6366F1"

// DefaultCategoryIcon is the default icon for categories.
const DefaultCategoryIcon = "tag"

// Category represents an expense category from the static catalog.
// Categories are identified by stable slug IDs (e.g. "food", "transport")
// so expenses and budgets can reference them without a lookup table join.
type Category struct {
	ID        string
	Name      string
	Color     string
	Emoji     string
	Icon      string
	Keywords  []string // lowercase terms used by the rule-based categorizer fallback
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
// Note: Defaulting logic for color and icon should be applied in the Application layer (UseCase)
// before calling this constructor.
func NewCategory(id, name, color, emoji, icon string, keywords []string, sortOrder int) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        id,
		Name:      name,
		Color:     color,
		Emoji:     emoji,
		Icon:      icon,
		Keywords:  keywords,
		SortOrder: sortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CategoryWithStats represents a category with expense statistics.
type CategoryWithStats struct {
	Category     *Category
	ExpenseCount int
	PeriodTotal  float64
}
