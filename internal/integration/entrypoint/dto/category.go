// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/spendwise/backend/internal/application/usecase/category"
)

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Color        string  `json:"color"`
	Emoji        string  `json:"emoji"`
	Icon         string  `json:"icon"`
	SortOrder    int     `json:"sort_order"`
	ExpenseCount int     `json:"expense_count"`
	PeriodTotal  float64 `json:"period_total"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a CategoryOutput to a CategoryResponse DTO.
func ToCategoryResponse(output *category.CategoryOutput) CategoryResponse {
	return CategoryResponse{
		ID:           output.ID,
		Name:         output.Name,
		Color:        output.Color,
		Emoji:        output.Emoji,
		Icon:         output.Icon,
		SortOrder:    output.SortOrder,
		ExpenseCount: output.ExpenseCount,
		PeriodTotal:  output.PeriodTotal,
	}
}

// ToCategoryListResponse converts a list of CategoryOutput to CategoryListResponse.
func ToCategoryListResponse(outputs []*category.CategoryOutput) CategoryListResponse {
	categories := make([]CategoryResponse, len(outputs))
	for i, output := range outputs {
		categories[i] = ToCategoryResponse(output)
	}
	return CategoryListResponse{
		Categories: categories,
	}
}
