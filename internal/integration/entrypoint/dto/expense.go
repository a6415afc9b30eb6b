// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/spendwise/backend/internal/application/usecase/expense"
)

// CreateExpenseRequest represents the request body for expense creation.
type CreateExpenseRequest struct {
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	CategoryID  string  `json:"category_id,omitempty"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Date        string  `json:"date,omitempty"`
	Notes       string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Amount        *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	CategoryID    *string  `json:"category_id,omitempty"`
	ClearCategory bool     `json:"clear_category,omitempty"`
	Description   *string  `json:"description,omitempty" binding:"omitempty,min=1,max=255"`
	Date          *string  `json:"date,omitempty"`
	Notes         *string  `json:"notes,omitempty" binding:"omitempty,max=1000"`
}

// ExpenseCategoryResponse represents category information in expense responses.
type ExpenseCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Emoji string `json:"emoji"`
	Icon  string `json:"icon"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string                   `json:"id"`
	Amount      string                   `json:"amount"`
	CategoryID  string                   `json:"category_id,omitempty"`
	Category    *ExpenseCategoryResponse `json:"category,omitempty"`
	Description string                   `json:"description"`
	Date        string                   `json:"date"`
	Notes       string                   `json:"notes"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   time.Time                `json:"updated_at"`
}

// ExpensePaginationResponse represents pagination information in API responses.
type ExpensePaginationResponse struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses   []ExpenseResponse         `json:"expenses"`
	Pagination ExpensePaginationResponse `json:"pagination"`
}

// ToExpenseResponse converts an ExpenseOutput to an ExpenseResponse DTO.
func ToExpenseResponse(exp *expense.ExpenseOutput) ExpenseResponse {
	response := ExpenseResponse{
		ID:          exp.ID.String(),
		Amount:      exp.Amount.String(),
		CategoryID:  exp.CategoryID,
		Description: exp.Description,
		Date:        exp.Date.Format("2006-01-02"),
		Notes:       exp.Notes,
		CreatedAt:   exp.CreatedAt,
		UpdatedAt:   exp.UpdatedAt,
	}

	if exp.Category != nil {
		response.Category = &ExpenseCategoryResponse{
			ID:    exp.Category.ID,
			Name:  exp.Category.Name,
			Color: exp.Category.Color,
			Emoji: exp.Category.Emoji,
			Icon:  exp.Category.Icon,
		}
	}

	return response
}

// ToExpenseListResponse converts a ListExpensesOutput to ExpenseListResponse.
func ToExpenseListResponse(output *expense.ListExpensesOutput) ExpenseListResponse {
	expenses := make([]ExpenseResponse, len(output.Expenses))
	for i, exp := range output.Expenses {
		expenses[i] = ToExpenseResponse(exp)
	}
	return ExpenseListResponse{
		Expenses: expenses,
		Pagination: ExpensePaginationResponse{
			Page:       output.Pagination.Page,
			Limit:      output.Pagination.Limit,
			Total:      output.Pagination.Total,
			TotalPages: output.Pagination.TotalPages,
		},
	}
}
