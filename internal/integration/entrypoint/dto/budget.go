// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/spendwise/backend/internal/application/usecase/budget"
	"github.com/spendwise/backend/internal/domain/entity"
	"github.com/spendwise/backend/internal/domain/valueobject"
)

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Amount     float64 `json:"amount" binding:"required,gt=0"`
	Period     string  `json:"period,omitempty" binding:"omitempty,oneof=weekly monthly"`
	CategoryID *string `json:"category_id,omitempty"`
	StartDate  string  `json:"start_date,omitempty"`
}

// UpdateBudgetRequest represents the request body for budget update.
type UpdateBudgetRequest struct {
	Amount        *float64 `json:"amount,omitempty" binding:"omitempty,gt=0"`
	Period        *string  `json:"period,omitempty" binding:"omitempty,oneof=weekly monthly"`
	CategoryID    *string  `json:"category_id,omitempty"`
	ClearCategory bool     `json:"clear_category,omitempty"`
	StartDate     *string  `json:"start_date,omitempty"`
	IsActive      *bool    `json:"is_active,omitempty"`
}

// BudgetCategoryResponse represents category information in budget responses.
type BudgetCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Emoji string `json:"emoji"`
	Icon  string `json:"icon"`
}

// BudgetResponse represents a single budget in API responses.
type BudgetResponse struct {
	ID         string                  `json:"id"`
	Amount     string                  `json:"amount"`
	Period     string                  `json:"period"`
	CategoryID *string                 `json:"category_id,omitempty"`
	Category   *BudgetCategoryResponse `json:"category,omitempty"`
	StartDate  string                  `json:"start_date"`
	IsActive   bool                    `json:"is_active"`
	CreatedAt  time.Time               `json:"created_at"`
	UpdatedAt  time.Time               `json:"updated_at"`
}

// BudgetCycleResponse represents the analyzed billing cycle window.
type BudgetCycleResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// BudgetAnalysisResponse represents the budget-vs-actual analysis of one cycle.
type BudgetAnalysisResponse struct {
	Cycle            BudgetCycleResponse `json:"cycle"`
	BudgetAmount     string              `json:"budget_amount"`
	ActualSpent      string              `json:"actual_spent"`
	Remaining        string              `json:"remaining"`
	Percentage       float64             `json:"percentage"`
	IsOverBudget     bool                `json:"is_over_budget"`
	DaysInPeriod     int                 `json:"days_in_period"`
	DaysPassed       int                 `json:"days_passed"`
	DaysRemaining    int                 `json:"days_remaining"`
	DailyAverage     string              `json:"daily_average"`
	ProjectedTotal   string              `json:"projected_total"`
	RecommendedDaily string              `json:"recommended_daily"`
	Status           string              `json:"status"`
}

// BudgetInsightResponse represents a single insight message.
type BudgetInsightResponse struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// BudgetItemResponse represents a budget with its current-cycle analysis.
type BudgetItemResponse struct {
	Budget   BudgetResponse          `json:"budget"`
	Analysis BudgetAnalysisResponse  `json:"analysis"`
	Insights []BudgetInsightResponse `json:"insights"`
}

// BudgetListResponse represents the response for listing budgets.
type BudgetListResponse struct {
	Budgets []BudgetItemResponse `json:"budgets"`
}

// AnalyzeBudgetResponse represents the response for a single budget analysis.
type AnalyzeBudgetResponse struct {
	Budget   BudgetResponse          `json:"budget"`
	Analysis BudgetAnalysisResponse  `json:"analysis"`
	Insights []BudgetInsightResponse `json:"insights"`
}

// ToBudgetResponse converts a Budget entity to a BudgetResponse DTO.
func ToBudgetResponse(b *entity.Budget, category *entity.Category) BudgetResponse {
	response := BudgetResponse{
		ID:        b.ID.String(),
		Amount:    b.Amount.String(),
		Period:    string(b.Period),
		StartDate: b.StartDate.Format("2006-01-02"),
		IsActive:  b.IsActive,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	if b.CategoryID != nil {
		categoryID := *b.CategoryID
		response.CategoryID = &categoryID
	}

	if category != nil {
		response.Category = &BudgetCategoryResponse{
			ID:    category.ID,
			Name:  category.Name,
			Color: category.Color,
			Emoji: category.Emoji,
			Icon:  category.Icon,
		}
	}

	return response
}

// ToBudgetAnalysisResponse converts a BudgetAnalysis to its DTO.
func ToBudgetAnalysisResponse(analysis *valueobject.BudgetAnalysis) BudgetAnalysisResponse {
	return BudgetAnalysisResponse{
		Cycle: BudgetCycleResponse{
			StartDate: analysis.Cycle.Start.Format("2006-01-02"),
			EndDate:   analysis.Cycle.End.Format("2006-01-02"),
		},
		BudgetAmount:     analysis.BudgetAmount.String(),
		ActualSpent:      analysis.ActualSpent.String(),
		Remaining:        analysis.Remaining.String(),
		Percentage:       analysis.Percentage,
		IsOverBudget:     analysis.IsOverBudget,
		DaysInPeriod:     analysis.DaysInPeriod,
		DaysPassed:       analysis.DaysPassed,
		DaysRemaining:    analysis.DaysRemaining,
		DailyAverage:     analysis.DailyAverage.String(),
		ProjectedTotal:   analysis.ProjectedTotal.String(),
		RecommendedDaily: analysis.RecommendedDaily.String(),
		Status:           string(analysis.Status),
	}
}

// ToBudgetInsightResponses converts budget insights to their DTOs.
func ToBudgetInsightResponses(insights []valueobject.BudgetInsight) []BudgetInsightResponse {
	responses := make([]BudgetInsightResponse, len(insights))
	for i, insight := range insights {
		responses[i] = BudgetInsightResponse{
			Severity: string(insight.Severity),
			Message:  insight.Message,
		}
	}
	return responses
}

// ToBudgetItemResponse converts a BudgetItem to its DTO.
func ToBudgetItemResponse(item *budget.BudgetItem) BudgetItemResponse {
	return BudgetItemResponse{
		Budget:   ToBudgetResponse(item.Budget, item.Category),
		Analysis: ToBudgetAnalysisResponse(item.Analysis),
		Insights: ToBudgetInsightResponses(item.Insights),
	}
}

// ToBudgetListResponse converts a ListBudgetsOutput to BudgetListResponse.
func ToBudgetListResponse(output *budget.ListBudgetsOutput) BudgetListResponse {
	budgets := make([]BudgetItemResponse, len(output.Budgets))
	for i, item := range output.Budgets {
		budgets[i] = ToBudgetItemResponse(item)
	}
	return BudgetListResponse{
		Budgets: budgets,
	}
}

// ToAnalyzeBudgetResponse converts an AnalyzeBudgetOutput to its DTO.
func ToAnalyzeBudgetResponse(output *budget.AnalyzeBudgetOutput) AnalyzeBudgetResponse {
	return AnalyzeBudgetResponse{
		Budget:   ToBudgetResponse(output.Analysis.Budget, output.Analysis.Category),
		Analysis: ToBudgetAnalysisResponse(output.Analysis),
		Insights: ToBudgetInsightResponses(output.Insights),
	}
}
