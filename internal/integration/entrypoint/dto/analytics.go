// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/spendwise/backend/internal/application/usecase/analytics"
)

// SummaryCategoryResponse represents category information in summary responses.
type SummaryCategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Emoji string `json:"emoji"`
	Icon  string `json:"icon"`
}

// CategorySpendingResponse represents one row of the spending breakdown.
type CategorySpendingResponse struct {
	Category     SummaryCategoryResponse `json:"category"`
	TotalAmount  string                  `json:"total_amount"`
	Percentage   float64                 `json:"percentage"`
	ExpenseCount int                     `json:"expense_count"`
}

// SummaryResponse represents the response for a spending summary.
type SummaryResponse struct {
	Period       string                     `json:"period"`
	StartDate    string                     `json:"start_date"`
	EndDate      string                     `json:"end_date"`
	TotalAmount  string                     `json:"total_amount"`
	ExpenseCount int                        `json:"expense_count"`
	Breakdown    []CategorySpendingResponse `json:"breakdown"`
}

// StreakResponse represents the response for the tracking streak.
type StreakResponse struct {
	CurrentStreak int  `json:"current_streak"`
	ActiveToday   bool `json:"active_today"`
}

// TrendPointResponse represents one day in the spending trend series.
type TrendPointResponse struct {
	Date         string `json:"date"`
	TotalAmount  string `json:"total_amount"`
	ExpenseCount int    `json:"expense_count"`
}

// TrendsResponse represents the response for daily spending trends.
type TrendsResponse struct {
	StartDate string               `json:"start_date"`
	EndDate   string               `json:"end_date"`
	Trends    []TrendPointResponse `json:"trends"`
}

// ToSummaryResponse converts a GetSummaryOutput to a SummaryResponse DTO.
func ToSummaryResponse(output *analytics.GetSummaryOutput) SummaryResponse {
	summary := output.Summary

	breakdown := make([]CategorySpendingResponse, len(summary.Breakdown))
	for i, row := range summary.Breakdown {
		breakdown[i] = CategorySpendingResponse{
			Category: SummaryCategoryResponse{
				ID:    row.Category.ID,
				Name:  row.Category.Name,
				Color: row.Category.Color,
				Emoji: row.Category.Emoji,
				Icon:  row.Category.Icon,
			},
			TotalAmount:  row.TotalAmount.String(),
			Percentage:   row.Percentage,
			ExpenseCount: row.ExpenseCount,
		}
	}

	return SummaryResponse{
		Period:       string(output.Period),
		StartDate:    summary.Interval.Start.Format("2006-01-02"),
		EndDate:      summary.Interval.End.Format("2006-01-02"),
		TotalAmount:  summary.TotalAmount.String(),
		ExpenseCount: summary.ExpenseCount,
		Breakdown:    breakdown,
	}
}

// ToStreakResponse converts a GetStreakOutput to a StreakResponse DTO.
func ToStreakResponse(output *analytics.GetStreakOutput) StreakResponse {
	return StreakResponse{
		CurrentStreak: output.CurrentStreak,
		ActiveToday:   output.ActiveToday,
	}
}

// ToTrendsResponse converts a GetTrendsOutput to a TrendsResponse DTO.
func ToTrendsResponse(output *analytics.GetTrendsOutput) TrendsResponse {
	trends := make([]TrendPointResponse, len(output.Trends))
	for i, point := range output.Trends {
		trends[i] = TrendPointResponse{
			Date:         point.Date.Format("2006-01-02"),
			TotalAmount:  point.TotalAmount.String(),
			ExpenseCount: point.ExpenseCount,
		}
	}

	return TrendsResponse{
		StartDate: output.Interval.Start.Format("2006-01-02"),
		EndDate:   output.Interval.End.Format("2006-01-02"),
		Trends:    trends,
	}
}
