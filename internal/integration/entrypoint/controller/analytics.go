// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/application/usecase/analytics"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
)

// AnalyticsController handles analytics endpoints.
type AnalyticsController struct {
	summaryUseCase *analytics.GetSummaryUseCase
	streakUseCase  *analytics.GetStreakUseCase
	trendsUseCase  *analytics.GetTrendsUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(
	summaryUseCase *analytics.GetSummaryUseCase,
	streakUseCase *analytics.GetStreakUseCase,
	trendsUseCase *analytics.GetTrendsUseCase,
) *AnalyticsController {
	return &AnalyticsController{
		summaryUseCase: summaryUseCase,
		streakUseCase:  streakUseCase,
		trendsUseCase:  trendsUseCase,
	}
}

// Summary handles GET /analytics/summary requests. The window is either a
// symbolic period resolved against reference_date or an explicit
// start_date/end_date pair.
func (c *AnalyticsController) Summary(ctx *gin.Context) {
	reference, ok := parseReferenceDate(ctx)
	if !ok {
		return
	}

	input := analytics.GetSummaryInput{
		Period:    analytics.Period(ctx.DefaultQuery("period", string(analytics.PeriodMonth))),
		Reference: reference,
	}

	startDate, endDate, ok := c.parseRangeDates(ctx)
	if !ok {
		return
	}
	input.StartDate = startDate
	input.EndDate = endDate

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	response := dto.ToSummaryResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// Streak handles GET /analytics/streak requests.
func (c *AnalyticsController) Streak(ctx *gin.Context) {
	reference, ok := parseReferenceDate(ctx)
	if !ok {
		return
	}

	input := analytics.GetStreakInput{
		Reference: reference,
	}

	output, err := c.streakUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	response := dto.ToStreakResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// Trends handles GET /analytics/trends requests. The series covers the
// explicit start_date/end_date range, or the trailing days window ending at
// reference_date.
func (c *AnalyticsController) Trends(ctx *gin.Context) {
	reference, ok := parseReferenceDate(ctx)
	if !ok {
		return
	}

	input := analytics.GetTrendsInput{
		Reference: reference,
	}

	if daysStr := ctx.Query("days"); daysStr != "" {
		if days, err := strconv.Atoi(daysStr); err == nil {
			input.Days = days
		}
	}

	startDate, endDate, ok := c.parseRangeDates(ctx)
	if !ok {
		return
	}
	input.StartDate = startDate
	input.EndDate = endDate

	output, err := c.trendsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAnalyticsError(ctx, err)
		return
	}

	response := dto.ToTrendsResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// parseRangeDates parses the optional start_date/end_date query pair. A
// malformed value is rejected rather than ignored so a custom range never
// silently degrades to a default window.
func (c *AnalyticsController) parseRangeDates(ctx *gin.Context) (*time.Time, *time.Time, bool) {
	var startDate, endDate *time.Time

	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		parsed, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateRange),
			})
			return nil, nil, false
		}
		startDate = &parsed
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		parsed, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid end_date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDateRange),
			})
			return nil, nil, false
		}
		endDate = &parsed
	}

	return startDate, endDate, true
}

// handleAnalyticsError handles analytics errors and returns appropriate HTTP responses.
func (c *AnalyticsController) handleAnalyticsError(ctx *gin.Context, err error) {
	var analyticsErr *domainerror.AnalyticsError
	if errors.As(err, &analyticsErr) {
		statusCode := c.getStatusCodeForAnalyticsError(analyticsErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: analyticsErr.Message,
			Code:  string(analyticsErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAnalyticsError maps analytics error codes to HTTP status codes.
func (c *AnalyticsController) getStatusCodeForAnalyticsError(code domainerror.AnalyticsErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidPeriod,
		domainerror.ErrCodeInvalidReferenceDate,
		domainerror.ErrCodeInvalidTrendDays,
		domainerror.ErrCodeInvalidDateRange:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
