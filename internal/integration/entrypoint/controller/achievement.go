// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/application/usecase/achievement"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
)

// AchievementController handles achievement endpoints.
type AchievementController struct {
	evaluateUseCase  *achievement.EvaluateAchievementsUseCase
	telemetryUseCase *achievement.UpdateTelemetryUseCase
}

// NewAchievementController creates a new achievement controller instance.
func NewAchievementController(
	evaluateUseCase *achievement.EvaluateAchievementsUseCase,
	telemetryUseCase *achievement.UpdateTelemetryUseCase,
) *AchievementController {
	return &AchievementController{
		evaluateUseCase:  evaluateUseCase,
		telemetryUseCase: telemetryUseCase,
	}
}

// List handles GET /achievements requests. Listing re-evaluates every
// achievement against the current data, persists the merged state, and
// reports which ones unlocked during this call.
func (c *AchievementController) List(ctx *gin.Context) {
	reference, ok := parseReferenceDate(ctx)
	if !ok {
		return
	}

	input := achievement.EvaluateAchievementsInput{
		Reference: reference,
	}

	output, err := c.evaluateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAchievementError(ctx, err)
		return
	}

	response := dto.ToAchievementListResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// UpdateTelemetry handles POST /achievements/telemetry requests. Only the
// achievements driven by client-reported telemetry accept progress here.
func (c *AchievementController) UpdateTelemetry(ctx *gin.Context) {
	var req dto.TelemetryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidProgressValue),
		})
		return
	}

	input := achievement.UpdateTelemetryInput{
		DefinitionID: req.ID,
		Progress:     req.Progress,
	}

	output, err := c.telemetryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAchievementError(ctx, err)
		return
	}

	response := dto.ToTelemetryResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// handleAchievementError handles achievement errors and returns appropriate HTTP responses.
func (c *AchievementController) handleAchievementError(ctx *gin.Context, err error) {
	var achievementErr *domainerror.AchievementError
	if errors.As(err, &achievementErr) {
		statusCode := c.getStatusCodeForAchievementError(achievementErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: achievementErr.Message,
			Code:  string(achievementErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAchievementError maps achievement error codes to HTTP status codes.
func (c *AchievementController) getStatusCodeForAchievementError(code domainerror.AchievementErrorCode) int {
	switch code {
	case domainerror.ErrCodeUnknownAchievement:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTelemetryMetric,
		domainerror.ErrCodeInvalidProgressValue:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
