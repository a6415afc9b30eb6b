// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/usecase/budget"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/domain/valueobject"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	createUseCase  *budget.CreateBudgetUseCase
	listUseCase    *budget.ListBudgetsUseCase
	updateUseCase  *budget.UpdateBudgetUseCase
	deleteUseCase  *budget.DeleteBudgetUseCase
	analyzeUseCase *budget.AnalyzeBudgetUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	createUseCase *budget.CreateBudgetUseCase,
	listUseCase *budget.ListBudgetsUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	analyzeUseCase *budget.AnalyzeBudgetUseCase,
) *BudgetController {
	return &BudgetController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		analyzeUseCase: analyzeUseCase,
	}
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	input := budget.CreateBudgetInput{
		Amount:     decimal.NewFromFloat(req.Amount),
		CategoryID: req.CategoryID,
	}

	if req.Period != "" {
		period := entity.BudgetPeriod(req.Period)
		input.Period = &period
	}

	if req.StartDate != "" {
		startDate, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidBudgetStartDate),
			})
			return
		}
		input.StartDate = &startDate
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	response := dto.ToBudgetResponse(output.Budget, nil)
	ctx.JSON(http.StatusCreated, response)
}

// List handles GET /budgets requests. Every budget in the response carries
// its current-cycle analysis.
func (c *BudgetController) List(ctx *gin.Context) {
	reference, ok := parseReferenceDate(ctx)
	if !ok {
		return
	}

	input := budget.ListBudgetsInput{
		IncludeInactive: ctx.Query("include_inactive") == "true",
		Reference:       reference,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve budgets",
		})
		return
	}

	response := dto.ToBudgetListResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// Update handles PATCH /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	budgetIDStr := ctx.Param("id")
	budgetID, err := uuid.Parse(budgetIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	input := budget.UpdateBudgetInput{
		BudgetID:      budgetID,
		CategoryID:    req.CategoryID,
		ClearCategory: req.ClearCategory,
		IsActive:      req.IsActive,
	}

	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}

	if req.Period != nil {
		period := entity.BudgetPeriod(*req.Period)
		input.Period = &period
	}

	if req.StartDate != nil {
		startDate, err := time.Parse("2006-01-02", *req.StartDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid start_date format. Use YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidBudgetStartDate),
			})
			return
		}
		input.StartDate = &startDate
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	response := dto.ToBudgetResponse(output.Budget, nil)
	ctx.JSON(http.StatusOK, response)
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	budgetIDStr := ctx.Param("id")
	budgetID, err := uuid.Parse(budgetIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	input := budget.DeleteBudgetInput{
		BudgetID: budgetID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Analyze handles GET /budgets/:id/analysis requests.
func (c *BudgetController) Analyze(ctx *gin.Context) {
	budgetIDStr := ctx.Param("id")
	budgetID, err := uuid.Parse(budgetIDStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	reference, ok := parseReferenceDate(ctx)
	if !ok {
		return
	}

	input := budget.AnalyzeBudgetInput{
		BudgetID:  budgetID,
		Cycle:     valueobject.CycleSelection(ctx.Query("cycle")),
		Reference: reference,
	}

	output, err := c.analyzeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	response := dto.ToAnalyzeBudgetResponse(output)
	ctx.JSON(http.StatusOK, response)
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		statusCode := c.getStatusCodeForBudgetError(budgetErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeBudgetAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidBudgetAmount,
		domainerror.ErrCodeInvalidBudgetPeriod,
		domainerror.ErrCodeInvalidBudgetStartDate,
		domainerror.ErrCodeUnknownBudgetCategory,
		domainerror.ErrCodeMissingBudgetFields,
		domainerror.ErrCodeInvalidCycleSelection:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
