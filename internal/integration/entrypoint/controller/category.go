// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/application/usecase/category"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category catalog endpoints.
type CategoryController struct {
	listUseCase *category.ListCategoriesUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(listUseCase *category.ListCategoriesUseCase) *CategoryController {
	return &CategoryController{
		listUseCase: listUseCase,
	}
}

// List handles GET /categories requests. When both start_date and end_date
// are given, each category carries usage statistics for that window.
func (c *CategoryController) List(ctx *gin.Context) {
	input := category.ListCategoriesInput{}

	if startDateStr := ctx.Query("start_date"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err == nil {
			input.StartDate = &startDate
		}
	}
	if endDateStr := ctx.Query("end_date"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err == nil {
			endOfDay := endDate.Add(24*time.Hour - time.Nanosecond)
			input.EndDate = &endOfDay
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve categories",
		})
		return
	}

	response := dto.ToCategoryListResponse(output.Categories)
	ctx.JSON(http.StatusOK, response)
}
