// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
)

// parseReferenceDate parses the optional reference_date query parameter that
// pins the reference instant of time-dependent endpoints. It writes a 400
// response and returns false when the value is malformed; the zero time means
// "now" downstream.
func parseReferenceDate(ctx *gin.Context) (time.Time, bool) {
	referenceStr := ctx.Query("reference_date")
	if referenceStr == "" {
		return time.Time{}, true
	}

	reference, err := time.Parse("2006-01-02", referenceStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid reference_date format. Use YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidReferenceDate),
		})
		return time.Time{}, false
	}

	return reference.UTC(), true
}
