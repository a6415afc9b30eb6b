// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/application/usecase/report"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
)

// ReportController handles reporting endpoints.
type ReportController struct {
	queueDigestUseCase *report.QueueDigestUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(queueDigestUseCase *report.QueueDigestUseCase) *ReportController {
	return &ReportController{
		queueDigestUseCase: queueDigestUseCase,
	}
}

// QueueDigest handles POST /reports/digest requests. It queues the previous
// calendar month's digest email immediately instead of waiting for the
// scheduler.
func (c *ReportController) QueueDigest(ctx *gin.Context) {
	reference, ok := parseReferenceDate(ctx)
	if !ok {
		return
	}

	input := report.QueueDigestInput{
		Reference: reference,
	}

	output, err := c.queueDigestUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusAccepted, dto.QueueDigestResponse{
		Queued:      output.Queued,
		ReportMonth: output.ReportMonth,
	})
}

// handleReportError handles email errors and returns appropriate HTTP responses.
func (c *ReportController) handleReportError(ctx *gin.Context, err error) {
	var emailErr *domainerror.EmailError
	if errors.As(err, &emailErr) {
		statusCode := c.getStatusCodeForEmailError(emailErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: emailErr.Message,
			Code:  string(emailErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForEmailError maps email error codes to HTTP status codes.
func (c *ReportController) getStatusCodeForEmailError(code domainerror.EmailErrorCode) int {
	switch code {
	case domainerror.ErrCodeDigestAlreadyQueued:
		return http.StatusConflict
	case domainerror.ErrCodeDigestRecipientMissing:
		return http.StatusPreconditionFailed
	case domainerror.ErrCodeEmailJobNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
