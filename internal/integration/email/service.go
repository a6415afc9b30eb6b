// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"
	"time"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueMonthlyDigestEmail queues the monthly digest report email.
func (s *Service) QueueMonthlyDigestEmail(ctx context.Context, input adapter.QueueMonthlyDigestInput) error {
	data := input.TemplateData
	if data == nil {
		data = map[string]interface{}{}
	}
	if s.appBaseURL != "" {
		data["app_url"] = s.appBaseURL + "/analytics"
	}

	job := entity.NewDigestEmailJob(
		input.RecipientEmail,
		input.RecipientName,
		digestSubject(input.ReportMonth),
		input.ReportMonth,
		data,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue monthly digest email",
			err,
		)
	}

	return nil
}

// digestSubject builds the digest subject line from the report month.
func digestSubject(reportMonth string) string {
	parsed, err := time.Parse("2006-01", reportMonth)
	if err != nil {
		return "Your monthly spending report - SpendWise"
	}
	return fmt.Sprintf("Your %s spending report - SpendWise", parsed.Format("January 2006"))
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
