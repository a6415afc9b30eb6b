package email

import (
	"context"
	"testing"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
)

func TestService_QueueMonthlyDigestEmail(t *testing.T) {
	queue := newFakeQueue()
	service := NewService(queue, "https://spendwise.example.com")

	err := service.QueueMonthlyDigestEmail(context.Background(), adapter.QueueMonthlyDigestInput{
		RecipientEmail: "owner@example.com",
		RecipientName:  "Owner",
		ReportMonth:    "2024-07",
		TemplateData:   map[string]interface{}{"month_label": "July 2024"},
	})
	if err != nil {
		t.Fatalf("QueueMonthlyDigestEmail returned error: %v", err)
	}

	jobs, err := queue.GetByRecipient(context.Background(), "owner@example.com")
	if err != nil {
		t.Fatalf("failed to read queue: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("expected 1 queued job, got %d", len(jobs))
	}

	job := jobs[0]
	if job.TemplateType != entity.TemplateMonthlyDigest {
		t.Errorf("expected monthly_digest template, got %s", job.TemplateType)
	}
	if job.ReportMonth != "2024-07" {
		t.Errorf("expected report month tag 2024-07, got %q", job.ReportMonth)
	}
	if job.Subject != "Your July 2024 spending report - SpendWise" {
		t.Errorf("unexpected subject: %s", job.Subject)
	}
	if job.TemplateData["app_url"] != "https://spendwise.example.com/analytics" {
		t.Errorf("expected app_url to be injected, got %v", job.TemplateData["app_url"])
	}
	if job.Status != entity.EmailStatusPending {
		t.Errorf("expected pending status, got %s", job.Status)
	}
}

func TestDigestSubject_FallsBackOnBadMonth(t *testing.T) {
	if got := digestSubject("not-a-month"); got != "Your monthly spending report - SpendWise" {
		t.Errorf("unexpected fallback subject: %s", got)
	}
}
