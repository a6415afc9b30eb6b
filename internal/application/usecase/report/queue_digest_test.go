// Package report contains the monthly digest composition tests.
package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

type fakeUserRepo struct {
	adapter.UserRepository
	user *entity.User
}

func (f *fakeUserRepo) FindAccount(_ context.Context) (*entity.User, error) {
	if f.user == nil {
		return nil, domainerror.ErrUserNotFound
	}
	return f.user, nil
}

type fakeEmailQueueRepo struct {
	adapter.EmailQueueRepository
	queuedMonths map[string]bool
}

func (f *fakeEmailQueueRepo) ExistsForReportMonth(_ context.Context, reportMonth string) (bool, error) {
	return f.queuedMonths[reportMonth], nil
}

type fakeEmailService struct {
	queued []adapter.QueueMonthlyDigestInput
	err    error
}

func (f *fakeEmailService) QueueMonthlyDigestEmail(_ context.Context, input adapter.QueueMonthlyDigestInput) error {
	if f.err != nil {
		return f.err
	}
	f.queued = append(f.queued, input)
	return nil
}

func newQueueDigestFixture(user *entity.User) (*QueueDigestUseCase, *fakeEmailQueueRepo, *fakeEmailService) {
	queueRepo := &fakeEmailQueueRepo{queuedMonths: map[string]bool{}}
	service := &fakeEmailService{}
	uc := NewQueueDigestUseCase(
		&fakeUserRepo{user: user},
		queueRepo,
		service,
		newDigestUseCase(nil, nil, nil, nil),
		"",
	)
	return uc, queueRepo, service
}

func TestQueueDigest_QueuesForOptedInAccount(t *testing.T) {
	user := &entity.User{Email: "owner@example.com", Name: "Owner", DigestOptIn: true}
	uc, _, service := newQueueDigestFixture(user)

	output, err := uc.Execute(context.Background(), QueueDigestInput{
		Reference: time.Date(2024, 8, 1, 2, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if !output.Queued || output.ReportMonth != "2024-07" {
		t.Fatalf("expected the July digest queued, got %+v", output)
	}
	if len(service.queued) != 1 {
		t.Fatalf("expected 1 queued email, got %d", len(service.queued))
	}

	queued := service.queued[0]
	if queued.RecipientEmail != "owner@example.com" || queued.RecipientName != "Owner" {
		t.Errorf("unexpected recipient %s <%s>", queued.RecipientName, queued.RecipientEmail)
	}
	if queued.ReportMonth != "2024-07" {
		t.Errorf("expected report month 2024-07, got %s", queued.ReportMonth)
	}
	if queued.TemplateData["month_label"] != "July 2024" {
		t.Errorf("expected month label July 2024, got %v", queued.TemplateData["month_label"])
	}
	if queued.TemplateData["total_spent"] != "₹0.00" {
		t.Errorf("expected formatted total, got %v", queued.TemplateData["total_spent"])
	}
}

func TestQueueDigest_SkipsWhenOptedOut(t *testing.T) {
	user := &entity.User{Email: "owner@example.com", Name: "Owner", DigestOptIn: false}
	uc, _, service := newQueueDigestFixture(user)

	output, err := uc.Execute(context.Background(), QueueDigestInput{
		Reference: time.Date(2024, 8, 1, 2, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if output.Queued {
		t.Error("expected nothing queued for an opted-out account")
	}
	if output.ReportMonth != "2024-07" {
		t.Errorf("expected report month 2024-07, got %s", output.ReportMonth)
	}
	if len(service.queued) != 0 {
		t.Errorf("expected no queued email, got %d", len(service.queued))
	}
}

func TestQueueDigest_RejectsDuplicateMonth(t *testing.T) {
	user := &entity.User{Email: "owner@example.com", Name: "Owner", DigestOptIn: true}
	uc, queueRepo, service := newQueueDigestFixture(user)
	queueRepo.queuedMonths["2024-07"] = true

	_, err := uc.Execute(context.Background(), QueueDigestInput{
		Reference: time.Date(2024, 8, 1, 2, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, domainerror.ErrDigestAlreadyQueued) {
		t.Fatalf("expected ErrDigestAlreadyQueued, got %v", err)
	}

	var emailErr *domainerror.EmailError
	if !errors.As(err, &emailErr) || emailErr.Code != domainerror.ErrCodeDigestAlreadyQueued {
		t.Errorf("expected code %s, got %v", domainerror.ErrCodeDigestAlreadyQueued, err)
	}
	if len(service.queued) != 0 {
		t.Errorf("expected no queued email, got %d", len(service.queued))
	}
}

func TestQueueDigest_FailsWithoutAccount(t *testing.T) {
	uc, _, service := newQueueDigestFixture(nil)

	_, err := uc.Execute(context.Background(), QueueDigestInput{
		Reference: time.Date(2024, 8, 1, 2, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, domainerror.ErrDigestRecipientMissing) {
		t.Fatalf("expected ErrDigestRecipientMissing, got %v", err)
	}

	var emailErr *domainerror.EmailError
	if !errors.As(err, &emailErr) || emailErr.Code != domainerror.ErrCodeDigestRecipientMissing {
		t.Errorf("expected code %s, got %v", domainerror.ErrCodeDigestRecipientMissing, err)
	}
	if len(service.queued) != 0 {
		t.Errorf("expected no queued email, got %d", len(service.queued))
	}
}

func TestQueueDigest_WrapsQueueFailure(t *testing.T) {
	user := &entity.User{Email: "owner@example.com", Name: "Owner", DigestOptIn: true}
	uc, _, service := newQueueDigestFixture(user)
	service.err = errors.New("smtp down")

	_, err := uc.Execute(context.Background(), QueueDigestInput{
		Reference: time.Date(2024, 8, 1, 2, 0, 0, 0, time.UTC),
	})
	var emailErr *domainerror.EmailError
	if !errors.As(err, &emailErr) || emailErr.Code != domainerror.ErrCodeEmailQueueFailed {
		t.Fatalf("expected code %s, got %v", domainerror.ErrCodeEmailQueueFailed, err)
	}
}
