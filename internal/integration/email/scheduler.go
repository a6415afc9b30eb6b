// Package email provides email sending functionality.
package email

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/spendwise/backend/internal/application/usecase/report"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// maxDigestDay caps the configured digest day. Days past 28 would skip
// February entirely.
const maxDigestDay = 28

// DigestScheduler queues the monthly digest once per report month, no
// earlier than the configured day of the month. Every check it asks the use
// case to queue the previous month's digest; the per-month dedup in the
// queue makes repeated checks harmless, and a check after downtime catches
// up on a missed month.
type DigestScheduler struct {
	queueDigest   *report.QueueDigestUseCase
	checkInterval time.Duration
	digestDay     int
}

// SchedulerConfig holds configuration for the digest scheduler.
type SchedulerConfig struct {
	CheckInterval time.Duration
	DigestDay     int
}

// DefaultSchedulerConfig returns the default scheduler configuration.
func DefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		CheckInterval: time.Hour,
		DigestDay:     1,
	}
}

// NewDigestScheduler creates a new digest scheduler.
func NewDigestScheduler(queueDigest *report.QueueDigestUseCase, config SchedulerConfig) *DigestScheduler {
	day := config.DigestDay
	if day < 1 {
		day = 1
	}
	if day > maxDigestDay {
		day = maxDigestDay
	}
	return &DigestScheduler{
		queueDigest:   queueDigest,
		checkInterval: config.CheckInterval,
		digestDay:     day,
	}
}

// Start begins the scheduler loop. It blocks until the context is cancelled.
func (s *DigestScheduler) Start(ctx context.Context) {
	slog.Info("Digest scheduler started",
		"check_interval", s.checkInterval,
		"digest_day", s.digestDay,
	)

	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	s.check(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Digest scheduler shutting down")
			return
		case <-ticker.C:
			s.check(ctx)
		}
	}
}

// check queues the digest for the previous month if the digest day has been
// reached and it is not queued yet.
func (s *DigestScheduler) check(ctx context.Context) {
	now := time.Now().UTC()
	if !digestDayReached(now, s.digestDay) {
		slog.Debug("Waiting for digest day", "digest_day", s.digestDay)
		return
	}

	output, err := s.queueDigest.Execute(ctx, report.QueueDigestInput{Reference: now})
	if err != nil {
		switch {
		case errors.Is(err, domainerror.ErrDigestAlreadyQueued):
			slog.Debug("Digest already queued for report month")
		case errors.Is(err, domainerror.ErrDigestRecipientMissing):
			slog.Debug("No account yet, skipping digest")
		default:
			slog.Error("Failed to queue monthly digest", "error", err)
		}
		return
	}

	if !output.Queued {
		slog.Debug("Digest skipped, account opted out", "report_month", output.ReportMonth)
		return
	}

	slog.Info("Monthly digest queued", "report_month", output.ReportMonth)
}

// digestDayReached reports whether now is on or past the digest day of its
// month.
func digestDayReached(now time.Time, day int) bool {
	return now.Day() >= day
}
