// Package email provides email sending functionality.
package email

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/email/templates"
)

const (
	// sentRetentionDays is how long delivered jobs stay in the queue table.
	sentRetentionDays = 90
	// cleanupEvery spaces out the retention sweeps.
	cleanupEvery = 24 * time.Hour
)

// Worker processes the email queue and sends emails.
type Worker struct {
	queue        adapter.EmailQueueRepository
	sender       adapter.EmailSender
	renderer     *templates.Renderer
	pollInterval time.Duration
	batchSize    int
	lastCleanup  time.Time
}

// WorkerConfig holds configuration for the email worker.
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int
}

// DefaultWorkerConfig returns the default worker configuration.
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 30 * time.Second,
		BatchSize:    10,
	}
}

// NewWorker creates a new email worker.
func NewWorker(queue adapter.EmailQueueRepository, sender adapter.EmailSender, renderer *templates.Renderer, config WorkerConfig) *Worker {
	return &Worker{
		queue:        queue,
		sender:       sender,
		renderer:     renderer,
		pollInterval: config.PollInterval,
		batchSize:    config.BatchSize,
	}
}

// Start begins the worker loop. It blocks until the context is cancelled.
func (w *Worker) Start(ctx context.Context) {
	slog.Info("Email worker started",
		"poll_interval", w.pollInterval,
		"batch_size", w.batchSize,
	)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	// Process immediately on start, then on ticker
	w.processBatch(ctx)
	w.maybeCleanup(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Email worker shutting down")
			return
		case <-ticker.C:
			w.processBatch(ctx)
			w.maybeCleanup(ctx)
		}
	}
}

// maybeCleanup prunes delivered jobs past the retention window, at most once
// per cleanupEvery.
func (w *Worker) maybeCleanup(ctx context.Context) {
	if time.Since(w.lastCleanup) < cleanupEvery {
		return
	}
	w.lastCleanup = time.Now()

	removed, err := w.queue.DeleteOldSentJobs(ctx, sentRetentionDays)
	if err != nil {
		slog.Error("Failed to prune sent email jobs", "error", err)
		return
	}
	if removed > 0 {
		slog.Info("Pruned sent email jobs", "count", removed, "older_than_days", sentRetentionDays)
	}
}

// processBatch fetches and processes a batch of pending emails.
func (w *Worker) processBatch(ctx context.Context) {
	jobs, err := w.queue.GetPendingJobs(ctx, w.batchSize)
	if err != nil {
		slog.Error("Failed to get pending email jobs", "error", err)
		return
	}

	if len(jobs) == 0 {
		return
	}

	slog.Debug("Processing email batch", "count", len(jobs))

	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
			w.processJob(ctx, job)
		}
	}
}

// processJob processes a single email job.
func (w *Worker) processJob(ctx context.Context, job *entity.EmailJob) {
	logger := slog.With(
		"job_id", job.ID,
		"template", job.TemplateType,
		"recipient", job.RecipientEmail,
	)

	job.MarkProcessing()
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as processing", "error", err)
		return
	}

	html, text, err := w.renderTemplate(job)
	if err != nil {
		logger.Error("Failed to render email template", "error", err)
		w.handleFailure(ctx, job, err, true) // Template errors are permanent
		return
	}

	result, err := w.sender.Send(ctx, adapter.SendEmailInput{
		To:      job.RecipientEmail,
		Name:    job.RecipientName,
		Subject: job.Subject,
		HTML:    html,
		Text:    text,
	})

	if err != nil {
		logger.Error("Failed to send email", "error", err)

		var emailErr *domainerror.EmailError
		isPermanent := errors.As(err, &emailErr) && emailErr.Code == domainerror.ErrCodePermanentEmailFailure

		w.handleFailure(ctx, job, err, isPermanent)
		return
	}

	job.MarkSent(result.ResendID)
	if err := w.queue.Update(ctx, job); err != nil {
		logger.Error("Failed to mark job as sent", "error", err)
		return
	}

	logger.Info("Email sent successfully", "resend_id", result.ResendID)
}

// renderTemplate renders the appropriate template for the job.
func (w *Worker) renderTemplate(job *entity.EmailJob) (html string, text string, err error) {
	templateName := string(job.TemplateType)

	var data interface{}
	switch job.TemplateType {
	case entity.TemplateMonthlyDigest:
		data = digestData(job)
	default:
		return "", "", domainerror.NewEmailError(
			domainerror.ErrCodeInvalidTemplate,
			"unknown template type",
			domainerror.ErrInvalidTemplate,
		)
	}

	return w.renderer.Render(templateName, data)
}

// digestData converts a digest job's template data into the renderer struct.
// The data has usually been through a JSON round trip in the queue table, so
// numbers arrive as float64 and lists as []interface{}.
func digestData(job *entity.EmailJob) templates.MonthlyDigestData {
	data := job.TemplateData

	out := templates.MonthlyDigestData{
		RecipientName: job.RecipientName,
		MonthLabel:    getString(data, "month_label"),
		TotalSpent:    getString(data, "total_spent"),
		ExpenseCount:  getInt(data, "expense_count"),
		PreviousTotal: getString(data, "previous_total"),
		HasComparison: getBool(data, "has_comparison"),
		Unlocked:      getStringSlice(data, "unlocked"),
		Streak:        getInt(data, "streak"),
		AppURL:        getString(data, "app_url"),
	}

	change := getFloat(data, "change_percent")
	out.SpentMore = change > 0
	out.ChangePercent = formatSignedPercent(change)

	for _, row := range getRows(data, "top_categories") {
		out.TopCategories = append(out.TopCategories, templates.DigestCategoryRow{
			Name:       getString(row, "name"),
			Amount:     getString(row, "amount"),
			Percentage: formatPercent(getFloat(row, "percentage")),
		})
	}

	for _, row := range getRows(data, "budgets") {
		status := getString(row, "status")
		out.Budgets = append(out.Budgets, templates.DigestBudgetRow{
			Label:      getString(row, "label"),
			Spent:      getString(row, "spent"),
			Limit:      getString(row, "limit"),
			Percentage: formatPercent(getFloat(row, "percentage")),
			Status:     status,
			StatusText: statusText(status),
		})
	}

	return out
}

// statusText maps a budget status to its presentation label.
func statusText(status string) string {
	switch status {
	case "good":
		return "On track"
	case "warning":
		return "Getting close"
	case "danger":
		return "Over budget"
	default:
		return status
	}
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

func formatSignedPercent(v float64) string {
	if v > 0 {
		return "+" + formatPercent(v)
	}
	return formatPercent(v)
}

// handleFailure handles a failed email job.
func (w *Worker) handleFailure(ctx context.Context, job *entity.EmailJob, err error, permanent bool) {
	job.MarkFailed(err, permanent)

	if updateErr := w.queue.Update(ctx, job); updateErr != nil {
		slog.Error("Failed to update job after failure",
			"job_id", job.ID,
			"error", updateErr,
		)
	}

	if job.Status == entity.EmailStatusFailed {
		slog.Warn("Email job permanently failed",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"last_error", job.LastError,
		)
	} else {
		slog.Info("Email job scheduled for retry",
			"job_id", job.ID,
			"attempts", job.Attempts,
			"scheduled_at", job.ScheduledAt,
		)
	}
}

// getString safely extracts a string from a map.
func getString(data map[string]interface{}, key string) string {
	if v, ok := data[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// getInt extracts an int, tolerating the float64 JSON numbers decode to.
func getInt(data map[string]interface{}, key string) int {
	switch v := data[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

// getFloat extracts a float64, tolerating plain ints.
func getFloat(data map[string]interface{}, key string) float64 {
	switch v := data[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return 0
	}
}

// getBool safely extracts a bool from a map.
func getBool(data map[string]interface{}, key string) bool {
	if v, ok := data[key].(bool); ok {
		return v
	}
	return false
}

// getStringSlice extracts a string slice, tolerating []interface{}.
func getStringSlice(data map[string]interface{}, key string) []string {
	switch v := data[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// getRows extracts a slice of maps, tolerating []interface{}.
func getRows(data map[string]interface{}, key string) []map[string]interface{} {
	switch v := data[key].(type) {
	case []map[string]interface{}:
		return v
	case []interface{}:
		out := make([]map[string]interface{}, 0, len(v))
		for _, item := range v {
			if row, ok := item.(map[string]interface{}); ok {
				out = append(out, row)
			}
		}
		return out
	default:
		return nil
	}
}

// ProcessNow processes all pending emails immediately (useful for testing).
func (w *Worker) ProcessNow(ctx context.Context) {
	w.processBatch(ctx)
}
