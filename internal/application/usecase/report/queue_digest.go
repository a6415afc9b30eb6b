// Package report composes the monthly email digest from the analytics,
// budget, and achievement engines.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/application/adapter"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// QueueDigestInput represents the input for queueing the monthly digest.
type QueueDigestInput struct {
	Reference time.Time // Zero value means "now"
}

// QueueDigestOutput represents the output of queueing the monthly digest.
type QueueDigestOutput struct {
	Queued      bool
	ReportMonth string
}

// DefaultCurrencySymbol prefixes digest amounts when none is configured.
const DefaultCurrencySymbol = "₹"

// QueueDigestUseCase queues the previous month's digest email for the
// account, at most once per report month.
type QueueDigestUseCase struct {
	userRepo       adapter.UserRepository
	emailQueueRepo adapter.EmailQueueRepository
	emailService   adapter.EmailService
	buildDigest    *BuildDigestUseCase
	currencySymbol string
}

// NewQueueDigestUseCase creates a new QueueDigestUseCase instance. An empty
// currency symbol falls back to the default.
func NewQueueDigestUseCase(
	userRepo adapter.UserRepository,
	emailQueueRepo adapter.EmailQueueRepository,
	emailService adapter.EmailService,
	buildDigest *BuildDigestUseCase,
	currencySymbol string,
) *QueueDigestUseCase {
	if currencySymbol == "" {
		currencySymbol = DefaultCurrencySymbol
	}
	return &QueueDigestUseCase{
		userRepo:       userRepo,
		emailQueueRepo: emailQueueRepo,
		emailService:   emailService,
		buildDigest:    buildDigest,
		currencySymbol: currencySymbol,
	}
}

// Execute builds and queues the digest for the month before the reference.
// Queued is false when the account opted out; a digest that was already
// queued for the same report month is an error so callers can surface the
// duplicate.
func (uc *QueueDigestUseCase) Execute(ctx context.Context, input QueueDigestInput) (*QueueDigestOutput, error) {
	reference := input.Reference
	if reference.IsZero() {
		reference = time.Now().UTC()
	}
	reportMonth := previousMonthStart(reference).Format("2006-01")

	user, err := uc.userRepo.FindAccount(ctx)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewEmailError(
				domainerror.ErrCodeDigestRecipientMissing,
				"no account to receive the digest",
				domainerror.ErrDigestRecipientMissing,
			)
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if !user.DigestOptIn {
		return &QueueDigestOutput{Queued: false, ReportMonth: reportMonth}, nil
	}

	exists, err := uc.emailQueueRepo.ExistsForReportMonth(ctx, reportMonth)
	if err != nil {
		return nil, fmt.Errorf("failed to check digest queue: %w", err)
	}
	if exists {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeDigestAlreadyQueued,
			"digest for "+reportMonth+" already queued",
			domainerror.ErrDigestAlreadyQueued,
		)
	}

	digest, err := uc.buildDigest.Execute(ctx, BuildDigestInput{Reference: reference})
	if err != nil {
		return nil, fmt.Errorf("failed to build digest: %w", err)
	}

	err = uc.emailService.QueueMonthlyDigestEmail(ctx, adapter.QueueMonthlyDigestInput{
		RecipientEmail: user.Email,
		RecipientName:  user.Name,
		ReportMonth:    reportMonth,
		TemplateData:   templateData(digest.Data, uc.currencySymbol),
	})
	if err != nil {
		return nil, domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue monthly digest",
			err,
		)
	}

	return &QueueDigestOutput{Queued: true, ReportMonth: reportMonth}, nil
}

// templateData flattens the digest into the map the email templates render.
// Amounts are pre-formatted so the templates stay free of decimal handling.
func templateData(data *DigestData, symbol string) map[string]interface{} {
	categories := make([]map[string]interface{}, 0, len(data.TopCategories))
	for _, c := range data.TopCategories {
		categories = append(categories, map[string]interface{}{
			"name":       c.Name,
			"amount":     formatAmount(symbol, c.Amount),
			"percentage": c.Percentage,
		})
	}

	budgets := make([]map[string]interface{}, 0, len(data.Budgets))
	for _, b := range data.Budgets {
		budgets = append(budgets, map[string]interface{}{
			"label":      b.Label,
			"spent":      formatAmount(symbol, b.Spent),
			"limit":      formatAmount(symbol, b.Limit),
			"percentage": b.Percentage,
			"status":     string(b.Status),
		})
	}

	return map[string]interface{}{
		"report_month":   data.ReportMonth,
		"month_label":    data.MonthLabel,
		"total_spent":    formatAmount(symbol, data.TotalSpent),
		"expense_count":  data.ExpenseCount,
		"previous_total": formatAmount(symbol, data.PreviousTotal),
		"change_percent": data.ChangePercent,
		"has_comparison": data.PreviousTotal.IsPositive(),
		"top_categories": categories,
		"budgets":        budgets,
		"unlocked":       data.Unlocked,
		"streak":         data.Streak,
	}
}

func formatAmount(symbol string, amount decimal.Decimal) string {
	return symbol + amount.Round(2).StringFixed(2)
}
