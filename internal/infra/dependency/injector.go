// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/spendwise/backend/config"
	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/application/usecase/achievement"
	"github.com/spendwise/backend/internal/application/usecase/analytics"
	"github.com/spendwise/backend/internal/application/usecase/auth"
	"github.com/spendwise/backend/internal/application/usecase/budget"
	"github.com/spendwise/backend/internal/application/usecase/category"
	"github.com/spendwise/backend/internal/application/usecase/expense"
	"github.com/spendwise/backend/internal/application/usecase/report"
	"github.com/spendwise/backend/internal/infra/server/router"
	"github.com/spendwise/backend/internal/integration/adapters"
	"github.com/spendwise/backend/internal/integration/cache"
	"github.com/spendwise/backend/internal/integration/email"
	"github.com/spendwise/backend/internal/integration/email/templates"
	"github.com/spendwise/backend/internal/integration/entrypoint/controller"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
	"github.com/spendwise/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Redis  *redis.Client
	Router *router.Router

	// SeedCategories fills the category catalog on first boot.
	SeedCategories *category.SeedCategoriesUseCase

	// EmailWorker and DigestScheduler are background loops started from main.
	EmailWorker     *email.Worker
	DigestScheduler *email.DigestScheduler
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	achievementRepo := persistence.NewAchievementRepository(db)
	emailQueueRepo := persistence.NewEmailQueueRepository(db)

	// Optional Redis client for the suggestion cache. The cache treats a nil
	// client as permanently empty, so the server runs fine without Redis.
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	suggestionCache := cache.NewSuggestionCache(redisClient, cache.DefaultSuggestionTTL)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry, tokenRepo)
	categorizationService := adapters.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.Model, categoryRepo)

	// Email delivery. Without a Resend key outgoing mail is captured in
	// memory instead of delivered, which keeps development setups working.
	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		emailSender = email.NewResendClient(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
	} else {
		emailSender = email.NewMockEmailSender()
	}
	emailService := email.NewService(emailQueueRepo, cfg.Email.AppBaseURL)

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	// Create auth use cases
	setupUseCase := auth.NewSetupAccountUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	getAccountUseCase := auth.NewGetAccountUseCase(userRepo)
	updateAccountUseCase := auth.NewUpdateAccountUseCase(userRepo)
	deleteAccountUseCase := auth.NewDeleteAccountUseCase(userRepo, passwordService, tokenService)

	// Create category use cases
	seedCategoriesUseCase := category.NewSeedCategoriesUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo, expenseRepo)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, categoryRepo, categorizationService, suggestionCache)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, categoryRepo)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo)

	// Create budget use cases
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo)
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, expenseRepo, categoryRepo)
	updateBudgetUseCase := budget.NewUpdateBudgetUseCase(budgetRepo, categoryRepo)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)
	analyzeBudgetUseCase := budget.NewAnalyzeBudgetUseCase(budgetRepo, expenseRepo, categoryRepo)

	// Create analytics use cases
	getSummaryUseCase := analytics.NewGetSummaryUseCase(expenseRepo)
	getStreakUseCase := analytics.NewGetStreakUseCase(expenseRepo)
	getTrendsUseCase := analytics.NewGetTrendsUseCase(expenseRepo)

	// Create achievement use cases
	evaluateAchievementsUseCase := achievement.NewEvaluateAchievementsUseCase(achievementRepo, expenseRepo, budgetRepo)
	updateTelemetryUseCase := achievement.NewUpdateTelemetryUseCase(achievementRepo)

	// Create report use cases
	buildDigestUseCase := report.NewBuildDigestUseCase(expenseRepo, budgetRepo, categoryRepo, achievementRepo)
	queueDigestUseCase := report.NewQueueDigestUseCase(userRepo, emailQueueRepo, emailService, buildDigestUseCase, cfg.App.CurrencySymbol)

	// Background loops, started from main
	emailWorker := email.NewWorker(emailQueueRepo, emailSender, renderer, email.WorkerConfig{
		PollInterval: cfg.Email.PollInterval,
		BatchSize:    cfg.Email.BatchSize,
	})
	digestScheduler := email.NewDigestScheduler(queueDigestUseCase, email.SchedulerConfig{
		CheckInterval: cfg.Email.DigestInterval,
		DigestDay:     cfg.Email.DigestDay,
	})

	// Create controllers
	healthController := controller.NewHealthController(
		func() bool {
			sqlDB, err := db.DB()
			if err != nil {
				return false
			}
			return sqlDB.Ping() == nil
		},
		cacheHealthChecker(redisClient),
	)

	authController := controller.NewAuthController(
		setupUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
	)

	accountController := controller.NewAccountController(
		getAccountUseCase,
		updateAccountUseCase,
		deleteAccountUseCase,
	)

	categoryController := controller.NewCategoryController(listCategoriesUseCase)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
	)

	budgetController := controller.NewBudgetController(
		createBudgetUseCase,
		listBudgetsUseCase,
		updateBudgetUseCase,
		deleteBudgetUseCase,
		analyzeBudgetUseCase,
	)

	analyticsController := controller.NewAnalyticsController(
		getSummaryUseCase,
		getStreakUseCase,
		getTrendsUseCase,
	)

	achievementController := controller.NewAchievementController(
		evaluateAchievementsUseCase,
		updateTelemetryUseCase,
	)

	reportController := controller.NewReportController(queueDigestUseCase)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		accountController,
		categoryController,
		expenseController,
		budgetController,
		analyticsController,
		achievementController,
		reportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:          cfg,
		DB:              db,
		Redis:           redisClient,
		Router:          r,
		SeedCategories:  seedCategoriesUseCase,
		EmailWorker:     emailWorker,
		DigestScheduler: digestScheduler,
	}, nil
}

// cacheHealthChecker builds the health probe for the optional Redis cache.
// A nil client reports the cache as disabled rather than down.
func cacheHealthChecker(client *redis.Client) func() bool {
	if client == nil {
		return nil
	}
	return func() bool {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		return client.Ping(ctx).Err() == nil
	}
}
