// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/integration/entrypoint/controller"
	"github.com/spendwise/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	accountController     *controller.AccountController
	categoryController    *controller.CategoryController
	expenseController     *controller.ExpenseController
	budgetController      *controller.BudgetController
	analyticsController   *controller.AnalyticsController
	achievementController *controller.AchievementController
	reportController      *controller.ReportController
	loginRateLimiter      *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	accountController *controller.AccountController,
	categoryController *controller.CategoryController,
	expenseController *controller.ExpenseController,
	budgetController *controller.BudgetController,
	analyticsController *controller.AnalyticsController,
	achievementController *controller.AchievementController,
	reportController *controller.ReportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		accountController:     accountController,
		categoryController:    categoryController,
		expenseController:     expenseController,
		budgetController:      budgetController,
		analyticsController:   analyticsController,
		achievementController: achievementController,
		reportController:      reportController,
		loginRateLimiter:      loginRateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Everything except the auth
// group requires a valid access token.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes (only setup if auth controller is available)
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/setup", r.authController.Setup)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
			}
		}

		// Account routes (require authentication)
		if r.accountController != nil && r.authMiddleware != nil {
			account := v1.Group("/account")
			account.Use(r.authMiddleware.Authenticate())
			{
				account.GET("", r.accountController.GetAccount)
				account.PATCH("", r.accountController.UpdateAccount)
				account.DELETE("", r.accountController.DeleteAccount)
			}
		}

		// Category catalog routes (require authentication)
		if r.categoryController != nil && r.authMiddleware != nil {
			categories := v1.Group("/categories")
			categories.Use(r.authMiddleware.Authenticate())
			{
				categories.GET("", r.categoryController.List)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.POST("", r.expenseController.Create)
				expenses.GET("", r.expenseController.List)
				expenses.PATCH("/:id", r.expenseController.Update)
				expenses.DELETE("/:id", r.expenseController.Delete)
			}
		}

		// Budget routes (require authentication)
		if r.budgetController != nil && r.authMiddleware != nil {
			budgets := v1.Group("/budgets")
			budgets.Use(r.authMiddleware.Authenticate())
			{
				budgets.POST("", r.budgetController.Create)
				budgets.GET("", r.budgetController.List)
				budgets.PATCH("/:id", r.budgetController.Update)
				budgets.DELETE("/:id", r.budgetController.Delete)
				budgets.GET("/:id/analysis", r.budgetController.Analyze)
			}
		}

		// Analytics routes (require authentication)
		if r.analyticsController != nil && r.authMiddleware != nil {
			analytics := v1.Group("/analytics")
			analytics.Use(r.authMiddleware.Authenticate())
			{
				analytics.GET("/summary", r.analyticsController.Summary)
				analytics.GET("/streak", r.analyticsController.Streak)
				analytics.GET("/trends", r.analyticsController.Trends)
			}
		}

		// Achievement routes (require authentication)
		if r.achievementController != nil && r.authMiddleware != nil {
			achievements := v1.Group("/achievements")
			achievements.Use(r.authMiddleware.Authenticate())
			{
				achievements.GET("", r.achievementController.List)
				achievements.POST("/telemetry", r.achievementController.UpdateTelemetry)
			}
		}

		// Report routes (require authentication)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			{
				reports.POST("/digest", r.reportController.QueueDigest)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
