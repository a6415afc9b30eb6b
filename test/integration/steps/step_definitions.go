package steps

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/spendwise/backend/config"
	"github.com/spendwise/backend/internal/application/usecase/category"
	"github.com/spendwise/backend/internal/infra/dependency"
	"github.com/spendwise/backend/internal/integration/persistence"
	"github.com/spendwise/backend/internal/integration/persistence/model"
	"github.com/spendwise/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var (
	serverInit     sync.Once
	serverStartErr error
	portInit       sync.Once
	testServerPort int
	testDB         *mock.Db
	testRedis      *redis.Client
)

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

// InitializeScenario wires the scenario hooks and registers every step used
// by the feature files.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"users":              &model.UserModel{},
			"refresh_tokens":     &model.RefreshTokenModel{},
			"categories":         &model.CategoryModel{},
			"expenses":           &model.ExpenseModel{},
			"budgets":            &model.BudgetModel{},
			"achievement_states": &model.AchievementStateModel{},
			"email_queue":        &model.EmailQueueModel{},
		}),
	}

	testDB = test.db
	testRedis = mock.NewRedis()

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Account setup steps
	ctx.Given(`^an account exists with email "([^"]*)" and password "([^"]*)"$`, test.anAccountExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in$`, test.iAmLoggedIn)
	ctx.Given(`^the account has opted out of the monthly digest$`, test.theAccountHasOptedOut)
	ctx.Given(`^the account has been deleted$`, test.theAccountHasBeenDeleted)

	// Expense setup steps
	ctx.Given(`^an expense exists with description "([^"]*)" and amount "([^"]*)"$`, test.anExpenseExists)
	ctx.Given(`^an expense exists with description "([^"]*)" and amount "([^"]*)" in category "([^"]*)"$`, test.anExpenseExistsInCategory)
	ctx.Given(`^an expense exists with description "([^"]*)" and amount "([^"]*)" on "([^"]*)"$`, test.anExpenseExistsOn)
	ctx.Given(`^an expense exists with description "([^"]*)" and amount "([^"]*)" in category "([^"]*)" on "([^"]*)"$`, test.anExpenseExistsInCategoryOn)
	ctx.Given(`^an expense exists with description "([^"]*)" and amount "([^"]*)" dated (\d+) days? ago$`, test.anExpenseExistsDaysAgo)
	ctx.Given(`^an expense exists with description "([^"]*)" amount "([^"]*)" and notes "([^"]*)"$`, test.anExpenseExistsWithNotes)

	// Budget setup steps
	ctx.Given(`^a budget exists with amount "([^"]*)" and period "([^"]*)"$`, test.aBudgetExists)
	ctx.Given(`^a budget exists with amount "([^"]*)" and period "([^"]*)" for category "([^"]*)"$`, test.aBudgetExistsForCategory)
	ctx.Given(`^a budget exists with amount "([^"]*)" and period "([^"]*)" starting "([^"]*)"$`, test.aBudgetExistsStarting)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

// startServer boots the API once for the whole test run. The server is wired
// through the production injector against the shared in-memory database, so
// scenarios exercise the same stack main starts. The Gemini and Resend keys
// stay empty: categorization falls back to deterministic keyword matching and
// outgoing mail is captured in memory.
func (t *testContext) startServer() error {
	serverInit.Do(func() {
		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.JWT.Secret = testJWTSecret
		cfg.Redis.Addr = testRedis.Options().Addr
		cfg.AI.GeminiAPIKey = ""
		cfg.Email.ResendAPIKey = ""

		injector, err := dependency.NewInjector(cfg, testDB.DbConn)
		if err != nil {
			serverStartErr = fmt.Errorf("failed to wire test server: %w", err)
			return
		}
		engine := injector.Router.Setup(cfg.Server.Environment)

		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", testServerPort),
			Handler: engine,
		}
		go func() {
			_ = server.ListenAndServe()
		}()
	})
	if serverStartErr != nil {
		return serverStartErr
	}

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return errors.New("server did not become ready")
}

func (t *testContext) theAPIServerIsRunning() error {
	if err := t.startServer(); err != nil {
		return err
	}
	return t.seedCatalog()
}

// seedCatalog restores the default category catalog after the per-scenario
// database wipe. Seeding is idempotent, so calling it from every Background
// is safe.
func (t *testContext) seedCatalog() error {
	seed := category.NewSeedCategoriesUseCase(persistence.NewCategoryRepository(t.db.DbConn))
	_, err := seed.Execute(context.Background(), category.SeedCategoriesInput{})
	return err
}

func (t *testContext) anAccountExistsWithEmailAndPassword(email, password string) error {
	return t.createAccount(email, password, "Test User")
}

func (t *testContext) createAccount(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID
	t.currentEmail = email

	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		DigestOptIn:  true,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedIn mints a valid token pair for the fixture account, creating a
// default account first when no earlier step declared one.
func (t *testContext) iAmLoggedIn() error {
	if t.currentUserID == uuid.Nil {
		if err := t.createAccount("test@example.com", "SecurePass123!", "Test User"); err != nil {
			return err
		}
	}

	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      t.currentEmail,
		"token_type": "access",
		"exp":        jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "spendwise",
		"sub":        t.currentUserID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"user_id":    t.currentUserID.String(),
		"email":      t.currentEmail,
		"token_type": "refresh",
		"exp":        jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":        jwt.NewNumericDate(now),
		"nbf":        jwt.NewNumericDate(now),
		"iss":        "spendwise",
		"sub":        t.currentUserID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	return t.db.DbConn.Create(refreshTokenModel).Error
}

func (t *testContext) theAccountHasOptedOut() error {
	return t.db.DbConn.Model(&model.UserModel{}).
		Where("id = ?", t.currentUserID).
		Update("digest_opt_in", false).Error
}

// theAccountHasBeenDeleted removes the account row while keeping the minted
// tokens, reproducing a deleted account with a still-valid session.
func (t *testContext) theAccountHasBeenDeleted() error {
	return t.db.DbConn.Where("id = ?", t.currentUserID).Delete(&model.UserModel{}).Error
}

func (t *testContext) anExpenseExists(description, amount string) error {
	return t.createExpense(description, amount, "", "", time.Now().UTC())
}

func (t *testContext) anExpenseExistsInCategory(description, amount, categoryID string) error {
	return t.createExpense(description, amount, categoryID, "", time.Now().UTC())
}

func (t *testContext) anExpenseExistsOn(description, amount, date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}
	return t.createExpense(description, amount, "", "", day)
}

func (t *testContext) anExpenseExistsInCategoryOn(description, amount, categoryID, date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date '%s': %w", date, err)
	}
	return t.createExpense(description, amount, categoryID, "", day)
}

func (t *testContext) anExpenseExistsDaysAgo(description, amount string, days int) error {
	return t.createExpense(description, amount, "", "", time.Now().UTC().AddDate(0, 0, -days))
}

func (t *testContext) anExpenseExistsWithNotes(description, amount, notes string) error {
	return t.createExpense(description, amount, "", notes, time.Now().UTC())
}

func (t *testContext) createExpense(description, amount, categoryID, notes string, date time.Time) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	expenseID := uuid.New()
	t.currentExpenseID = expenseID

	now := time.Now().UTC()
	expense := &model.ExpenseModel{
		ID:          expenseID,
		Amount:      value,
		CategoryID:  categoryID,
		Description: description,
		Date:        date,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	return t.db.DbConn.Create(expense).Error
}

func (t *testContext) aBudgetExists(amount, period string) error {
	return t.createBudget(amount, period, nil, defaultBudgetStart(period))
}

func (t *testContext) aBudgetExistsForCategory(amount, period, categoryID string) error {
	return t.createBudget(amount, period, &categoryID, defaultBudgetStart(period))
}

func (t *testContext) aBudgetExistsStarting(amount, period, start string) error {
	day, err := time.Parse("2006-01-02", start)
	if err != nil {
		return fmt.Errorf("invalid start date '%s': %w", start, err)
	}
	return t.createBudget(amount, period, nil, day)
}

func (t *testContext) createBudget(amount, period string, categoryID *string, start time.Time) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	budgetID := uuid.New()
	t.currentBudgetID = budgetID

	now := time.Now().UTC()
	budget := &model.BudgetModel{
		ID:         budgetID,
		Amount:     value,
		Period:     period,
		CategoryID: categoryID,
		StartDate:  start,
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return t.db.DbConn.Create(budget).Error
}

// defaultBudgetStart picks a start date whose current billing cycle contains
// the present moment: the first of this month for monthly budgets, today for
// weekly ones.
func defaultBudgetStart(period string) time.Time {
	now := time.Now().UTC()
	if period == "weekly" {
		return now
	}
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}
