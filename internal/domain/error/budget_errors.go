// Package error defines domain-specific errors for the SpendWise application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrBudgetAlreadyExists is returned when attempting to create a second active budget for the same scope.
	ErrBudgetAlreadyExists = errors.New("an active budget already exists for this category")

	// ErrInvalidBudgetAmount is returned when the budget amount is zero or negative.
	ErrInvalidBudgetAmount = errors.New("budget amount must be positive")

	// ErrInvalidBudgetPeriod is returned when the budget period is not weekly or monthly.
	ErrInvalidBudgetPeriod = errors.New("budget period must be weekly or monthly")

	// ErrInvalidBudgetStartDate is returned when the budget start date is invalid.
	ErrInvalidBudgetStartDate = errors.New("invalid budget start date")

	// ErrUnknownBudgetCategory is returned when the budget references a category not in the catalog.
	ErrUnknownBudgetCategory = errors.New("unknown category")

	// ErrInvalidCycleSelection is returned when the requested cycle is not current or previous.
	ErrInvalidCycleSelection = errors.New("cycle must be current or previous")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetAmount    BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetPeriod    BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidBudgetStartDate BudgetErrorCode = "BGT-010003"
	ErrCodeUnknownBudgetCategory  BudgetErrorCode = "BGT-010004"
	ErrCodeMissingBudgetFields    BudgetErrorCode = "BGT-010005"
	ErrCodeInvalidCycleSelection  BudgetErrorCode = "BGT-010006"

	// Lookup errors (02XXXX)
	ErrCodeBudgetNotFound      BudgetErrorCode = "BGT-020001"
	ErrCodeBudgetAlreadyExists BudgetErrorCode = "BGT-020002"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
