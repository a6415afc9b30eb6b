// Package error defines domain-specific errors for the SpendWise application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrInvalidExpenseAmount is returned when the expense amount is zero or negative.
	ErrInvalidExpenseAmount = errors.New("expense amount must be positive")

	// ErrInvalidExpenseDate is returned when the expense date is invalid.
	ErrInvalidExpenseDate = errors.New("invalid expense date")

	// ErrMissingExpenseDescription is returned when the expense description is empty.
	ErrMissingExpenseDescription = errors.New("expense description is required")

	// ErrExpenseDescriptionTooLong is returned when the description exceeds the maximum length.
	ErrExpenseDescriptionTooLong = errors.New("description too long")

	// ErrExpenseNotesTooLong is returned when the notes exceed the maximum length.
	ErrExpenseNotesTooLong = errors.New("notes too long")

	// ErrUnknownExpenseCategory is returned when the category is not in the catalog.
	ErrUnknownExpenseCategory = errors.New("unknown category")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidExpenseAmount      ExpenseErrorCode = "EXP-010001"
	ErrCodeInvalidExpenseDate        ExpenseErrorCode = "EXP-010002"
	ErrCodeMissingExpenseDescription ExpenseErrorCode = "EXP-010003"
	ErrCodeExpenseDescriptionTooLong ExpenseErrorCode = "EXP-010004"
	ErrCodeExpenseNotesTooLong       ExpenseErrorCode = "EXP-010005"
	ErrCodeUnknownExpenseCategory    ExpenseErrorCode = "EXP-010006"
	ErrCodeMissingExpenseFields      ExpenseErrorCode = "EXP-010007"

	// Lookup errors (02XXXX)
	ErrCodeExpenseNotFound ExpenseErrorCode = "EXP-020001"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
