// Package error defines domain-specific errors for the SpendWise application.
package error

import "errors"

// Analytics domain errors.
var (
	// ErrInvalidPeriod is returned when the requested period is not supported.
	ErrInvalidPeriod = errors.New("period must be: today, week, or month")

	// ErrInvalidReferenceDate is returned when the reference date cannot be parsed.
	ErrInvalidReferenceDate = errors.New("invalid reference date, expected YYYY-MM-DD")

	// ErrInvalidTrendDays is returned when the requested trend window is out of range.
	ErrInvalidTrendDays = errors.New("days must be between 1 and 365")

	// ErrInvalidDateRange is returned when a custom date range is incomplete or inverted.
	ErrInvalidDateRange = errors.New("invalid date range")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPeriod        AnalyticsErrorCode = "ANL-010001"
	ErrCodeInvalidReferenceDate AnalyticsErrorCode = "ANL-010002"
	ErrCodeInvalidTrendDays     AnalyticsErrorCode = "ANL-010003"
	ErrCodeInvalidDateRange     AnalyticsErrorCode = "ANL-010004"

	// Internal errors (99XXXX)
	ErrCodeAnalyticsInternalError AnalyticsErrorCode = "ANL-990001"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
