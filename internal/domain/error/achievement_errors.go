// Package error defines domain-specific errors for the SpendWise application.
package error

import "errors"

// Achievement domain errors.
var (
	// ErrUnknownAchievement is returned when a definition id is not in the catalog.
	ErrUnknownAchievement = errors.New("unknown achievement")

	// ErrInvalidTelemetryMetric is returned when a telemetry update names an unsupported metric.
	ErrInvalidTelemetryMetric = errors.New("unsupported telemetry metric")

	// ErrInvalidProgressValue is returned when a progress value is outside 0-100.
	ErrInvalidProgressValue = errors.New("progress must be between 0 and 100")
)

// AchievementErrorCode defines error codes for achievement errors.
// Format: ACH-XXYYYY where XX is category and YYYY is specific error.
type AchievementErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeUnknownAchievement     AchievementErrorCode = "ACH-010001"
	ErrCodeInvalidTelemetryMetric AchievementErrorCode = "ACH-010002"
	ErrCodeInvalidProgressValue   AchievementErrorCode = "ACH-010003"

	// Internal errors (99XXXX)
	ErrCodeAchievementInternalError AchievementErrorCode = "ACH-990001"
)

// AchievementError represents an achievement error with code and message.
type AchievementError struct {
	Code    AchievementErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AchievementError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AchievementError) Unwrap() error {
	return e.Err
}

// NewAchievementError creates a new AchievementError with the given code and message.
func NewAchievementError(code AchievementErrorCode, message string, err error) *AchievementError {
	return &AchievementError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
