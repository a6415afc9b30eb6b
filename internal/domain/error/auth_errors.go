// Package error defines domain-specific errors for the SpendWise application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrUserNotFound is returned when the account is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrAccountAlreadyExists is returned when setup is attempted on an initialized server.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrAccountNotSetUp is returned when login is attempted before setup.
	ErrAccountNotSetUp = errors.New("server has no account yet")

	// ErrInvalidCredentials is returned when login credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrWeakPassword is returned when the provided password does not meet requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidEmail is returned when the provided email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidConfirmation is returned when account deletion is requested
	// without the expected confirmation phrase.
	ErrInvalidConfirmation = errors.New("invalid confirmation phrase")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Setup errors (01XXXX)
	ErrCodeAccountAlreadyExists AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword         AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidEmail         AuthErrorCode = "AUTH-010003"
	ErrCodeMissingFields        AuthErrorCode = "AUTH-010004"

	// Login errors (02XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-020001"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-020002"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-020003"
	ErrCodeAccountNotSetUp    AuthErrorCode = "AUTH-020004"

	// Token errors (03XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-030001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-030002"
	ErrCodeMissingToken AuthErrorCode = "AUTH-030003"

	// Account management errors (04XXXX)
	ErrCodeInvalidConfirmation AuthErrorCode = "AUTH-040001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
