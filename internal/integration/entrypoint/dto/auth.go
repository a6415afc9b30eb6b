// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/spendwise/backend/internal/domain/entity"
)

// SetupRequest represents the request body for one-time account setup.
type SetupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"max=100"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for login. The server holds a
// single account, so only the password is required.
type LoginRequest struct {
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateAccountRequest represents the request body for updating the account
// profile. Absent fields are left unchanged.
type UpdateAccountRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=100"`
	DigestOptIn *bool   `json:"digest_opt_in,omitempty"`
}

// DeleteAccountRequest represents the request body for deleting the account.
// The confirmation phrase guards against accidental calls.
type DeleteAccountRequest struct {
	Password     string `json:"password" binding:"required"`
	Confirmation string `json:"confirmation" binding:"required"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse represents the account data in API responses.
type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	DigestOptIn bool      `json:"digest_opt_in"`
	CreatedAt   time.Time `json:"created_at"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:          user.ID.String(),
		Email:       user.Email,
		Name:        user.Name,
		DigestOptIn: user.DigestOptIn,
		CreatedAt:   user.CreatedAt,
	}
}
