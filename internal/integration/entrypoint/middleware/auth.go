// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/application/adapter"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
)

// AuthMiddleware guards API routes with JWT access tokens. The server holds
// a single account, so a valid token is all a handler needs to know; no
// identity is threaded through the request context.
type AuthMiddleware struct {
	tokenService adapter.TokenService
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate returns a Gin handler that rejects requests without a valid
// Bearer access token. Validation is purely stateless; only the refresh flow
// touches the token store.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.reject(c, "Authorization header is required", domainerror.ErrCodeMissingToken)
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			m.reject(c, "Invalid authorization header format", domainerror.ErrCodeInvalidToken)
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			m.reject(c, "Token is required", domainerror.ErrCodeMissingToken)
			return
		}

		if _, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token); err != nil {
			m.reject(c, "Invalid or expired token", domainerror.ErrCodeInvalidToken)
			return
		}

		c.Next()
	}
}

// reject aborts the request with a 401 and the given error code.
func (m *AuthMiddleware) reject(c *gin.Context, message string, code domainerror.AuthErrorCode) {
	c.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
	c.Abort()
}
