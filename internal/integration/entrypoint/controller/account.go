// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spendwise/backend/internal/application/usecase/auth"
	domainerror "github.com/spendwise/backend/internal/domain/error"
	"github.com/spendwise/backend/internal/integration/entrypoint/dto"
)

// AccountController handles account management endpoints. The server holds
// a single account, so no route carries a user ID.
type AccountController struct {
	getAccountUseCase    *auth.GetAccountUseCase
	updateAccountUseCase *auth.UpdateAccountUseCase
	deleteAccountUseCase *auth.DeleteAccountUseCase
}

// NewAccountController creates a new account controller instance.
func NewAccountController(
	getAccountUseCase *auth.GetAccountUseCase,
	updateAccountUseCase *auth.UpdateAccountUseCase,
	deleteAccountUseCase *auth.DeleteAccountUseCase,
) *AccountController {
	return &AccountController{
		getAccountUseCase:    getAccountUseCase,
		updateAccountUseCase: updateAccountUseCase,
		deleteAccountUseCase: deleteAccountUseCase,
	}
}

// GetAccount handles GET /account requests.
func (c *AccountController) GetAccount(ctx *gin.Context) {
	output, err := c.getAccountUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// UpdateAccount handles PATCH /account requests.
func (c *AccountController) UpdateAccount(ctx *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := auth.UpdateAccountInput{
		Name:        req.Name,
		DigestOptIn: req.DigestOptIn,
	}

	output, err := c.updateAccountUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// DeleteAccount handles DELETE /account requests. Wiping the account resets
// the server to its pre-setup state.
func (c *AccountController) DeleteAccount(ctx *gin.Context) {
	var req dto.DeleteAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingFields),
		})
		return
	}

	input := auth.DeleteAccountInput{
		Password:     req.Password,
		Confirmation: req.Confirmation,
	}

	if _, err := c.deleteAccountUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleAccountError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleAccountError handles account management errors and returns appropriate HTTP responses.
func (c *AccountController) handleAccountError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		statusCode := c.getStatusCodeForAccountError(authErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAccountError maps account error codes to HTTP status codes.
func (c *AccountController) getStatusCodeForAccountError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case domainerror.ErrCodeInvalidConfirmation, domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
