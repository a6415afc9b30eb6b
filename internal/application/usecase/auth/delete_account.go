// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/spendwise/backend/internal/application/adapter"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// DeleteConfirmation is the phrase the caller must echo back to delete
// the account.
const DeleteConfirmation = "DELETE"

// DeleteAccountInput represents the input for account deletion.
type DeleteAccountInput struct {
	Password     string
	Confirmation string
}

// DeleteAccountOutput represents the output of account deletion.
type DeleteAccountOutput struct {
	Success bool
}

// DeleteAccountUseCase wipes the account of a SpendWise deployment.
// Deleting the single user row returns the server to its pre-setup state,
// so setup can run again afterwards.
type DeleteAccountUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewDeleteAccountUseCase creates a new DeleteAccountUseCase instance.
func NewDeleteAccountUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute performs the account deletion.
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, input DeleteAccountInput) (*DeleteAccountOutput, error) {
	if input.Confirmation != DeleteConfirmation {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidConfirmation,
			"confirmation must be exactly 'DELETE'",
			domainerror.ErrInvalidConfirmation,
		)
	}

	user, err := uc.userRepo.FindAccount(ctx)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"account not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"invalid password",
			domainerror.ErrInvalidCredentials,
		)
	}

	// Revoke every session before the row disappears.
	if err := uc.tokenService.InvalidateAllUserTokens(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to invalidate user tokens: %w", err)
	}

	if err := uc.userRepo.Delete(ctx, user.ID); err != nil {
		return nil, fmt.Errorf("failed to delete account: %w", err)
	}

	return &DeleteAccountOutput{
		Success: true,
	}, nil
}
