// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// UpdateAccountInput represents the input for updating the account profile.
// Nil fields are left unchanged.
type UpdateAccountInput struct {
	Name        *string
	DigestOptIn *bool
}

// UpdateAccountOutput represents the output of updating the account.
type UpdateAccountOutput struct {
	User *entity.User
}

// UpdateAccountUseCase applies profile changes to the single account.
// The display name and the monthly digest opt-in are the only mutable
// fields; email and password are fixed at setup.
type UpdateAccountUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateAccountUseCase creates a new UpdateAccountUseCase instance.
func NewUpdateAccountUseCase(userRepo adapter.UserRepository) *UpdateAccountUseCase {
	return &UpdateAccountUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the account update.
func (uc *UpdateAccountUseCase) Execute(ctx context.Context, input UpdateAccountInput) (*UpdateAccountOutput, error) {
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

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.DigestOptIn != nil {
		user.DigestOptIn = *input.DigestOptIn
	}
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	return &UpdateAccountOutput{User: user}, nil
}
