// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/spendwise/backend/internal/application/adapter"
	"github.com/spendwise/backend/internal/domain/entity"
	domainerror "github.com/spendwise/backend/internal/domain/error"
)

// GetAccountOutput represents the output of reading the account.
type GetAccountOutput struct {
	User *entity.User
}

// GetAccountUseCase loads the single account of the deployment.
type GetAccountUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetAccountUseCase creates a new GetAccountUseCase instance.
func NewGetAccountUseCase(userRepo adapter.UserRepository) *GetAccountUseCase {
	return &GetAccountUseCase{
		userRepo: userRepo,
	}
}

// Execute loads the account.
func (uc *GetAccountUseCase) Execute(ctx context.Context) (*GetAccountOutput, error) {
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

	return &GetAccountOutput{User: user}, nil
}
