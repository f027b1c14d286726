package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
)

// GetProfileInput represents the input for reading a profile.
type GetProfileInput struct {
	UserID uuid.UUID
}

// GetProfileOutput represents the authenticated user's profile.
type GetProfileOutput struct {
	User *entity.User
}

// GetProfileUseCase loads the authenticated user.
type GetProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewGetProfileUseCase creates a new GetProfileUseCase instance.
func NewGetProfileUseCase(userRepo adapter.UserRepository) *GetProfileUseCase {
	return &GetProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute returns the profile of input.UserID.
func (uc *GetProfileUseCase) Execute(ctx context.Context, input GetProfileInput) (*GetProfileOutput, error) {
	user, err := findUser(ctx, uc.userRepo, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetProfileOutput{
		User: user,
	}, nil
}

func findUser(ctx context.Context, userRepo adapter.UserRepository, userID uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrUserNotFound) {
			return nil, domainerror.NewAuthError(
				domainerror.ErrCodeUserNotFound,
				"user not found",
				domainerror.ErrUserNotFound,
			)
		}
		return nil, domainerror.NewStorageError("find user", err)
	}
	return user, nil
}
