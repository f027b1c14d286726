package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
)

// UpdateProfileInput represents a partial profile update. Nil fields are left unchanged.
type UpdateProfileInput struct {
	UserID             uuid.UUID
	Name               *string
	Email              *string
	RecurringReminders *bool
}

// UpdateProfileOutput represents the updated profile.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase handles profile changes.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute applies the patch to the user's profile.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	user, err := findUser(ctx, uc.userRepo, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name, err := validateName(*input.Name)
		if err != nil {
			return nil, err
		}
		user.Name = name
	}

	if input.Email != nil {
		email, err := normalizeEmail(*input.Email)
		if err != nil {
			return nil, err
		}
		if email != user.Email {
			exists, err := uc.userRepo.ExistsByEmail(ctx, email)
			if err != nil {
				return nil, domainerror.NewStorageError("check email existence", err)
			}
			if exists {
				return nil, emailTaken()
			}
			user.Email = email
		}
	}

	if input.RecurringReminders != nil {
		user.RecurringReminders = *input.RecurringReminders
	}

	user.UpdatedAt = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, domainerror.NewStorageError("update user", err)
	}

	return &UpdateProfileOutput{
		User: user,
	}, nil
}
