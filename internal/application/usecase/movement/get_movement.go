package movement

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
)

// GetMovementInput represents the input for fetching one movement.
type GetMovementInput struct {
	MovementID uuid.UUID
	UserID     uuid.UUID
}

// GetMovementOutput represents a movement with its category.
type GetMovementOutput struct {
	Movement *entity.MovementWithCategory
}

// GetMovementUseCase fetches a single movement owned by the user.
type GetMovementUseCase struct {
	movementRepo adapter.MovementRepository
	categoryRepo adapter.CategoryRepository
}

// NewGetMovementUseCase creates a new GetMovementUseCase instance.
func NewGetMovementUseCase(movementRepo adapter.MovementRepository, categoryRepo adapter.CategoryRepository) *GetMovementUseCase {
	return &GetMovementUseCase{
		movementRepo: movementRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute loads the movement and its category. Movements of other users are not found.
func (uc *GetMovementUseCase) Execute(ctx context.Context, input GetMovementInput) (*GetMovementOutput, error) {
	m, err := uc.movementRepo.FindByID(ctx, input.MovementID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrMovementNotFound) {
			return nil, notFound()
		}
		return nil, domainerror.NewStorageError("find movement", err)
	}

	category, err := uc.categoryRepo.FindByID(ctx, m.CategoryID)
	if err != nil {
		return nil, domainerror.NewStorageError("find movement category", err)
	}

	return &GetMovementOutput{
		Movement: &entity.MovementWithCategory{Movement: m, Category: category},
	}, nil
}
