package movement

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
)

// DeleteMovementInput represents the input for movement deletion.
type DeleteMovementInput struct {
	MovementID uuid.UUID
	UserID     uuid.UUID
}

// DeleteMovementUseCase handles movement deletion logic.
type DeleteMovementUseCase struct {
	movementRepo adapter.MovementRepository
}

// NewDeleteMovementUseCase creates a new DeleteMovementUseCase instance.
func NewDeleteMovementUseCase(movementRepo adapter.MovementRepository) *DeleteMovementUseCase {
	return &DeleteMovementUseCase{
		movementRepo: movementRepo,
	}
}

// Execute soft-deletes a movement owned by the user.
func (uc *DeleteMovementUseCase) Execute(ctx context.Context, input DeleteMovementInput) error {
	if _, err := uc.movementRepo.FindByID(ctx, input.MovementID, input.UserID); err != nil {
		if errors.Is(err, domainerror.ErrMovementNotFound) {
			return notFound()
		}
		return domainerror.NewStorageError("find movement", err)
	}

	if err := uc.movementRepo.Delete(ctx, input.MovementID); err != nil {
		return domainerror.NewStorageError("delete movement", err)
	}
	return nil
}
