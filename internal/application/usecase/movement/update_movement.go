package movement

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/domain/valueobject"
)

// UpdateMovementInput represents a partial update; nil fields are left unchanged.
type UpdateMovementInput struct {
	MovementID   uuid.UUID
	UserID       uuid.UUID
	Date         *time.Time
	CategoryName *string
	Amount       *decimal.Decimal
	Description  *string
}

// UpdateMovementOutput represents the output of a movement update.
type UpdateMovementOutput struct {
	Movement *entity.MovementWithCategory
}

// UpdateMovementUseCase edits a one-time movement.
type UpdateMovementUseCase struct {
	movementRepo adapter.MovementRepository
	categoryRepo adapter.CategoryRepository
}

// NewUpdateMovementUseCase creates a new UpdateMovementUseCase instance.
func NewUpdateMovementUseCase(movementRepo adapter.MovementRepository, categoryRepo adapter.CategoryRepository) *UpdateMovementUseCase {
	return &UpdateMovementUseCase{
		movementRepo: movementRepo,
		categoryRepo: categoryRepo,
	}
}

// Execute applies the patch. Recurring templates are changed only through the
// recurring lifecycle.
func (uc *UpdateMovementUseCase) Execute(ctx context.Context, input UpdateMovementInput) (*UpdateMovementOutput, error) {
	movement, err := uc.movementRepo.FindByID(ctx, input.MovementID, input.UserID)
	if err != nil {
		if errors.Is(err, domainerror.ErrMovementNotFound) {
			return nil, notFound()
		}
		return nil, domainerror.NewStorageError("find movement", err)
	}

	if movement.IsRecurring {
		return nil, domainerror.NewMovementError(
			domainerror.ErrCodeRecurringImmutable,
			"recurring movements cannot be edited",
			domainerror.ErrRecurringImmutable,
		)
	}

	if input.Date != nil {
		if err := validateDate(*input.Date); err != nil {
			return nil, err
		}
		movement.Date = valueobject.DateOnly(*input.Date)
	}
	if input.Amount != nil {
		if err := validateAmount(*input.Amount); err != nil {
			return nil, err
		}
		movement.Amount = *input.Amount
	}
	if input.Description != nil {
		if err := validateDescription(*input.Description); err != nil {
			return nil, err
		}
		movement.Description = *input.Description
	}

	var categoryName string
	if input.CategoryName != nil {
		categoryName, err = NormalizeCategoryName(*input.CategoryName)
		if err != nil {
			return nil, err
		}
	} else {
		current, err := uc.categoryRepo.FindByID(ctx, movement.CategoryID)
		if err != nil {
			return nil, domainerror.NewStorageError("find movement category", err)
		}
		categoryName = current.Name
	}

	movement.UpdatedAt = time.Now().UTC()

	category, err := uc.movementRepo.UpdateWithCategory(ctx, movement, categoryName)
	if err != nil {
		return nil, domainerror.NewStorageError("update movement", err)
	}

	return &UpdateMovementOutput{
		Movement: &entity.MovementWithCategory{Movement: movement, Category: category},
	}, nil
}
