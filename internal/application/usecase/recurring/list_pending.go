// Package recurring contains the approval lifecycle of recurring movements.
package recurring

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/domain/valueobject"
)

// ListPendingInput represents the input for listing pending recurring movements.
type ListPendingInput struct {
	UserID uuid.UUID
}

// ListPendingOutput represents the pending templates, earliest scheduled first.
type ListPendingOutput struct {
	Movements []*entity.MovementWithCategory
}

// ListPendingUseCase lists recurring movements awaiting approval.
type ListPendingUseCase struct {
	movementRepo adapter.MovementRepository
	now          func() time.Time
}

// NewListPendingUseCase creates a new ListPendingUseCase instance.
func NewListPendingUseCase(movementRepo adapter.MovementRepository) *ListPendingUseCase {
	return &ListPendingUseCase{
		movementRepo: movementRepo,
		now:          time.Now,
	}
}

// WithClock overrides the clock used to decide expiry.
func (uc *ListPendingUseCase) WithClock(now func() time.Time) *ListPendingUseCase {
	uc.now = now
	return uc
}

// Execute returns pending templates whose end date has not passed.
func (uc *ListPendingUseCase) Execute(ctx context.Context, input ListPendingInput) (*ListPendingOutput, error) {
	today := valueobject.DateOnly(uc.now())

	movements, err := uc.movementRepo.FindPendingRecurring(ctx, input.UserID, today)
	if err != nil {
		return nil, domainerror.NewStorageError("list pending recurring movements", err)
	}

	return &ListPendingOutput{
		Movements: movements,
	}, nil
}
