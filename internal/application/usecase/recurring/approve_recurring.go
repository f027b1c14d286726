package recurring

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/domain/valueobject"
)

// ApproveRecurringInput represents the input for approving a recurring movement.
type ApproveRecurringInput struct {
	MovementID uuid.UUID
	UserID     uuid.UUID
}

// ApproveRecurringOutput holds the one-time movement created by the approval.
type ApproveRecurringOutput struct {
	Movement *entity.Movement
}

// ApproveRecurringUseCase turns a pending template into a real ledger entry.
type ApproveRecurringUseCase struct {
	movementRepo adapter.MovementRepository
	now          func() time.Time
}

// NewApproveRecurringUseCase creates a new ApproveRecurringUseCase instance.
func NewApproveRecurringUseCase(movementRepo adapter.MovementRepository) *ApproveRecurringUseCase {
	return &ApproveRecurringUseCase{
		movementRepo: movementRepo,
		now:          time.Now,
	}
}

// WithClock overrides the clock that dates the approved occurrence.
func (uc *ApproveRecurringUseCase) WithClock(now func() time.Time) *ApproveRecurringUseCase {
	uc.now = now
	return uc
}

// Execute marks the template approved and inserts a copy dated today.
// Approving twice fails with a not-found error on the second call.
func (uc *ApproveRecurringUseCase) Execute(ctx context.Context, input ApproveRecurringInput) (*ApproveRecurringOutput, error) {
	today := valueobject.DateOnly(uc.now())

	occurrence, err := uc.movementRepo.ApproveRecurring(ctx, input.MovementID, input.UserID, today)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecurringNotPending) {
			return nil, notPending()
		}
		return nil, domainerror.NewStorageError("approve recurring movement", err)
	}

	slog.Info("Recurring movement approved",
		"template_id", input.MovementID,
		"movement_id", occurrence.ID,
		"user_id", input.UserID,
	)

	return &ApproveRecurringOutput{
		Movement: occurrence,
	}, nil
}

func notPending() error {
	return domainerror.NewMovementError(
		domainerror.ErrCodeRecurringNotPending,
		"pending recurring movement not found",
		domainerror.ErrRecurringNotPending,
	)
}
