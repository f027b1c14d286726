package movement

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/domain/valueobject"
)

// RecordMovementInput represents the input for recording a movement.
// Recurrence is nil for one-time movements.
type RecordMovementInput struct {
	UserID       uuid.UUID
	Date         time.Time
	CategoryName string
	Amount       decimal.Decimal
	Type         string
	Description  string
	Recurrence   *entity.Recurrence
}

// RecordMovementOutput represents the output of recording a movement.
type RecordMovementOutput struct {
	Movement *entity.MovementWithCategory
}

// RecordMovementUseCase validates and appends a movement to the ledger.
type RecordMovementUseCase struct {
	movementRepo adapter.MovementRepository
}

// NewRecordMovementUseCase creates a new RecordMovementUseCase instance.
func NewRecordMovementUseCase(movementRepo adapter.MovementRepository) *RecordMovementUseCase {
	return &RecordMovementUseCase{
		movementRepo: movementRepo,
	}
}

// Execute validates the input, resolves the category by find-or-create and
// inserts the movement. Identical calls create distinct rows.
func (uc *RecordMovementUseCase) Execute(ctx context.Context, input RecordMovementInput) (*RecordMovementOutput, error) {
	movementType, err := ParseType(input.Type)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validateDate(input.Date); err != nil {
		return nil, err
	}
	categoryName, err := NormalizeCategoryName(input.CategoryName)
	if err != nil {
		return nil, err
	}
	if err := validateDescription(input.Description); err != nil {
		return nil, err
	}

	date := valueobject.DateOnly(input.Date)

	var movement *entity.Movement
	if input.Recurrence != nil {
		recurrence := *input.Recurrence
		recurrence.ScheduledDate = valueobject.DateOnly(recurrence.ScheduledDate)
		if recurrence.EndDate != nil {
			end := valueobject.DateOnly(*recurrence.EndDate)
			recurrence.EndDate = &end
		}
		if err := validateRecurrence(&recurrence); err != nil {
			return nil, err
		}
		movement = entity.NewRecurringMovement(input.UserID, uuid.Nil, date, input.Amount, movementType, input.Description, recurrence)
	} else {
		movement = entity.NewMovement(input.UserID, uuid.Nil, date, input.Amount, movementType, input.Description)
	}

	category, err := uc.movementRepo.CreateWithCategory(ctx, movement, categoryName)
	if err != nil {
		return nil, domainerror.NewStorageError("record movement", err)
	}

	slog.Debug("Movement recorded",
		"movement_id", movement.ID,
		"user_id", movement.UserID,
		"type", movement.Type,
		"recurring", movement.IsRecurring,
	)

	return &RecordMovementOutput{
		Movement: &entity.MovementWithCategory{Movement: movement, Category: category},
	}, nil
}
