package movement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/domain/valueobject"
)

// ListMovementsInput represents the history filters. Zero values mean "no filter".
type ListMovementsInput struct {
	UserID           uuid.UUID
	Type             string
	CategoryID       *uuid.UUID
	CategoryName     string
	MinAmount        *decimal.Decimal
	MaxAmount        *decimal.Decimal
	StartDate        *time.Time
	EndDate          *time.Time
	IncludeRecurring bool
	Limit            int
}

// ListMovementsOutput represents the output of listing movements.
type ListMovementsOutput struct {
	Movements []*entity.MovementWithCategory
}

// ListMovementsUseCase returns the movement history of a user.
type ListMovementsUseCase struct {
	movementRepo adapter.MovementRepository
}

// NewListMovementsUseCase creates a new ListMovementsUseCase instance.
func NewListMovementsUseCase(movementRepo adapter.MovementRepository) *ListMovementsUseCase {
	return &ListMovementsUseCase{
		movementRepo: movementRepo,
	}
}

// Execute lists movements newest first. Recurring templates are excluded
// unless IncludeRecurring is set.
func (uc *ListMovementsUseCase) Execute(ctx context.Context, input ListMovementsInput) (*ListMovementsOutput, error) {
	filter := adapter.MovementFilter{
		UserID:           input.UserID,
		CategoryID:       input.CategoryID,
		MinAmount:        input.MinAmount,
		MaxAmount:        input.MaxAmount,
		IncludeRecurring: input.IncludeRecurring,
		Limit:            input.Limit,
	}

	if input.Type != "" {
		movementType, err := ParseType(input.Type)
		if err != nil {
			return nil, err
		}
		filter.Type = &movementType
	}

	if input.CategoryName != "" {
		name, err := NormalizeCategoryName(input.CategoryName)
		if err != nil {
			return nil, err
		}
		filter.CategoryName = name
	}

	if input.MinAmount != nil && input.MaxAmount != nil && input.MinAmount.GreaterThan(*input.MaxAmount) {
		return nil, domainerror.NewMovementError(
			domainerror.ErrCodeInvalidAmountRange,
			"min_amount must not exceed max_amount",
			domainerror.ErrInvalidAmountRange,
		)
	}

	if input.StartDate != nil {
		start := valueobject.DateOnly(*input.StartDate)
		filter.StartDate = &start
	}
	if input.EndDate != nil {
		end := valueobject.DateOnly(*input.EndDate)
		filter.EndDate = &end
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.EndDate.Before(*filter.StartDate) {
		return nil, invalidDateRange()
	}

	if filter.Limit < 0 {
		filter.Limit = 0
	}

	movements, err := uc.movementRepo.FindByFilter(ctx, filter)
	if err != nil {
		return nil, domainerror.NewStorageError("list movements", err)
	}

	return &ListMovementsOutput{
		Movements: movements,
	}, nil
}

func invalidDateRange() error {
	return domainerror.NewMovementError(
		domainerror.ErrCodeInvalidDateRange,
		"end_date must not be before start_date",
		domainerror.ErrInvalidDateRange,
	)
}
