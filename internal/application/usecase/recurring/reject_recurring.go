package recurring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
)

// RejectPolicy decides what rejecting a template does to its row.
type RejectPolicy string

const (
	// RejectPolicySoft keeps the row with status rejected.
	RejectPolicySoft RejectPolicy = "soft"
	// RejectPolicyHard deletes the row.
	RejectPolicyHard RejectPolicy = "hard"
)

// ParseRejectPolicy parses a policy name; empty means soft.
func ParseRejectPolicy(s string) (RejectPolicy, error) {
	switch RejectPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", RejectPolicySoft:
		return RejectPolicySoft, nil
	case RejectPolicyHard:
		return RejectPolicyHard, nil
	default:
		return "", fmt.Errorf("unknown reject policy %q", s)
	}
}

// RejectRecurringInput represents the input for rejecting a recurring movement.
type RejectRecurringInput struct {
	MovementID uuid.UUID
	UserID     uuid.UUID
}

// RejectRecurringUseCase discards a pending template without creating a movement.
type RejectRecurringUseCase struct {
	movementRepo adapter.MovementRepository
	policy       RejectPolicy
}

// NewRejectRecurringUseCase creates a new RejectRecurringUseCase instance.
func NewRejectRecurringUseCase(movementRepo adapter.MovementRepository, policy RejectPolicy) *RejectRecurringUseCase {
	return &RejectRecurringUseCase{
		movementRepo: movementRepo,
		policy:       policy,
	}
}

// Execute rejects the template according to the configured policy.
func (uc *RejectRecurringUseCase) Execute(ctx context.Context, input RejectRecurringInput) error {
	hard := uc.policy == RejectPolicyHard

	if err := uc.movementRepo.RejectRecurring(ctx, input.MovementID, input.UserID, hard); err != nil {
		if errors.Is(err, domainerror.ErrRecurringNotPending) {
			return notPending()
		}
		return domainerror.NewStorageError("reject recurring movement", err)
	}

	slog.Info("Recurring movement rejected",
		"template_id", input.MovementID,
		"user_id", input.UserID,
		"policy", uc.policy,
	)
	return nil
}
