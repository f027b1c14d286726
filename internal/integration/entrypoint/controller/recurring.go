package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finanzas-pareja/ledger/internal/application/usecase/recurring"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/integration/entrypoint/dto"
)

// RecurringController handles the approval flow of recurring movements.
type RecurringController struct {
	listPendingUseCase *recurring.ListPendingUseCase
	approveUseCase     *recurring.ApproveRecurringUseCase
	rejectUseCase      *recurring.RejectRecurringUseCase
}

// NewRecurringController creates a new recurring controller instance.
func NewRecurringController(
	listPendingUseCase *recurring.ListPendingUseCase,
	approveUseCase *recurring.ApproveRecurringUseCase,
	rejectUseCase *recurring.RejectRecurringUseCase,
) *RecurringController {
	return &RecurringController{
		listPendingUseCase: listPendingUseCase,
		approveUseCase:     approveUseCase,
		rejectUseCase:      rejectUseCase,
	}
}

// ListPending handles GET /recurring/pending requests.
func (c *RecurringController) ListPending(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	output, err := c.listPendingUseCase.Execute(ctx.Request.Context(), recurring.ListPendingInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMovementListResponse(output.Movements))
}

// Approve handles POST /recurring/:id/approve requests.
func (c *RecurringController) Approve(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}
	movementID, ok := pathID(ctx, string(domainerror.ErrCodeRecurringNotPending))
	if !ok {
		return
	}

	output, err := c.approveUseCase.Execute(ctx.Request.Context(), recurring.ApproveRecurringInput{
		MovementID: movementID,
		UserID:     userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMovementResponse(output.Movement, nil))
}

// Reject handles POST /recurring/:id/reject requests.
func (c *RecurringController) Reject(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}
	movementID, ok := pathID(ctx, string(domainerror.ErrCodeRecurringNotPending))
	if !ok {
		return
	}

	err := c.rejectUseCase.Execute(ctx.Request.Context(), recurring.RejectRecurringInput{
		MovementID: movementID,
		UserID:     userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
