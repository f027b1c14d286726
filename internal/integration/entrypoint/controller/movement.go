package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finanzas-pareja/ledger/internal/application/usecase/movement"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/domain/valueobject"
	"github.com/finanzas-pareja/ledger/internal/integration/entrypoint/dto"
)

// MovementController handles ledger endpoints.
type MovementController struct {
	recordUseCase    *movement.RecordMovementUseCase
	listUseCase      *movement.ListMovementsUseCase
	getUseCase       *movement.GetMovementUseCase
	updateUseCase    *movement.UpdateMovementUseCase
	deleteUseCase    *movement.DeleteMovementUseCase
	summaryUseCase   *movement.GetSummaryUseCase
	breakdownUseCase *movement.GetCategoryBreakdownUseCase
}

// NewMovementController creates a new movement controller instance.
func NewMovementController(
	recordUseCase *movement.RecordMovementUseCase,
	listUseCase *movement.ListMovementsUseCase,
	getUseCase *movement.GetMovementUseCase,
	updateUseCase *movement.UpdateMovementUseCase,
	deleteUseCase *movement.DeleteMovementUseCase,
	summaryUseCase *movement.GetSummaryUseCase,
	breakdownUseCase *movement.GetCategoryBreakdownUseCase,
) *MovementController {
	return &MovementController{
		recordUseCase:    recordUseCase,
		listUseCase:      listUseCase,
		getUseCase:       getUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		summaryUseCase:   summaryUseCase,
		breakdownUseCase: breakdownUseCase,
	}
}

// Create handles POST /movements requests.
func (c *MovementController) Create(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateMovementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingMovementFields))
		return
	}

	date, err := valueobject.ParseDate(req.Date)
	if err != nil {
		badRequest(ctx, "date must be formatted as YYYY-MM-DD", string(domainerror.ErrCodeInvalidMovementDate))
		return
	}

	input := movement.RecordMovementInput{
		UserID:       userID,
		Date:         date,
		CategoryName: req.CategoryName,
		Amount:       req.Amount,
		Type:         req.Type,
		Description:  req.Description,
	}

	if req.Recurrence != nil {
		scheduled, err := valueobject.ParseDate(req.Recurrence.ScheduledDate)
		if err != nil {
			badRequest(ctx, "scheduled_date must be formatted as YYYY-MM-DD", string(domainerror.ErrCodeInvalidRecurrenceWindow))
			return
		}
		endDate, err := optionalDatePtr(req.Recurrence.EndDate)
		if err != nil {
			badRequest(ctx, "end_date must be formatted as YYYY-MM-DD", string(domainerror.ErrCodeInvalidRecurrenceWindow))
			return
		}
		input.Recurrence = &entity.Recurrence{
			Frequency:     entity.Frequency(req.Recurrence.Frequency),
			ScheduledDate: scheduled,
			EndDate:       endDate,
		}
	}

	output, err := c.recordUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMovementResponse(output.Movement.Movement, output.Movement.Category))
}

// List handles GET /movements requests.
func (c *MovementController) List(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	input := movement.ListMovementsInput{
		UserID:           userID,
		Type:             ctx.Query("type"),
		CategoryName:     ctx.Query("category"),
		IncludeRecurring: ctx.Query("include_recurring") == "true",
	}

	if raw := ctx.Query("category_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			badRequest(ctx, "category_id must be a valid id", string(domainerror.ErrCodeMissingMovementFields))
			return
		}
		input.CategoryID = &id
	}

	var err error
	if input.MinAmount, err = optionalDecimal(ctx.Query("min_amount")); err != nil {
		badRequest(ctx, "min_amount must be a number", string(domainerror.ErrCodeInvalidAmountRange))
		return
	}
	if input.MaxAmount, err = optionalDecimal(ctx.Query("max_amount")); err != nil {
		badRequest(ctx, "max_amount must be a number", string(domainerror.ErrCodeInvalidAmountRange))
		return
	}
	if !c.parseWindow(ctx, &input.StartDate, &input.EndDate) {
		return
	}

	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			badRequest(ctx, "limit must be a non-negative integer", string(domainerror.ErrCodeMissingMovementFields))
			return
		}
		input.Limit = limit
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMovementListResponse(output.Movements))
}

// Get handles GET /movements/:id requests.
func (c *MovementController) Get(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}
	movementID, ok := pathID(ctx, string(domainerror.ErrCodeMovementNotFound))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), movement.GetMovementInput{
		MovementID: movementID,
		UserID:     userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMovementResponse(output.Movement.Movement, output.Movement.Category))
}

// Update handles PATCH /movements/:id requests.
func (c *MovementController) Update(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}
	movementID, ok := pathID(ctx, string(domainerror.ErrCodeMovementNotFound))
	if !ok {
		return
	}

	var req dto.UpdateMovementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingMovementFields))
		return
	}

	date, err := optionalDatePtr(req.Date)
	if err != nil {
		badRequest(ctx, "date must be formatted as YYYY-MM-DD", string(domainerror.ErrCodeInvalidMovementDate))
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), movement.UpdateMovementInput{
		MovementID:   movementID,
		UserID:       userID,
		Date:         date,
		CategoryName: req.CategoryName,
		Amount:       req.Amount,
		Description:  req.Description,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMovementResponse(output.Movement.Movement, output.Movement.Category))
}

// Delete handles DELETE /movements/:id requests.
func (c *MovementController) Delete(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}
	movementID, ok := pathID(ctx, string(domainerror.ErrCodeMovementNotFound))
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), movement.DeleteMovementInput{
		MovementID: movementID,
		UserID:     userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Summary handles GET /movements/summary requests.
func (c *MovementController) Summary(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	input := movement.GetSummaryInput{UserID: userID}
	if !c.parseWindow(ctx, &input.StartDate, &input.EndDate) {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output.Summary))
}

// Breakdown handles GET /movements/breakdown requests.
func (c *MovementController) Breakdown(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	input := movement.GetCategoryBreakdownInput{
		UserID: userID,
		Type:   ctx.Query("type"),
	}
	if !c.parseWindow(ctx, &input.StartDate, &input.EndDate) {
		return
	}

	output, err := c.breakdownUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBreakdownResponse(output))
}

// parseWindow reads start_date and end_date, answering 400 on malformed values.
func (c *MovementController) parseWindow(ctx *gin.Context, start, end **time.Time) bool {
	var err error
	if *start, err = optionalDate(ctx.Query("start_date")); err != nil {
		badRequest(ctx, "start_date must be formatted as YYYY-MM-DD", string(domainerror.ErrCodeInvalidDateRange))
		return false
	}
	if *end, err = optionalDate(ctx.Query("end_date")); err != nil {
		badRequest(ctx, "end_date must be formatted as YYYY-MM-DD", string(domainerror.ErrCodeInvalidDateRange))
		return false
	}
	return true
}

func optionalDecimal(raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
