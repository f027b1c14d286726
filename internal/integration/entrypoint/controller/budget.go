package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finanzas-pareja/ledger/internal/application/usecase/budget"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/integration/entrypoint/dto"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	createUseCase  *budget.CreateBudgetUseCase
	getUseCase     *budget.GetBudgetUseCase
	listUseCase    *budget.ListBudgetsUseCase
	updateUseCase  *budget.UpdateBudgetUseCase
	deleteUseCase  *budget.DeleteBudgetUseCase
	summaryUseCase *budget.BudgetSummaryUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	createUseCase *budget.CreateBudgetUseCase,
	getUseCase *budget.GetBudgetUseCase,
	listUseCase *budget.ListBudgetsUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	deleteUseCase *budget.DeleteBudgetUseCase,
	summaryUseCase *budget.BudgetSummaryUseCase,
) *BudgetController {
	return &BudgetController{
		createUseCase:  createUseCase,
		getUseCase:     getUseCase,
		listUseCase:    listUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		summaryUseCase: summaryUseCase,
	}
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingBudgetFields))
		return
	}

	startDate, err := optionalDatePtr(req.StartDate)
	if err != nil {
		badRequest(ctx, "start_date must be formatted as YYYY-MM-DD", string(domainerror.ErrCodeInvalidBudgetWindow))
		return
	}
	endDate, err := optionalDatePtr(req.EndDate)
	if err != nil {
		badRequest(ctx, "end_date must be formatted as YYYY-MM-DD", string(domainerror.ErrCodeInvalidBudgetWindow))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), budget.CreateBudgetInput{
		UserID:       userID,
		CategoryName: req.CategoryName,
		MaxAmount:    req.MaxAmount,
		Period:       entity.BudgetPeriod(req.Period),
		StartDate:    startDate,
		EndDate:      endDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// Get handles GET /budgets/:id requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}
	budgetID, ok := pathID(ctx, string(domainerror.ErrCodeBudgetNotFound))
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), budget.GetBudgetInput{
		BudgetID: budgetID,
		UserID:   userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// List handles GET /budgets requests.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), budget.ListBudgetsInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// Update handles PUT /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}
	budgetID, ok := pathID(ctx, string(domainerror.ErrCodeBudgetNotFound))
	if !ok {
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, "Invalid request body", string(domainerror.ErrCodeMissingBudgetFields))
		return
	}

	startDate, err := optionalDatePtr(req.StartDate)
	if err != nil {
		badRequest(ctx, "start_date must be formatted as YYYY-MM-DD", string(domainerror.ErrCodeInvalidBudgetWindow))
		return
	}
	endDate, err := optionalDatePtr(req.EndDate)
	if err != nil {
		badRequest(ctx, "end_date must be formatted as YYYY-MM-DD", string(domainerror.ErrCodeInvalidBudgetWindow))
		return
	}

	var period *entity.BudgetPeriod
	if req.Period != nil {
		p := entity.BudgetPeriod(*req.Period)
		period = &p
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), budget.UpdateBudgetInput{
		BudgetID:     budgetID,
		UserID:       userID,
		CategoryName: req.CategoryName,
		MaxAmount:    req.MaxAmount,
		Period:       period,
		StartDate:    startDate,
		EndDate:      endDate,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// Summary handles GET /reports/budget-summary requests.
func (c *BudgetController) Summary(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), budget.BudgetSummaryInput{UserID: userID})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetSummaryResponse(output))
}

// Delete handles DELETE /budgets/:id requests.
func (c *BudgetController) Delete(ctx *gin.Context) {
	userID, ok := authenticatedUser(ctx)
	if !ok {
		return
	}
	budgetID, ok := pathID(ctx, string(domainerror.ErrCodeBudgetNotFound))
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), budget.DeleteBudgetInput{
		BudgetID: budgetID,
		UserID:   userID,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
