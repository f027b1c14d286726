package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finanzas-pareja/ledger/internal/application/usecase/budget"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	"github.com/finanzas-pareja/ledger/internal/domain/valueobject"
)

// CreateBudgetRequest represents the request body for budget creation.
// Omitted dates default to the current window of the period.
type CreateBudgetRequest struct {
	CategoryName string          `json:"category_name" binding:"required"`
	MaxAmount    decimal.Decimal `json:"max_amount"`
	Period       string          `json:"period" binding:"required"`
	StartDate    *string         `json:"start_date,omitempty"`
	EndDate      *string         `json:"end_date,omitempty"`
}

// UpdateBudgetRequest represents a partial budget update. Omitted fields keep their value.
type UpdateBudgetRequest struct {
	CategoryName *string          `json:"category_name,omitempty"`
	MaxAmount    *decimal.Decimal `json:"max_amount,omitempty"`
	Period       *string          `json:"period,omitempty"`
	StartDate    *string          `json:"start_date,omitempty"`
	EndDate      *string          `json:"end_date,omitempty"`
}

// BudgetResponse represents a budget with its budget-vs-actual status.
type BudgetResponse struct {
	ID              string `json:"id"`
	CategoryID      string `json:"category_id"`
	CategoryName    string `json:"category_name"`
	Period          string `json:"period"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"`
	MaxAmount       string `json:"max_amount"`
	CurrentAmount   string `json:"current_amount"`
	RemainingAmount string `json:"remaining_amount"`
	PercentageUsed  string `json:"percentage_used"`
	Exceeded        bool   `json:"exceeded"`
}

// BudgetListResponse represents the list of budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}

// BudgetSummaryResponse represents the totals across all budgets.
type BudgetSummaryResponse struct {
	TotalBudgets   int    `json:"total_budgets"`
	TotalAllocated string `json:"total_allocated"`
	TotalSpent     string `json:"total_spent"`
	TotalRemaining string `json:"total_remaining"`
}

// ToBudgetResponse converts an evaluated budget.
func ToBudgetResponse(b *entity.BudgetWithStatus) BudgetResponse {
	response := BudgetResponse{
		ID:              b.Budget.ID.String(),
		CategoryID:      b.Budget.CategoryID.String(),
		Period:          string(b.Budget.Period),
		StartDate:       b.Budget.StartDate.Format(valueobject.DateLayout),
		EndDate:         b.Budget.EndDate.Format(valueobject.DateLayout),
		MaxAmount:       b.Status.MaxAmount.StringFixed(2),
		CurrentAmount:   b.Status.CurrentAmount.StringFixed(2),
		RemainingAmount: b.Status.RemainingAmount.StringFixed(2),
		PercentageUsed:  b.Status.PercentageUsed.StringFixed(2),
		Exceeded:        b.Status.Exceeded,
	}
	if b.Category != nil {
		response.CategoryName = b.Category.Name
	}
	return response
}

// ToBudgetListResponse converts a slice of evaluated budgets.
func ToBudgetListResponse(budgets []*entity.BudgetWithStatus) BudgetListResponse {
	response := BudgetListResponse{
		Budgets: make([]BudgetResponse, len(budgets)),
	}
	for i, b := range budgets {
		response.Budgets[i] = ToBudgetResponse(b)
	}
	return response
}

// ToBudgetSummaryResponse converts the budget report.
func ToBudgetSummaryResponse(summary *budget.BudgetSummaryOutput) BudgetSummaryResponse {
	return BudgetSummaryResponse{
		TotalBudgets:   summary.TotalBudgets,
		TotalAllocated: summary.TotalAllocated.StringFixed(2),
		TotalSpent:     summary.TotalSpent.StringFixed(2),
		TotalRemaining: summary.TotalRemaining.StringFixed(2),
	}
}
