package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finanzas-pareja/ledger/internal/application/usecase/movement"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	"github.com/finanzas-pareja/ledger/internal/domain/valueobject"
)

// RecurrenceRequest marks a new movement as a recurring template.
type RecurrenceRequest struct {
	Frequency     string  `json:"frequency" binding:"required"`
	ScheduledDate string  `json:"scheduled_date" binding:"required"`
	EndDate       *string `json:"end_date,omitempty"`
}

// CreateMovementRequest represents the request body for recording a movement.
// Amount accepts both JSON numbers and decimal strings.
type CreateMovementRequest struct {
	Date         string             `json:"date" binding:"required"`
	CategoryName string             `json:"category_name" binding:"required"`
	Amount       decimal.Decimal    `json:"amount"`
	Type         string             `json:"type" binding:"required"`
	Description  string             `json:"description"`
	Recurrence   *RecurrenceRequest `json:"recurrence,omitempty"`
}

// UpdateMovementRequest represents the request body for a movement update.
type UpdateMovementRequest struct {
	Date         *string          `json:"date,omitempty"`
	CategoryName *string          `json:"category_name,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Description  *string          `json:"description,omitempty"`
}

// MovementCategoryResponse represents category information in movement responses.
type MovementCategoryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// MovementResponse represents a single movement in API responses.
type MovementResponse struct {
	ID               string                    `json:"id"`
	Date             string                    `json:"date"`
	Amount           string                    `json:"amount"`
	Type             string                    `json:"type"`
	Description      string                    `json:"description"`
	CategoryID       string                    `json:"category_id"`
	Category         *MovementCategoryResponse `json:"category,omitempty"`
	IsRecurring      bool                      `json:"is_recurring"`
	Frequency        *string                   `json:"frequency,omitempty"`
	ScheduledDate    *string                   `json:"scheduled_date,omitempty"`
	EndDate          *string                   `json:"end_date,omitempty"`
	Status           *string                   `json:"status,omitempty"`
	SourceMovementID *string                   `json:"source_movement_id,omitempty"`
	CreatedAt        time.Time                 `json:"created_at"`
}

// MovementListResponse represents a movement history.
type MovementListResponse struct {
	Movements []MovementResponse `json:"movements"`
}

// SummaryResponse represents income, expense and balance over a window.
type SummaryResponse struct {
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	IncomeTotal  string `json:"income_total"`
	ExpenseTotal string `json:"expense_total"`
	Balance      string `json:"balance"`
}

// CategoryShareResponse represents one category of a breakdown.
type CategoryShareResponse struct {
	CategoryID   string `json:"category_id"`
	CategoryName string `json:"category_name"`
	Total        string `json:"total"`
	Count        int    `json:"count"`
	Percentage   string `json:"percentage"`
}

// BreakdownResponse represents totals per category over a window.
type BreakdownResponse struct {
	StartDate  string                  `json:"start_date"`
	EndDate    string                  `json:"end_date"`
	Type       string                  `json:"type"`
	Total      string                  `json:"total"`
	Categories []CategoryShareResponse `json:"categories"`
}

// ToMovementResponse converts a movement and its optional category.
func ToMovementResponse(m *entity.Movement, category *entity.Category) MovementResponse {
	response := MovementResponse{
		ID:          m.ID.String(),
		Date:        m.Date.Format(valueobject.DateLayout),
		Amount:      m.Amount.StringFixed(2),
		Type:        string(m.Type),
		Description: m.Description,
		CategoryID:  m.CategoryID.String(),
		IsRecurring: m.IsRecurring,
		CreatedAt:   m.CreatedAt,
	}

	if category != nil {
		response.Category = &MovementCategoryResponse{
			ID:   category.ID.String(),
			Name: category.Name,
			Type: string(category.Type),
		}
	}
	if m.Frequency != nil {
		frequency := string(*m.Frequency)
		response.Frequency = &frequency
	}
	if m.ScheduledDate != nil {
		response.ScheduledDate = formatDate(*m.ScheduledDate)
	}
	if m.EndDate != nil {
		response.EndDate = formatDate(*m.EndDate)
	}
	if m.Status != nil {
		status := string(*m.Status)
		response.Status = &status
	}
	if m.SourceMovementID != nil {
		source := m.SourceMovementID.String()
		response.SourceMovementID = &source
	}
	return response
}

// ToMovementListResponse converts a history.
func ToMovementListResponse(movements []*entity.MovementWithCategory) MovementListResponse {
	response := MovementListResponse{
		Movements: make([]MovementResponse, len(movements)),
	}
	for i, m := range movements {
		response.Movements[i] = ToMovementResponse(m.Movement, m.Category)
	}
	return response
}

// ToSummaryResponse converts a ledger summary.
func ToSummaryResponse(summary *entity.LedgerSummary) SummaryResponse {
	return SummaryResponse{
		StartDate:    summary.StartDate.Format(valueobject.DateLayout),
		EndDate:      summary.EndDate.Format(valueobject.DateLayout),
		IncomeTotal:  summary.IncomeTotal.StringFixed(2),
		ExpenseTotal: summary.ExpenseTotal.StringFixed(2),
		Balance:      summary.Balance.StringFixed(2),
	}
}

// ToBreakdownResponse converts a category breakdown.
func ToBreakdownResponse(output *movement.GetCategoryBreakdownOutput) BreakdownResponse {
	response := BreakdownResponse{
		StartDate:  output.StartDate.Format(valueobject.DateLayout),
		EndDate:    output.EndDate.Format(valueobject.DateLayout),
		Type:       string(output.Type),
		Total:      output.Total.StringFixed(2),
		Categories: make([]CategoryShareResponse, len(output.Categories)),
	}
	for i, c := range output.Categories {
		response.Categories[i] = CategoryShareResponse{
			CategoryID:   c.CategoryID.String(),
			CategoryName: c.CategoryName,
			Total:        c.Total.StringFixed(2),
			Count:        c.Count,
			Percentage:   c.Percentage.StringFixed(2),
		}
	}
	return response
}

func formatDate(t time.Time) *string {
	s := t.Format(valueobject.DateLayout)
	return &s
}
