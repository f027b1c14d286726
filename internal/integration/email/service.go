// Package email provides email sending functionality.
package email

import (
	"context"
	"fmt"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	"github.com/finanzas-pareja/ledger/internal/domain/entity"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/integration/email/templates"
)

// Service handles email queueing operations.
type Service struct {
	queue adapter.EmailQueueRepository
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository) *Service {
	return &Service{
		queue: queue,
	}
}

// QueueRecurringReminder queues a reminder listing pending recurring movements.
func (s *Service) QueueRecurringReminder(ctx context.Context, input adapter.QueueRecurringReminderInput) error {
	subject := fmt.Sprintf("Tienes %d movimiento(s) recurrente(s) pendiente(s)", len(input.Items))

	items := make([]templates.ReminderLine, len(input.Items))
	for i, item := range input.Items {
		items[i] = templates.ReminderLine{
			Description:   item.Description,
			CategoryName:  item.CategoryName,
			Amount:        item.Amount,
			Type:          item.Type,
			Frequency:     item.Frequency,
			ScheduledDate: item.ScheduledDate.Format("2006-01-02"),
		}
	}

	templateData := map[string]interface{}{
		"user_name":   input.UserName,
		"items":       items,
		"pending_url": input.PendingURL,
	}

	job := entity.NewEmailJob(
		entity.TemplateRecurringReminder,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue recurring reminder",
			err,
		)
	}

	return nil
}

var _ adapter.EmailService = (*Service)(nil)
