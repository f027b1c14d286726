package recurring

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finanzas-pareja/ledger/internal/application/adapter"
	domainerror "github.com/finanzas-pareja/ledger/internal/domain/error"
	"github.com/finanzas-pareja/ledger/internal/domain/valueobject"
)

// QueueRemindersOutput reports how many reminder emails were queued.
type QueueRemindersOutput struct {
	UsersNotified int
	ItemsListed   int
}

// QueueRemindersUseCase emails users about recurring movements that are due.
// It never approves or materializes anything.
type QueueRemindersUseCase struct {
	userRepo     adapter.UserRepository
	movementRepo adapter.MovementRepository
	emailService adapter.EmailService
	appBaseURL   string
	now          func() time.Time
}

// NewQueueRemindersUseCase creates a new QueueRemindersUseCase instance.
func NewQueueRemindersUseCase(
	userRepo adapter.UserRepository,
	movementRepo adapter.MovementRepository,
	emailService adapter.EmailService,
	appBaseURL string,
) *QueueRemindersUseCase {
	return &QueueRemindersUseCase{
		userRepo:     userRepo,
		movementRepo: movementRepo,
		emailService: emailService,
		appBaseURL:   strings.TrimRight(appBaseURL, "/"),
		now:          time.Now,
	}
}

// WithClock overrides the clock that decides which templates are due.
func (uc *QueueRemindersUseCase) WithClock(now func() time.Time) *QueueRemindersUseCase {
	uc.now = now
	return uc
}

// Execute queues one reminder per opted-in user with templates scheduled on
// or before today. Each template is listed in one reminder only: once queued it
// is stamped reminded_on and later runs skip it. A failure for one user is
// logged and does not stop the rest.
func (uc *QueueRemindersUseCase) Execute(ctx context.Context) (*QueueRemindersOutput, error) {
	today := valueobject.DateOnly(uc.now())

	users, err := uc.userRepo.FindWithRecurringReminders(ctx)
	if err != nil {
		return nil, domainerror.NewStorageError("list reminder recipients", err)
	}

	output := &QueueRemindersOutput{}
	for _, user := range users {
		pending, err := uc.movementRepo.FindPendingRecurring(ctx, user.ID, today)
		if err != nil {
			slog.Error("Failed to load pending recurring movements", "user_id", user.ID, "error", err)
			continue
		}

		var (
			items []adapter.ReminderItem
			ids   []uuid.UUID
		)
		for _, p := range pending {
			m := p.Movement
			if m.ScheduledDate == nil || m.ScheduledDate.After(today) || m.RemindedOn != nil {
				continue
			}

			item := adapter.ReminderItem{
				Description:   m.Description,
				Amount:        m.Amount.StringFixed(2),
				Type:          string(m.Type),
				ScheduledDate: *m.ScheduledDate,
			}
			if m.Frequency != nil {
				item.Frequency = string(*m.Frequency)
			}
			if p.Category != nil {
				item.CategoryName = p.Category.Name
			}
			items = append(items, item)
			ids = append(ids, m.ID)
		}

		if len(items) == 0 {
			continue
		}

		err = uc.emailService.QueueRecurringReminder(ctx, adapter.QueueRecurringReminderInput{
			UserEmail:  user.Email,
			UserName:   user.Name,
			Items:      items,
			PendingURL: uc.appBaseURL + "/recurring/pending",
		})
		if err != nil {
			slog.Error("Failed to queue recurring reminder", "user_id", user.ID, "error", err)
			continue
		}

		if err := uc.movementRepo.MarkReminded(ctx, ids, today); err != nil {
			slog.Error("Failed to mark recurring movements as reminded", "user_id", user.ID, "error", err)
		}

		output.UsersNotified++
		output.ItemsListed += len(items)
	}

	return output, nil
}
