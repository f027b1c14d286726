// Package scheduler runs periodic background jobs next to the HTTP server.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/finanzas-pareja/ledger/internal/application/usecase/recurring"
)

// ReminderQueuer queues recurring-movement reminder emails.
type ReminderQueuer interface {
	Execute(ctx context.Context) (*recurring.QueueRemindersOutput, error)
}

// ReminderScheduler triggers the reminder use case on a fixed interval.
type ReminderScheduler struct {
	queuer   ReminderQueuer
	interval time.Duration
}

// NewReminderScheduler creates a scheduler. Non-positive intervals default to 24h.
func NewReminderScheduler(queuer ReminderQueuer, interval time.Duration) *ReminderScheduler {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &ReminderScheduler{
		queuer:   queuer,
		interval: interval,
	}
}

// Run queues reminders once at start and then on every tick until ctx is cancelled.
func (s *ReminderScheduler) Run(ctx context.Context) error {
	slog.Info("Reminder scheduler started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Reminder scheduler shutting down")
			return nil
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce executes a single reminder pass and logs its outcome.
func (s *ReminderScheduler) RunOnce(ctx context.Context) {
	output, err := s.queuer.Execute(ctx)
	if err != nil {
		slog.Error("Failed to queue recurring reminders", "error", err)
		return
	}

	if output.UsersNotified > 0 {
		slog.Info("Recurring reminders queued",
			"users", output.UsersNotified,
			"items", output.ItemsListed,
		)
	}
}
