// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueRecurringReminder queues a reminder listing recurring movements awaiting approval.
	QueueRecurringReminder(ctx context.Context, input QueueRecurringReminderInput) error
}

// ReminderItem is one pending recurring movement listed in a reminder.
type ReminderItem struct {
	Description   string
	CategoryName  string
	Amount        string
	Type          string
	Frequency     string
	ScheduledDate time.Time
}

// QueueRecurringReminderInput represents the input for queueing a recurring reminder email.
type QueueRecurringReminderInput struct {
	UserEmail  string
	UserName   string
	Items      []ReminderItem
	PendingURL string
}
