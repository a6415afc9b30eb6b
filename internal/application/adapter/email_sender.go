// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
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
	// QueueMonthlyDigestEmail queues the monthly digest report email.
	QueueMonthlyDigestEmail(ctx context.Context, input QueueMonthlyDigestInput) error
}

// QueueMonthlyDigestInput represents the input for queueing a monthly digest email.
type QueueMonthlyDigestInput struct {
	RecipientEmail string
	RecipientName  string
	ReportMonth    string // "2006-01"
	TemplateData   map[string]interface{}
}
