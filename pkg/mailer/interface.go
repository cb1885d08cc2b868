// Package mailer defines the interface used to send transactional emails.
package mailer

import (
	"context"
)

// MaxBatchSize is the largest batch a Sender is expected to accept in one call.
const MaxBatchSize = 100

// Email is a single message. Headers are added verbatim, e.g. List-Unsubscribe.
type Email struct {
	From    string
	To      []string
	Subject string
	HTML    string
	Text    string
	Headers map[string]string
}

//go:generate mockgen -package mockmailer -source=interface.go -destination=mock/mockmailer.go *
type Sender interface {
	// Send delivers one email and returns the provider message ID.
	Send(ctx context.Context, email Email) (string, error)
	// SendBatch delivers up to MaxBatchSize emails in one provider call and
	// returns their message IDs in order.
	SendBatch(ctx context.Context, emails []Email) ([]string, error)
}
