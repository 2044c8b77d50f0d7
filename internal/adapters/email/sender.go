// Package email forwards suggestion-box entries to the student council inbox.
package email

import (
	"context"
	"time"
)

// SendRequest is one forwarded suggestion. It never carries the author:
// the suggestion box is anonymous.
type SendRequest struct {
	To       []string // council inbox, usually a single address
	From     string   // overrides the sender's configured address when set
	Subject  string
	Text     string
	Category string // suggestion category, attached as delivery metadata
}

// SendResult reports what the provider accepted.
type SendResult struct {
	MessageID string
	SentAt    time.Time
}

// Sender delivers a forwarded suggestion.
type Sender interface {
	Send(ctx context.Context, req SendRequest) (SendResult, error)
}
