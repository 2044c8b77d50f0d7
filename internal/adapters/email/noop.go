package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// NoopSender stands in for the council inbox when no Resend key is configured.
// Only metadata is logged; the suggestion text stays out of the logs.
type NoopSender struct{}

func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

// Send logs the forward and reports it as delivered.
func (s *NoopSender) Send(_ context.Context, req SendRequest) (SendResult, error) {
	now := time.Now()
	slog.Info("suggestion_forward_skipped",
		"to", req.To,
		"category", req.Category,
		"text_len", len(req.Text),
	)
	return SendResult{
		MessageID: fmt.Sprintf("noop-%d", now.UnixNano()),
		SentAt:    now,
	}, nil
}
