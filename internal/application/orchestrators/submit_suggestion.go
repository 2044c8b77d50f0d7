package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"council/internal/adapters/email"
	domain "council/internal/domain/suggestion"
)

// SuggestionStore is the slice of the session store needed to record suggestions.
type SuggestionStore interface {
	AppendSuggestion(ctx context.Context, e domain.Entry) error
}

// SubmitSuggestionCommand holds a suggestion-box form submission.
// An empty Category means the form default.
type SubmitSuggestionCommand struct {
	Category string
	Text     string
}

// SubmitSuggestionResult reports whether the suggestion was recorded.
type SubmitSuggestionResult struct {
	Accepted bool
}

// SubmitSuggestionDeps are the external dependencies for this orchestrator.
// Sender and Inbox are optional; when either is unset nothing is forwarded.
type SubmitSuggestionDeps struct {
	Store  SuggestionStore
	Sender email.Sender
	Inbox  string
}

// ExecuteSubmitSuggestion drops an anonymous suggestion into the caller's session box
// and forwards it to the council inbox when one is configured.
// PRE: deps.Store belongs to the caller's session
// POST: suggestion appended when Text is non-empty; silently ignored otherwise;
// returns ErrInvalidCategory for a category outside the fixed set
func ExecuteSubmitSuggestion(ctx context.Context, cmd SubmitSuggestionCommand, deps SubmitSuggestionDeps) (SubmitSuggestionResult, error) {
	category := cmd.Category
	if category == "" {
		category = domain.DefaultCategory
	}
	if !domain.IsValidCategory(category) {
		return SubmitSuggestionResult{}, domain.ErrInvalidCategory
	}
	if cmd.Text == "" {
		return SubmitSuggestionResult{Accepted: false}, nil
	}

	e := domain.Entry{Category: category, Text: cmd.Text}
	if err := deps.Store.AppendSuggestion(ctx, e); err != nil {
		return SubmitSuggestionResult{}, fmt.Errorf("append suggestion: %w", err)
	}
	slog.Info("suggestion_submitted", "category", e.Category)

	forwardSuggestion(ctx, e, deps)
	return SubmitSuggestionResult{Accepted: true}, nil
}

// forwardSuggestion emails the suggestion to the council inbox.
// A delivery failure is logged and never reaches the student.
func forwardSuggestion(ctx context.Context, e domain.Entry, deps SubmitSuggestionDeps) {
	if deps.Sender == nil || deps.Inbox == "" {
		return
	}
	_, err := deps.Sender.Send(ctx, email.SendRequest{
		To:       []string{deps.Inbox},
		Subject:  fmt.Sprintf("[Suggestion box] %s", e.Category),
		Text:     fmt.Sprintf("Category: %s\n\n%s\n\n---\nSent anonymously from the student council page.\n", e.Category, e.Text),
		Category: e.Category,
	})
	if err != nil {
		slog.Error("suggestion_forward_failed", "error", err.Error(), "category", e.Category)
	}
}
