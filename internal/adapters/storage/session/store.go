package session

import (
	"context"

	suggestionDomain "council/internal/domain/suggestion"
	wishDomain "council/internal/domain/wish"
)

// Store holds one browser session's submissions.
// INVARIANT: both sequences are append-only and never visible to another session.
type Store interface {
	Initialize()
	AppendWish(ctx context.Context, e wishDomain.Entry) error
	AppendSuggestion(ctx context.Context, e suggestionDomain.Entry) error
	ListWishes(ctx context.Context) ([]wishDomain.Entry, error)
	ListSuggestions(ctx context.Context) ([]suggestionDomain.Entry, error)
}
