package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domain "council/internal/domain/wish"
)

// WishStore is the slice of the session store needed to record wishes.
type WishStore interface {
	AppendWish(ctx context.Context, e domain.Entry) error
}

// SubmitWishCommand holds a wish form submission.
type SubmitWishCommand struct {
	Name    string
	Content string
}

// SubmitWishResult reports whether the wish was recorded.
// Accepted is false when the required name was missing; that is not an error.
type SubmitWishResult struct {
	Accepted bool
}

// SubmitWishDeps are the external dependencies for this orchestrator.
type SubmitWishDeps struct {
	Store WishStore
}

// ExecuteSubmitWish appends a wish to the caller's session wishlist.
// PRE: deps.Store belongs to the caller's session
// POST: wish appended when Name is non-empty; silently ignored otherwise
func ExecuteSubmitWish(ctx context.Context, cmd SubmitWishCommand, deps SubmitWishDeps) (SubmitWishResult, error) {
	e := domain.Entry{Name: cmd.Name, Content: cmd.Content}
	if err := e.Validate(); err != nil {
		return SubmitWishResult{Accepted: false}, nil
	}

	if err := deps.Store.AppendWish(ctx, e); err != nil {
		if errors.Is(err, domain.ErrEmptyName) {
			return SubmitWishResult{Accepted: false}, nil
		}
		return SubmitWishResult{}, fmt.Errorf("append wish: %w", err)
	}

	slog.Info("wish_submitted", "name_len", len(e.Name), "content_len", len(e.Content))
	return SubmitWishResult{Accepted: true}, nil
}
