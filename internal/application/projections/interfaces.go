package projections

import (
	"context"

	domainWish "council/internal/domain/wish"
)

// WishLister interface for wishlist queries.
type WishLister interface {
	ListWishes(ctx context.Context) ([]domainWish.Entry, error)
}
