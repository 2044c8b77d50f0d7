package projections

import (
	"context"
	"time"

	"council/internal/domain/calendar"
	domainWish "council/internal/domain/wish"
)

// GetWishBoardQuery carries query parameters.
type GetWishBoardQuery struct {
	Now time.Time
}

// GetWishBoardResult carries the query result.
type GetWishBoardResult struct {
	NextMonthLabel string
	Wishes         []domainWish.Entry
}

// GetWishBoardDeps holds dependencies for GetWishBoard.
type GetWishBoardDeps struct {
	Store WishLister
}

// QueryGetWishBoard returns next month's label and the session's wishlist.
// PRE: deps.Store belongs to the caller's session
// POST: Wishes are in submission order; empty (non-nil) when none were submitted
func QueryGetWishBoard(ctx context.Context, query GetWishBoardQuery, deps GetWishBoardDeps) (GetWishBoardResult, error) {
	wishes, err := deps.Store.ListWishes(ctx)
	if err != nil {
		return GetWishBoardResult{}, err
	}
	if wishes == nil {
		wishes = []domainWish.Entry{}
	}
	return GetWishBoardResult{
		NextMonthLabel: calendar.MonthLabel(calendar.NextMonth(query.Now)),
		Wishes:         wishes,
	}, nil
}
