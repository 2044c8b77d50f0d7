package projections

import (
	"context"
	"errors"
	"testing"
	"time"

	domainWish "council/internal/domain/wish"
)

type mockWishLister struct {
	wishes []domainWish.Entry
	err    error
}

// ListWishes implements WishLister for testing.
// PRE: none
// POST: returns the canned wishes or err
func (m *mockWishLister) ListWishes(_ context.Context) ([]domainWish.Entry, error) {
	return m.wishes, m.err
}

// TestQueryGetWishBoard tests the wish board projection.
func TestQueryGetWishBoard(t *testing.T) {
	now := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	store := &mockWishLister{wishes: []domainWish.Entry{{Name: "Field Day", Content: "Outdoor games"}}}

	res, err := QueryGetWishBoard(context.Background(), GetWishBoardQuery{Now: now}, GetWishBoardDeps{Store: store})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.NextMonthLabel != "November 2026" {
		t.Errorf("NextMonthLabel = %q", res.NextMonthLabel)
	}
	if len(res.Wishes) != 1 || res.Wishes[0].Name != "Field Day" {
		t.Errorf("Wishes = %+v", res.Wishes)
	}
}

// TestQueryGetWishBoard_Empty verifies an empty session yields an empty, non-nil list.
func TestQueryGetWishBoard_Empty(t *testing.T) {
	res, err := QueryGetWishBoard(context.Background(), GetWishBoardQuery{Now: time.Now()}, GetWishBoardDeps{Store: &mockWishLister{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Wishes == nil || len(res.Wishes) != 0 {
		t.Errorf("Wishes = %#v, want empty", res.Wishes)
	}
}

// TestQueryGetWishBoard_StoreError verifies store errors propagate.
func TestQueryGetWishBoard_StoreError(t *testing.T) {
	boom := errors.New("boom")
	_, err := QueryGetWishBoard(context.Background(), GetWishBoardQuery{Now: time.Now()}, GetWishBoardDeps{Store: &mockWishLister{err: boom}})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}
