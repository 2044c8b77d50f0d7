package session

import (
	"context"
	"sync"

	suggestionDomain "council/internal/domain/suggestion"
	wishDomain "council/internal/domain/wish"
)

type memoryStore struct {
	mu          sync.Mutex
	wishes      []wishDomain.Entry
	suggestions []suggestionDomain.Entry
}

// NewMemoryStore returns an initialized Store that lives only as long as its session.
func NewMemoryStore() Store {
	s := &memoryStore{}
	s.Initialize()
	return s
}

// Initialize creates the empty sequences if they are absent.
// PRE: none
// POST: both sequences exist; existing entries are untouched
func (s *memoryStore) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.wishes == nil {
		s.wishes = []wishDomain.Entry{}
	}
	if s.suggestions == nil {
		s.suggestions = []suggestionDomain.Entry{}
	}
}

// AppendWish appends a wish to the end of the wishlist.
// PRE: e.Name is non-empty
// POST: wishlist grows by one, or wish.ErrEmptyName is returned and nothing changes
func (s *memoryStore) AppendWish(_ context.Context, e wishDomain.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wishes = append(s.wishes, e)
	return nil
}

// AppendSuggestion appends a suggestion to the end of the suggestion box.
// PRE: e.Text is non-empty
// POST: suggestions grow by one, or suggestion.ErrEmptyText is returned and nothing changes
func (s *memoryStore) AppendSuggestion(_ context.Context, e suggestionDomain.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.suggestions = append(s.suggestions, e)
	return nil
}

// ListWishes returns a copy of the wishlist in insertion order.
func (s *memoryStore) ListWishes(_ context.Context) ([]wishDomain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]wishDomain.Entry, len(s.wishes))
	copy(out, s.wishes)
	return out, nil
}

// ListSuggestions returns a copy of the suggestions in insertion order.
func (s *memoryStore) ListSuggestions(_ context.Context) ([]suggestionDomain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]suggestionDomain.Entry, len(s.suggestions))
	copy(out, s.suggestions)
	return out, nil
}
