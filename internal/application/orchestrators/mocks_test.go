package orchestrators

import (
	"context"
	"errors"
	"sync"
	"time"

	"council/internal/adapters/email"
	suggestionDomain "council/internal/domain/suggestion"
	wishDomain "council/internal/domain/wish"
)

// mockSessionStore records appends in memory for testing.
type mockSessionStore struct {
	wishes      []wishDomain.Entry
	suggestions []suggestionDomain.Entry
	appendErr   error
}

// AppendWish implements WishStore.
// PRE: e has been validated by the caller
// POST: e is appended, or appendErr is returned
func (m *mockSessionStore) AppendWish(_ context.Context, e wishDomain.Entry) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.wishes = append(m.wishes, e)
	return nil
}

// AppendSuggestion implements SuggestionStore.
// PRE: e has been validated by the caller
// POST: e is appended, or appendErr is returned
func (m *mockSessionStore) AppendSuggestion(_ context.Context, e suggestionDomain.Entry) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.suggestions = append(m.suggestions, e)
	return nil
}

// mockSender captures outgoing mail for testing.
type mockSender struct {
	mu   sync.Mutex
	sent []email.SendRequest
	err  error
}

// Send implements email.Sender.
// PRE: req has a recipient
// POST: req is captured; err is returned if set
func (m *mockSender) Send(_ context.Context, req email.SendRequest) (email.SendResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, req)
	if m.err != nil {
		return email.SendResult{}, m.err
	}
	return email.SendResult{MessageID: "msg-1"}, nil
}

var errStoreDown = errors.New("store unavailable")

var fixedTime = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
