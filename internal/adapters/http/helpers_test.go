package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"council/internal/adapters/email"
	"council/internal/adapters/http/middleware"
	"council/internal/adapters/textgen"
)

// fixedNow is mid-October so next month is November.
var fixedNow = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

// freezeTime pins timeNow for the duration of the test.
func freezeTime(t *testing.T) {
	t.Helper()
	prev := timeNow
	timeNow = func() time.Time { return fixedNow }
	t.Cleanup(func() { timeNow = prev })
}

// fakeGenerator returns a canned Result and records prompts.
type fakeGenerator struct {
	mu      sync.Mutex
	result  textgen.Result
	prompts []string
}

// Generate implements textgen.Generator for testing.
// POST: prompt recorded; canned result returned
func (f *fakeGenerator) Generate(_ context.Context, prompt string) textgen.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	return f.result
}

// fakeSender records every email it is asked to send.
type fakeSender struct {
	mu   sync.Mutex
	sent []email.SendRequest
}

// Send implements email.Sender for testing.
// POST: request recorded; always succeeds
func (f *fakeSender) Send(_ context.Context, req email.SendRequest) (email.SendResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, req)
	return email.SendResult{MessageID: "test", SentAt: fixedNow}, nil
}

func newTestViews(gen textgen.Generator, sender email.Sender) *views {
	return &views{deps: Deps{
		Generator: gen,
		Sender:    sender,
		Inbox:     "council@example.org",
		Country:   "South Korea",
		Language:  "English",
	}}
}

// newSession returns a fresh session backed by a memory store.
func newSession() *middleware.Session {
	return middleware.NewSessionRegistry().Create()
}

func getWithSession(path string, sess *middleware.Session) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	return req.WithContext(middleware.ContextWithSession(req.Context(), sess))
}

func postWithSession(path string, form url.Values, sess *middleware.Session) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req.WithContext(middleware.ContextWithSession(req.Context(), sess))
}

func assertContains(t *testing.T, body, want string) {
	t.Helper()
	if !strings.Contains(body, want) {
		t.Errorf("body does not contain %q", want)
	}
}

func assertNotContains(t *testing.T, body, unwanted string) {
	t.Helper()
	if strings.Contains(body, unwanted) {
		t.Errorf("body unexpectedly contains %q", unwanted)
	}
}
