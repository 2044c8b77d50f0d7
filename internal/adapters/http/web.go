package web

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"council/internal/adapters/http/middleware"
	"council/internal/domain/calendar"
	"council/internal/domain/notice"
	"council/internal/domain/poll"
)

// ErrInvalidCSRFKey is returned when the CSRF auth key is not 32 bytes.
var ErrInvalidCSRFKey = errors.New("csrf auth key must be 32 bytes")

// Options configures the middleware around the views.
type Options struct {
	// CSRFKey must be 32 bytes.
	CSRFKey []byte
	// Production turns on Secure cookies and strict CSRF origin checks.
	Production bool
	// RateLimitPerSecond is the per-IP request budget.
	RateLimitPerSecond int
	// SlowRequest is the threshold for slow_request warnings; zero uses the default.
	SlowRequest time.Duration
}

// NewMux wires HTTP handlers for the app.
// PRE: deps.Generator is non-nil
// POST: returns a handler serving the five views and /static/ assets, or an error
// if the CSRF key or the static content the views render is invalid
func NewMux(deps Deps, opts Options) (http.Handler, error) {
	if len(opts.CSRFKey) != 32 {
		return nil, ErrInvalidCSRFKey
	}
	if err := validateContent(calendar.ThisMonth, notice.Board, poll.MonthlyPoll); err != nil {
		return nil, err
	}

	dispatcher := NewDispatcher()
	(&views{deps: deps}).register(dispatcher)

	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.FileServerFS(staticFiles))
	mux.Handle("/", dispatcher)

	slow := opts.SlowRequest
	if slow <= 0 {
		slow = middleware.DefaultSlowRequest
	}
	rate := opts.RateLimitPerSecond
	if rate <= 0 {
		rate = 10
	}

	// Applied inside out: Timing -> RateLimit -> Sessions -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(opts.CSRFKey, opts.Production),
		middleware.Sessions(middleware.NewSessionRegistry(), opts.Production),
		middleware.RateLimit(middleware.NewRateLimiter(rate)),
		middleware.Timing(slow),
	), nil
}

// validateContent checks the static catalogues before any page renders them.
func validateContent(events []calendar.Event, board []notice.Notice, p poll.Poll) error {
	for i := range events {
		if err := events[i].Validate(); err != nil {
			return fmt.Errorf("event %d %q: %w", i, events[i].Name, err)
		}
	}
	for i := range board {
		if err := board[i].Validate(); err != nil {
			return fmt.Errorf("notice %d %q: %w", i, board[i].Title, err)
		}
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("poll %q: %w", p.Title, err)
	}
	return nil
}
