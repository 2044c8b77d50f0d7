package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	sessionStore "council/internal/adapters/storage/session"
)

// contextKey is an unexported type for context keys in this package.
type contextKey string

const sessionContextKey contextKey = "session"

const sessionCookieName = "council_session"

// SessionIdleTimeout is how long an untouched session keeps its submissions.
const SessionIdleTimeout = 24 * time.Hour

// Session is one browser's isolated interaction lifetime.
// Store holds everything the student submitted; it dies with the session.
type Session struct {
	ID        string
	CreatedAt time.Time
	Store     sessionStore.Store

	lastSeen time.Time
}

// SessionRegistry is an in-memory map of live sessions.
type SessionRegistry struct {
	mu        sync.Mutex
	sessions  map[string]*Session
	lastSweep time.Time

	// Now and NewStore are replaceable in tests.
	Now      func() time.Time
	NewStore func() sessionStore.Store
}

// NewSessionRegistry creates an empty registry whose sessions use memory stores.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*Session),
		Now:      time.Now,
		NewStore: sessionStore.NewMemoryStore,
	}
}

// Create starts a new session with an empty store.
// PRE: none
// POST: session stored under a fresh random token; idle sessions may be swept
func (sr *SessionRegistry) Create() *Session {
	now := sr.Now()
	s := &Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Store:     sr.NewStore(),
		lastSeen:  now,
	}
	sr.mu.Lock()
	defer sr.mu.Unlock()
	if now.Sub(sr.lastSweep) > time.Minute {
		if n := sr.sweepLocked(now); n > 0 {
			slog.Info("sessions_swept", "expired", n, "active", len(sr.sessions))
		}
		sr.lastSweep = now
	}
	sr.sessions[s.ID] = s
	return s
}

// Get retrieves a live session by token and marks it as seen.
// PRE: token is non-empty
// POST: Returns the session if it exists and has not been idle past SessionIdleTimeout
func (sr *SessionRegistry) Get(token string) (*Session, bool) {
	now := sr.Now()
	sr.mu.Lock()
	defer sr.mu.Unlock()
	s, ok := sr.sessions[token]
	if !ok {
		return nil, false
	}
	if now.Sub(s.lastSeen) > SessionIdleTimeout {
		delete(sr.sessions, token)
		return nil, false
	}
	s.lastSeen = now
	return s, true
}

// sweepLocked drops every session idle past SessionIdleTimeout.
// PRE: sr.mu is held
func (sr *SessionRegistry) sweepLocked(now time.Time) int {
	n := 0
	for token, s := range sr.sessions {
		if now.Sub(s.lastSeen) > SessionIdleTimeout {
			delete(sr.sessions, token)
			n++
		}
	}
	return n
}

// Sessions returns middleware that attaches the caller's session to the request context,
// creating one (and its cookie) on first access.
func Sessions(registry *SessionRegistry, secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sess *Session
			if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
				sess, _ = registry.Get(cookie.Value)
			}
			if sess == nil {
				sess = registry.Create()
				setSessionCookie(w, sess.ID, secure)
			}
			next.ServeHTTP(w, r.WithContext(ContextWithSession(r.Context(), sess)))
		})
	}
}

// GetSessionFromContext extracts the session from the request context.
func GetSessionFromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionContextKey).(*Session)
	return s, ok && s != nil
}

// ContextWithSession returns a context with the given session set.
func ContextWithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

func setSessionCookie(w http.ResponseWriter, token string, secure bool) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
}
