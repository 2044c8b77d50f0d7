// Package config loads runtime settings from the environment.
package config

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/crypto/hkdf"
)

// Environment variable names.
const (
	EnvAPIKey     = "COUNCIL_GEMINI_API_KEY"
	EnvAddr       = "COUNCIL_ADDR"
	EnvEnv        = "COUNCIL_ENV"
	EnvCountry    = "COUNCIL_COUNTRY"
	EnvLanguage   = "COUNCIL_LANGUAGE"
	EnvCSRFKey    = "COUNCIL_CSRF_KEY"
	EnvResendKey  = "COUNCIL_RESEND_KEY"
	EnvResendFrom = "COUNCIL_RESEND_FROM"
	EnvInbox      = "COUNCIL_INBOX"
	EnvRateLimit  = "COUNCIL_RATE_LIMIT"
)

// minAPIKeyLength rejects obviously truncated credentials.
const minAPIKeyLength = 20

// csrfKeyInfo binds derived keys to their purpose.
const csrfKeyInfo = "council csrf auth key v1"

// Startup errors
var (
	ErrMissingAPIKey   = errors.New("the AI service key is not configured: set " + EnvAPIKey + " in the environment or in a .env file")
	ErrMalformedAPIKey = errors.New("the AI service key is malformed: check that " + EnvAPIKey + " is copied correctly without spaces")
	ErrCSRFKeyRequired = errors.New(EnvCSRFKey + " is required in production")
	ErrInvalidRate     = errors.New(EnvRateLimit + " must be a positive integer")
)

// Config holds every runtime setting.
type Config struct {
	APIKey   string
	Addr     string
	Env      string
	Country  string
	Language string

	// CSRFKey is the 32-byte gorilla/csrf auth key.
	CSRFKey []byte
	// EphemeralCSRFKey is true when CSRFKey was generated at random for this process.
	EphemeralCSRFKey bool

	ResendKey  string
	ResendFrom string
	Inbox      string

	RateLimitPerSecond int
}

// IsProduction reports whether the server runs in production mode.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// ForwardsSuggestions reports whether suggestions are emailed via Resend.
func (c Config) ForwardsSuggestions() bool {
	return c.ResendKey != "" && c.Inbox != ""
}

// Load reads the configuration through getenv (os.Getenv in production).
// PRE: getenv is non-nil
// POST: returns a complete Config, or a descriptive error when the AI key is missing or malformed
func Load(getenv func(string) string) (Config, error) {
	env := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := Config{
		Addr:       env(EnvAddr, ":8080"),
		Env:        env(EnvEnv, "development"),
		Country:    env(EnvCountry, "South Korea"),
		Language:   env(EnvLanguage, "English"),
		ResendKey:  env(EnvResendKey, ""),
		ResendFrom: env(EnvResendFrom, "Student Council <noreply@council.example>"),
		Inbox:      env(EnvInbox, ""),
	}

	key, err := validateAPIKey(getenv(EnvAPIKey))
	if err != nil {
		return Config{}, err
	}
	cfg.APIKey = key

	rate, err := strconv.Atoi(env(EnvRateLimit, "10"))
	if err != nil || rate <= 0 {
		return Config{}, ErrInvalidRate
	}
	cfg.RateLimitPerSecond = rate

	csrfKey, ephemeral, err := loadCSRFKey(getenv(EnvCSRFKey), cfg.IsProduction())
	if err != nil {
		return Config{}, err
	}
	cfg.CSRFKey = csrfKey
	cfg.EphemeralCSRFKey = ephemeral

	return cfg, nil
}

// validateAPIKey trims surrounding whitespace and rejects empty or garbled keys.
func validateAPIKey(raw string) (string, error) {
	key := strings.TrimSpace(raw)
	if key == "" {
		return "", ErrMissingAPIKey
	}
	if len(key) < minAPIKeyLength {
		return "", ErrMalformedAPIKey
	}
	for _, r := range key {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return "", ErrMalformedAPIKey
		}
	}
	return key, nil
}

// loadCSRFKey accepts a 64-character hex key, or derives one from a passphrase with HKDF.
// In development an empty value yields a random key (sessions won't survive restart).
func loadCSRFKey(raw string, production bool) ([]byte, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if production {
			return nil, false, ErrCSRFKeyRequired
		}
		key := make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, false, fmt.Errorf("generate CSRF key: %w", err)
		}
		return key, true, nil
	}

	if len(raw) == 64 {
		if key, err := hex.DecodeString(raw); err == nil {
			return key, false, nil
		}
	}

	key := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(raw), nil, []byte(csrfKeyInfo)), key); err != nil {
		return nil, false, fmt.Errorf("derive CSRF key: %w", err)
	}
	return key, false, nil
}
