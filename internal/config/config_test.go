package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const validKey = "AIzaSyA-test-key-0123456789abcdefghij"

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

// TestLoad_Defaults verifies defaults when only the AI key is set.
func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(envFrom(map[string]string{EnvAPIKey: validKey}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != validKey {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
	if cfg.Addr != ":8080" || cfg.Env != "development" {
		t.Errorf("Addr=%q Env=%q", cfg.Addr, cfg.Env)
	}
	if cfg.Country != "South Korea" || cfg.Language != "English" {
		t.Errorf("Country=%q Language=%q", cfg.Country, cfg.Language)
	}
	if len(cfg.CSRFKey) != 32 || !cfg.EphemeralCSRFKey {
		t.Errorf("CSRFKey len=%d ephemeral=%v, want random 32-byte key", len(cfg.CSRFKey), cfg.EphemeralCSRFKey)
	}
	if cfg.RateLimitPerSecond != 10 {
		t.Errorf("RateLimitPerSecond = %d", cfg.RateLimitPerSecond)
	}
	if cfg.ForwardsSuggestions() {
		t.Error("ForwardsSuggestions() = true without Resend settings")
	}
}

// TestLoad_APIKeyErrors verifies startup halts with a descriptive error for bad keys.
func TestLoad_APIKeyErrors(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{"missing", "", ErrMissingAPIKey},
		{"blank", "   ", ErrMissingAPIKey},
		{"too short", "AIza123", ErrMalformedAPIKey},
		{"inner space", "AIzaSyA-test key-0123456789abcdefghij", ErrMalformedAPIKey},
		{"control char", "AIzaSyA-test\x00key-0123456789abcdefghij", ErrMalformedAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(envFrom(map[string]string{EnvAPIKey: tt.key}))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(err.Error(), EnvAPIKey) {
				t.Errorf("error %q does not name %s", err, EnvAPIKey)
			}
		})
	}
}

// TestLoad_TrimsAPIKey verifies surrounding whitespace from .env files is tolerated.
func TestLoad_TrimsAPIKey(t *testing.T) {
	cfg, err := Load(envFrom(map[string]string{EnvAPIKey: "  " + validKey + "\n"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != validKey {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}
}

// TestLoad_CSRFKey tests hex, passphrase and production handling of the CSRF key.
func TestLoad_CSRFKey(t *testing.T) {
	hexKey := strings.Repeat("ab", 32)
	cfg, err := Load(envFrom(map[string]string{EnvAPIKey: validKey, EnvCSRFKey: hexKey}))
	if err != nil {
		t.Fatalf("hex: %v", err)
	}
	if !bytes.Equal(cfg.CSRFKey, bytes.Repeat([]byte{0xab}, 32)) || cfg.EphemeralCSRFKey {
		t.Errorf("hex key not decoded: %x", cfg.CSRFKey)
	}

	a, _ := Load(envFrom(map[string]string{EnvAPIKey: validKey, EnvCSRFKey: "correct horse battery staple"}))
	b, _ := Load(envFrom(map[string]string{EnvAPIKey: validKey, EnvCSRFKey: "correct horse battery staple"}))
	if len(a.CSRFKey) != 32 || !bytes.Equal(a.CSRFKey, b.CSRFKey) {
		t.Errorf("passphrase derivation not deterministic: %x vs %x", a.CSRFKey, b.CSRFKey)
	}

	_, err = Load(envFrom(map[string]string{EnvAPIKey: validKey, EnvEnv: "production"}))
	if !errors.Is(err, ErrCSRFKeyRequired) {
		t.Errorf("production without CSRF key: err = %v", err)
	}
}

// TestLoad_Overrides verifies optional settings are read.
func TestLoad_Overrides(t *testing.T) {
	cfg, err := Load(envFrom(map[string]string{
		EnvAPIKey:    validKey,
		EnvAddr:      ":9090",
		EnvCountry:   "New Zealand",
		EnvLanguage:  "Korean",
		EnvResendKey: "re_123",
		EnvInbox:     "council@school.example",
		EnvRateLimit: "25",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Addr != ":9090" || cfg.Country != "New Zealand" || cfg.Language != "Korean" {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.ForwardsSuggestions() {
		t.Error("ForwardsSuggestions() = false with Resend key and inbox")
	}
	if cfg.RateLimitPerSecond != 25 {
		t.Errorf("RateLimitPerSecond = %d", cfg.RateLimitPerSecond)
	}

	_, err = Load(envFrom(map[string]string{EnvAPIKey: validKey, EnvRateLimit: "fast"}))
	if !errors.Is(err, ErrInvalidRate) {
		t.Errorf("err = %v, want ErrInvalidRate", err)
	}
}
