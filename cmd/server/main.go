package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	emailPkg "council/internal/adapters/email"
	web "council/internal/adapters/http"
	"council/internal/adapters/textgen"
	"council/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load(os.Getenv)
	if err != nil {
		slog.Error("config_invalid", "error", err.Error())
		os.Exit(1)
	}
	if cfg.EphemeralCSRFKey {
		slog.Warn("csrf_key_ephemeral", "hint", "set "+config.EnvCSRFKey+" so forms survive a restart")
	}

	ctx := context.Background()
	generator, err := textgen.NewGeminiClient(ctx, cfg.APIKey)
	if err != nil {
		slog.Error("textgen_init_failed", "error", err.Error())
		os.Exit(1)
	}

	// Configure email sender
	var sender emailPkg.Sender
	if cfg.ForwardsSuggestions() {
		sender = emailPkg.NewResendSender(cfg.ResendKey, cfg.ResendFrom)
		slog.Info("email_sender_configured", "provider", "resend", "inbox", cfg.Inbox)
	} else {
		sender = emailPkg.NewNoopSender()
		slog.Info("email_sender_configured", "provider", "noop")
	}

	mux, err := web.NewMux(web.Deps{
		Generator: generator,
		Sender:    sender,
		Inbox:     cfg.Inbox,
		Country:   cfg.Country,
		Language:  cfg.Language,
	}, web.Options{
		CSRFKey:            cfg.CSRFKey,
		Production:         cfg.IsProduction(),
		RateLimitPerSecond: cfg.RateLimitPerSecond,
	})
	if err != nil {
		slog.Error("mux_init_failed", "error", err.Error())
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server_starting", "version", version, "addr", cfg.Addr, "env", cfg.Env, "model", textgen.ModelName)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server_failed", "error", err.Error())
			os.Exit(1)
		}
	}()

	// signal.Notify requires the channel to be buffered
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	slog.Info("server_stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server_shutdown_failed", "error", err.Error())
	}
}
