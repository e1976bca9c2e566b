// SPDX-License-Identifier: MIT

// Command topsis-server serves TOPSIS evaluation over HTTP.
//
// All settings come from the environment (TOPSIS_ADDRESS, TOPSIS_STORE,
// GMAIL_USER, ...); see package config for the full list.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lvrank/internal/artifact"
	"github.com/katalvlaran/lvrank/internal/config"
	"github.com/katalvlaran/lvrank/internal/httpapi"
	"github.com/katalvlaran/lvrank/internal/logging"
	"github.com/katalvlaran/lvrank/internal/mailer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCleanup, err := logging.Setup(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to setup logging: %v\n", err)
		os.Exit(1)
	}
	defer logCleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		logCleanup()
		os.Exit(1)
	}
	logger.Info("server stopped")
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()
	logger.Info("artifact store ready", slog.String("kind", cfg.Store))

	srv := httpapi.NewServer(store, newSender(cfg.Mail, logger), logger, httpapi.Options{
		BaseURL:        cfg.BaseURL,
		RateLimit:      cfg.RateLimit,
		RateBurst:      cfg.RateBurst,
		MaxUploadBytes: cfg.MaxUploadBytes,
		Policy:         cfg.Policy,
	})

	return httpapi.Serve(ctx, cfg.Address, srv.Routes(), logger)
}

// openStore builds the artifact store named by cfg.Store. The returned
// close function is never nil.
func openStore(ctx context.Context, cfg config.Config) (artifact.Store, func(), error) {
	noop := func() {}
	switch cfg.Store {
	case config.StoreMemory:
		return artifact.NewMemoryStore(), noop, nil
	case config.StoreFS:
		s, err := artifact.NewFSStore(cfg.OutputDir)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	case config.StoreSQLite:
		s, err := artifact.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		return s, func() { _ = s.Close() }, nil
	case config.StoreMinio:
		m := cfg.Minio
		s, err := artifact.DialMinio(ctx, m.Endpoint, m.AccessKey, m.SecretKey, m.UseSSL, m.Bucket, m.Prefix)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil
	default:
		return nil, noop, fmt.Errorf("%w: store %q", config.ErrInvalid, cfg.Store)
	}
}

// newSender returns nil when no mail account is configured; the server then
// answers email requests with an email error.
func newSender(m config.Mail, logger *slog.Logger) mailer.Sender {
	if m.User == "" || m.Password == "" {
		logger.Warn("email delivery disabled: GMAIL_USER or GMAIL_APP_PASSWORD not set")
		return nil
	}

	return &mailer.SMTPSender{Addr: m.Addr, User: m.User, Password: m.Password}
}
