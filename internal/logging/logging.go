// SPDX-License-Identifier: MIT

// Package logging builds the process slog.Logger for the CLI and the server.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Output formats accepted by Config.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config selects the handler.
type Config struct {
	Level  string    // debug, info, warn or error; empty means info
	Format string    // FormatText or FormatJSON; empty means text
	File   string    // optional path; output is teed there in append mode
	Stderr io.Writer // primary sink, os.Stderr when nil
}

// ParseLevel maps a level name (case-insensitive) to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("logging: %w", err)
	}

	return l, nil
}

// Setup returns a logger and a cleanup function that closes the log file,
// if one was opened. cleanup is never nil.
func Setup(cfg Config) (*slog.Logger, func(), error) {
	noop := func() {}

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, noop, err
	}

	var w io.Writer = os.Stderr
	if cfg.Stderr != nil {
		w = cfg.Stderr
	}
	cleanup := noop
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, noop, fmt.Errorf("logging: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, noop, fmt.Errorf("logging: %w", err)
		}
		w = io.MultiWriter(w, f)
		cleanup = func() { _ = f.Close() }
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", FormatText:
		h = slog.NewTextHandler(w, opts)
	case FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	default:
		cleanup()
		return nil, noop, fmt.Errorf("logging: unknown format %q (want text or json)", cfg.Format)
	}

	return slog.New(h), cleanup, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
