// SPDX-License-Identifier: MIT

// Package config reads the server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/katalvlaran/lvrank/internal/logging"
	"github.com/katalvlaran/lvrank/internal/mailer"
	"github.com/katalvlaran/lvrank/topsis"
)

// Artifact store backends. StoreMemory keeps results only for the life of
// the process.
const (
	StoreFS     = "fs"
	StoreSQLite = "sqlite"
	StoreMinio  = "minio"
	StoreMemory = "memory"
)

// ErrInvalid wraps every configuration error.
var ErrInvalid = errors.New("config: invalid value")

// Minio holds the object-store settings used when Store is StoreMinio.
type Minio struct {
	Endpoint  string
	Bucket    string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Prefix    string
}

// Mail holds the SMTP sender account. Empty User or Password disables
// sending; requests that ask for email then report an email error.
type Mail struct {
	Addr     string
	User     string
	Password string
}

// Config is the full server configuration.
type Config struct {
	Address        string
	BaseURL        string // prefix for download links; empty yields relative links
	Store          string
	OutputDir      string
	SQLitePath     string
	Minio          Minio
	Mail           Mail
	RateLimit      float64 // requests per second across the process; 0 disables
	RateBurst      int
	MaxUploadBytes int64
	Policy         topsis.DegeneratePolicy
	Log            logging.Config
}

// Load reads every TOPSIS_* variable (plus GMAIL_USER and
// GMAIL_APP_PASSWORD) and applies defaults.
func Load() (Config, error) {
	cfg := Config{
		Address:    getEnv("TOPSIS_ADDRESS", ":8080"),
		BaseURL:    getEnv("TOPSIS_BASE_URL", ""),
		Store:      getEnv("TOPSIS_STORE", StoreFS),
		OutputDir:  getEnv("TOPSIS_OUTPUT_DIR", filepath.Join(os.TempDir(), "topsis-outputs")),
		SQLitePath: getEnv("TOPSIS_SQLITE_PATH", "topsis.db"),
		Minio: Minio{
			Endpoint:  getEnv("TOPSIS_MINIO_ENDPOINT", ""),
			Bucket:    getEnv("TOPSIS_MINIO_BUCKET", "topsis"),
			AccessKey: getEnv("TOPSIS_MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("TOPSIS_MINIO_SECRET_KEY", ""),
			Prefix:    getEnv("TOPSIS_MINIO_PREFIX", "outputs/"),
		},
		Mail: Mail{
			Addr:     getEnv("TOPSIS_SMTP_ADDR", mailer.DefaultAddr),
			User:     getEnv("GMAIL_USER", ""),
			Password: getEnv("GMAIL_APP_PASSWORD", ""),
		},
		Log: logging.Config{
			Level:  getEnv("TOPSIS_LOG_LEVEL", "info"),
			Format: getEnv("TOPSIS_LOG_FORMAT", logging.FormatText),
			File:   getEnv("TOPSIS_LOG_FILE", ""),
		},
	}

	var err error
	if cfg.Minio.UseSSL, err = parseBool("TOPSIS_MINIO_USE_SSL", true); err != nil {
		return Config{}, err
	}
	if cfg.RateLimit, err = parseFloat("TOPSIS_RATE_LIMIT", 5); err != nil {
		return Config{}, err
	}
	if cfg.RateBurst, err = parseInt("TOPSIS_RATE_BURST", 10); err != nil {
		return Config{}, err
	}
	var maxUpload int
	if maxUpload, err = parseInt("TOPSIS_MAX_UPLOAD_BYTES", 10<<20); err != nil {
		return Config{}, err
	}
	cfg.MaxUploadBytes = int64(maxUpload)
	if cfg.Policy, err = topsis.ParseDegeneratePolicy(getEnv("TOPSIS_POLICY", topsis.DefaultDegeneratePolicy.String())); err != nil {
		return Config{}, fmt.Errorf("%w: TOPSIS_POLICY: %w", ErrInvalid, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks cross-field rules.
func (c Config) Validate() error {
	switch c.Store {
	case StoreMemory:
	case StoreFS:
		if c.OutputDir == "" {
			return fmt.Errorf("%w: TOPSIS_OUTPUT_DIR is empty", ErrInvalid)
		}
	case StoreSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("%w: TOPSIS_SQLITE_PATH is empty", ErrInvalid)
		}
	case StoreMinio:
		if c.Minio.Endpoint == "" || c.Minio.AccessKey == "" || c.Minio.SecretKey == "" || c.Minio.Bucket == "" {
			return fmt.Errorf("%w: minio store needs endpoint, bucket, access key and secret key", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: TOPSIS_STORE %q (want fs, sqlite, minio or memory)", ErrInvalid, c.Store)
	}
	if c.RateLimit < 0 || c.RateBurst < 1 {
		return fmt.Errorf("%w: rate limit must be >= 0 and burst >= 1", ErrInvalid)
	}
	if c.MaxUploadBytes < 1 {
		return fmt.Errorf("%w: TOPSIS_MAX_UPLOAD_BYTES must be positive", ErrInvalid)
	}

	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q", ErrInvalid, key, v)
	}

	return b, nil
}

func parseInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalid, key, v)
	}

	return n, nil
}

func parseFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalid, key, v)
	}

	return f, nil
}
