// SPDX-License-Identifier: MIT

package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvrank/internal/logging"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"Error": slog.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	require.Error(t, err)
}

func TestSetup_TextFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, cleanup, err := logging.Setup(logging.Config{Level: "warn", Stderr: &buf})
	require.NoError(t, err)
	defer cleanup()

	log.Info("hidden")
	log.Warn("shown", "k", 1)
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "msg=shown k=1")
}

func TestSetup_JSONTeesToFile(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "topsis.log")
	log, cleanup, err := logging.Setup(logging.Config{Format: "json", File: path, Stderr: &buf})
	require.NoError(t, err)

	log.Info("evaluated", slog.Int("alternatives", 4))
	cleanup()

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "evaluated", rec["msg"])
	require.Equal(t, float64(4), rec["alternatives"])

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, buf.String(), string(onDisk))
}

func TestSetup_Errors(t *testing.T) {
	_, cleanup, err := logging.Setup(logging.Config{Format: "xml", Stderr: &bytes.Buffer{}})
	require.ErrorContains(t, err, `"xml"`)
	require.NotNil(t, cleanup)

	_, _, err = logging.Setup(logging.Config{Level: "chatty"})
	require.Error(t, err)
}

func TestDiscard(t *testing.T) {
	require.False(t, logging.Discard().Enabled(t.Context(), slog.LevelError))
}
