package logger

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, zerolog.InfoLevel, "json", "")

	log.Debug().Msg("hidden")
	log.Info().Int("num_degree", 3).Msg("approximant ready")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "info", entry["level"])
	require.Equal(t, "approximant ready", entry["message"])
	require.Equal(t, float64(3), entry["num_degree"])
	require.Contains(t, entry, "time")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"})
	require.ErrorContains(t, err, "invalid log level")
}

func TestNewFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pade.log")
	log, err := New(Config{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)
	log.Info().Msg("written")
	require.FileExists(t, path)
}
