package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNewWithSink_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithSink("warn", "json", zapcore.AddSync(&buf))
	require.NoError(t, err)

	log.Info("dropped")
	log.Named("engine").Warn("Stale point", zap.String("contract", "IC00.CFE"))
	require.NoError(t, log.Sync())

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1, "Info is below the configured level")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "engine", entry["logger"])
	require.Equal(t, "Stale point", entry["msg"])
	require.Equal(t, "IC00.CFE", entry["contract"])
}

func TestNewWithSink_UnknownLevelIsInfo(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithSink("verbose", "", zapcore.AddSync(&buf))
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestNewWithSink_BadFormat(t *testing.T) {
	_, err := NewWithSink("info", "xml", zapcore.AddSync(&bytes.Buffer{}))
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, "xml", fe.Format)
}
