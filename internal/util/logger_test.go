package util

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(level string, format LogFormat) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := &Logger{level: ParseLogLevel(level), fields: map[string]interface{}{}}
	logger.AddOutput(NewConsoleOutput(buf, format))
	return logger, buf
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLogLevel("DEBUG"))
	assert.Equal(t, LevelWarn, ParseLogLevel("warning"))
	assert.Equal(t, LevelError, ParseLogLevel("error"))
	assert.Equal(t, LevelInfo, ParseLogLevel("bogus"))
}

func TestLoggerFiltersBelowLevel(t *testing.T) {
	logger, buf := newBufferLogger("warn", FormatText)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] shown")
}

func TestLoggerTextFieldsAreSorted(t *testing.T) {
	logger, buf := newBufferLogger("debug", FormatText)

	logger.Info("scan done", F("zeta", 1), F("alpha", "x"))

	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasSuffix(line, "scan done alpha=x zeta=1"), line)
}

func TestLoggerJSONFormat(t *testing.T) {
	logger, buf := newBufferLogger("info", FormatJSON)

	logger.Info("loaded", F("items", 3))

	var entry LogEntry
	require.NoError(t, sonic.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "loaded", entry.Message)
	assert.EqualValues(t, 3, entry.Fields["items"])
}

func TestLoggerWithAndContext(t *testing.T) {
	logger, buf := newBufferLogger("info", FormatText)

	ctx := context.WithValue(context.Background(), NotesDirKey, "/vault")
	logger.With(F("view", "day")).WithContext(ctx).Info("render")

	out := buf.String()
	assert.Contains(t, out, "view=day")
	assert.Contains(t, out, "notes_dir=/vault")

	buf.Reset()
	logger.Info("parent")
	assert.NotContains(t, buf.String(), "view=day", "child fields must not leak into the parent")
}

func TestNewLoggerRequiresDestination(t *testing.T) {
	_, err := NewLogger("info", "", false)
	assert.Error(t, err)
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	logger, err := NewLogger("info", path, false)
	require.NoError(t, err)
	logger.Infof("hello %s", "file")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INFO] hello file")
}

func TestCloseLoggerResetsGlobal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	t.Cleanup(func() { _ = CloseLogger() })

	require.NoError(t, InitLogger("info", path, false))
	require.NotNil(t, GetLogger())
	LogInfo("before close")

	require.NoError(t, CloseLogger())
	assert.Nil(t, GetLogger())
	LogInfo("after close")
	assert.NoError(t, CloseLogger(), "closing twice is a no-op")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "before close")
	assert.NotContains(t, string(data), "after close")

	second := filepath.Join(t.TempDir(), "again.log")
	require.NoError(t, InitLogger("info", second, false))
	assert.NotNil(t, GetLogger(), "InitLogger works again after CloseLogger")
}
