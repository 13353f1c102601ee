package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"":        INFO,
		"debug":   DEBUG,
		"INFO":    INFO,
		"warn":    WARNING,
		"Warning": WARNING,
		"error":   ERROR,
		"FATAL":   FATAL,
	}
	for s, want := range cases {
		got, err := ParseLevel(s)
		require.NoError(t, err, s)
		require.Equal(t, want, got, s)
	}
	_, err := ParseLevel("verbose")
	require.Error(t, err)
}

func TestLevelFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewWriterLogger(buf)
	defer logger.Close()

	logger.Output(DEBUG, 1, "hidden")
	logger.Output(INFO, 1, "shown")
	logger.SetLevel(DEBUG)
	logger.Output(DEBUG, 1, "now visible")
	logger.Flush()

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "[INFO][logger_test.go:")
	require.Contains(t, out, "shown")
	require.Contains(t, out, "[DEBUG]")
	require.Contains(t, out, "now visible")
}

func TestFileLogger(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	settings := &Settings{
		Path:       dir,
		Name:       "doublekey",
		Ext:        "log",
		TimeFormat: "2006-01-02",
		Level:      "warn",
	}
	logger, err := NewFileLogger(settings)
	require.NoError(t, err)
	logger.Output(INFO, 1, "skipped")
	logger.Output(ERROR, 1, "written to file")
	logger.Close()

	name := "doublekey-" + time.Now().Format("2006-01-02") + ".log"
	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	require.True(t, strings.Contains(string(content), "written to file"))
	require.False(t, strings.Contains(string(content), "skipped"))
}

func TestFileLoggerBadLevel(t *testing.T) {
	_, err := NewFileLogger(&Settings{Path: t.TempDir(), Name: "x", Ext: "log", TimeFormat: "2006", Level: "loud"})
	require.Error(t, err)
}
