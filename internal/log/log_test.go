package log

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// The logger is a process-wide singleton guarded by sync.Once, so every
// behavior is exercised from a single test.
func TestLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eventide.log")

	cleanup, err := Init(path)
	require.NoError(t, err)
	defer cleanup()

	read := func() string {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return string(data)
	}

	Debug(CatWorker, "scheduling", "ports", 2)
	out := read()
	require.Contains(t, out, "[DEBUG]")
	require.Contains(t, out, "[worker]")
	require.Contains(t, out, "scheduling ports=2")

	ErrorErr(CatPort, "poll failed", errors.New("boom"), "port", "abc")
	out = read()
	require.Contains(t, out, "[ERROR]")
	require.Contains(t, out, "poll failed port=abc error=boom")

	// Odd field counts never panic; the orphan key is still visible.
	Info(CatListener, "started", "orphan")
	require.Contains(t, read(), "orphan=<missing>")

	SetMinLevel(LevelWarn)
	Info(CatDemo, "below threshold")
	require.NotContains(t, read(), "below threshold")
	Warn(CatDemo, "at threshold")
	require.Contains(t, read(), "at threshold")
	SetMinLevel(LevelDebug)

	SetEnabled(false)
	Error(CatConfig, "while disabled")
	require.NotContains(t, read(), "while disabled")

	SetEnabled(true)
	Debug(CatAdapter, "re-enabled")
	require.Contains(t, read(), "re-enabled")
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "ERROR", LevelError.String())
}