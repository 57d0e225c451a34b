package logger

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var linePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} : \[(INFO|WARNING|ERROR)\] .+$`)

func TestLogFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.log")
	require.NoError(t, Init(path, false))

	Info("loaded environment from %s", ".env")
	Warn("cleanup failed for %s", "/tmp/awscliv2.zip")
	Error("unsupported operating system %q", "plan9")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)

	for _, l := range lines {
		assert.Regexp(t, linePattern, l)
	}
	assert.Contains(t, lines[0], "[INFO] loaded environment from .env")
	assert.Contains(t, lines[1], "[WARNING] cleanup failed for /tmp/awscliv2.zip")
	assert.Contains(t, lines[2], `[ERROR] unsupported operating system "plan9"`)
}

func TestAppendAcrossRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "setup.log")

	require.NoError(t, Init(path, false))
	Info("first run")
	Close()

	require.NoError(t, Init(path, false))
	Info("second run")
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")
}

func TestLoggingWithoutInitIsSafe(t *testing.T) {
	Close()
	Info("console only") // must not panic without a file sink
}
