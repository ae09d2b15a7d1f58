package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntry(msg string) *logrus.Entry {
	logger := logrus.New()
	entry := logger.WithField("component", "test")
	entry.Message = msg
	entry.Level = logrus.InfoLevel
	entry.Time = time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	return entry
}

func TestTextFormatterDefault(t *testing.T) {
	f := &TextFormatter{}

	out, err := f.Format(newEntry("scanning huds"))
	require.NoError(t, err)

	line := string(out)
	assert.Contains(t, line, "2024-03-01 12:30:00")
	assert.Contains(t, line, "[INFO]")
	assert.Contains(t, line, "[test]")
	assert.Contains(t, line, "scanning huds")
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestTextFormatterSimple(t *testing.T) {
	f := &TextFormatter{Config: FormatConfig{
		DisableTimestamp: true,
		DisableComponent: true,
	}}

	out, err := f.Format(newEntry("done"))
	require.NoError(t, err)

	line := string(out)
	assert.NotContains(t, line, "2024-03-01")
	assert.NotContains(t, line, "[test]")
	assert.Contains(t, line, "[INFO] done")
}

func TestTextFormatterWarnLevel(t *testing.T) {
	f := &TextFormatter{}

	entry := newEntry("careful")
	entry.Level = logrus.WarnLevel

	out, err := f.Format(entry)
	require.NoError(t, err)
	assert.Contains(t, string(out), "[WARN]")
}

func TestNewLoggerIsSingletonPerComponent(t *testing.T) {
	t.Setenv("HUD_MANAGER_HOME", t.TempDir())

	a := NewLogger("singleton-test")
	b := NewLogger("singleton-test")
	assert.Same(t, a, b)

	c := NewLogger("other-component")
	assert.NotSame(t, a, c)
}

func TestNewLoggerLevelFromEnv(t *testing.T) {
	t.Setenv("HUD_MANAGER_HOME", t.TempDir())
	t.Setenv("HUD_MANAGER_LOG_LEVEL", "debug")

	entry := NewLogger("env-level-test")
	assert.Equal(t, logrus.DebugLevel, entry.Logger.GetLevel())
}

func TestPrettyLogger(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrettyLogger().WithWriter(&buf)

	p.Success("hud activated")
	p.Field("hud", "budhud")
	p.ErrorPretty("move failed", assert.AnError)

	out := buf.String()
	assert.Contains(t, out, "hud activated")
	assert.Contains(t, out, "budhud")
	assert.Contains(t, out, "move failed")
}
