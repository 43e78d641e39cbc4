package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatLogfmtValue(t *testing.T) {
	assert.Equal(t, "42", formatLogfmtValue(42))
	assert.Equal(t, "2.5", formatLogfmtValue(2.5))
	assert.Equal(t, "true", formatLogfmtValue(true))
	assert.Equal(t, "#2PP", formatLogfmtValue("#2PP"))
	assert.Equal(t, `"Clan Name"`, formatLogfmtValue("Clan Name"))
	assert.Equal(t, `"a=\"b\""`, formatLogfmtValue(`a="b"`))
}

func TestStructuredLogger_LevelsAndFields(t *testing.T) {
	var stdout, stderr bytes.Buffer
	SetOutput(&stdout, &stderr)
	prevLevel := logLevel
	t.Cleanup(func() { SetLogLevel(prevLevel) })
	SetLogLevel(Info)

	logger := NewLogger("TEST").With(map[string]any{RUN_ID: "abc"})
	logger.Debug("HIDDEN", nil)
	logger.Info("FETCHED", map[string]any{COUNT: 3, CLAN_TAG: "#2PP"})
	logger.Warn("DEGRADED", errors.New("boom"), map[string]any{STATUS_CODE: 404})

	out := stdout.String()
	assert.NotContains(t, out, "HIDDEN")
	assert.Contains(t, out, "[INFO][TEST] -- FETCHED >> clan_tag=#2PP count=3 run_id=abc")

	errOut := stderr.String()
	assert.Contains(t, errOut, "[WARN][TEST] -- DEGRADED >> error=boom run_id=abc status_code=404")
}

func TestStructuredLogger_WithDoesNotLeak(t *testing.T) {
	var stdout bytes.Buffer
	SetOutput(&stdout, &bytes.Buffer{})

	parent := NewLogger("P")
	child := parent.With(map[string]any{CLAN_NAME: "child"})
	parent.Info("PARENT", nil)
	child.Info("CHILD", map[string]any{CLAN_NAME: "override"})

	out := stdout.String()
	assert.Contains(t, out, "PARENT\n")
	assert.Contains(t, out, "CHILD >> clan_name=override")
}

func TestShouldLog(t *testing.T) {
	prevLevel := logLevel
	t.Cleanup(func() { SetLogLevel(prevLevel) })

	SetLogLevel("WARN")
	assert.False(t, ShouldLog(Info))
	assert.True(t, ShouldLog(Warn))
	assert.True(t, ShouldLog(Error))
	assert.False(t, IsVerbose())

	SetLogLevel("not-a-level")
	assert.Equal(t, Warn, logLevel)
}
