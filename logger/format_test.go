package logger

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat_Segments(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC)

	cases := []struct {
		name     string
		scheme   TagScheme
		settings Settings
		want     string
	}{
		{"bare", PlainTags, Settings{}, ":: Info x\n"},
		{"timestamp", PlainTags, Settings{IncludeTimestamp: true}, "2024-01-02 03:04:05.006 :: Info x\n"},
		{"stack", PlainTags, Settings{IncludeStackTrace: true}, ":: Info from [main.run (main.go:7)]: \tx\n"},
		{"all", PlainTags, DefaultSettings(), "2024-01-02 03:04:05.006 :: Info from [main.run (main.go:7)]: \tx\n"},
		{"symbol", SymbolTags, Settings{}, ":: ℹ [Info] x\n"},
		{"hex", HexTags, Settings{}, "----- 0xF1 Info x\n"},
		{"hex stack", HexTags, Settings{IncludeStackTrace: true}, "----- 0xF1 Info from [main.run (main.go:7)]: \n\tx\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.scheme.Format(InfoLevel, "x", tc.settings, now, "main.run (main.go:7)")
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormat_IgnoresStackWhenDisabled(t *testing.T) {
	got := PlainTags.Format(ErrorLevel, "x", Settings{}, time.Time{}, "should not appear")
	assert.Equal(t, ":: Error x\n", got)
}

func TestTagSchemes_CoverAllLevels(t *testing.T) {
	for _, scheme := range []TagScheme{PlainTags, SymbolTags, HexTags} {
		for _, level := range AllLevels() {
			_, ok := scheme.Tags[level]
			assert.True(t, ok, "%s scheme missing tag for level %d", scheme.Name, level)
		}
	}
	assert.Equal(t, "Level(42)", PlainTags.Tag(Level(42)))
}

func TestParseTagScheme(t *testing.T) {
	for _, name := range []string{"", "plain", "symbol", "HEX", " hex "} {
		scheme, ok := ParseTagScheme(name)
		require.True(t, ok, name)
		assert.NotNil(t, scheme.Tags)
	}
	_, ok := ParseTagScheme("emoji")
	assert.False(t, ok)
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"log":       LogLevel,
		"INFO":      InfoLevel,
		"success":   SuccessLevel,
		"warn":      WarnLevel,
		"warning":   WarnLevel,
		"error":     ErrorLevel,
		"crit":      CriticalLevel,
		"Critical":  CriticalLevel,
		"exception": ExceptionLevel,
	}
	for name, want := range cases {
		got, ok := ParseLevel(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	_, ok := ParseLevel("debug")
	assert.False(t, ok, "there is no debug level")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "Warning", WarnLevel.String())
	assert.Equal(t, "CRITICAL", CriticalLevel.String())
}

func captureHere() string { return captureStack(0) }

func TestCaptureStack_SkipsRuntimeFrames(t *testing.T) {
	stack := captureHere()

	frames := strings.Split(stack, " <- ")
	require.NotEmpty(t, frames)
	assert.True(t, strings.HasPrefix(frames[0], "logger.captureHere (format_test.go:"), "got: %q", frames[0])
	assert.True(t, strings.HasPrefix(frames[1], "logger.TestCaptureStack_SkipsRuntimeFrames (format_test.go:"), "got: %q", frames[1])
	assert.NotContains(t, stack, "runtime.")
}

func TestWithStack(t *testing.T) {
	assert.Nil(t, WithStack(nil))

	base := errors.New("base")
	err := fmt.Errorf("wrapped: %w", WithStack(base))

	assert.ErrorIs(t, err, base)
	assert.Equal(t, "wrapped: base", err.Error())
	trace := StackTrace(err)
	assert.True(t, strings.HasPrefix(trace, "logger.TestWithStack (format_test.go:"), "got: %q", trace)
	assert.Contains(t, trace, "\n", "one frame per line")
	assert.Empty(t, StackTrace(base))
}

func TestError_CodesAndUnwrap(t *testing.T) {
	cause := errors.New("permission denied")
	err := WrapError(ErrCodeSink, "failed to open log file app.log", cause)

	assert.Equal(t, "[SINK_ERROR] failed to open log file app.log: permission denied", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, NewError(ErrCodeSink, "other message"))
	assert.NotErrorIs(t, err, NewError(ErrCodeValidation, ""))
	assert.Equal(t, "[LAUNCH_ERROR] no viewer", NewError(ErrCodeLaunch, "no viewer").Error())
}
