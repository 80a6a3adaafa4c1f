package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func TestConsole_AsciiWritesPlainText(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, termenv.Ascii)
	c.SetForeground(Red)
	c.SetBackground(White)

	n, err := c.Write([]byte("plain\n"))

	assert.NoError(t, err)
	assert.Equal(t, 6, n)
	assert.Equal(t, "plain\n", buf.String())
}

func TestConsole_ANSIUsesCurrentColors(t *testing.T) {
	var buf bytes.Buffer
	c := NewConsole(&buf, termenv.ANSI)

	c.SetForeground(Cyan)
	_, _ = c.Write([]byte("cyan"))
	c.SetBackground(White)
	c.SetForeground(Red)
	_, _ = c.Write([]byte("inverted"))
	c.SetForeground(DefaultColor)
	c.SetBackground(DefaultColor)
	_, _ = c.Write([]byte("default"))

	out := buf.String()
	assert.Contains(t, out, "\x1b[36mcyan\x1b[0m")
	assert.Contains(t, out, "\x1b[31;47minverted\x1b[0m")
	assert.True(t, strings.HasSuffix(out, "\x1b[0mdefault"), "default colors write plain text, got: %q", out)
}

func TestConsole_ColorState(t *testing.T) {
	c := NewConsole(&bytes.Buffer{}, termenv.Ascii)
	assert.Equal(t, DefaultColor, c.Foreground())
	assert.Equal(t, DefaultColor, c.Background())

	c.SetForeground(Yellow)
	c.SetBackground(Blue)
	assert.Equal(t, Yellow, c.Foreground())
	assert.Equal(t, Blue, c.Background())
}

func TestConsoleProfile(t *testing.T) {
	assert.Equal(t, termenv.Ascii, ConsoleProfile(&bytes.Buffer{}, false), "non-terminal writers get no colors")
	assert.Equal(t, termenv.Ascii, ConsoleProfile(&bytes.Buffer{}, true))
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "cyan", Cyan.String())
	assert.Equal(t, "default", DefaultColor.String())
	assert.Equal(t, "unknown", Color(99).String())
}
