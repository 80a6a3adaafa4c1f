package logger

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// Level defines log severity.
type Level int

const (
	// LogLevel is a plain message.
	LogLevel Level = iota
	// InfoLevel is an informational message.
	InfoLevel
	// SuccessLevel reports a completed operation.
	SuccessLevel
	// WarnLevel is a warning.
	WarnLevel
	// ErrorLevel is a recoverable error.
	ErrorLevel
	// CriticalLevel is a severe failure; it may open the log file.
	CriticalLevel
	// ExceptionLevel reports an error value with its recorded stack.
	ExceptionLevel
)

// AllLevels returns all supported levels in severity order.
func AllLevels() []Level {
	return []Level{
		LogLevel,
		InfoLevel,
		SuccessLevel,
		WarnLevel,
		ErrorLevel,
		CriticalLevel,
		ExceptionLevel,
	}
}

func (l Level) String() string {
	return PlainTags.Tag(l)
}

// ParseLevel maps a level name (case-insensitive) to a Level.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LOG":
		return LogLevel, true
	case "INFO":
		return InfoLevel, true
	case "SUCCESS":
		return SuccessLevel, true
	case "WARN", "WARNING":
		return WarnLevel, true
	case "ERROR":
		return ErrorLevel, true
	case "CRIT", "CRITICAL":
		return CriticalLevel, true
	case "EXCEPTION":
		return ExceptionLevel, true
	}
	return 0, false
}

// Settings are the formatting and auto-open toggles of a Logger.
type Settings struct {
	IncludeTimestamp   bool
	IncludeStackTrace  bool
	AutoOpenOnCritical bool
}

// DefaultSettings returns settings with every toggle enabled.
func DefaultSettings() Settings {
	return Settings{
		IncludeTimestamp:   true,
		IncludeStackTrace:  true,
		AutoOpenOnCritical: true,
	}
}

// TimestampLayout is the layout of the per-line timestamp.
const TimestampLayout = "2006-01-02 15:04:05.000"

// TagScheme decides the level tags and separators used in formatted lines.
type TagScheme struct {
	Name string
	// Separator precedes the level tag.
	Separator string
	// StackSuffix follows the "from [...]: " stack segment.
	StackSuffix string
	Tags        map[Level]string
}

var (
	// PlainTags uses the bare level names.
	PlainTags = TagScheme{
		Name:        "plain",
		Separator:   "::",
		StackSuffix: "\t",
		Tags: map[Level]string{
			LogLevel:       "Log",
			InfoLevel:      "Info",
			SuccessLevel:   "Success",
			WarnLevel:      "Warning",
			ErrorLevel:     "Error",
			CriticalLevel:  "CRITICAL",
			ExceptionLevel: "EXCEPTION",
		},
	}

	// SymbolTags prefixes each level name with a pictogram.
	SymbolTags = TagScheme{
		Name:        "symbol",
		Separator:   "::",
		StackSuffix: "\t",
		Tags: map[Level]string{
			LogLevel:       "✉ [Log]",
			InfoLevel:      "ℹ [Info]",
			SuccessLevel:   "😼 [Success]",
			WarnLevel:      "⚠ [Warning]",
			ErrorLevel:     "😠 [Error]",
			CriticalLevel:  "☠ [CRITICAL]",
			ExceptionLevel: "☠ [EXCEPTION]",
		},
	}

	// HexTags prefixes each level name with a hex code and puts the message
	// on its own line when a stack is included.
	HexTags = TagScheme{
		Name:        "hex",
		Separator:   "-----",
		StackSuffix: "\n\t",
		Tags: map[Level]string{
			LogLevel:       "0xF0 Log",
			InfoLevel:      "0xF1 Info",
			SuccessLevel:   "0xF2 Success",
			WarnLevel:      "0xE2 Warning",
			ErrorLevel:     "0xE1 Error",
			CriticalLevel:  "0xE0 CRITICAL",
			ExceptionLevel: "0xE0 EXCEPTION",
		},
	}
)

// ParseTagScheme returns the scheme registered under name.
func ParseTagScheme(name string) (TagScheme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "plain":
		return PlainTags, true
	case "symbol":
		return SymbolTags, true
	case "hex":
		return HexTags, true
	}
	return TagScheme{}, false
}

// Tag returns the tag for level.
func (ts TagScheme) Tag(level Level) string {
	if tag, ok := ts.Tags[level]; ok {
		return tag
	}
	return fmt.Sprintf("Level(%d)", int(level))
}

// Format renders one log line:
//
//	[<timestamp> ]<sep> <tag> [from [<stack>]: <suffix>]<content>\n
//
// The bracketed segments appear only when the matching setting is enabled.
func (ts TagScheme) Format(level Level, content string, s Settings, now time.Time, stack string) string {
	var b strings.Builder
	if s.IncludeTimestamp {
		b.WriteString(now.Format(TimestampLayout))
		b.WriteByte(' ')
	}
	b.WriteString(ts.Separator)
	b.WriteByte(' ')
	b.WriteString(ts.Tag(level))
	b.WriteByte(' ')
	if s.IncludeStackTrace {
		b.WriteString("from [")
		b.WriteString(stack)
		b.WriteString("]: ")
		b.WriteString(ts.StackSuffix)
	}
	b.WriteString(content)
	b.WriteByte('\n')
	return b.String()
}

// captureStack returns the call chain starting skip frames above its caller.
func captureStack(skip int) string {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(skip+2, pcs)
	return formatFrames(pcs[:n], " <- ")
}

// formatFrames renders program counters as "pkg.Func (file.go:line)".
// Runtime frames are skipped so a chain through a deferred recover keeps
// the callers above runtime.gopanic.
func formatFrames(pcs []uintptr, sep string) string {
	if len(pcs) == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pcs)
	var parts []string
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") {
			parts = append(parts, describeFrame(frame))
		}
		if !more {
			break
		}
	}
	return strings.Join(parts, sep)
}

func describeFrame(frame runtime.Frame) string {
	name := frame.Function
	if name == "" {
		name = "unknown"
	}
	// Strip package path, keep package.Function
	if i := strings.LastIndex(name, "/"); i >= 0 && i+1 < len(name) {
		name = name[i+1:]
	}
	file := frame.File
	if i := strings.LastIndexAny(file, `/\`); i >= 0 {
		file = file[i+1:]
	}
	return fmt.Sprintf("%s (%s:%d)", name, file, frame.Line)
}
