package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/valyala/fasttemplate"
)

// DefaultProduct is the first banner line when Options.Product is empty.
const DefaultProduct = "Vac'cuum log system"

// FileExt is appended to the identifier to form the log file path.
const FileExt = ".log"

const (
	bannerTemplate = "{{product}}\nStarted: {{started}}\n{{rule}}\n"
	bannerLayout   = "2006-01-02 15:04:05"
	bannerRuleLen  = 45
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var validate = validator.New()

// Options configure a Logger at creation. The zero value is usable.
type Options struct {
	// Product is the first banner line.
	// Default: DefaultProduct
	Product string
	// Tags selects the level tag text.
	// Default: PlainTags
	Tags TagScheme
	// Output is the console stream, used when Console is nil.
	// Default: os.Stdout
	Output io.Writer
	// NoColor disables ANSI colors on the console built from Output.
	NoColor bool
	// Console overrides the console built from Output.
	Console Console
	// Launcher opens the log file after critical events.
	// Default: SystemLauncher
	Launcher Launcher
	// Diagnostics receives the logger's own warnings, such as writes while unbound.
	// Default: a charmbracelet logger writing to the console at WarnLevel.
	Diagnostics *log.Logger
	// BOM writes a UTF-8 byte order mark before the banner.
	BOM bool
	// Now is the clock used for timestamps.
	// Default: time.Now
	Now func() time.Time
}

// Logger writes every message to a log file and to a colored console.
// All methods are safe for concurrent use; each call runs to completion
// under a single lock covering the file, the settings and the console colors.
type Logger struct {
	mu sync.Mutex

	identifier string
	sink       *os.File
	settings   Settings

	product  string
	tags     TagScheme
	bom      bool
	console  Console
	launcher Launcher
	diag     *log.Logger
	now      func() time.Time

	// console colors captured at creation, restored after every write
	defaultFg Color
	defaultBg Color
}

// New creates an unbound Logger. Dispatch calls before Bind reach only the console.
func New(opts Options) *Logger {
	l := &Logger{
		settings: DefaultSettings(),
		product:  opts.Product,
		tags:     opts.Tags,
		bom:      opts.BOM,
		console:  opts.Console,
		launcher: opts.Launcher,
		diag:     opts.Diagnostics,
		now:      opts.Now,
	}
	if l.product == "" {
		l.product = DefaultProduct
	}
	if l.tags.Tags == nil {
		l.tags = PlainTags
	}
	if l.console == nil {
		out := opts.Output
		if out == nil {
			out = os.Stdout
		}
		l.console = NewConsole(out, ConsoleProfile(out, opts.NoColor))
	}
	if l.launcher == nil {
		l.launcher = SystemLauncher{}
	}
	if l.diag == nil {
		l.diag = log.NewWithOptions(l.console, log.Options{
			Prefix: "vaclog",
			Level:  log.WarnLevel,
		})
	}
	if l.now == nil {
		l.now = time.Now
	}
	l.defaultFg = l.console.Foreground()
	l.defaultBg = l.console.Background()
	return l
}

// Open creates a Logger and binds it to identifier.
func Open(identifier string, opts Options) (*Logger, error) {
	l := New(opts)
	if err := l.Bind(identifier); err != nil {
		return nil, err
	}
	return l, nil
}

// Bind closes the current log file, if any, and starts a new one at
// <identifier>.log, truncating existing content and writing the banner.
// On failure the Logger is left unbound.
func (l *Logger) Bind(identifier string) error {
	// A NUL byte can never reach the file system; reject it before the
	// current sink is touched.
	if err := validate.Var(identifier, "required,excludesall=\x00"); err != nil {
		return WrapError(ErrCodeValidation, "invalid log identifier", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	_ = l.closeSink()
	l.identifier = identifier

	path := identifier + FileExt
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return WrapError(ErrCodeSink, "failed to open log file "+path, err)
	}

	var head []byte
	if l.bom {
		head = append(head, utf8BOM...)
	}
	head = append(head, l.banner()...)
	if _, err := f.Write(head); err != nil {
		_ = f.Close()
		return WrapError(ErrCodeSink, "failed to write banner to "+path, err)
	}

	l.sink = f
	return nil
}

func (l *Logger) banner() string {
	return fasttemplate.ExecuteString(bannerTemplate, "{{", "}}", map[string]interface{}{
		"product": l.product,
		"started": l.now().Format(bannerLayout),
		"rule":    strings.Repeat("=", bannerRuleLen),
	})
}

// Close closes the log file if one is open. Calling Close on an unbound
// Logger is a no-op.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.closeSink()
}

func (l *Logger) closeSink() error {
	if l.sink == nil {
		return nil
	}
	err := l.sink.Close()
	l.sink = nil
	return err
}

// Configure replaces all three settings. Lines already written are unaffected.
func (l *Logger) Configure(showTimestamp, showStackTrace, openLogsOnCritical bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.settings = Settings{
		IncludeTimestamp:   showTimestamp,
		IncludeStackTrace:  showStackTrace,
		AutoOpenOnCritical: openLogsOnCritical,
	}
}

// Settings returns a copy of the current settings.
func (l *Logger) Settings() Settings {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.settings
}

// Identifier returns the bound identifier, or the last one bound after Close.
func (l *Logger) Identifier() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.identifier
}

// Path returns the log file path for the current identifier.
func (l *Logger) Path() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.path()
}

func (l *Logger) path() string {
	return l.identifier + FileExt
}

// Bound reports whether a log file is open.
func (l *Logger) Bound() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.sink != nil
}

// writeLine appends data to the log file. Without a file, or when the write
// fails, it warns on the console and drops the data.
func (l *Logger) writeLine(data []byte) {
	if l.sink == nil {
		l.diag.Warn("logger not initialized, message dropped from log file")
		return
	}
	if _, err := l.sink.Write(data); err != nil {
		l.diag.Warn("failed to write log file", "path", l.path(), "err", err)
	}
}

// levelColors binds each level to its console colors. Inverted levels also
// set the background.
var levelColors = map[Level]struct {
	fg, bg   Color
	inverted bool
}{
	LogLevel:       {fg: White},
	InfoLevel:      {fg: Cyan},
	SuccessLevel:   {fg: Green},
	WarnLevel:      {fg: Yellow},
	ErrorLevel:     {fg: Red},
	CriticalLevel:  {fg: Red, bg: White, inverted: true},
	ExceptionLevel: {fg: Red, bg: White, inverted: true},
}

func (l *Logger) writeConsole(level Level, msg string) {
	c := levelColors[level]
	l.console.SetForeground(c.fg)
	if c.inverted {
		l.console.SetBackground(c.bg)
	}
	_, _ = l.console.Write([]byte(msg))
	if c.inverted {
		l.console.SetBackground(l.defaultBg)
	}
	l.console.SetForeground(l.defaultFg)
}

// dispatch formats and writes one message to both outputs. It must be called
// directly from an exported entry point so the captured stack starts at the
// entry point's caller.
func (l *Logger) dispatch(level Level, content string, openLog bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var stack string
	if l.settings.IncludeStackTrace {
		stack = captureStack(2)
	}
	msg := l.tags.Format(level, content, l.settings, l.now(), stack)
	l.writeLine([]byte(msg))
	l.writeConsole(level, msg)

	if openLog || (level == CriticalLevel && l.settings.AutoOpenOnCritical) {
		l.openLog()
	}
}

// --- Level entry points ---

// Log writes a plain message.
func (l *Logger) Log(content string) {
	l.dispatch(LogLevel, content, false)
}

// Info writes an informational message.
func (l *Logger) Info(content string) {
	l.dispatch(InfoLevel, content, false)
}

// Success writes a success message.
func (l *Logger) Success(content string) {
	l.dispatch(SuccessLevel, content, false)
}

// Warn writes a warning.
func (l *Logger) Warn(content string) {
	l.dispatch(WarnLevel, content, false)
}

// Error writes an error message.
func (l *Logger) Error(content string) {
	l.dispatch(ErrorLevel, content, false)
}

// Critical writes a critical message and opens the log file when the
// AutoOpenOnCritical setting is on.
func (l *Logger) Critical(content string) {
	l.dispatch(CriticalLevel, content, false)
}

// Exception writes err's message followed by the stack recorded with
// WithStack, if any. The log file is opened when openLog is true, whatever
// the AutoOpenOnCritical setting.
func (l *Logger) Exception(err error, openLog bool) {
	l.dispatch(ExceptionLevel, exceptionContent(err), openLog)
}

func exceptionContent(err error) string {
	if err == nil {
		return "<nil>\nStackTrace:\n"
	}
	return err.Error() + "\nStackTrace:\n" + StackTrace(err)
}

// --- Formatted entry points (fmt.Sprintf style) ---

// Logf writes a plain message formatted with fmt.Sprintf.
func (l *Logger) Logf(format string, v ...any) {
	l.dispatch(LogLevel, fmt.Sprintf(format, v...), false)
}

// Infof writes an informational message formatted with fmt.Sprintf.
func (l *Logger) Infof(format string, v ...any) {
	l.dispatch(InfoLevel, fmt.Sprintf(format, v...), false)
}

// Successf writes a success message formatted with fmt.Sprintf.
func (l *Logger) Successf(format string, v ...any) {
	l.dispatch(SuccessLevel, fmt.Sprintf(format, v...), false)
}

// Warnf writes a warning formatted with fmt.Sprintf.
func (l *Logger) Warnf(format string, v ...any) {
	l.dispatch(WarnLevel, fmt.Sprintf(format, v...), false)
}

// Errorf writes an error message formatted with fmt.Sprintf.
func (l *Logger) Errorf(format string, v ...any) {
	l.dispatch(ErrorLevel, fmt.Sprintf(format, v...), false)
}

// Criticalf writes a critical message formatted with fmt.Sprintf.
func (l *Logger) Criticalf(format string, v ...any) {
	l.dispatch(CriticalLevel, fmt.Sprintf(format, v...), false)
}

// OpenLog asks the host to open the log file with its default viewer.
// Failures are reported only as debug diagnostics.
func (l *Logger) OpenLog() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.openLog()
}

func (l *Logger) openLog() {
	if err := l.launcher.Open(l.path()); err != nil {
		l.diag.Debug("failed to open log file", "path", l.path(), "err", err)
	}
}
