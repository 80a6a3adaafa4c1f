package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// newConfiguredLogger creates the diagnostics logger configured by CLI flags.
// It writes to w so it doesn't interfere with the console log on stdout.
func newConfiguredLogger(w io.Writer, f *rootFlags) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		Prefix: "vaclog",
		Level:  log.WarnLevel,
	})
	if f.verbose {
		l.SetLevel(log.DebugLevel)
	}
	if f.noColor {
		l.SetColorProfile(termenv.Ascii)
	}
	return l
}
