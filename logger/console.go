package logger

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Color is a console color.
type Color int

const (
	// DefaultColor leaves the terminal's own color in place.
	DefaultColor Color = iota
	Black
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

var colorNames = map[Color]string{
	DefaultColor: "default",
	Black:        "black",
	Red:          "red",
	Green:        "green",
	Yellow:       "yellow",
	Blue:         "blue",
	Magenta:      "magenta",
	Cyan:         "cyan",
	White:        "white",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return "unknown"
}

// ansi returns the ANSI palette index understood by termenv, or "" for DefaultColor.
func (c Color) ansi() string {
	switch c {
	case Black:
		return "0"
	case Red:
		return "1"
	case Green:
		return "2"
	case Yellow:
		return "3"
	case Blue:
		return "4"
	case Magenta:
		return "5"
	case Cyan:
		return "6"
	case White:
		return "7"
	default:
		return ""
	}
}

// Console is the colored output stream a Logger writes to.
// Colors set on a Console apply to every following Write until changed.
type Console interface {
	Foreground() Color
	Background() Color
	SetForeground(Color)
	SetBackground(Color)
	Write(p []byte) (int, error)
}

// termConsole renders writes with termenv using the current color state.
type termConsole struct {
	out *termenv.Output
	fg  Color
	bg  Color
}

// NewConsole returns a Console writing to w with the given color profile.
// The Ascii profile writes plain text.
func NewConsole(w io.Writer, profile termenv.Profile) Console {
	return &termConsole{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

// ConsoleProfile picks the color profile for w. Colors are disabled when
// noColor is set or w is not a terminal.
func ConsoleProfile(w io.Writer, noColor bool) termenv.Profile {
	if noColor {
		return termenv.Ascii
	}
	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.NewOutput(f).EnvColorProfile()
}

func (c *termConsole) Foreground() Color     { return c.fg }
func (c *termConsole) Background() Color     { return c.bg }
func (c *termConsole) SetForeground(v Color) { c.fg = v }
func (c *termConsole) SetBackground(v Color) { c.bg = v }

func (c *termConsole) Write(p []byte) (int, error) {
	style := c.out.String(string(p))
	if code := c.fg.ansi(); code != "" {
		style = style.Foreground(c.out.Color(code))
	}
	if code := c.bg.ansi(); code != "" {
		style = style.Background(c.out.Color(code))
	}
	if _, err := io.WriteString(c.out, style.String()); err != nil {
		return 0, err
	}
	return len(p), nil
}
