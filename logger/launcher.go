package logger

import (
	"os/exec"
	"runtime"
)

// Launcher asks the host to open a file with its default viewer.
type Launcher interface {
	Open(path string) error
}

// LauncherFunc adapts a function to the Launcher interface.
type LauncherFunc func(path string) error

// Open calls f(path).
func (f LauncherFunc) Open(path string) error { return f(path) }

// SystemLauncher opens files with the operating system's registered handler.
// It starts the handler and never waits for it.
type SystemLauncher struct{}

// Open starts the platform opener for path.
func (SystemLauncher) Open(path string) error {
	cmd := openCommand(runtime.GOOS, path)
	if cmd == nil {
		return NewError(ErrCodeLaunch, "no file opener for "+runtime.GOOS)
	}
	return cmd.Start()
}

func openCommand(goos, path string) *exec.Cmd {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return exec.Command("xdg-open", path)
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		return nil
	}
}
