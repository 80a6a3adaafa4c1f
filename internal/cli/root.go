// Package cli implements the vaclog command line.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/vaccuum/vaclog/internal/config"
	"github.com/vaccuum/vaclog/logger"
)

// version is injected at build time via -ldflags.
var version = "dev"

// launcher opens log files; replaced in tests.
var launcher logger.Launcher = logger.SystemLauncher{}

type rootFlags struct {
	configPath  string
	name        string
	scheme      string
	noTimestamp bool
	noStack     bool
	noOpen      bool
	noColor     bool
	verbose     bool
}

// NewRootCmd builds the vaclog command tree.
func NewRootCmd() *cobra.Command {
	f := &rootFlags{}
	cmd := &cobra.Command{
		Use:          "vaclog",
		Short:        "Write leveled messages to a log file and a colored console",
		Version:      version,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/vaclog/config.toml)")
	pf.StringVarP(&f.name, "name", "n", "", "Log identifier; the file is <name>.log")
	pf.StringVar(&f.scheme, "scheme", "", "Level tag scheme: plain, symbol or hex")
	pf.BoolVar(&f.noTimestamp, "no-timestamp", false, "Omit timestamps from log lines")
	pf.BoolVar(&f.noStack, "no-stack", false, "Omit call stacks from log lines")
	pf.BoolVar(&f.noOpen, "no-open", false, "Never open the log file after critical events")
	pf.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "Show diagnostics")

	cmd.AddCommand(newDemoCmd(f))
	cmd.AddCommand(newWriteCmd(f))
	cmd.AddCommand(newOpenCmd(f))
	cmd.AddCommand(newConfigCmd(f))
	return cmd
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// resolveConfig loads the config file and applies flag overrides.
func resolveConfig(f *rootFlags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}
	if f.name != "" {
		cfg.Identifier = f.name
	}
	if f.scheme != "" {
		cfg.TagScheme = f.scheme
	}
	if f.noTimestamp {
		cfg.ShowTimestamp = false
	}
	if f.noStack {
		cfg.ShowStackTrace = false
	}
	if f.noOpen {
		cfg.OpenLogsOnCritical = false
	}
	return cfg, cfg.Validate()
}

// openLogger binds a logger as described by the config and flags. The
// console log goes to the command's stdout.
func openLogger(cmd *cobra.Command, f *rootFlags) (*logger.Logger, error) {
	cfg, err := resolveConfig(f)
	if err != nil {
		return nil, err
	}
	diag := newConfiguredLogger(cmd.ErrOrStderr(), f)
	diag.Debug("configuration resolved", "identifier", cfg.Identifier, "scheme", cfg.TagScheme)

	opts := cfg.Options()
	opts.Output = cmd.OutOrStdout()
	opts.NoColor = f.noColor
	opts.Launcher = launcher
	opts.Diagnostics = diag

	l, err := logger.Open(cfg.Identifier, opts)
	if err != nil {
		return nil, err
	}
	l.Configure(cfg.ShowTimestamp, cfg.ShowStackTrace, cfg.OpenLogsOnCritical)
	return l, nil
}

// printSummary reports where the log was written.
func printSummary(w io.Writer, f *rootFlags, path string) {
	r := lipgloss.NewRenderer(w)
	if f.noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	dim := r.NewStyle().Foreground(lipgloss.Color("240"))
	bold := r.NewStyle().Bold(true)
	_, _ = fmt.Fprintln(w, dim.Render("log written to")+" "+bold.Render(path))
}
