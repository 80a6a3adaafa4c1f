package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vaccuum/vaclog/logger"
)

func newDemoCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Write one message at every level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := openLogger(cmd, f)
			if err != nil {
				return err
			}
			defer l.Close()

			l.Log("log system online")
			l.Infof("logging to %s", l.Path())
			l.Success("sensors calibrated")
			l.Warn("filter at 85% capacity")
			l.Error("pump 2 did not respond, retrying")
			l.Critical("pump 2 offline")
			l.Exception(logger.WithStack(errors.New("pressure sensor read failed")), !f.noOpen)

			printSummary(cmd.ErrOrStderr(), f, l.Path())
			return nil
		},
	}
}

func newWriteCmd(f *rootFlags) *cobra.Command {
	var openLog bool
	cmd := &cobra.Command{
		Use:   "write <level> <message...>",
		Short: "Start a log and write one message to it",
		Long: "Start a log and write one message to it.\n\n" +
			"Levels: log, info, success, warning, error, critical, exception.\n" +
			"Binding truncates the log file, so each invocation starts a new log.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, ok := logger.ParseLevel(args[0])
			if !ok {
				return fmt.Errorf("unknown level %q", args[0])
			}
			msg := strings.Join(args[1:], " ")

			l, err := openLogger(cmd, f)
			if err != nil {
				return err
			}
			defer l.Close()

			switch level {
			case logger.LogLevel:
				l.Log(msg)
			case logger.InfoLevel:
				l.Info(msg)
			case logger.SuccessLevel:
				l.Success(msg)
			case logger.WarnLevel:
				l.Warn(msg)
			case logger.ErrorLevel:
				l.Error(msg)
			case logger.CriticalLevel:
				l.Critical(msg)
			case logger.ExceptionLevel:
				l.Exception(errors.New(msg), openLog && !f.noOpen)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&openLog, "open-log", true, "Open the log file after an exception")
	return cmd
}

func newOpenCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Open the log file with the system viewer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(f)
			if err != nil {
				return err
			}
			path := cfg.Identifier + logger.FileExt
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("no log file at %s: %w", path, err)
			}
			if err := launcher.Open(path); err != nil {
				newConfiguredLogger(cmd.ErrOrStderr(), f).Warn("could not open log file", "path", path, "err", err)
			}
			return nil
		},
	}
}
