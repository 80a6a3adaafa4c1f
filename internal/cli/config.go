package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/vaccuum/vaclog/internal/config"
)

func newConfigCmd(f *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	cmd.AddCommand(newConfigInitCmd(f))
	cmd.AddCommand(newConfigShowCmd(f))
	cmd.AddCommand(newConfigPathCmd(f))
	return cmd
}

// configFilePath is --config when given, else the default location.
func configFilePath(f *rootFlags) string {
	if f.configPath != "" {
		return f.configPath
	}
	return config.ConfigFile()
}

func newConfigInitCmd(f *rootFlags) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with the current settings",
		Long: "Write a config file with the defaults, or with the settings from\n" +
			"--name, --scheme and the --no-* flags when given.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configFilePath(f)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("checking %s: %w", path, err)
			}

			cfg, err := resolveConfig(f)
			if err != nil {
				return err
			}
			if err := config.Save(cfg, path); err != nil {
				return err
			}
			newConfiguredLogger(cmd.ErrOrStderr(), f).Debug("config written", "path", path)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Wrote "+path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

func newConfigShowCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved settings as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(f)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "# %s\n", configFilePath(f))
			return toml.NewEncoder(w).Encode(cfg)
		},
	}
}

func newConfigPathCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), configFilePath(f))
			return nil
		},
	}
}
