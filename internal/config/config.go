// Package config loads the vaclog configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"

	"github.com/vaccuum/vaclog/logger"
)

const appName = "vaclog"

// ErrCodeConfig marks a config file that could not be read, parsed or written.
// Validation failures keep logger.ErrCodeValidation.
const ErrCodeConfig logger.ErrorCode = "CONFIG_ERROR"

// Config is the on-disk configuration.
type Config struct {
	Identifier         string `toml:"identifier" validate:"required"`
	Product            string `toml:"product"`
	TagScheme          string `toml:"tag_scheme" validate:"omitempty,oneof=plain symbol hex"`
	ShowTimestamp      bool   `toml:"show_timestamp"`
	ShowStackTrace     bool   `toml:"show_stack_trace"`
	OpenLogsOnCritical bool   `toml:"open_logs_on_critical"`
	BOM                bool   `toml:"bom"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Identifier:         "vaccuum",
		Product:            logger.DefaultProduct,
		TagScheme:          "plain",
		ShowTimestamp:      true,
		ShowStackTrace:     true,
		OpenLogsOnCritical: true,
	}
}

var validate = validator.New()

// ConfigFile returns the default config path. VACLOG_CONFIG overrides the
// XDG location.
func ConfigFile() string {
	if v := os.Getenv("VACLOG_CONFIG"); v != "" {
		return v
	}
	return filepath.Join(xdg.ConfigHome, appName, "config.toml")
}

// Load reads path over the defaults. An empty path means ConfigFile().
// A missing file is not an error.
func Load(path string) (Config, error) {
	if path == "" {
		path = ConfigFile()
	}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, logger.WrapError(ErrCodeConfig, "failed to read "+path, err)
	}

	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return DefaultConfig(), logger.WrapError(ErrCodeConfig, "failed to parse "+path, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return logger.WrapError(logger.ErrCodeValidation, "invalid configuration", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Field(), fe.Tag()))
	}
	return logger.NewError(logger.ErrCodeValidation, "invalid configuration: "+strings.Join(msgs, ", "))
}

// Options converts the file settings to logger options.
func (c Config) Options() logger.Options {
	tags, _ := logger.ParseTagScheme(c.TagScheme)
	return logger.Options{
		Product: c.Product,
		Tags:    tags,
		BOM:     c.BOM,
	}
}

// Save writes cfg to path as TOML, creating the directory if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		path = ConfigFile()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return logger.WrapError(ErrCodeConfig, "failed to create config directory", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return logger.WrapError(ErrCodeConfig, "failed to create "+path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return logger.WrapError(ErrCodeConfig, "failed to write "+path, err)
	}
	return nil
}
