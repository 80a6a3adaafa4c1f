package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaccuum/vaclog/internal/config"
)

func runWithConfig(t *testing.T, cfgPath string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigInit_WritesLoadableFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "nested", "config.toml")

	out, err := runWithConfig(t, cfgPath, "config", "init", "--name", "pumps", "--scheme", "hex", "--no-stack")

	require.NoError(t, err)
	assert.Equal(t, "Wrote "+cfgPath+"\n", out)
	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	want := config.DefaultConfig()
	want.Identifier = "pumps"
	want.TagScheme = "hex"
	want.ShowStackTrace = false
	assert.Equal(t, want, cfg)
}

func TestConfigInit_RefusesOverwriteWithoutForce(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("identifier = \"kept\"\n"), 0o644))

	_, err := runWithConfig(t, cfgPath, "config", "init", "--name", "other")
	require.ErrorContains(t, err, "already exists")
	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "kept", cfg.Identifier)

	_, err = runWithConfig(t, cfgPath, "config", "init", "--force", "--name", "other")
	require.NoError(t, err)
	cfg, err = config.Load(cfgPath)
	require.NoError(t, err)
	assert.Equal(t, "other", cfg.Identifier)
}

func TestConfigInit_InvalidSchemeWritesNothing(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")

	_, err := runWithConfig(t, cfgPath, "config", "init", "--scheme", "emoji")

	require.Error(t, err)
	assert.NoFileExists(t, cfgPath)
}

func TestConfigShow_PrintsResolvedSettings(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("identifier = \"fromfile\"\ntag_scheme = \"symbol\"\n"), 0o644))

	out, err := runWithConfig(t, cfgPath, "config", "show", "--no-timestamp")

	require.NoError(t, err)
	assert.Contains(t, out, "# "+cfgPath+"\n")
	assert.Contains(t, out, `identifier = "fromfile"`)
	assert.Contains(t, out, `tag_scheme = "symbol"`)
	assert.Contains(t, out, "show_timestamp = false")
	assert.Contains(t, out, "show_stack_trace = true")
}

func TestConfigPath(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "custom.toml")
	out, err := runWithConfig(t, cfgPath, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, cfgPath+"\n", out)

	t.Setenv("VACLOG_CONFIG", cfgPath)
	out, err = runWithConfig(t, "", "config", "path")
	require.NoError(t, err)
	assert.Equal(t, cfgPath+"\n", out)
}
