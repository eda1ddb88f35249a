package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/g-m-twostay/go-trees/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "treectl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, config.DefaultBuildShuffle, cfg.Build.Shuffle)
	assert.Equal(t, config.DefaultBuildSeed, cfg.Build.Seed)
	assert.Equal(t, config.DefaultOutputStyle, cfg.Output.Style)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeConfig(t, `
log:
  level: debug
build:
  shuffle: true
  seed: 42
output:
  style: rounded
`)

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Build.Shuffle)
	assert.Equal(t, int64(42), cfg.Build.Seed)
	assert.Equal(t, "rounded", cfg.Output.Style)

	lvl, err := cfg.Log.ZapLevel()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, lvl)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "build:\n  seed: 42\n")
	t.Setenv("TREECTL_BUILD_SEED", "7")
	t.Setenv("TREECTL_OUTPUT_STYLE", "double")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Build.Seed)
	assert.Equal(t, "double", cfg.Output.Style)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := config.LoadConfig(writeConfig(t, "output:\n  style: fancy\n"))
	require.ErrorIs(t, err, config.ErrInvalidOutputStyle)

	_, err = config.LoadConfig(writeConfig(t, "log:\n  level: loud\n"))
	require.ErrorIs(t, err, config.ErrInvalidLogLevel)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := config.Config{
		Log:    config.LogConfig{Level: "info"},
		Output: config.OutputConfig{Style: "bold"},
	}
	require.NoError(t, cfg.Validate())

	cfg.Output.Style = ""
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidOutputStyle)
}
