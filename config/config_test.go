package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "bintree.yaml")
	content := `
tree:
  seed: 42
  count: 25
  max_value: 100
  allow_duplicates: true
check:
  workers: 2
output:
  format: yaml
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(uint64(42), cfg.Tree.Seed)
	assert.Equal(25, cfg.Tree.Count)
	assert.Equal(100, cfg.Tree.MaxValue)
	assert.True(cfg.Tree.AllowDuplicates)
	assert.Equal(2, cfg.Check.Workers)
	assert.Equal(defaultTrials, cfg.Check.Trials)
	assert.Equal(FormatYAML, cfg.Output.Format)
	assert.Equal("debug", cfg.Logging.Level)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BINTREE_TREE_COUNT", "7")
	t.Setenv("BINTREE_OUTPUT_FORMAT", "json")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Tree.Count)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bintree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("check:\n  workers: 0\n"), 0o600))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidWorkers)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"negative count", func(c *Config) { c.Tree.Count = -1 }, ErrInvalidCount},
		{"zero max value", func(c *Config) { c.Tree.MaxValue = 0 }, ErrInvalidMaxValue},
		{"negative trials", func(c *Config) { c.Check.Trials = -5 }, ErrInvalidTrials},
		{"zero workers", func(c *Config) { c.Check.Workers = 0 }, ErrInvalidWorkers},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }, ErrInvalidFormat},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, ErrInvalidLevel},
	}

	require.NoError(t, Default().Validate())
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.modify(cfg)
			assert.ErrorIs(t, cfg.Validate(), test.want)
		})
	}
}

func TestNewLogger(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	logger := LoggingConfig{Level: "warn"}.NewLogger(&buf, false)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(buf.String(), "hidden")
	assert.Contains(buf.String(), "shown")

	buf.Reset()
	logger = LoggingConfig{Level: "warn"}.NewLogger(&buf, true)
	logger.Debug("verbose")
	assert.Contains(buf.String(), "verbose")

	level, err := LoggingConfig{Level: "ERROR"}.SlogLevel()
	assert.NoError(err)
	assert.Equal(slog.LevelError, level)
}
