// Package config loads settings for the bintree driver.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidCount    = errors.New("tree.count must not be negative")
	ErrInvalidMaxValue = errors.New("tree.max_value must be positive")
	ErrInvalidTrials   = errors.New("check.trials must not be negative")
	ErrInvalidWorkers  = errors.New("check.workers must be positive")
	ErrInvalidFormat   = errors.New("unknown output format")
	ErrInvalidLevel    = errors.New("unknown log level")
)

// Output formats understood by the driver.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Default configuration values.
const (
	defaultCount    = 10
	defaultMaxValue = 10
	defaultTrials   = 1000
	defaultWorkers  = 4
	defaultFormat   = FormatText
	defaultLevel    = "info"
)

// EnvPrefix is prepended to environment overrides, e.g. BINTREE_TREE_COUNT.
const EnvPrefix = "BINTREE"

// Config holds all driver configuration.
type Config struct {
	Tree    TreeConfig    `mapstructure:"tree"`
	Check   CheckConfig   `mapstructure:"check"`
	Output  OutputConfig  `mapstructure:"output"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TreeConfig controls how the demo tree is seeded. A zero Seed means "pick
// one from the clock".
type TreeConfig struct {
	Seed            uint64 `mapstructure:"seed"`
	Count           int    `mapstructure:"count"`
	MaxValue        int    `mapstructure:"max_value"`
	AllowDuplicates bool   `mapstructure:"allow_duplicates"`
}

type CheckConfig struct {
	Trials  int `mapstructure:"trials"`
	Workers int `mapstructure:"workers"`
}

type OutputConfig struct {
	Format  string `mapstructure:"format"`
	NoColor bool   `mapstructure:"no_color"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from configPath, or from bintree.yaml in the
// working directory when configPath is empty, then applies environment
// overrides. A missing default file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("bintree")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := v.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration Load produces with no file and no
// environment overrides.
func Default() *Config {
	return &Config{
		Tree:    TreeConfig{Count: defaultCount, MaxValue: defaultMaxValue},
		Check:   CheckConfig{Trials: defaultTrials, Workers: defaultWorkers},
		Output:  OutputConfig{Format: defaultFormat},
		Logging: LoggingConfig{Level: defaultLevel},
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tree.seed", 0)
	v.SetDefault("tree.count", defaultCount)
	v.SetDefault("tree.max_value", defaultMaxValue)
	v.SetDefault("tree.allow_duplicates", false)

	v.SetDefault("check.trials", defaultTrials)
	v.SetDefault("check.workers", defaultWorkers)

	v.SetDefault("output.format", defaultFormat)
	v.SetDefault("output.no_color", false)

	v.SetDefault("logging.level", defaultLevel)
}

// Validate checks cfg for values the driver cannot run with.
func (cfg *Config) Validate() error {
	if cfg.Tree.Count < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, cfg.Tree.Count)
	}

	if cfg.Tree.MaxValue <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxValue, cfg.Tree.MaxValue)
	}

	if cfg.Check.Trials < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTrials, cfg.Check.Trials)
	}

	if cfg.Check.Workers <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, cfg.Check.Workers)
	}

	switch cfg.Output.Format {
	case FormatText, FormatYAML, FormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, cfg.Output.Format)
	}

	if _, err := cfg.Logging.SlogLevel(); err != nil {
		return err
	}

	return nil
}
