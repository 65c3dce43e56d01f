package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete basiccalc configuration
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
	Batch  BatchConfig  `mapstructure:"batch"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig controls how results are rendered on stdout
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// BatchConfig contains job file evaluation settings
type BatchConfig struct {
	Workers int `mapstructure:"workers"`
}

// EnvKeyReplacer maps nested keys such as batch.workers to BASICCALC_BATCH_WORKERS.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// MaxWorkers bounds batch.workers.
const MaxWorkers = 256

var (
	validLogLevels    = []string{"debug", "info", "warn", "error"}
	validLogFormats   = []string{"json", "console"}
	validOutputFormat = []string{"text", "json", "yaml"}
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Output: OutputConfig{
			Format: "text",
		},
		Batch: BatchConfig{
			Workers: 4,
		},
	}
}

// Validate checks if the configuration is valid. Names are matched case-insensitively.
func (c *Config) Validate() error {
	if !slices.Contains(validLogLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of: debug, info, warn, error")
	}

	if !slices.Contains(validLogFormats, strings.ToLower(c.Log.Format)) {
		return fmt.Errorf("log.format must be 'json' or 'console'")
	}

	if !slices.Contains(validOutputFormat, strings.ToLower(c.Output.Format)) {
		return fmt.Errorf("output.format must be one of: text, json, yaml")
	}

	if c.Batch.Workers < 1 || c.Batch.Workers > MaxWorkers {
		return fmt.Errorf("batch.workers must be between 1 and %d", MaxWorkers)
	}

	return nil
}

// SetDefaults registers DefaultConfig values with v so they apply during unmarshal.
func SetDefaults(v *viper.Viper) {
	defaults := DefaultConfig()

	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("output.format", defaults.Output.Format)
	v.SetDefault("batch.workers", defaults.Batch.Workers)
}

// Load reads configuration from v's config file (if any), environment and bound flags.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// ConfigFileNotFoundError covers search paths, os.ErrNotExist covers SetConfigFile
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	cfg.normalize()

	return cfg, nil
}

// normalize lower-cases the enumerated settings so flags like --log-level INFO match.
func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Log.Format = strings.ToLower(c.Log.Format)
	c.Output.Format = strings.ToLower(c.Output.Format)
}
