// SPDX-License-Identifier: MIT

// Package config loads the dyntree command configuration from defaults, an
// optional YAML file and DYNTREE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/malbarbo/fera-sub000/workload"
)

// Sentinel validation errors.
var (
	ErrInvalidEngine   = errors.New("config: unknown engine")
	ErrInvalidSize     = errors.New("config: vertex count must be positive")
	ErrInvalidSteps    = errors.New("config: steps must not be negative")
	ErrInvalidRatio    = errors.New("config: cut ratio must be within [0,1]")
	ErrInvalidInterval = errors.New("config: intervals must not be negative")
	ErrInvalidLevel    = errors.New("config: unknown log level")
	ErrInvalidFormat   = errors.New("config: unknown log format")
)

// Default configuration values.
const (
	DefaultEngine        = workload.EngineLinkCut
	DefaultN             = 64
	DefaultSteps         = 10_000
	DefaultSeed          = 1
	DefaultCutRatio      = workload.DefaultCutRatio
	DefaultSnapshotEvery = 500
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	EnvPrefix            = "DYNTREE"
)

// Config holds every knob of the dyntree command.
type Config struct {
	// Engine is the engine used by replay.
	Engine string `mapstructure:"engine"`
	// Engines are compared against the naive oracle by stress.
	Engines []string      `mapstructure:"engines"`
	Stress  StressConfig  `mapstructure:"stress"`
	Checks  bool          `mapstructure:"checks"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// StressConfig shapes the random workload generated by stress.
type StressConfig struct {
	N             int     `mapstructure:"n"`
	Steps         int     `mapstructure:"steps"`
	Seed          int64   `mapstructure:"seed"`
	CutRatio      float64 `mapstructure:"cut_ratio"`
	SnapshotEvery int     `mapstructure:"snapshot_every"`
	ClearEvery    int     `mapstructure:"clear_every"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig reads configPath when non-empty (any format viper knows,
// normally YAML), otherwise looks for dyntree.yaml in the working directory;
// a missing default file is not an error. Environment variables override
// file values, e.g. DYNTREE_STRESS_STEPS=100.
func LoadConfig(configPath string) (*Config, error) {
	v, err := NewViper(configPath)
	if err != nil {
		return nil, err
	}

	return Decode(v)
}

// NewViper returns a viper instance holding the defaults, the configuration
// file and the environment, ready for flag bindings. See LoadConfig.
func NewViper(configPath string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("dyntree")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read %q: %w", configPath, err)
		}
	}

	return v, nil
}

// Decode unmarshals and validates the configuration held by v. The dyntree
// command calls it after binding its flags.
func Decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("engine", DefaultEngine)
	v.SetDefault("engines", []string{
		workload.EngineLinkCut,
		workload.EngineEulerTour,
		workload.EngineEulerTourTreap,
	})
	v.SetDefault("checks", false)
	v.SetDefault("stress.n", DefaultN)
	v.SetDefault("stress.steps", DefaultSteps)
	v.SetDefault("stress.seed", DefaultSeed)
	v.SetDefault("stress.cut_ratio", DefaultCutRatio)
	v.SetDefault("stress.snapshot_every", DefaultSnapshotEvery)
	v.SetDefault("stress.clear_every", 0)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
}

// Validate checks engine names, workload sizes and logging settings.
func (c *Config) Validate() error {
	known := workload.Engines()
	for _, name := range append([]string{c.Engine}, c.Engines...) {
		if !slices.Contains(known, name) {
			return fmt.Errorf("%w: %q (have %v)", ErrInvalidEngine, name, known)
		}
	}
	switch {
	case c.Stress.N <= 0:
		return fmt.Errorf("%w: %d", ErrInvalidSize, c.Stress.N)
	case c.Stress.Steps < 0:
		return fmt.Errorf("%w: %d", ErrInvalidSteps, c.Stress.Steps)
	case c.Stress.CutRatio < 0 || c.Stress.CutRatio > 1:
		return fmt.Errorf("%w: %g", ErrInvalidRatio, c.Stress.CutRatio)
	case c.Stress.SnapshotEvery < 0 || c.Stress.ClearEvery < 0:
		return fmt.Errorf("%w: snapshot %d, clear %d", ErrInvalidInterval, c.Stress.SnapshotEvery, c.Stress.ClearEvery)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLevel, c.Logging.Level)
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Logging.Format)
	}

	return nil
}
