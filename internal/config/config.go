package config

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/soda-dev/soda/internal/errors"
)

const (
	// ConfigName is the base name of the configuration file. Any extension
	// viper understands is accepted (soda.yaml, soda.yml, soda.json, ...).
	ConfigName = "soda"

	// EnvPrefix prefixes environment overrides, e.g. SODA_BENCH_ITEMS.
	EnvPrefix = "SODA"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// DefaultBenchItems is the default number of circles in the benchmark.
	DefaultBenchItems = 100

	// DefaultBenchFrames is the default number of benchmark frames.
	DefaultBenchFrames = 60

	// DefaultDemoClicks is the default number of simulated demo clicks.
	DefaultDemoClicks = 3
)

// Config is the CLI configuration.
type Config struct {
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `mapstructure:"log_level"`

	// Debug enables renderer debug logging.
	Debug bool `mapstructure:"debug"`

	// Metrics enables the Prometheus registry dump after a run.
	Metrics bool `mapstructure:"metrics"`

	// Bench contains benchmark settings.
	Bench BenchConfig `mapstructure:"bench"`

	// Demo contains demo settings.
	Demo DemoConfig `mapstructure:"demo"`

	// configPath stores the path the config was loaded from, if any.
	configPath string
}

// BenchConfig contains benchmark settings.
type BenchConfig struct {
	// Items is the number of animated circles.
	Items int `mapstructure:"items"`

	// Frames is the number of frames to render.
	Frames int `mapstructure:"frames"`
}

// DemoConfig contains demo settings.
type DemoConfig struct {
	// Clicks is the number of simulated clicks.
	Clicks int `mapstructure:"clicks"`
}

// New returns a Config with default values.
func New() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		Bench: BenchConfig{
			Items:  DefaultBenchItems,
			Frames: DefaultBenchFrames,
		},
		Demo: DemoConfig{
			Clicks: DefaultDemoClicks,
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()

	def := New()
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("debug", def.Debug)
	v.SetDefault("metrics", def.Metrics)
	v.SetDefault("bench.items", def.Bench.Items)
	v.SetDefault("bench.frames", def.Bench.Frames)
	v.SetDefault("demo.clicks", def.Demo.Clicks)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads soda.* from dir. A missing file is not an error; defaults and
// environment overrides apply.
func Load(dir string) (*Config, error) {
	v := newViper()
	v.SetConfigName(ConfigName)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.New("E100").
				WithDetail("Failed to read config in " + dir + ": " + err.Error()).
				Wrap(err)
		}
	}
	return decode(v)
}

// LoadFile reads the configuration from path, which must exist.
func LoadFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.New("E100").
			WithDetail("Failed to read " + filepath.Base(path) + ": " + err.Error()).
			Wrap(err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := New()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.New("E100").
			WithDetail("Failed to decode configuration: " + err.Error()).
			Wrap(err)
	}
	cfg.configPath = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if _, err := parseLevel(c.LogLevel); err != nil {
		return errors.New("E101").
			WithDetail("log_level " + quote(c.LogLevel) + " is not one of debug, info, warn, error").
			Wrap(err)
	}
	if c.Bench.Items <= 0 {
		return errors.New("E101").WithDetail("bench.items must be positive")
	}
	if c.Bench.Frames <= 0 {
		return errors.New("E101").WithDetail("bench.frames must be positive")
	}
	if c.Demo.Clicks < 0 {
		return errors.New("E101").WithDetail("demo.clicks must not be negative")
	}
	return nil
}

// Path returns the file the config was loaded from, or "" if none was found.
func (c *Config) Path() string {
	return c.configPath
}

// Level returns the slog level for LogLevel, falling back to info.
func (c *Config) Level() slog.Level {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(s))
	return level, err
}

func quote(s string) string {
	return `"` + s + `"`
}
