package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arbor-ui/arbor/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "arbor.toml"

	// DefaultIndent is the indentation unit for pretty output.
	DefaultIndent = "  "

	// DefaultLogLevel is the logger level when none is configured.
	DefaultLogLevel = "info"
)

// Config is the arbor.toml configuration for the CLI.
type Config struct {
	// Output controls markup encoding.
	Output OutputConfig `toml:"output"`

	// Log controls the CLI logger.
	Log LogConfig `toml:"log"`

	// Debug enables engine contract checks (duplicate keys, double
	// unmount). Costs a map allocation per keyed list.
	Debug bool `toml:"debug"`

	// Metrics controls the Prometheus endpoint of long-running
	// commands.
	Metrics MetricsConfig `toml:"metrics"`

	// Bench controls the bench command workload.
	Bench BenchConfig `toml:"bench"`
}

// OutputConfig controls how trees are encoded to markup.
type OutputConfig struct {
	// Pretty inserts newlines and indentation between block elements.
	Pretty bool `toml:"pretty"`

	// Indent is the indentation unit when Pretty is set.
	Indent string `toml:"indent"`
}

// LogConfig controls the CLI logger.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	// Addr is the listen address for /metrics; empty disables it.
	Addr string `toml:"addr"`

	// Namespace overrides the metric namespace.
	Namespace string `toml:"namespace"`
}

// BenchConfig controls the bench command workload.
type BenchConfig struct {
	// Items is the keyed list size used by the benchmark tree.
	Items int `toml:"items"`

	// Iterations is the number of patch passes per run.
	Iterations int `toml:"iterations"`
}

// New returns a Config with defaults applied.
func New() *Config {
	return &Config{
		Output: OutputConfig{
			Indent: DefaultIndent,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		Metrics: MetricsConfig{
			Namespace: "arbor",
		},
		Bench: BenchConfig{
			Items:      1000,
			Iterations: 100,
		},
	}
}

// Load reads arbor.toml from dir. A missing file is not an error: the
// defaults apply.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the given path.
func LoadFile(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.New("A005").Wrap(err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("A005").
			WithDetail("failed to parse %s: %v", path, err).
			WithSuggestion("Check that " + ConfigFileName + " is valid TOML")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges. Defaults always validate.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("A005").
			WithDetail("log.level %q is not one of debug, info, warn, error", c.Log.Level)
	}
	if c.Bench.Items < 1 {
		return errors.New("A005").WithDetail("bench.items must be at least 1, got %d", c.Bench.Items)
	}
	if c.Bench.Iterations < 1 {
		return errors.New("A005").WithDetail("bench.iterations must be at least 1, got %d", c.Bench.Iterations)
	}
	return nil
}
