package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Philipp01105/memsink/buffer"
	"github.com/Philipp01105/memsink/core"
	"github.com/Philipp01105/memsink/layout"
)

// Config holds the runtime settings of a memory sink.
type Config struct {
	// Capacity is the maximum number of retained events.
	Capacity int `mapstructure:"capacity"`
	// Pattern is the layout template for rendered events.
	Pattern string `mapstructure:"pattern"`
	// Output selects the flush target: "stdout" or "stderr".
	Output string `mapstructure:"output"`
	// Level is the minimum severity adapters forward to the sink.
	Level string `mapstructure:"level"`
}

// Loader handles configuration loading and validation
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader. Settings can come from
// a YAML file and are overridable via MEMSINK_* environment variables.
func NewLoader() *Loader {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("MEMSINK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Loader{v: v}
}

// Load loads configuration from the given file (optional) and the
// environment, then validates it.
func (l *Loader) Load(path string) (*Config, error) {
	l.setDefaults()

	if path != "" {
		l.v.SetConfigFile(path)
		if err := l.v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := l.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// setDefaults sets default configuration values
func (l *Loader) setDefaults() {
	l.v.SetDefault("capacity", buffer.DefaultCapacity)
	l.v.SetDefault("pattern", layout.DefaultPattern)
	l.v.SetDefault("output", "stdout")
	l.v.SetDefault("level", "info")
}

// Validate checks the configuration for invalid values.
func (l *Loader) Validate(cfg *Config) error {
	if cfg.Capacity <= 0 {
		return fmt.Errorf("capacity %d: %w", cfg.Capacity, buffer.ErrInvalidCapacity)
	}
	if strings.TrimSpace(cfg.Pattern) == "" {
		return layout.ErrEmptyPattern
	}
	switch strings.ToLower(cfg.Output) {
	case "stdout", "stderr":
	default:
		return fmt.Errorf("output must be stdout or stderr, got %q", cfg.Output)
	}
	return nil
}

// MinLevel returns the configured minimum severity for adapters.
func (c *Config) MinLevel() core.Level {
	return core.ParseLevel(c.Level)
}
