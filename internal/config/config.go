// Package config loads lq settings from defaults, an optional config file,
// LQ_-prefixed environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var ErrInvalidConfig = errors.New("invalid config")

const EnvPrefix = "LQ"

type Log struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json, console
}

type Input struct {
	Format string `mapstructure:"format"` // json, yaml
}

type Output struct {
	Indent bool `mapstructure:"indent"`
}

type Sort struct {
	Natural bool `mapstructure:"natural"`
}

type Config struct {
	Log    Log    `mapstructure:"log"`
	Input  Input  `mapstructure:"input"`
	Output Output `mapstructure:"output"`
	Sort   Sort   `mapstructure:"sort"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"log-level":    "log.level",
	"log-format":   "log.format",
	"input-format": "input.format",
	"indent":       "output.indent",
	"natural":      "sort.natural",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "console")
	v.SetDefault("input.format", "json")
	v.SetDefault("output.indent", false)
	v.SetDefault("sort.natural", false)
}

// Load builds the configuration. path may be empty; flags may be nil. Only
// flags that were set explicitly override file and environment values.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.Input.Format = strings.ToLower(c.Input.Format)
	c.Log.Format = strings.ToLower(c.Log.Format)

	if !slices.Contains([]string{"json", "yaml"}, c.Input.Format) {
		return fmt.Errorf("%w: input.format %q, want json or yaml", ErrInvalidConfig, c.Input.Format)
	}
	if !slices.Contains([]string{"json", "console"}, c.Log.Format) {
		return fmt.Errorf("%w: log.format %q, want json or console", ErrInvalidConfig, c.Log.Format)
	}
	return nil
}
