// Package config provides Viper-based configuration loading for the layout
// compiler.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
}

// CompilerConfig holds defaults for the compile pipeline.
type CompilerConfig struct {
	// OutputDir is prepended to relative output paths; empty means the
	// current directory.
	OutputDir string `mapstructure:"output_dir"`
	// Manifest, when true, always writes a build manifest next to the
	// output file even without an explicit --manifest flag.
	Manifest bool `mapstructure:"manifest"`
}

// WatchConfig holds watch-mode settings.
type WatchConfig struct {
	// DebounceMs coalesces bursts of filesystem events within this window.
	DebounceMs int `mapstructure:"debounce_ms"`
}

// Config is the top-level tool configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Compiler CompilerConfig `mapstructure:"compiler"`
	Watch    WatchConfig    `mapstructure:"watch"`
}

// Validate checks all configuration invariants.
//
// Postcondition: Returns nil if configuration is valid, or an error
// describing all violations.
func (c Config) Validate() error {
	var errs []string

	if err := validateLogging(c.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if c.Watch.DebounceMs < 0 {
		errs = append(errs, fmt.Sprintf("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMs))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("compiler.output_dir", "")
	v.SetDefault("compiler.manifest", false)
	v.SetDefault("watch.debounce_ms", 100)
}

// Load reads configuration from the given file path, applies WYRM_-prefixed
// environment variable overrides, and validates the result. An empty path,
// or a path that does not exist, yields the defaults; a malformed file is
// still fatal.
//
// Postcondition: Returns a valid Config or a non-nil error.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetEnvPrefix("WYRM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
