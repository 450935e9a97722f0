// Package config loads the tool's settings from a TOML or YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format represents the configuration file format.
type Format int

const (
	// FormatTOML is the default format.
	FormatTOML Format = iota

	// FormatYAML is selected for .yaml and .yml files.
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config holds every setting the command-line tool reads.
type Config struct {
	Output OutputConfig `toml:"output" yaml:"output"`
	Log    LogConfig    `toml:"log" yaml:"log"`
}

// OutputConfig controls how tokens, trees, and diagnostics are rendered.
type OutputConfig struct {
	Format string `toml:"format" yaml:"format"` // "text" or "json"
	Color  bool   `toml:"color" yaml:"color"`
}

// LogConfig controls the logger built at startup.
type LogConfig struct {
	Level string `toml:"level" yaml:"level"` // debug, info, warn, error
	File  string `toml:"file" yaml:"file"`   // optional log file, JSON lines
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Output: OutputConfig{Format: "text", Color: true},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads path and decodes it over the defaults, so a file only needs
// the keys it wants to change. The format is detected from the file
// extension; anything that is not .yaml/.yml decodes as TOML. Enum-valued
// fields are lowercased before validation, so "JSON" and "json" mean the
// same thing.
func Load(path string) (Config, error) {
	cfg := Default()

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	switch detectFormat(path) {
	case FormatYAML:
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err := toml.Unmarshal(content, &cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	cfg.Output.Format = strings.ToLower(cfg.Output.Format)
	cfg.Log.Level = strings.ToLower(cfg.Log.Level)

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// detectFormat determines the configuration format from the file extension.
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Validate checks the enum-valued fields, ignoring case.
func (c Config) Validate() error {
	switch strings.ToLower(c.Output.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("output.format must be \"text\" or \"json\", got %q", c.Output.Format)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn, or error, got %q", c.Log.Level)
	}
	return nil
}
