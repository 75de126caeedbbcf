// Package config loads the settings of the grass command line tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// EnvVar names the environment variable that points at a config file.
const EnvVar = "GRASS_CONFIG"

// Config holds the complete tool configuration
type Config struct {
	Output OutputConfig `toml:"output"`
	Parser ParserConfig `toml:"parser"`
	Watch  WatchConfig  `toml:"watch"`
}

// OutputConfig controls how trees and diagnostics are printed
type OutputConfig struct {
	Format string `toml:"format"`
	Color  bool   `toml:"color"`
}

// ParserConfig holds parser limits
type ParserConfig struct {
	MaxDepth int `toml:"max_depth"`
}

// WatchConfig holds file watcher settings
type WatchConfig struct {
	Debounce   Duration `toml:"debounce"`
	Extensions []string `toml:"extensions"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Output formats understood by the parse command.
var Formats = []string{"sexpr", "yaml", "json"}

// Default returns the configuration used when no file is found.
func Default() *Config {
	cfg := &Config{Output: OutputConfig{Color: true}}
	cfg.applyDefaults()
	return cfg
}

// Load reads the TOML file at path. Keys missing from the file keep their
// defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault loads the file named by GRASS_CONFIG, or the first config
// found in the default locations. It falls back to Default when there is
// none.
func LoadDefault() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}
	for _, path := range DefaultPaths() {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}

// DefaultPaths lists where LoadDefault looks, in order.
func DefaultPaths() []string {
	paths := []string{"grass.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "grass", "config.toml"))
	}
	return paths
}

// Validate rejects settings the tool cannot honor.
func (c *Config) Validate() error {
	if !IsFormat(c.Output.Format) {
		return fmt.Errorf("unknown output format %q (want one of %s)", c.Output.Format, strings.Join(Formats, ", "))
	}
	if c.Parser.MaxDepth < 0 {
		return fmt.Errorf("parser.max_depth must not be negative, got %d", c.Parser.MaxDepth)
	}
	if c.Watch.Debounce.Duration < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %s", c.Watch.Debounce)
	}
	return nil
}

// IsFormat reports whether format names a known output format.
func IsFormat(format string) bool {
	for _, f := range Formats {
		if f == format {
			return true
		}
	}
	return false
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = "sexpr"
	}
	if c.Parser.MaxDepth == 0 {
		c.Parser.MaxDepth = 500
	}
	if c.Watch.Debounce.Duration == 0 {
		c.Watch.Debounce.Duration = 100 * time.Millisecond
	}
	if len(c.Watch.Extensions) == 0 {
		c.Watch.Extensions = []string{".grass", ".gs"}
	}
}
