// Package config provides reading and writing of isl configuration.
// Configuration lives in <config dir>/isl/config.yaml ($XDG_CONFIG_HOME or
// ~/.config on Unix). A missing file means defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jpl-au/isl/internal/path"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Editor holds editor-related configuration options.
type Editor struct {
	Command string `yaml:"command,omitempty"`
}

// Document holds document location options.
type Document struct {
	Dir string `yaml:"dir,omitempty"`
}

// Limits holds size limit configuration options.
type Limits struct {
	MaxContent *int64 `yaml:"max_content,omitempty"`
}

// Default limits applied when not configured.
const (
	DefaultMaxContent = 1024 * 1024 // 1 MB per entry
)

// Validation bounds for configuration values.
const (
	MinMaxContent = 1
	MaxMaxContent = 100 * 1024 * 1024 // 100 MB
)

// Config contains configuration for isl.
type Config struct {
	Editor   Editor   `yaml:"editor,omitempty"`
	Document Document `yaml:"document,omitempty"`
	Limits   Limits   `yaml:"limits,omitempty"`

	// path is the file this config was loaded from (for Save)
	path string
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Limits.MaxContent != nil {
		v := *c.Limits.MaxContent
		if v < MinMaxContent || v > MaxMaxContent {
			return fmt.Errorf("%w: max_content must be between %d and %d, got %d",
				ErrInvalidValue, MinMaxContent, MaxMaxContent, v)
		}
	}
	if c.Document.Dir != "" && !filepath.IsAbs(c.Document.Dir) {
		return fmt.Errorf("%w: document.dir must be an absolute path, got %q",
			ErrInvalidValue, c.Document.Dir)
	}
	return nil
}

// MaxContent returns the maximum entry size in bytes (defaults to 1 MB).
func (c *Config) MaxContent() int64 {
	if c.Limits.MaxContent == nil {
		return DefaultMaxContent
	}
	return *c.Limits.MaxContent
}

// pathFunc returns the config file path. Tests override it.
var pathFunc = defaultPath

func defaultPath() string {
	dir, err := path.ConfigDir()
	if err != nil {
		return ""
	}
	return path.Config(dir)
}

// Path returns the path to the config file, or "" if it cannot be determined.
func Path() string {
	return pathFunc()
}

// Load reads the configuration file. A missing file yields defaults.
func Load() (*Config, error) {
	p := Path()
	if p == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(p)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: p}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", p, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", p, err)
	}
	cfg.path = p

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", p, err)
	}
	return &cfg, nil
}

// Save writes the configuration to its original location.
// Creates parent directories as needed with mode 0755.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = Path()
	}
	if c.path == "" {
		return ErrNoConfigPath
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
