// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic used by the "isl config" command, where settings are
// addressed by dotted keys (e.g., "editor.command").
//
// Design: Pointers are used for optional numeric fields so we can
// distinguish between "not set" (nil) and "explicitly set". Defaults are only
// applied when the user hasn't set a value.

package config

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"editor.command",
		"document.dir",
		"limits.max_content",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "editor.command":
		return c.Editor.Command, nil
	case "document.dir":
		return c.Document.Dir, nil
	case "limits.max_content":
		return strconv.FormatInt(c.MaxContent(), 10), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "editor.command":
		c.Editor.Command = value
	case "document.dir":
		if value != "" && !filepath.IsAbs(value) {
			return fmt.Errorf("%w: document.dir must be an absolute path", ErrInvalidValue)
		}
		c.Document.Dir = value
	case "limits.max_content":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil || n < MinMaxContent || n > MaxMaxContent {
			return fmt.Errorf("%w: limits.max_content must be an integer between %d and %d",
				ErrInvalidValue, MinMaxContent, MaxMaxContent)
		}
		c.Limits.MaxContent = &n
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"editor.command":     c.Editor.Command,
		"document.dir":       c.Document.Dir,
		"limits.max_content": strconv.FormatInt(c.MaxContent(), 10),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "editor.command":
		return c.Editor.Command != ""
	case "document.dir":
		return c.Document.Dir != ""
	case "limits.max_content":
		return c.Limits.MaxContent != nil
	default:
		return false
	}
}
