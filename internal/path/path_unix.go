//go:build !windows

// path_unix.go resolves base directories on Unix systems (Linux, macOS, etc).
//
// XDG variables win when set and absolute; otherwise the XDG defaults
// relative to $HOME are used, matching what most desktop tools expect on
// macOS as well.

package path

import (
	"os"
	"path/filepath"
)

func osGetenv(key string) string { return os.Getenv(key) }

// DataDir returns $XDG_DATA_HOME, falling back to $HOME/.local/share.
func DataDir() (string, error) {
	return xdgDir(EnvDataHome, filepath.Join(".local", "share"))
}

// ConfigDir returns $XDG_CONFIG_HOME, falling back to $HOME/.config.
func ConfigDir() (string, error) {
	return xdgDir(EnvConfigHome, ".config")
}

func xdgDir(env, fallback string) (string, error) {
	// Relative XDG paths are ignored, as the XDG base directory rules require
	if v := getenv(env); v != "" && filepath.IsAbs(v) {
		return v, nil
	}
	home := getenv(EnvHome)
	if home == "" {
		return "", ErrNoHome
	}
	return filepath.Join(home, fallback), nil
}
