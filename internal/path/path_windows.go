//go:build windows

// path_windows.go resolves base directories on Windows.
//
// XDG variables are still honoured when set (common under MSYS and WSL
// interop); otherwise %LOCALAPPDATA% holds data and %APPDATA% holds config.

package path

import (
	"os"
	"path/filepath"
)

func osGetenv(key string) string { return os.Getenv(key) }

// DataDir returns $XDG_DATA_HOME, falling back to %LOCALAPPDATA%.
func DataDir() (string, error) {
	return winDir(EnvDataHome, "LOCALAPPDATA")
}

// ConfigDir returns $XDG_CONFIG_HOME, falling back to %APPDATA%.
func ConfigDir() (string, error) {
	return winDir(EnvConfigHome, "APPDATA")
}

func winDir(env, fallback string) (string, error) {
	if v := getenv(env); v != "" && filepath.IsAbs(v) {
		return v, nil
	}
	if v := getenv(fallback); v != "" {
		return v, nil
	}
	return "", ErrNoHome
}
