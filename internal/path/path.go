// Package path resolves where isl keeps its files.
//
// The document always lives at <data dir>/isl/LOG.md and the config at
// <config dir>/isl/config.yaml. Base directories follow the XDG base
// directory conventions on Unix and the per-user application data folders
// on Windows (see path_unix.go and path_windows.go).
package path

import (
	"errors"
	"path/filepath"
)

// AppName is the directory name used under the data and config dirs.
const AppName = "isl"

// DocumentName is the file name of the log document.
const DocumentName = "LOG.md"

// ErrNoHome is returned when neither the XDG variable nor a home
// directory is available to derive a base directory from.
var ErrNoHome = errors.New("cannot determine home directory")

// Environment variables consulted when resolving directories.
const (
	EnvDataHome   = "XDG_DATA_HOME"
	EnvConfigHome = "XDG_CONFIG_HOME"
	EnvHome       = "HOME"
	EnvDir        = "ISL_DIR"
)

// getenv is os.Getenv; tests replace it to control the environment.
var getenv = osGetenv

// AppDir returns the isl directory under base.
func AppDir(base string) string {
	return filepath.Join(base, AppName)
}

// Document returns the document path under the data directory base.
func Document(base string) string {
	return filepath.Join(AppDir(base), DocumentName)
}

// Config returns the config file path under the config directory base.
func Config(base string) string {
	return filepath.Join(AppDir(base), "config.yaml")
}
