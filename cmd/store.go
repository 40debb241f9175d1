// store.go resolves where the log lives and opens it.
//
// Design: the data directory is resolved most specific first: --dir flag,
// ISL_DIR, the document.dir config key, and finally the platform data
// directory ($XDG_DATA_HOME or ~/.local/share). The document is created and
// seeded on first use.

package cmd

import (
	"fmt"

	"github.com/jpl-au/isl/internal/config"
	"github.com/jpl-au/isl/internal/document"
	"github.com/jpl-au/isl/internal/editor"
	"github.com/jpl-au/isl/internal/log"
	"github.com/jpl-au/isl/internal/path"
)

// env bundles what a command needs to work on the log.
type env struct {
	cfg   *config.Config
	store *document.Store
}

// launcher returns the editor resolved from flag, config and environment.
func (e *env) launcher() editor.Launcher {
	return editor.Command(editor.Resolve(Editor(), e.cfg.Editor.Command))
}

// dataDir returns the base directory holding isl/LOG.md.
func dataDir(cfg *config.Config) (string, error) {
	if d := Dir(); d != "" {
		return d, nil
	}
	if cfg.Document.Dir != "" {
		return cfg.Document.Dir, nil
	}
	d, err := path.DataDir()
	if err != nil {
		return "", fmt.Errorf("locating data directory: %w", err)
	}
	return d, nil
}

// openStore loads config and bootstraps the document.
func openStore() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	base, err := dataDir(cfg)
	if err != nil {
		return nil, err
	}
	s, err := document.Bootstrap(base)
	if err != nil {
		return nil, err
	}

	// Set document identifier for audit logging
	log.SetDocument(s.Path())

	return &env{cfg: cfg, store: s}, nil
}
