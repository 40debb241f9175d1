// Package add implements adding an entry to the log: the validate,
// sanitise, merge and write pipeline shared by the CLI and the MCP server.
package add

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jpl-au/isl/internal/diff"
	"github.com/jpl-au/isl/internal/document"
	"github.com/jpl-au/isl/internal/editor"
	"github.com/jpl-au/isl/internal/journal"
	"github.com/jpl-au/isl/internal/sanitize"
	"github.com/jpl-au/isl/internal/validate"
)

// Options configures an add operation.
type Options struct {
	DryRun     bool      // Show the merge as a diff without writing
	Colour     bool      // Colourise dry-run diff output
	MaxContent int64     // Entry size limit in bytes (0 means no limit)
	Today      time.Time // Day to file the entry under (zero means now)
}

// Result contains the outcome of an add operation.
type Result struct {
	document.Result
	Skipped bool `json:"skipped"`
	DryRun  bool `json:"dry_run"`
}

// Updater is the interface for merging entries into the document.
type Updater interface {
	Update(entry []string, today time.Time) (document.Result, error)
	Preview(entry []string, today time.Time) (document.Result, error)
}

// Run adds text as a new entry.
//
// Blank or whitespace-only text is not an error: nothing is written and
// Result.Skipped is set. Invalid text is rejected before the document is
// read.
func Run(ctx context.Context, w io.Writer, svc Updater, text string, opts Options) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	if strings.TrimSpace(text) == "" {
		fmt.Fprintln(w, "Nothing to add.")
		return Result{Skipped: true}, nil
	}

	if err := validate.Content(text, opts.MaxContent); err != nil {
		return Result{}, err
	}
	if err := validate.Entry(text); err != nil {
		return Result{}, err
	}

	entry := sanitize.Lines(journal.Lines(text))

	today := opts.Today
	if today.IsZero() {
		today = time.Now()
	}

	if opts.DryRun {
		r, err := svc.Preview(entry, today)
		if err != nil {
			return Result{}, err
		}
		d := diff.Compute(r.Before, r.After, r.Path, r.Path+" (merged)")
		fmt.Fprint(w, d.Format(opts.Colour))
		return Result{Result: r, DryRun: true}, nil
	}

	r, err := svc.Update(entry, today)
	if err != nil {
		return Result{}, err
	}

	fmt.Fprintf(w, "Added %d %s to %s\n", r.Lines, plural(r.Lines, "line", "lines"), r.Date)
	return Result{Result: r}, nil
}

// FromEditor captures an entry with launch and adds it.
// The document is not read until the editor has exited.
func FromEditor(ctx context.Context, w io.Writer, svc Updater, launch editor.Launcher, opts Options) (Result, error) {
	text, err := editor.Capture(ctx, launch)
	if err != nil {
		return Result{}, err
	}
	return Run(ctx, w, svc, text, opts)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
