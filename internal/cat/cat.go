// Package cat prints the log document, whole or one day at a time.
package cat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jpl-au/isl/internal/journal"
)

// minLineNumWidth is the minimum column width for line numbers.
const minLineNumWidth = 6

// ErrNoSection is returned when the requested day has no section.
var ErrNoSection = errors.New("no entries for day")

// Options configures a cat operation.
type Options struct {
	Day         string    // Only print this day's section (YYYY-MM-DD); "" prints everything
	Last        int       // Only print the newest N day sections (0 = all)
	Since       time.Time // Only print day sections on or after this day (zero = all)
	LineNumbers bool      // Prefix lines with their document line number (-n flag)
}

// Result contains the outcome of a cat operation.
type Result struct {
	Path    string   `json:"path"`
	Day     string   `json:"day,omitempty"`
	Content string   `json:"content"`
	Lines   []string `json:"-"`
}

// Reader is the interface for reading the document.
type Reader interface {
	Read() ([]string, error)
	Path() string
}

// Run reads the document and writes the selected lines to w.
func Run(ctx context.Context, w io.Writer, svc Reader, opts Options) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	all, err := svc.Read()
	if err != nil {
		return Result{}, err
	}

	r := Result{Path: svc.Path(), Day: opts.Day}
	lines, first, err := selectLines(all, opts)
	if err != nil {
		return r, err
	}
	r.Lines = lines
	r.Content = journal.Join(lines)

	if !opts.LineNumbers {
		fmt.Fprint(w, r.Content)
		return r, nil
	}

	width := len(strconv.Itoa(first + len(lines)))
	if width < minLineNumWidth {
		width = minLineNumWidth
	}
	for i, l := range lines {
		fmt.Fprintf(w, "%*d\t%s\n", width, first+i, l)
	}
	return r, nil
}

// selectLines returns the lines chosen by opts and the 1-indexed document
// line number of the first of them.
func selectLines(all []string, opts Options) ([]string, int, error) {
	if opts.Day != "" {
		if _, err := journal.ParseDate(opts.Day); err != nil {
			return nil, 0, err
		}
		sec, ok := journal.Section(all, opts.Day)
		if !ok {
			return nil, 0, fmt.Errorf("%w %s", ErrNoSection, opts.Day)
		}
		return sec, journal.Index(all, "## "+opts.Day) + 1, nil
	}

	// Day sections run newest first, so both filters keep a prefix of the
	// document: everything before the first section outside the window.
	days := journal.Days(all)
	cut := len(days)
	if opts.Last > 0 && opts.Last < cut {
		cut = opts.Last
	}
	if !opts.Since.IsZero() {
		from := opts.Since.Format(journal.DateLayout)
		for i, d := range days[:cut] {
			if d.Date < from {
				cut = i
				break
			}
		}
	}
	if cut < len(days) {
		return all[:days[cut].Line-1], 1, nil
	}
	return all, 1, nil
}
