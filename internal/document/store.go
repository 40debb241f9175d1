// Package document owns the log document on disk.
//
// The Store reads the document as lines, writes it back with a truncating
// overwrite, and performs the read-merge-write update cycle for new
// entries. Nothing is cached between calls: every update re-reads the file
// under an exclusive advisory lock, so two isl processes updating at the
// same time are serialised instead of the last writer silently winning.
package document

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jpl-au/isl/internal/journal"
	"github.com/jpl-au/isl/internal/path"
)

// ErrNotFound is returned when the document file does not exist.
var ErrNotFound = errors.New("document not found")

// now returns the current time. Tests replace it to pin "today".
var now = time.Now

// Store provides access to a single log document.
type Store struct {
	path string
}

// Open returns a Store for the document at p without touching the disk.
// Use Bootstrap to create the document when it may not exist yet.
func Open(p string) *Store {
	return &Store{path: p}
}

// Bootstrap ensures <baseDir>/isl/LOG.md exists and returns its Store.
//
// The parent directory is created as needed. When the file is new or empty
// it is seeded with the title and today's day header, so the first entry of
// the day appends under an existing section.
func Bootstrap(baseDir string) (*Store, error) {
	p := path.Document(baseDir)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return nil, fmt.Errorf("creating document directory: %w", err)
	}

	f, err := os.OpenFile(p, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening document %s: %w", p, err)
	}
	defer f.Close()

	if err := lockExclusive(f); err != nil {
		return nil, fmt.Errorf("locking document: %w", err)
	}
	defer unlock(f)

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", p, err)
	}
	if info.Size() == 0 {
		seed := journal.Join(Seed(now()))
		if _, err := f.WriteString(seed); err != nil {
			return nil, fmt.Errorf("writing initial document: %w", err)
		}
	}

	return &Store{path: p}, nil
}

// Seed returns the initial content of a new document.
func Seed(today time.Time) []string {
	return []string{journal.Title, "", journal.DayHeader(today)}
}

// Path returns the document's filesystem path.
func (s *Store) Path() string {
	return s.path
}

// Read returns the document as lines.
func (s *Store) Read() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, s.path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading document %s: %w", s.path, err)
	}
	return journal.Lines(string(data)), nil
}

// Write replaces the document content.
// The file is truncated only after the lock is held.
func (s *Store) Write(content string) error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("opening document for writing: %w", err)
	}
	defer f.Close()

	if err := lockExclusive(f); err != nil {
		return fmt.Errorf("locking document: %w", err)
	}
	defer unlock(f)

	return overwrite(f, content)
}

// overwrite truncates f and writes content from the start.
func overwrite(f *os.File, content string) error {
	if err := f.Truncate(0); err != nil {
		return fmt.Errorf("truncating document: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seeking document: %w", err)
	}
	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("syncing document: %w", err)
	}
	return nil
}
