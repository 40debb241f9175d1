// update.go implements the read-merge-write cycle for new entries.
//
// Separated from store.go because this is the only place the merge engine
// meets the filesystem. The merged content is computed in memory before the
// file is truncated, so a failure at any step leaves the previous document
// intact.

package document

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jpl-au/isl/internal/journal"
	"github.com/jpl-au/isl/internal/merge"
)

// Result describes the outcome of merging an entry into the document.
type Result struct {
	Path   string     `json:"path"`
	Date   string     `json:"date"`
	Case   merge.Case `json:"case"`
	Lines  int        `json:"lines"` // entry lines merged
	Before string     `json:"-"`     // document content before the merge
	After  string     `json:"-"`     // document content after the merge
}

// Update merges entry into the document for today and writes the result.
// entry must already be validated and sanitised.
func (s *Store) Update(entry []string, today time.Time) (Result, error) {
	f, err := os.OpenFile(s.path, os.O_RDWR, 0)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{}, fmt.Errorf("%w: %s", ErrNotFound, s.path)
		}
		return Result{}, fmt.Errorf("opening document for writing: %w", err)
	}
	defer f.Close()

	if err := lockExclusive(f); err != nil {
		return Result{}, fmt.Errorf("locking document: %w", err)
	}
	defer unlock(f)

	data, err := io.ReadAll(f)
	if err != nil {
		return Result{}, fmt.Errorf("reading document %s: %w", s.path, err)
	}

	r := s.merge(string(data), entry, today)
	if err := overwrite(f, r.After); err != nil {
		return Result{}, err
	}
	return r, nil
}

// Preview computes what Update would write without modifying the document.
func (s *Store) Preview(entry []string, today time.Time) (Result, error) {
	old, err := s.Read()
	if err != nil {
		return Result{}, err
	}
	return s.merge(journal.Join(old), entry, today), nil
}

func (s *Store) merge(before string, entry []string, today time.Time) Result {
	old := journal.Lines(before)
	return Result{
		Path:   s.path,
		Date:   today.Format(journal.DateLayout),
		Case:   merge.Classify(entry, old, today),
		Lines:  len(entry),
		Before: before,
		After:  journal.Join(merge.Merge(entry, old, today)),
	}
}
