// Package merge splices a sanitised entry into the existing document lines.
//
// The document is ordered title first, then day sections newest first. Where
// an entry lands depends on whether today's header already exists in the
// entry, in the document, in both or in neither; each of the four cases has
// a single anchor (the title or today's header) that the entry is inserted
// after.
//
// Merge is a pure function over two line slices and a date. It cannot fail,
// keeps every old line, and never mutates its inputs.
package merge

import (
	"time"

	"github.com/jpl-au/isl/internal/journal"
)

// Case identifies which placement rule a merge used.
type Case int

const (
	// IntoToday: both the entry and the document have today's header.
	// The entry body goes under the document's header; the entry's own
	// copy of the header is dropped.
	IntoToday Case = iota
	// PrependDay: only the entry has today's header. The entry and a
	// blank separator go ahead of the old content. With a title, they go
	// after the title and the blank line that follows it.
	PrependDay
	// AppendToday: only the document has today's header. The entry goes
	// directly under it.
	AppendToday
	// OpenDay: neither has today's header. A new section is opened under
	// the title.
	OpenDay
)

// String returns the case name used in logs and dry-run output.
func (c Case) String() string {
	switch c {
	case IntoToday:
		return "into-today"
	case PrependDay:
		return "prepend-day"
	case AppendToday:
		return "append-today"
	case OpenDay:
		return "open-day"
	default:
		return "unknown"
	}
}

// MarshalText encodes the case by name in JSON output.
func (c Case) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Classify reports which placement rule Merge applies to the given inputs.
func Classify(newLines, oldLines []string, today time.Time) Case {
	header := journal.DayHeader(today)
	newHas := journal.Index(newLines, header) != -1
	oldHas := journal.Index(oldLines, header) != -1

	switch {
	case newHas && oldHas:
		return IntoToday
	case newHas:
		return PrependDay
	case oldHas:
		return AppendToday
	default:
		return OpenDay
	}
}

// Merge returns the document lines after adding newLines for today.
func Merge(newLines, oldLines []string, today time.Time) []string {
	header := journal.DayHeader(today)

	switch Classify(newLines, oldLines, today) {
	case IntoToday:
		return insertAfter(oldLines, journal.Index(oldLines, header), without(newLines, header))

	case PrependDay:
		block := make([]string, 0, len(newLines)+1)
		block = append(block, newLines...)
		block = append(block, "")
		return insertAfter(oldLines, belowTitle(oldLines), block)

	case AppendToday:
		return insertAfter(oldLines, journal.Index(oldLines, header), newLines)

	default:
		block := make([]string, 0, len(newLines)+2)
		block = append(block, header, "")
		block = append(block, newLines...)
		return insertAfter(oldLines, journal.TitleIndex(oldLines), block)
	}
}

// belowTitle returns the index of the title, or of the blank line directly
// under it when there is one. -1 means there is no title.
func belowTitle(lines []string) int {
	i := journal.TitleIndex(lines)
	if i != -1 && i+1 < len(lines) && lines[i+1] == "" {
		return i + 1
	}
	return i
}

// insertAfter returns a new slice with block inserted after lines[i].
// An index of -1 inserts at the start.
func insertAfter(lines []string, i int, block []string) []string {
	at := i + 1
	out := make([]string, 0, len(lines)+len(block))
	out = append(out, lines[:at]...)
	out = append(out, block...)
	out = append(out, lines[at:]...)
	return out
}

// without returns lines with every occurrence of drop removed.
func without(lines []string, drop string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != drop {
			out = append(out, l)
		}
	}
	return out
}
