// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// the log itself while this package handles presentation concerns like
// column alignment and human-readable sizes.
package format

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/jpl-au/isl/internal/journal"
)

// humanSize formats a byte count as human-readable (e.g., "1.2K", "3.4M").
func humanSize(bytes int64) string {
	const (
		_        = iota
		KB int64 = 1 << (10 * iota)
		MB
		GB
	)
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1fG", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1fM", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1fK", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

// Days prints one day per line, newest first as they appear in the log.
func Days(w io.Writer, days []journal.Day) error {
	for _, d := range days {
		fmt.Fprintln(w, d.Date)
	}
	return nil
}

// DaysLong prints days with their line, body line count, section size and
// age relative to today.
//
// Column order is DAY, LINE, LINES, SIZE, AGE. Fixed-width columns come
// first; AGE varies in width and goes last.
func DaysLong(w io.Writer, doc []string, days []journal.Day, today time.Time) error {
	if len(days) == 0 {
		return nil
	}

	fmt.Fprintf(w, "%-10s  %6s  %5s  %6s  %s\n", "DAY", "LINE", "LINES", "SIZE", "AGE")

	for i, d := range days {
		fmt.Fprintf(w, "%-10s  %6d  %5d  %6s  %s\n",
			d.Date, d.Line, d.Lines, humanSize(sectionSize(doc, days, i)), Age(d.Date, today))
	}
	return nil
}

// sectionSize returns the size in bytes of day i's section as written to
// disk, header and trailing newlines included.
func sectionSize(doc []string, days []journal.Day, i int) int64 {
	start := days[i].Line - 1
	end := len(doc)
	if i+1 < len(days) {
		end = days[i+1].Line - 1
	}
	var n int64
	for _, l := range doc[start:end] {
		n += int64(len(l)) + 1
	}
	return n
}

// Age describes how long ago a day was, relative to today: "today",
// "yesterday" or "N days ago".
func Age(date string, today time.Time) string {
	t, err := journal.ParseDate(date)
	if err != nil {
		return "-"
	}
	y, m, d := today.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, time.Local)
	// Rounded: a day spanning a DST change is 23 or 25 hours long
	days := int(math.Round(midnight.Sub(t).Hours() / 24))
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "yesterday"
	case days < 0:
		return "in the future"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
