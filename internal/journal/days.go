// days.go extracts day sections from a document.
//
// Separated from journal.go because sections are only needed by readers
// (cat, MCP read tools); the merge path works on header positions alone.

package journal

import (
	"fmt"
	"time"
)

// Day is one day section of the document.
type Day struct {
	Date  string `json:"date"`  // YYYY-MM-DD
	Line  int    `json:"line"`  // 1-indexed line of the header
	Lines int    `json:"lines"` // body lines, excluding the header
}

// Days returns the day sections in document order.
func Days(lines []string) []Day {
	var days []Day
	for i, l := range lines {
		if !IsDayHeader(l) {
			continue
		}
		if n := len(days); n > 0 {
			days[n-1].Lines = i - days[n-1].Line
		}
		days = append(days, Day{Date: l[3:], Line: i + 1})
	}
	if n := len(days); n > 0 {
		days[n-1].Lines = len(lines) - days[n-1].Line
	}
	return days
}

// Section returns the lines of the day section for date, header included.
// The section runs until the next day header or the end of the document.
// Returns false if the document has no section for date.
func Section(lines []string, date string) ([]string, bool) {
	start := Index(lines, "## "+date)
	if start == -1 {
		return nil, false
	}
	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if IsDayHeader(lines[i]) {
			end = i
			break
		}
	}
	return lines[start:end], true
}

// ParseDate parses a YYYY-MM-DD date in the local time zone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}
