// Package journal defines the structural markers of the log document: the
// single title line and the day-section headers beneath it.
//
// A document is handled as a slice of lines. Structural roles come from line
// content alone; nothing is stored alongside the lines.
package journal

import (
	"regexp"
	"strings"
	"time"
)

// Title is the level-1 heading written at the top of a new document.
const Title = "# LOG"

// DateLayout is the calendar date format used in day headers (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// dayHeader matches a day-section header such as "## 2024-01-02".
var dayHeader = regexp.MustCompile(`^## (\d{4}-\d{2}-\d{2})$`)

// DayHeader returns the day-section header for t.
func DayHeader(t time.Time) string {
	return "## " + t.Format(DateLayout)
}

// IsTitle reports whether line is a level-1 heading.
// Any "# ..." line counts, not only Title, so documents with a custom
// title keep their title anchored.
func IsTitle(line string) bool {
	return line == "#" || strings.HasPrefix(line, "# ")
}

// IsSubtitle reports whether line is a level-2 heading. Day headers are
// subtitles; "## Notes" is a subtitle but not a day header.
func IsSubtitle(line string) bool {
	return line == "##" || strings.HasPrefix(line, "## ")
}

// IsDayHeader reports whether line is a day-section header.
func IsDayHeader(line string) bool {
	return dayHeader.MatchString(line)
}

// Index returns the index of the first line equal to want, or -1.
func Index(lines []string, want string) int {
	for i, l := range lines {
		if l == want {
			return i
		}
	}
	return -1
}

// TitleIndex returns the index of the first title line, or -1.
func TitleIndex(lines []string) int {
	for i, l := range lines {
		if IsTitle(l) {
			return i
		}
	}
	return -1
}

// Lines splits text into lines.
//
// Both "\n" and "\r\n" terminate a line, so a document saved with CRLF
// line endings still has matching day headers. A single trailing line
// terminator does not produce an empty final line. Empty text yields no
// lines.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Join returns the document text for lines: joined by "\n" and terminated
// by a newline when there is at least one line.
func Join(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
