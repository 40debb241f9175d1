// Package diff computes and formats line differences between two versions
// of the log document. It backs "isl add --dry-run", which shows where an
// entry would land without writing it.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines shown before/after changes.
// When equal sections exceed 2*contextLines, they're collapsed with "...".
const contextLines = 3

// Result holds diff output.
type Result struct {
	Old  string // old label
	New  string // new label
	Diff string // plain diff text
}

// Compute returns a line-based diff between old and new content.
func Compute(oldContent, newContent, oldLabel, newLabel string) Result {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldContent, newContent)
	d := dmp.DiffMain(a, b, false)
	d = dmp.DiffCharsToLines(d, lines)

	return Result{
		Old:  oldLabel,
		New:  newLabel,
		Diff: format(d),
	}
}

// Empty reports whether the two contents were identical.
func (r Result) Empty() bool {
	return !strings.Contains(r.Diff, "\n+ ") && !strings.HasPrefix(r.Diff, "+ ") &&
		!strings.Contains(r.Diff, "\n- ") && !strings.HasPrefix(r.Diff, "- ")
}

// format converts diffs to unified-style text.
func format(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for i, d := range diffs {
		if d.Text == "" {
			continue
		}
		// Trim trailing newline to avoid artefact empty string from Split
		lines := strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n")
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, l := range lines {
				b.WriteString("- " + l + "\n")
			}
		case diffmatchpatch.DiffInsert:
			for _, l := range lines {
				b.WriteString("+ " + l + "\n")
			}
		case diffmatchpatch.DiffEqual:
			writeEqual(&b, lines, i == 0, i == len(diffs)-1)
		}
	}
	return b.String()
}

// writeEqual writes unchanged lines, keeping only the context next to a
// change. Leading and trailing runs keep context on their changed side only.
func writeEqual(b *strings.Builder, lines []string, first, last bool) {
	head, tail := contextLines, contextLines
	if first {
		head = 0
	}
	if last {
		tail = 0
	}
	if len(lines) <= head+tail+1 {
		for _, l := range lines {
			b.WriteString("  " + l + "\n")
		}
		return
	}
	for _, l := range lines[:head] {
		b.WriteString("  " + l + "\n")
	}
	b.WriteString("  ...\n")
	for _, l := range lines[len(lines)-tail:] {
		b.WriteString("  " + l + "\n")
	}
}

// Colourise adds ANSI colours to diff output.
func Colourise(d string) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		reset = "\033[0m"
	)

	var b strings.Builder
	for _, line := range strings.Split(d, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "- "):
			b.WriteString(red + line + reset + "\n")
		case strings.HasPrefix(line, "+ "):
			b.WriteString(green + line + reset + "\n")
		default:
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// Format returns the full diff with header.
func (r Result) Format(colour bool) string {
	header := fmt.Sprintf("--- %s\n+++ %s\n", r.Old, r.New)
	if colour {
		return header + Colourise(r.Diff)
	}
	return header + r.Diff
}
