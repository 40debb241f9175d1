// Package sanitize normalises entry lines before they are merged.
package sanitize

import "strings"

// trailing is the set of characters stripped from the end of each line.
const trailing = " \t\r\v\f"

// Lines returns a copy of lines with trailing whitespace and carriage
// returns removed from each line.
//
// Internal content, line order and blank lines are preserved, so the
// result always has the same length as the input. Applying Lines twice
// gives the same result as applying it once.
func Lines(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimRight(l, trailing)
	}
	return out
}
