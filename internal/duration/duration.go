// Package duration parses the human-readable look-back windows accepted by
// "isl cat --since".
//
// Users specify windows as "7d" (days), "4w" (weeks), or "3m" (months) rather
// than Go's time.Duration format. The log is organised by calendar day, so a
// window is a whole number of days, not a span of hours.
package duration

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var pattern = regexp.MustCompile(`^(\d+)([dwm])$`)

// Days parses a window in the format Nd (days), Nw (weeks) or Nm (months)
// and returns its length in days. A month counts as 30 days.
func Days(s string) (int, error) {
	matches := pattern.FindStringSubmatch(s)
	if matches == nil {
		return 0, fmt.Errorf("invalid duration format: %s (use 7d, 4w, or 3m)", s)
	}

	num, err := strconv.Atoi(matches[1])
	if err != nil {
		// Regex ensures digits only; this catches overflow
		return 0, fmt.Errorf("invalid number: %w", err)
	}

	switch matches[2] {
	case "w":
		num *= 7
	case "m":
		num *= 30
	}
	return num, nil
}

// Since returns the first day inside a window of n days ending today.
// A one-day window is today alone.
func Since(today time.Time, n int) time.Time {
	if n < 1 {
		n = 1
	}
	return today.AddDate(0, 0, -(n - 1))
}
