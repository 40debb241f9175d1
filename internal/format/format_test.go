package format

import (
	"bytes"
	"testing"
	"time"

	"github.com/jpl-au/isl/internal/journal"
	"github.com/stretchr/testify/assert"
)

var doc = []string{
	"# LOG",
	"",
	"## 2024-01-03",
	"hello",
	"",
	"## 2024-01-01",
	"a",
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0B"},
		{1023, "1023B"},
		{1024, "1.0K"},
		{1536, "1.5K"},
		{1 << 20, "1.0M"},
		{3 << 30, "3.0G"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, humanSize(tt.in))
	}
}

func TestDays(t *testing.T) {
	var b bytes.Buffer
	assert.NoError(t, Days(&b, journal.Days(doc)))
	assert.Equal(t, "2024-01-03\n2024-01-01\n", b.String())
}

func TestDaysLong(t *testing.T) {
	today := time.Date(2024, time.January, 3, 18, 0, 0, 0, time.Local)

	var b bytes.Buffer
	assert.NoError(t, DaysLong(&b, doc, journal.Days(doc), today))
	assert.Equal(t,
		"DAY           LINE  LINES    SIZE  AGE\n"+
			"2024-01-03       3      2     21B  today\n"+
			"2024-01-01       6      1     16B  2 days ago\n",
		b.String())
}

func TestDaysLongEmpty(t *testing.T) {
	var b bytes.Buffer
	assert.NoError(t, DaysLong(&b, []string{"# LOG"}, nil, time.Now()))
	assert.Empty(t, b.String())
}

func TestAge(t *testing.T) {
	today := time.Date(2024, time.March, 31, 9, 0, 0, 0, time.Local)

	tests := []struct {
		date string
		want string
	}{
		{"2024-03-31", "today"},
		{"2024-03-30", "yesterday"},
		{"2024-03-01", "30 days ago"},
		{"2024-04-01", "in the future"},
		{"not-a-date", "-"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Age(tt.date, today), tt.date)
	}
}
