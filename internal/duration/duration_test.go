package duration

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDays(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1d", 1},
		{"7d", 7},
		{"2w", 14},
		{"3m", 90},
		{"0d", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Days(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaysInvalid(t *testing.T) {
	for _, in := range []string{"", "7", "d", "7h", "-1d", "1.5w", " 7d", "99999999999999999999d"} {
		t.Run(in, func(t *testing.T) {
			_, err := Days(in)
			assert.Error(t, err)
		})
	}
}

func TestSince(t *testing.T) {
	today := time.Date(2024, time.March, 2, 15, 0, 0, 0, time.Local)

	assert.Equal(t, "2024-03-02", Since(today, 1).Format("2006-01-02"))
	assert.Equal(t, "2024-03-02", Since(today, 0).Format("2006-01-02"))
	assert.Equal(t, "2024-02-25", Since(today, 7).Format("2006-01-02"))
	assert.Equal(t, "2024-02-01", Since(today, 31).Format("2006-01-02"))
}
