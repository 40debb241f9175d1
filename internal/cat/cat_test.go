package cat

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDoc struct {
	lines []string
	err   error
}

func (f fakeDoc) Read() ([]string, error) { return f.lines, f.err }
func (f fakeDoc) Path() string            { return "/data/isl/LOG.md" }

var doc = fakeDoc{lines: []string{
	"# LOG",
	"",
	"## 2024-01-03",
	"c",
	"## 2024-01-02",
	"b",
	"## 2024-01-01",
	"a",
}}

func TestRun(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		opts    Options
		want    string
		wantErr bool
	}{
		{
			name: "whole document",
			want: "# LOG\n\n## 2024-01-03\nc\n## 2024-01-02\nb\n## 2024-01-01\na\n",
		},
		{
			name: "one day",
			opts: Options{Day: "2024-01-02"},
			want: "## 2024-01-02\nb\n",
		},
		{
			name: "last day",
			opts: Options{Last: 1},
			want: "# LOG\n\n## 2024-01-03\nc\n",
		},
		{
			name: "last more than available",
			opts: Options{Last: 10},
			want: "# LOG\n\n## 2024-01-03\nc\n## 2024-01-02\nb\n## 2024-01-01\na\n",
		},
		{
			name: "since",
			opts: Options{Since: time.Date(2024, time.January, 2, 0, 0, 0, 0, time.Local)},
			want: "# LOG\n\n## 2024-01-03\nc\n## 2024-01-02\nb\n",
		},
		{
			name: "since after newest day keeps title only",
			opts: Options{Since: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local)},
			want: "# LOG\n\n",
		},
		{
			name: "last narrower than since",
			opts: Options{Last: 1, Since: time.Date(2023, time.December, 1, 0, 0, 0, 0, time.Local)},
			want: "# LOG\n\n## 2024-01-03\nc\n",
		},
		{
			name: "line numbers keep document positions",
			opts: Options{Day: "2024-01-01", LineNumbers: true},
			want: "     7\t## 2024-01-01\n     8\ta\n",
		},
		{
			name:    "missing day",
			opts:    Options{Day: "2023-12-31"},
			wantErr: true,
		},
		{
			name:    "malformed day",
			opts:    Options{Day: "yesterday"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			r, err := Run(ctx, &out, doc, tt.opts)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
			assert.Equal(t, "/data/isl/LOG.md", r.Path)
		})
	}
}

func TestRun_MissingDaySentinel(t *testing.T) {
	_, err := Run(context.Background(), &bytes.Buffer{}, doc, Options{Day: "2020-01-01"})
	assert.ErrorIs(t, err, ErrNoSection)
}

func TestRun_ReadError(t *testing.T) {
	boom := errors.New("disk on fire")
	_, err := Run(context.Background(), &bytes.Buffer{}, fakeDoc{err: boom}, Options{})
	assert.ErrorIs(t, err, boom)
}
