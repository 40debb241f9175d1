package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{name: "nil", input: nil, want: []string{}},
		{name: "clean", input: []string{"a", "b"}, want: []string{"a", "b"}},
		{name: "carriage returns", input: []string{"a\r", "b\r"}, want: []string{"a", "b"}},
		{name: "trailing spaces and tabs", input: []string{"a  ", "b\t", "c \t\r"}, want: []string{"a", "b", "c"}},
		{name: "leading whitespace kept", input: []string{"  - item", "\tcode"}, want: []string{"  - item", "\tcode"}},
		{name: "internal whitespace kept", input: []string{"a  b\tc"}, want: []string{"a  b\tc"}},
		{name: "blank lines kept", input: []string{"a", "   ", "", "\r", "b"}, want: []string{"a", "", "", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lines(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, len(tt.input))
		})
	}
}

func TestLines_Idempotent(t *testing.T) {
	inputs := [][]string{
		{"a \r", " b ", "", "\t", "## 2024-01-02  "},
		{"x\r\r", "  y  \t"},
	}
	for _, in := range inputs {
		once := Lines(in)
		assert.Equal(t, once, Lines(once))
	}
}

func TestLines_DoesNotMutateInput(t *testing.T) {
	in := []string{"a  ", "b\r"}
	_ = Lines(in)
	assert.Equal(t, []string{"a  ", "b\r"}, in)
}
