package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text untouched", "Go, SQL, Docker", "Go, SQL, Docker"},
		{"angle brackets stripped, rest preserved", "C++ <script> & Go", "C++ script & Go"},
		{"only brackets becomes empty", "<>", ""},
		{"whitespace trimmed", "  Python  ", "Python"},
		{"brackets then trim", "  <b>bold</b>  ", "bbold/b"},
		{"empty stays empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5))
	assert.Equal(t, "abc", Truncate("abcdef", 3))
	assert.Equal(t, "", Truncate("", 10))
	// rune-safe: multibyte characters are not split
	assert.Equal(t, "hél", Truncate("héllo", 3))
}

func TestClampSentences(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-1, 2},
		{1, 2},
		{2, 2},
		{4, 4},
		{6, 6},
		{10, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampSentences(tt.in), "clamp(%d)", tt.in)
	}
}
