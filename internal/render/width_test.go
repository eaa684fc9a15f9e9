package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanInvisible(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain ascii", "hello", "hello"},
		{"zero-width space and joiner", "a​b‍c", "abc"},
		{"combining accent stripped", "é", "e"},
		{"left-to-right mark", "abc‎", "abc"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanInvisible(tt.input))
		})
	}
}

func TestWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"ascii", "hello", 5},
		{"east asian wide", "日本語", 6},
		{"mixed", "Go言語", 6},
		{"zero-width ignored", "a​b", 2},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Width(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		budget int
		want   string
	}{
		{"fits untouched", "short", 10, "short"},
		{"exact fit untouched", "12345", 5, "12345"},
		{"truncated with ellipsis", "a very long description", 10, "a very ..."},
		{"wide runes respect columns", "日本語テキスト", 8, "日本..."},
		{"tiny budget drops ellipsis", "abcdef", 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.input, tt.budget)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, Width(got), tt.budget)
		})
	}
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "abcde", PadRight("abcde", 5))
	// Wide runes consume two columns each.
	assert.Equal(t, 5, Width(PadRight("日本", 5)))
	// Over-budget strings are truncated back to the budget.
	assert.Equal(t, 5, Width(PadRight("abcdefgh", 5)))
}

func TestEscape(t *testing.T) {
	assert.Equal(t, "a &amp; b", escape("a & b"))
	assert.Equal(t, "&lt;svg&gt;", escape("<svg>"))
	assert.False(t, strings.ContainsAny(escape(`"quoted"`), `"`))
}
