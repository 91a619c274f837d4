package receipt

import (
	"math"
	"regexp"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestPadRight(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"pads short text", "ab", 5, "ab   "},
		{"exact width untouched", "abcde", 5, "abcde"},
		{"truncates long text", "abcdefgh", 5, "abcde"},
		{"empty text", "", 3, "   "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padRight(tt.text, tt.width)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, tt.width)
		})
	}
}

func TestPadLeft(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"pads short text", "ab", 5, "   ab"},
		{"exact width untouched", "abcde", 5, "abcde"},
		{"truncates long text", "abcdefgh", 5, "abcde"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padLeft(tt.text, tt.width)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, tt.width)
		})
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"even remainder splits evenly", "ab", 6, "  ab  "},
		{"odd spare space goes right", "ab", 5, " ab  "},
		{"truncates long text", "abcdefgh", 5, "abcde"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := center(tt.text, tt.width)
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, tt.width)
		})
	}
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits on one line", "hello world", 20, []string{"hello world"}},
		{"wraps greedily", "one two three four", 9, []string{"one two", "three", "four"}},
		{"overlong word kept whole", "supercalifragilistic", 5, []string{"supercalifragilistic"}},
		{"empty input yields no lines", "", 10, nil},
		{"whitespace only yields no lines", "   \t ", 10, nil},
		{"collapses whitespace runs", "a   b\t\tc", 10, []string{"a b c"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapText(tt.text, tt.width))
		})
	}
}

// Joining the wrapped lines with single spaces must reconstruct the input
// with whitespace runs collapsed: wrapping never loses word content.
func TestWrapTextLossless(t *testing.T) {
	inputs := []string{
		"Grilled Chicken Sandwich With Fries",
		"a bb ccc dddd eeeee ffffff",
		"one",
		"word word word word word word word word",
	}
	for _, in := range inputs {
		for width := 1; width <= 20; width++ {
			got := strings.Join(wrapText(in, width), " ")
			want := strings.Join(strings.Fields(in), " ")
			assert.Equal(t, want, got, "input %q width %d", in, width)
		}
	}
}

// Arabic text must pad and truncate on rune boundaries: every padded line
// is exactly width runes long and truncation never leaves a partial rune.
func TestPaddingCountsRunes(t *testing.T) {
	for _, fn := range []func(string, int) string{padRight, padLeft, center} {
		got := fn("شاورما", 11)
		assert.Equal(t, 11, utf8.RuneCountInString(got))
		assert.True(t, utf8.ValidString(got))
	}

	assert.Equal(t, "شاورم", padRight("شاورما عربي", 5))
	assert.Equal(t, "شاورم", padLeft("شاورما عربي", 5))
	assert.Equal(t, "شاورم", center("شاورما عربي", 5))
	assert.True(t, utf8.ValidString(padRight("شاورما عربي", 5)))
}

func TestWrapTextCountsRunes(t *testing.T) {
	// Three 6-rune words: two fit on a 13-rune line, the third wraps.
	lines := wrapText("شاورما شاورما شاورما", 13)
	assert.Equal(t, []string{"شاورما شاورما", "شاورما"}, lines)
	for _, l := range lines {
		assert.LessOrEqual(t, utf8.RuneCountInString(l), 13)
	}
}

func TestFormatMoney(t *testing.T) {
	pattern := regexp.MustCompile(`^-?\d+\.\d{2}$`)

	tests := []struct {
		v    float64
		want string
	}{
		{0, "0.00"},
		{10, "10.00"},
		{3.456, "3.46"},
		{-2.5, "-2.50"},
		{1234.5, "1234.50"},
		{math.NaN(), "0.00"},
		{math.Inf(1), "0.00"},
		{math.Inf(-1), "0.00"},
	}
	for _, tt := range tests {
		got := formatMoney(tt.v)
		assert.Equal(t, tt.want, got)
		assert.Regexp(t, pattern, got)
	}
}

func TestFormatDateAndTime(t *testing.T) {
	ts := time.Date(2026, 8, 31, 9, 5, 0, 0, time.UTC)
	assert.Equal(t, "08/31/2026", formatDate(ts))
	assert.Equal(t, "09:05", formatTime(ts))
}

func TestDivider(t *testing.T) {
	assert.Equal(t, "--------", divider(8))
}
