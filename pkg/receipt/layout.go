package receipt

import (
	"fmt"
	"math"
	"strings"
	"time"
	"unicode/utf8"
)

// Widths are measured in runes, not bytes, so localized product names and
// Arabic free text pad and truncate on character boundaries.

// padRight pads text with trailing spaces to exactly width characters,
// truncating when it is already longer. Single-line fields (dates, labels)
// truncate rather than wrap; wrapping is reserved for item names and the
// free-text header/footer blocks.
func padRight(text string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return text + strings.Repeat(" ", width-len(runes))
}

// padLeft pads text with leading spaces to exactly width characters,
// truncating when it is already longer.
func padLeft(text string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return strings.Repeat(" ", width-len(runes)) + text
}

// center pads text on both sides to exactly width characters. The odd spare
// space goes on the right.
func center(text string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) >= width {
		return string(runes[:width])
	}
	left := (width - len(runes)) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", width-len(runes)-left)
}

// wrapText splits text on whitespace and packs words greedily into lines of
// at most width characters. A single word longer than width is emitted as its
// own overlong line rather than split mid-word. Empty input yields no lines.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	currentLen := utf8.RuneCountInString(current)
	for _, word := range words[1:] {
		wordLen := utf8.RuneCountInString(word)
		if currentLen+1+wordLen <= width {
			current += " " + word
			currentLen += 1 + wordLen
		} else {
			lines = append(lines, current)
			current = word
			currentLen = wordLen
		}
	}
	return append(lines, current)
}

// formatMoney renders an amount with exactly two decimal places, no currency
// symbol and no thousands separators. Non-finite values normalize to zero so
// a malformed amount degrades to "0.00" instead of aborting a print job.
func formatMoney(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return fmt.Sprintf("%.2f", v)
}

// formatDate renders the numeric MM/DD/YYYY date used on receipts.
func formatDate(t time.Time) string {
	return t.Format("01/02/2006")
}

// formatTime renders the 2-digit hour:minute stamp.
func formatTime(t time.Time) string {
	return t.Format("15:04")
}

// divider is a full-width separator line.
func divider(width int) string {
	return strings.Repeat("-", width)
}
