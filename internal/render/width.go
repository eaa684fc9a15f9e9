// Package render maps a finalized report onto fixed-width SVG panels. Two
// visual styles are supported: a neofetch-like key/value panel and a
// terminal window with box-drawing borders.
package render

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Ellipsis marks truncated values. Its own width counts against the budget.
const Ellipsis = "..."

// CleanInvisible strips runes that render at zero width but would skew
// column math: format characters (which include zero-width and directional
// controls), nonspacing marks and enclosing marks.
func CleanInvisible(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.Is(unicode.Cf, r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Me, r) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Width measures the rendered column width of a string after cleaning.
// East Asian wide and fullwidth runes count as two columns.
func Width(s string) int {
	return runewidth.StringWidth(CleanInvisible(s))
}

// Truncate fits a string into budget columns. A string already within the
// budget is returned unmodified (after cleaning); anything longer is cut
// with a trailing ellipsis whose width is included in the budget.
func Truncate(s string, budget int) string {
	s = CleanInvisible(s)
	if runewidth.StringWidth(s) <= budget {
		return s
	}
	if budget <= len(Ellipsis) {
		return runewidth.Truncate(s, budget, "")
	}
	return runewidth.Truncate(s, budget, Ellipsis)
}

// PadRight extends a string with spaces to exactly budget columns,
// truncating first when it runs over.
func PadRight(s string, budget int) string {
	s = Truncate(s, budget)
	if pad := budget - Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

// xmlEscaper rewrites characters that would break SVG text nodes.
var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// escape makes a string safe for embedding in SVG markup.
func escape(s string) string {
	return xmlEscaper.Replace(s)
}
