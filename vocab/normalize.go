package vocab

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// combiningDiacriticals is the Combining Diacritical Marks block U+0300..U+036F
var combiningDiacriticals = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0300, Hi: 0x036f, Stride: 1}},
}

// Normalize lowercases s, strips accents and trims surrounding space
// Trim runs last: removing a trailing mark can expose whitespace
func Normalize(s string) string {
	s = strings.ToLower(s)

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(combiningDiacriticals)))
	stripped, _, err := transform.String(t, s)
	if err != nil {
		// Not reachable for valid transformers over an in-memory string
		stripped = s
	}

	return strings.TrimSpace(stripped)
}

// Matches reports whether raw input is accepted for the expected answer
func Matches(raw, expected string) bool {
	return Normalize(raw) == Normalize(expected)
}
