package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, removes combining (diacritic) marks,
// and recomposes, so accented letters collapse to their ASCII base
// (e.g. "Élodie" -> "Elodie").
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize canonicalizes a raw name string into a comparable form:
// lowercase, diacritics stripped, every non-letter replaced by a space,
// whitespace runs collapsed, and the result trimmed. Empty input yields
// "". The function is pure, total, and idempotent.
func Normalize(name string) string {
	if name == "" {
		return ""
	}

	s := strings.ToLower(name)
	s, _, _ = transform.String(stripMarks, s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		} else {
			// Separators like "-" in "Al-Ali" become word boundaries.
			b.WriteByte(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}
