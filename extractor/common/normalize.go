package common

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// maxKeyLen caps normalized keys; spreadsheet titles occasionally carry whole
// formula remnants and we only need a stable identifier.
const maxKeyLen = 100

var (
	stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	keyPunct     = regexp.MustCompile(`[()=+\-]`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// Normalize converts text into the canonical comparison form used everywhere
// in the engine: accents decomposed and removed, lowercased, trimmed. It is
// total; any input yields a (possibly empty) string.
func Normalize(s string) string {
	out, _, err := transform.String(stripAccents, strings.ToLower(s))
	if err != nil {
		out = strings.ToLower(s)
	}
	return strings.TrimSpace(out)
}

// NormalizeKey derives the lookup identifier for an account title: normalized
// text with the punctuation markers accountants sprinkle on DRE lines
// ("(=)", "(-)", "(+)") stripped, whitespace runs collapsed to underscores,
// truncated to a safe length. "Receita Líquida (=)" -> "receita_liquida".
func NormalizeKey(s string) string {
	k := Normalize(s)
	k = keyPunct.ReplaceAllString(k, "")
	k = strings.TrimSpace(k)
	k = whitespace.ReplaceAllString(k, "_")
	if len(k) > maxKeyLen {
		k = k[:maxKeyLen]
	}
	return k
}
