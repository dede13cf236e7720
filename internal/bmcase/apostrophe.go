package bmcase

import (
	"strings"
	"unicode/utf8"
)

// Apostrophe is the canonical elision mark.
const Apostrophe = '\''

// IsApostrophe reports whether r is one of the apostrophe-like marks found
// in Bambara text: ASCII apostrophe, typographic quotes, modifier letters,
// grave and acute accents, prime and the fullwidth apostrophe.
func IsApostrophe(r rune) bool {
	switch r {
	case '\u0027', // apostrophe
		'\u2019', // right single quotation mark
		'\u2018', // left single quotation mark
		'\u02BC', // modifier letter apostrophe
		'\u02BB', // modifier letter turned comma
		'\u02B9', // modifier letter prime
		'\u0060', // grave accent
		'\u00B4', // acute accent
		'\u2032', // prime
		'\uFF07': // fullwidth apostrophe
		return true
	}
	return false
}

// CanonicalApostrophes replaces every apostrophe variant in s with U+0027.
func CanonicalApostrophes(s string) string {
	hasVariant := false
	for _, r := range s {
		if r != Apostrophe && IsApostrophe(r) {
			hasVariant = true
			break
		}
	}
	if !hasVariant {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if IsApostrophe(r) {
			b.WriteByte(Apostrophe)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TrimApostrophe removes one trailing apostrophe of any variant from s.
func TrimApostrophe(s string) (string, bool) {
	r, size := utf8.DecodeLastRuneInString(s)
	if size > 0 && IsApostrophe(r) {
		return s[:len(s)-size], true
	}
	return s, false
}
