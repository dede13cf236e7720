// Package bmcase provides Bambara-aware case, apostrophe and composition helpers.
//
// Bambara letters outside ASCII (ɛ, ɔ, ɲ, ŋ and their capitals Ɛ, Ɔ, Ɲ, Ŋ) follow
// standard Unicode case mapping.
//
// All functions are safe for concurrent use.
package bmcase

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Lower returns the lowercase form of r.
func Lower(r rune) rune {
	return unicode.ToLower(r)
}

// ToLower returns s with every rune lowercased.
func ToLower(s string) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= utf8.RuneSelf || ('A' <= c && c <= 'Z') {
			return strings.ToLower(s)
		}
	}
	return s
}

// IsUpperInitial reports whether the first letter of s is uppercase.
func IsUpperInitial(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return unicode.IsUpper(r)
		}
	}
	return false
}

// Capitalize uppercases the first rune of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// MatchCase returns repl capitalized when src starts with an uppercase letter.
func MatchCase(src, repl string) string {
	if IsUpperInitial(src) {
		return Capitalize(repl)
	}
	return repl
}
