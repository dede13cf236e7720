// Package ortho maps Bambara spelling variants to the modern standard
// orthography and classifies tone diacritics.
//
// The package provides:
//
//   - Map rewrites legacy spellings (ny, ng, è, ò, ñ, ...) to ɲ, ŋ, ɛ, ɔ.
//   - MapSpecialChars folds look-alike letters from Greek, Cyrillic and
//     phonetic blocks (ε, є, э, ᴐ, ɳ) onto the Bambara letters.
//   - MapFrenchLetters rewrites letters that only occur in French loans.
//   - RemoveTones, GetTone, HasTones and Letters classify tone marks.
//
// Tone marks (U+0300, U+0301, U+030C, U+0302, U+0304) are orthogonal to base
// letters: mapping never adds or removes a tone mark, and tone handling never
// changes a base letter.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Legacy è and ê are always read as ɛ, never as e carrying a low or
//     falling tone. Text that marks tone on plain e must disable legacy
//     mapping.
//   - Digraph rules apply inside every word except a closed list of words
//     where n+g is a genuine cluster (sanga).
package ortho

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sudoping01/bambara-text-normalization/internal/bmcase"
)

// Map rewrites legacy Bambara spellings to the standard orthography.
// Input is NFC-composed first. Digraphs are matched before single letters in
// one left-to-right scan, so the result is stable under a second call.
func Map(s string) string {
	if s == "" {
		return s
	}
	s = bmcase.ComposeNFC(s)
	if !needsLegacyMapping(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 8)

	for len(s) > 0 {
		end := wordEnd(s)
		if end == 0 {
			_, size := utf8.DecodeRuneInString(s)
			b.WriteString(s[:size])
			s = s[size:]
			continue
		}
		mapWord(&b, s[:end])
		s = s[end:]
	}

	return b.String()
}

// MapSpecialChars folds look-alike letters onto ɛ, Ɛ, ɔ and ŋ.
func MapSpecialChars(s string) string {
	return mapRunes(s, specialChars)
}

// MapFrenchLetters rewrites letters used only in French spelling
// (ç, œ, æ, ë, ï, ü, ÿ) to their Bambara equivalents.
func MapFrenchLetters(s string) string {
	return mapRunes(bmcase.ComposeNFC(s), frenchLetters)
}

// IsBambaraLetter reports whether r belongs to the standard Bambara alphabet.
// Base letters only: tone-marked vowels must be decomposed first.
func IsBambaraLetter(r rune) bool {
	return strings.ContainsRune(alphabet, unicode.ToLower(r))
}

// IsSpecialLetter reports whether r is one of ɛ, ɔ, ɲ, ŋ or their capitals.
func IsSpecialLetter(r rune) bool {
	switch r {
	case 'ɛ', 'Ɛ', 'ɔ', 'Ɔ', 'ɲ', 'Ɲ', 'ŋ', 'Ŋ':
		return true
	}
	return false
}

// IsVowel reports whether r is a Bambara vowel, ignoring case and tone.
func IsVowel(r rune) bool {
	switch unicode.ToLower(baseRune(r)) {
	case 'a', 'e', 'ɛ', 'i', 'o', 'ɔ', 'u':
		return true
	}
	return false
}

// HasLegacySpelling reports whether Map would change s.
func HasLegacySpelling(s string) bool {
	return Map(s) != bmcase.ComposeNFC(s)
}

// mapWord writes the mapped form of a single letter run.
func mapWord(b *strings.Builder, w string) {
	if _, ok := digraphExceptions[bmcase.ToLower(RemoveTones(w))]; ok {
		b.WriteString(w)
		return
	}

	for i := 0; i < len(w); {
		if i+2 <= len(w) {
			if repl, ok := legacyDigraphs[w[i:i+2]]; ok {
				b.WriteRune(repl)
				i += 2
				continue
			}
		}
		r, size := utf8.DecodeRuneInString(w[i:])
		if repl, ok := legacyLetters[r]; ok {
			b.WriteRune(repl)
		} else {
			b.WriteString(w[i : i+size])
		}
		i += size
	}
}

// wordEnd returns the byte length of the letter run at the start of s,
// counting combining marks as part of the run. Returns 0 if s does not start
// with a letter.
func wordEnd(s string) int {
	n := 0
	for i, r := range s {
		if unicode.IsLetter(r) || (i > 0 && unicode.Is(unicode.Mn, r)) {
			n = i + utf8.RuneLen(r)
			continue
		}
		break
	}
	return n
}

func needsLegacyMapping(s string) bool {
	if strings.ContainsAny(s, legacyLetterSet) {
		return true
	}
	for d := range legacyDigraphs {
		if strings.Contains(s, d) {
			return true
		}
	}
	return false
}

func mapRunes(s string, table map[rune]rune) string {
	found := false
	for _, r := range s {
		if _, ok := table[r]; ok {
			found = true
			break
		}
	}
	if !found {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := table[r]; ok {
			b.WriteRune(repl)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
