package ortho

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Tone classifies the tone diacritic carried by a vowel.
type Tone int

const (
	ToneNone    Tone = iota // no tone mark
	ToneHigh                // acute, U+0301
	ToneLow                 // grave, U+0300
	ToneRising              // caron, U+030C
	ToneFalling             // circumflex, U+0302
	ToneMid                 // macron, U+0304
)

var toneNames = [...]string{
	ToneNone:    "none",
	ToneHigh:    "high",
	ToneLow:     "low",
	ToneRising:  "rising",
	ToneFalling: "falling",
	ToneMid:     "mid",
}

var toneMarks = [...]rune{
	ToneHigh:    '\u0301',
	ToneLow:     '\u0300',
	ToneRising:  '\u030C',
	ToneFalling: '\u0302',
	ToneMid:     '\u0304',
}

// String returns the tone name: "none", "high", "low", "rising", "falling" or "mid".
func (t Tone) String() string {
	if t >= 0 && int(t) < len(toneNames) {
		return toneNames[t]
	}
	return fmt.Sprintf("Tone(%d)", int(t))
}

// Mark returns the combining diacritic for t, or 0 for ToneNone.
func (t Tone) Mark() rune {
	if t > ToneNone && int(t) < len(toneMarks) {
		return toneMarks[t]
	}
	return 0
}

// MarshalText encodes t as its name.
func (t Tone) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a tone name.
func (t *Tone) UnmarshalText(data []byte) error {
	for i, name := range toneNames {
		if name == string(data) {
			*t = Tone(i)
			return nil
		}
	}
	return fmt.Errorf("ortho: unknown tone %q", data)
}

// ToneOf returns the tone encoded by the combining mark r.
func ToneOf(r rune) Tone {
	switch r {
	case '\u0301':
		return ToneHigh
	case '\u0300':
		return ToneLow
	case '\u030C':
		return ToneRising
	case '\u0302':
		return ToneFalling
	case '\u0304':
		return ToneMid
	}
	return ToneNone
}

// IsToneMark reports whether r is a combining tone diacritic.
func IsToneMark(r rune) bool {
	return ToneOf(r) != ToneNone
}

func isNonToneMark(r rune) bool {
	return unicode.Is(unicode.Mn, r) && !IsToneMark(r)
}

// RemoveTones strips every tone diacritic from s and returns NFC text.
// Base letters and non-tone diacritics are preserved.
func RemoveTones(s string) string {
	if !HasTones(s) {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(IsToneMark)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// RemoveNonToneDiacritics strips every combining mark that is not a tone
// diacritic (cedilla, diaeresis, tilde, ...) and returns NFC text.
func RemoveNonToneDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isNonToneMark)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// GetTone returns the first tone found in s, or ToneNone.
func GetTone(s string) Tone {
	for _, r := range norm.NFD.String(s) {
		if t := ToneOf(r); t != ToneNone {
			return t
		}
	}
	return ToneNone
}

// HasTones reports whether s carries at least one tone diacritic.
func HasTones(s string) bool {
	return GetTone(s) != ToneNone
}

// CountTones returns the number of marks of each tone in s.
// ToneNone is never a key.
func CountTones(s string) map[Tone]int {
	counts := make(map[Tone]int)
	for _, r := range norm.NFD.String(s) {
		if t := ToneOf(r); t != ToneNone {
			counts[t]++
		}
	}
	return counts
}

// AddTone returns the NFC form of vowel carrying tone t.
// Returns an error if vowel is not a Bambara vowel or already carries a tone.
func AddTone(vowel string, t Tone) (string, error) {
	base := RemoveTones(vowel)
	if utf8.RuneCountInString(base) != 1 || !IsVowel([]rune(base)[0]) {
		return "", fmt.Errorf("ortho: %q is not a single vowel", vowel)
	}
	if base != vowel {
		return "", fmt.Errorf("ortho: %q already carries a tone", vowel)
	}
	if t == ToneNone {
		return base, nil
	}
	mark := t.Mark()
	if mark == 0 {
		return "", fmt.Errorf("ortho: invalid tone %d", int(t))
	}
	return norm.NFC.String(base + string(mark)), nil
}

// Letter is a base letter with the tone it carries.
type Letter struct {
	Base rune `json:"base"`
	Tone Tone `json:"tone"`
}

// Letters decomposes s into letters with their tones. Non-letters and
// non-tone diacritics are skipped. A tone mark applies to the letter
// immediately before it.
func Letters(s string) []Letter {
	out := make([]Letter, 0, len(s))
	for _, r := range norm.NFD.String(s) {
		switch {
		case IsToneMark(r):
			if n := len(out); n > 0 && out[n-1].Tone == ToneNone {
				out[n-1].Tone = ToneOf(r)
			}
		case unicode.IsLetter(r):
			out = append(out, Letter{Base: r})
		}
	}
	return out
}

// baseRune returns r without any combining marks.
func baseRune(r rune) rune {
	d := norm.NFD.String(string(r))
	b, _ := utf8.DecodeRuneInString(d)
	return b
}
