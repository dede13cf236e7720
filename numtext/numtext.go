// Package numtext converts between numbers and Bambara text representations.
//
// The package provides conversion in both directions:
//
//   - Convert turns an integer into its Bambara phrase.
//   - ConvertThousands does the same with a regional thousand word ("baa").
//   - ConvertDecimal reads a decimal string, fraction digits one by one.
//   - Parse and ParseDecimal turn Bambara phrases back into values.
//   - ExpandNumbers and ContractNumbers rewrite every number in running text.
//
// A phrase is a sequence of terms in strictly descending order, joined by
// "ni": miliyɔn, waa, kɛmɛ, tens (tan, mugan, bi + unit), unit. Magnitude
// words take a trailing multiplier phrase ("waa mugan ni duuru" is 25 000).
// When the band after a magnitude term would otherwise be read as part of
// its multiplier, the two are joined by "ani" instead ("waa tan ani duuru"
// is 10 005, "waa tan ni duuru" is 15 000). Every value has exactly one
// canonical phrase and Parse(Convert(n)) == n.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Integer range is 0 to 999 999 999; negative numbers are rejected.
//   - Ordinals are not supported.
//   - A single separator ("1.000") is read as a decimal point, not as
//     thousands grouping. Two or more separators are treated as grouping.
package numtext

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfRange is returned for values the grammar cannot express.
	ErrOutOfRange = errors.New("numtext: value out of range")

	// ErrMalformedPhrase is returned when a word sequence violates the numeral grammar.
	ErrMalformedPhrase = errors.New("numtext: malformed numeral phrase")
)

// ParseError describes a phrase that could not be parsed.
// It wraps ErrMalformedPhrase.
type ParseError struct {
	Phrase string // the input phrase
	Word   string // offending word; empty when input ended early
	Reason string
}

func (e *ParseError) Error() string {
	if e.Word == "" {
		return fmt.Sprintf("numtext: cannot parse %q: %s", e.Phrase, e.Reason)
	}
	return fmt.Sprintf("numtext: cannot parse %q: %s at %q", e.Phrase, e.Reason, e.Word)
}

func (e *ParseError) Unwrap() error { return ErrMalformedPhrase }

// Convert returns the Bambara phrase for n.
// Zero returns "fu". Values outside [0, 999 999 999] return ErrOutOfRange.
func Convert(n int64) (string, error) {
	return convert(n, wordThousand)
}

// ConvertThousands is Convert with thousand spelled as the given word.
// Dates use "baa": 2024 is "baa fila ni mugan ni naani".
func ConvertThousands(n int64, thousand string) (string, error) {
	thousand = strings.TrimSpace(thousand)
	if thousand == "" {
		thousand = wordThousand
	}
	return convert(n, thousand)
}

// ConvertDecimal converts a decimal number string to Bambara text.
// Accepts dot or comma as the decimal separator; fraction digits are read
// one by one after "tomi": "5.3" is "duuru tomi saba". Input with two or
// more separators is read as a grouped integer ("1.000.000").
func ConvertDecimal(s string) (string, error) {
	return convertDecimal(s)
}

// Parse converts a Bambara numeral phrase to an integer.
// Input is whitespace-normalized, case-insensitive and tone-insensitive.
// Accepts spelling variants (keme, wa, milyɔn, segin, bisaba, ...).
//
// Returns an error wrapping ErrMalformedPhrase for phrases that violate the
// grammar.
func Parse(s string) (int64, error) {
	return parse(s)
}

// ParseDecimal converts a phrase, optionally containing "tomi", to a digit
// string: "duuru tomi saba" becomes "5.3".
func ParseDecimal(s string) (string, error) {
	return parseDecimal(s)
}

// IsNumberWord reports whether w is a numeral word or one of its variants.
// Connectors (ni, ani, tomi) and the particles wa and ba are not number
// words, though Parse reads wa and ba as thousand.
func IsNumberWord(w string) bool {
	lx, ok := lookup(w)
	return ok && lx.kind != kindConnector && lx.kind != kindJoin && lx.kind != kindPoint
}

// IsPhraseWord reports whether w can appear inside a numeral phrase in
// running text: a number word or one of the connectors ni, ani, tomi.
func IsPhraseWord(w string) bool {
	_, ok := lookup(w)
	return ok
}
