// Package tokenizer splits Bambara text into tokens with byte offsets.
//
// The package provides two API layers:
//
//   - Chunks: Tokenize returns whitespace-delimited tokens, splitting an
//     elided particle from the word it is glued to ("b'a" becomes "b'" and
//     "a"). This is the view the contraction engine and the normalizer use.
//
//   - Fine-grained: WordTokens returns Word, Elision, Number, Punctuation,
//     Space and Symbol tokens. The invariant s[t.Start:t.End] == t.Text holds
//     for every token, and concatenating all token texts reconstructs the
//     original string.
//
// Words is a convenience wrapper returning word texts only.
//
// All functions are safe for concurrent use by multiple goroutines.
//
// Known limitations:
//
//   - Apostrophes are always read as elision marks when they sit between two
//     letters. French elisions (l'eau, j'ai) are split the same way; callers
//     decide what to do with them.
//   - Sign characters are never part of a Number token.
package tokenizer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidEncoding is returned when the input is not valid UTF-8.
var ErrInvalidEncoding = errors.New("tokenizer: invalid UTF-8 encoding")

// wordsPerTokenEstimate is the estimated ratio of total tokens to word tokens,
// used to pre-allocate the words slice in the Words convenience function.
const wordsPerTokenEstimate = 2

// TokenType classifies a token.
type TokenType int

const (
	Word        TokenType = iota // Letters with optional tone marks and hyphens
	Elision                      // Word ending in an elision apostrophe: b', k', n'
	Number                       // Digits, with optional . , : separators between digit runs
	Punctuation                  // Punctuation marks: . , ! ? : ; ( ) etc.
	Space                        // Contiguous whitespace (spaces, tabs, newlines)
	Symbol                       // Everything else: emoji, currency, mathematical symbols, etc.
)

// String returns the name of the token type.
func (t TokenType) String() string {
	switch t {
	case Word:
		return "Word"
	case Elision:
		return "Elision"
	case Number:
		return "Number"
	case Punctuation:
		return "Punctuation"
	case Space:
		return "Space"
	case Symbol:
		return "Symbol"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token represents a unit of text with its position and classification.
type Token struct {
	Text    string    // The token text
	Start   int       // Byte offset in the original string (inclusive)
	End     int       // Byte offset in the original string (exclusive)
	Type    TokenType // Classification of the token
	HasTone bool      // Whether Text carries at least one tone diacritic
}

// String returns a debug representation, e.g. Elision("b'")[0:2].
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// Adjacent reports whether next starts exactly where t ends.
func (t Token) Adjacent(next Token) bool {
	return t.End == next.Start
}

// Tokenize splits s into whitespace-delimited tokens. Punctuation attached
// to a word stays in its token. A token is split after an elision apostrophe
// that sits between two letters, so "k'a" yields "k'" (Elision) and "a"
// (Word) with adjacent offsets.
//
// Returns ErrInvalidEncoding if s is not valid UTF-8.
func Tokenize(s string) ([]Token, error) {
	if s == "" {
		return nil, nil
	}
	if pos := invalidUTF8(s); pos >= 0 {
		return nil, fmt.Errorf("%w at byte %d", ErrInvalidEncoding, pos)
	}
	return chunkTokens(s), nil
}

// WordTokens splits text into all tokens with metadata.
// Returns Word, Elision, Number, Punctuation, Space and Symbol tokens.
// Invalid UTF-8 bytes become single-byte Symbol tokens.
func WordTokens(s string) []Token {
	if s == "" {
		return nil
	}
	return wordTokens(s)
}

// Words returns the texts of Word and Elision tokens.
// For full control, use WordTokens and filter by Type.
func Words(s string) []string {
	if s == "" {
		return nil
	}
	tokens := wordTokens(s)
	words := make([]string, 0, len(tokens)/wordsPerTokenEstimate)
	for _, t := range tokens {
		if t.Type == Word || t.Type == Elision {
			words = append(words, t.Text)
		}
	}
	return words
}

// Join reassembles tokens with single spaces. An Elision token is glued to
// the token that follows it.
func Join(tokens []Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if t.Text == "" {
			continue
		}
		if b.Len() > 0 && !(i > 0 && tokens[i-1].Type == Elision && tokens[i-1].Text != "") {
			b.WriteByte(' ')
		}
		b.WriteString(t.Text)
	}
	return b.String()
}

// Texts returns the text of every token.
func Texts(tokens []Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Text
	}
	return out
}
