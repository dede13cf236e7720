package tokenizer

import (
	"unicode"
	"unicode/utf8"

	"github.com/sudoping01/bambara-text-normalization/internal/bmcase"
	"github.com/sudoping01/bambara-text-normalization/ortho"
)

// chunkTokens splits s on whitespace and separates elided particles.
// The caller guarantees s is non-empty and valid UTF-8.
func chunkTokens(s string) []Token {
	tokens := make([]Token, 0, len(s)/4+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}
		start := i
		for i < len(s) {
			r, size = utf8.DecodeRuneInString(s[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}
		tokens = appendChunk(tokens, s, start, i)
	}

	return tokens
}

// appendChunk appends the tokens of the chunk s[start:end], cutting after
// every elision apostrophe.
func appendChunk(tokens []Token, s string, start, end int) []Token {
	for {
		cut := elisionCut(s[start:end])
		if cut < 0 {
			break
		}
		tokens = append(tokens, newToken(s, start, start+cut, Elision))
		start += cut
	}
	return append(tokens, newToken(s, start, end, classifyChunk(s[start:end])))
}

// elisionCut returns the offset just past the first apostrophe in c that
// follows a letter and precedes a letter, or -1.
func elisionCut(c string) int {
	for j, r := range c {
		if j == 0 || !bmcase.IsApostrophe(r) {
			continue
		}
		next := j + utf8.RuneLen(r)
		if next >= len(c) {
			return -1
		}
		nr, _ := utf8.DecodeRuneInString(c[next:])
		if isWordRune(lastRune(c[:j])) && unicode.IsLetter(nr) {
			return next
		}
	}
	return -1
}

// classifyChunk assigns a type to a whitespace-delimited chunk.
func classifyChunk(c string) TokenType {
	var letters, digits, puncts, others int
	for _, r := range c {
		switch {
		case unicode.IsLetter(r) || unicode.Is(unicode.Mn, r):
			letters++
		case unicode.IsDigit(r):
			digits++
		case unicode.IsPunct(r):
			puncts++
		default:
			others++
		}
	}

	switch {
	case letters > 0:
		if trimmed, ok := bmcase.TrimApostrophe(c); ok && isParticle(trimmed) {
			return Elision
		}
		return Word
	case digits > 0:
		return Number
	case others == 0 && puncts > 0:
		return Punctuation
	default:
		return Symbol
	}
}

// isParticle reports whether p looks like an elided particle: one or two
// letters, as in b, k, n or qu.
func isParticle(p string) bool {
	n := 0
	for _, r := range p {
		if !unicode.IsLetter(r) {
			return false
		}
		n++
	}
	return n > 0 && n <= 2
}

func newToken(s string, start, end int, typ TokenType) Token {
	text := s[start:end]
	return Token{
		Text:    text,
		Start:   start,
		End:     end,
		Type:    typ,
		HasTone: typ != Number && ortho.HasTones(text),
	}
}

// wordTokens splits s into tokens using a rune-by-rune state machine.
// The caller guarantees s is non-empty.
//
// Rule priority (highest first):
//   - Whitespace runs
//   - Number runs (. , : between digit runs)
//   - Word runs (letters, tone marks, single hyphens between letters),
//     ending at an elision apostrophe
//   - Default unicode classification
func wordTokens(s string) []Token {
	tokens := make([]Token, 0, len(s)/4+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		// Whitespace: merge contiguous into one Space token
		if unicode.IsSpace(r) {
			start := i
			i += size
			for i < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[i:])
				if !unicode.IsSpace(nr) {
					break
				}
				i += ns
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Space})
			continue
		}

		if isDigitByte(s[i]) {
			tok := scanNumber(s, i)
			tokens = append(tokens, tok)
			i = tok.End
			continue
		}

		if unicode.IsLetter(r) {
			tok := scanWord(s, i)
			tokens = append(tokens, tok)
			i = tok.End
			continue
		}

		// Punctuation: a run of hyphens is one token, anything else is one rune
		if unicode.IsPunct(r) {
			start := i
			i += size
			if r == '-' {
				for i < len(s) && s[i] == '-' {
					i++
				}
			}
			tokens = append(tokens, Token{Text: s[start:i], Start: start, End: i, Type: Punctuation})
			continue
		}

		// Fallback: treat unclassified runes (and invalid bytes) as Symbol
		tokens = append(tokens, Token{Text: s[i : i+size], Start: i, End: i + size, Type: Symbol})
		i += size
	}

	return tokens
}

// scanNumber reads a number token starting at position pos.
// A separator (. , :) is kept only when a digit follows it.
func scanNumber(s string, pos int) Token {
	i := pos
	for i < len(s) {
		if isDigitByte(s[i]) {
			i++
			continue
		}
		if (s[i] == '.' || s[i] == ',' || s[i] == ':') && i+1 < len(s) && isDigitByte(s[i+1]) {
			i++
			continue
		}
		break
	}
	return Token{Text: s[pos:i], Start: pos, End: i, Type: Number}
}

// scanWord reads a word token starting at position pos.
// A word is a run of letters and combining marks, joined across single
// hyphens. An apostrophe that follows the run and precedes a letter ends the
// token and is included in it, making it an Elision.
func scanWord(s string, pos int) Token {
	i := consumeWordRun(s, pos)

	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		next := i + size

		if r == '-' && next < len(s) {
			nr, _ := utf8.DecodeRuneInString(s[next:])
			if unicode.IsLetter(nr) {
				i = consumeWordRun(s, next)
				continue
			}
			break
		}

		if bmcase.IsApostrophe(r) && next < len(s) {
			nr, _ := utf8.DecodeRuneInString(s[next:])
			if unicode.IsLetter(nr) {
				text := s[pos:next]
				return Token{Text: text, Start: pos, End: next, Type: Elision, HasTone: ortho.HasTones(text)}
			}
		}

		break
	}

	text := s[pos:i]
	return Token{Text: text, Start: pos, End: i, Type: Word, HasTone: ortho.HasTones(text)}
}

// consumeWordRun consumes a contiguous run of letters and combining marks.
func consumeWordRun(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !isWordRune(r) {
			break
		}
		pos += size
	}
	return pos
}

// isWordRune reports whether r can continue a word: a letter or a combining mark.
func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Mn, r)
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

// invalidUTF8 returns the byte offset of the first invalid sequence, or -1.
func invalidUTF8(s string) int {
	if utf8.ValidString(s) {
		return -1
	}
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// isDigitByte returns true for ASCII digit bytes.
func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}
