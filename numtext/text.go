// Running-text passes for numbers.
package numtext

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// maxPhraseWords bounds how far ContractNumbers looks ahead from a number word.
const maxPhraseWords = 32

var (
	digitsPattern = regexp.MustCompile(`\b\d+(?:[.,]\d+)*\b`)
	spanPattern   = regexp.MustCompile(`[^\s-]+`)
)

// ExpandNumbers replaces every digit sequence in text with its Bambara
// phrase. Sequences that cannot be converted are left unchanged.
func ExpandNumbers(text string) string {
	if !strings.ContainsAny(text, "0123456789") {
		return text
	}
	return digitsPattern.ReplaceAllStringFunc(text, func(m string) string {
		words, err := convertDecimal(m)
		if err != nil {
			return m
		}
		return words
	})
}

// ContractNumbers replaces every maximal Bambara numeral phrase in text with
// its digits. Punctuation around the phrase is kept. A lone magnitude word
// ("waa", "baa") is left alone since it is usually not a number, and so are
// the particles "wa" and "ba". Hyphens end a phrase: "kelen-fila" becomes "1-2".
func ContractNumbers(text string) string {
	spans := spanPattern.FindAllStringIndex(text, -1)
	if len(spans) == 0 {
		return text
	}

	var b strings.Builder
	last := 0
	changed := false

	for i := 0; i < len(spans); {
		j, digits := longestPhrase(text, spans, i)
		if j == i {
			i++
			continue
		}

		lead, _, _ := splitPunct(text[spans[i][0]:spans[i][1]])
		_, _, trail := splitPunct(text[spans[j-1][0]:spans[j-1][1]])

		b.WriteString(text[last:spans[i][0]])
		b.WriteString(lead)
		b.WriteString(digits)
		b.WriteString(trail)
		last = spans[j-1][1]
		changed = true
		i = j
	}

	if !changed {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// longestPhrase returns the end span index and digits of the longest
// numeral phrase starting at span i, or (i, "") when none starts there.
func longestPhrase(text string, spans [][]int, i int) (int, string) {
	first := text[spans[i][0]:spans[i][1]]
	_, core, _ := splitPunct(first)
	if !IsNumberWord(core) {
		return i, ""
	}

	limit := min(len(spans), i+maxPhraseWords)
	raw := []string{core}
	folded := []string{foldWord(core)}
	for k := i; k < limit; k++ {
		if k > i {
			if strings.TrimSpace(text[spans[k-1][1]:spans[k][0]]) != "" {
				break
			}
			lead, c, _ := splitPunct(text[spans[k][0]:spans[k][1]])
			if lead != "" || c == "" {
				break
			}
			f := foldWord(c)
			if _, ok := lookupFolded(f); !ok {
				break
			}
			raw = append(raw, c)
			folded = append(folded, f)
		}
		if _, _, trail := splitPunct(text[spans[k][0]:spans[k][1]]); trail != "" {
			break
		}
	}

	for n := len(raw); n > 0; n-- {
		if n == 1 && isBareMagnitude(folded[0]) {
			continue
		}
		p := &parser{phrase: strings.Join(raw[:n], " "), raw: raw[:n], words: folded[:n]}
		if digits, err := p.decimal(); err == nil {
			return i + n, digits
		}
	}
	return i, ""
}

func isBareMagnitude(folded string) bool {
	lx, ok := lexicon[folded]
	return ok && (lx.kind == kindThousand || lx.kind == kindMillion)
}

// splitPunct splits leading and trailing non-word runes off w.
func splitPunct(w string) (lead, core, trail string) {
	start := 0
	for start < len(w) {
		r, size := utf8.DecodeRuneInString(w[start:])
		if isWordRune(r) {
			break
		}
		start += size
	}
	end := len(w)
	for end > start {
		r, size := utf8.DecodeLastRuneInString(w[start:end])
		if isWordRune(r) {
			break
		}
		end -= size
	}
	return w[:start], w[start:end], w[end:]
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.Is(unicode.Mn, r)
}
