package normalize

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sudoping01/bambara-text-normalization/contraction"
	"github.com/sudoping01/bambara-text-normalization/datetime"
	"github.com/sudoping01/bambara-text-normalization/internal/bmcase"
	"github.com/sudoping01/bambara-text-normalization/numtext"
	"github.com/sudoping01/bambara-text-normalization/ortho"
	"github.com/sudoping01/bambara-text-normalization/tokenizer"
)

type pass struct {
	name string
	fn   func(string) string
}

// buildPasses returns the enabled passes in pipeline order.
func buildPasses(cfg Config, engine *contraction.Engine) []pass {
	passes := []pass{{"nfc", bmcase.ComposeNFC}}
	add := func(on bool, name string, fn func(string) string) {
		if on {
			passes = append(passes, pass{name, fn})
		}
	}

	add(cfg.NormalizeApostrophes, "apostrophes", bmcase.CanonicalApostrophes)

	letters := letterPasses(cfg)
	passes = append(passes, letters...)

	add(cfg.ContractionMode != contraction.Preserve, "contractions", engine.Rewrite)

	if cfg.NumeralDirection == ToDigits {
		add(cfg.ExpandDates, "dates", datetime.ContractDates)
		add(cfg.ExpandTimes, "times", datetime.ContractTimes)
		add(cfg.ExpandNumbers, "numbers", numtext.ContractNumbers)
	} else {
		var opts []datetime.DateOption
		if cfg.IncludeKalo {
			opts = append(opts, datetime.WithKalo())
		}
		add(cfg.ExpandDates, "dates", func(s string) string { return datetime.ExpandDates(s, opts...) })
		add(cfg.ExpandTimes, "times", datetime.ExpandTimes)
		add(cfg.ExpandNumbers, "numbers", numtext.ExpandNumbers)
	}

	add(cfg.Lowercase, "lowercase", func(s string) string {
		// Lowercasing can expose letters the letter passes map (Ε -> ε).
		s = bmcase.ToLower(s)
		for _, p := range letters {
			s = p.fn(s)
		}
		return s
	})
	add(cfg.RemovePunctuation, "punctuation", removePunctuation)
	add(cfg.StripRepetitions, "repetitions", stripRepetitions)
	add(cfg.NormalizeCompounds, "compounds", normalizeCompounds)
	// Punctuation removal can leave a particle next to a pronoun.
	add(cfg.ContractionMode == contraction.Contract, "contractions_final", engine.Rewrite)
	add(cfg.NormalizeWhitespace, "whitespace", normalizeWhitespace)

	return passes
}

// letterPasses returns the enabled rune-level orthography and tone passes.
func letterPasses(cfg Config) []pass {
	var passes []pass
	add := func(on bool, name string, fn func(string) string) {
		if on {
			passes = append(passes, pass{name, fn})
		}
	}
	add(cfg.NormalizeLegacyOrthography, "legacy_orthography", ortho.Map)
	add(cfg.NormalizeSpecialChars, "special_chars", ortho.MapSpecialChars)
	add(cfg.HandleFrenchLoanwords, "french_loanwords", ortho.MapFrenchLetters)
	add(!cfg.PreserveTones, "tones", func(s string) string {
		s = ortho.RemoveTones(s)
		if cfg.NormalizeLegacyOrthography {
			// n̄y becomes a digraph once the tone is gone.
			s = ortho.Map(s)
		}
		return s
	})
	add(cfg.RemoveDiacriticsExceptTones, "non_tone_diacritics", ortho.RemoveNonToneDiacritics)
	return passes
}

// removePunctuation drops punctuation except apostrophes and a single
// separator between two digits (1.5, 7:30, 13-10-2024). A punctuation run
// between two non-space characters becomes a space so words stay apart.
func removePunctuation(s string) string {
	if !strings.ContainsFunc(s, isRemovablePunct) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isRemovablePunct(r) {
			b.WriteString(s[i : i+size])
			i += size
			continue
		}

		j := i + size
		for j < len(s) {
			r2, size2 := utf8.DecodeRuneInString(s[j:])
			if !isRemovablePunct(r2) {
				break
			}
			j += size2
		}

		prev, _ := utf8.DecodeLastRuneInString(s[:i])
		next, _ := utf8.DecodeRuneInString(s[j:])
		switch {
		case j == i+size && isDigitSeparator(r) && isASCIIDigit(prev) && isASCIIDigit(next):
			b.WriteRune(r)
		case i > 0 && j < len(s) && !unicode.IsSpace(prev) && !unicode.IsSpace(next):
			b.WriteByte(' ')
		}
		i = j
	}

	return b.String()
}

func isRemovablePunct(r rune) bool {
	return unicode.IsPunct(r) && !bmcase.IsApostrophe(r)
}

func isDigitSeparator(r rune) bool {
	switch r {
	case '.', ',', ':', '/', '-':
		return true
	}
	return false
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// stripRepetitions shortens runs of three or more identical letters to two.
// Digits are left alone so numbers keep their value.
func stripRepetitions(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	var last rune = -1
	run := 0
	changed := false
	for i, r := range s {
		if r == last {
			run++
		} else {
			last, run = r, 1
		}
		if run > 2 && unicode.IsLetter(r) {
			if !changed {
				b.WriteString(s[:i])
				changed = true
			}
			continue
		}
		if changed {
			b.WriteRune(r)
		}
	}

	if !changed {
		return s
	}
	return b.String()
}

// tensUnits are the units that follow bi in a multiple of ten.
var tensUnits = map[string]struct{}{
	"saba": {}, "naani": {}, "naanin": {}, "duuru": {}, "wɔɔrɔ": {},
	"wolonwula": {}, "wolonfila": {}, "seegin": {}, "segin": {},
	"kɔnɔntɔn": {}, "kɔnɔtɔn": {},
}

// normalizeCompounds writes "bi saba" as "bisaba" and spaces "tan ni" with
// single spaces.
func normalizeCompounds(s string) string {
	tokens := tokenizer.WordTokens(s)

	var b strings.Builder
	b.Grow(len(s))
	changed := false

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if t.Type == tokenizer.Word && i+2 < len(tokens) && tokens[i+1].Type == tokenizer.Space && tokens[i+2].Type == tokenizer.Word {
			first, second := wordKey(t.Text), wordKey(tokens[i+2].Text)
			if _, ok := tensUnits[second]; ok && first == "bi" {
				b.WriteString(t.Text)
				b.WriteString(tokens[i+2].Text)
				i += 2
				changed = true
				continue
			}
			if first == "tan" && second == "ni" && tokens[i+1].Text != " " {
				b.WriteString(t.Text)
				b.WriteByte(' ')
				b.WriteString(tokens[i+2].Text)
				i += 2
				changed = true
				continue
			}
		}
		b.WriteString(t.Text)
	}

	if !changed {
		return s
	}
	return b.String()
}

func wordKey(w string) string {
	return bmcase.ToLower(ortho.RemoveTones(w))
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
