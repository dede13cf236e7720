package validate

import (
	"unicode"

	"github.com/sudoping01/bambara-text-normalization/internal/bmcase"
	"github.com/sudoping01/bambara-text-normalization/ortho"
	"github.com/sudoping01/bambara-text-normalization/tokenizer"
)

const (
	msgForeignLetter = "letter outside the Bambara alphabet"
	msgLegacy        = "legacy spelling"
	msgApostrophe    = "non-standard apostrophe"
	msgPlainInToned  = "word without tone marks in a tone-marked text"
	msgTonedInPlain  = "tone marks in a text mostly written without them"
)

func isWordToken(tok *tokenizer.Token) bool {
	return tok.Type == tokenizer.Word || tok.Type == tokenizer.Elision
}

// ── Foreign letters ────────────────────────────────────────────────────

// appendForeignLetterIssues flags words with letters outside the alphabet.
// Legacy spellings are mapped first so they are reported once, as legacy.
func appendForeignLetterIssues(issues []Issue, tokens []tokenizer.Token) []Issue {
	for i := range tokens {
		if len(issues) >= maxIssues {
			return issues
		}

		tok := &tokens[i]
		if !isWordToken(tok) {
			continue
		}
		mapped := ortho.Map(tok.Text)
		if !hasForeignLetter(mapped) {
			continue
		}

		issue := Issue{
			Text:     tok.Text,
			Start:    tok.Start,
			End:      tok.End,
			Type:     ForeignLetter,
			Severity: Error,
			Message:  msgForeignLetter,
		}
		fixed := ortho.RemoveNonToneDiacritics(ortho.MapSpecialChars(ortho.MapFrenchLetters(mapped)))
		if !hasForeignLetter(fixed) {
			issue.Severity = Warning
			issue.Suggestion = fixed
		}
		issues = append(issues, issue)
	}
	return issues
}

// hasForeignLetter reports whether s holds a letter outside the alphabet or
// a combining mark that is not a tone. Apostrophe look-alikes are ignored.
func hasForeignLetter(s string) bool {
	for _, r := range bmcase.DecomposeNFD(s) {
		switch {
		case bmcase.IsApostrophe(r):
		case unicode.IsLetter(r):
			if !ortho.IsBambaraLetter(r) {
				return true
			}
		case unicode.Is(unicode.Mn, r):
			if !ortho.IsToneMark(r) {
				return true
			}
		}
	}
	return false
}

// ── Legacy spelling ────────────────────────────────────────────────────

func appendLegacyIssues(issues []Issue, tokens []tokenizer.Token) []Issue {
	for i := range tokens {
		if len(issues) >= maxIssues {
			return issues
		}

		tok := &tokens[i]
		if !isWordToken(tok) || !ortho.HasLegacySpelling(tok.Text) {
			continue
		}
		issues = append(issues, Issue{
			Text:       tok.Text,
			Start:      tok.Start,
			End:        tok.End,
			Type:       LegacySpelling,
			Severity:   Warning,
			Message:    msgLegacy,
			Suggestion: ortho.Map(tok.Text),
		})
	}
	return issues
}

// ── Apostrophes ────────────────────────────────────────────────────────

func appendApostropheIssues(issues []Issue, tokens []tokenizer.Token) []Issue {
	for i := range tokens {
		if len(issues) >= maxIssues {
			return issues
		}

		tok := &tokens[i]
		if !isWordToken(tok) {
			continue
		}
		canonical := bmcase.CanonicalApostrophes(tok.Text)
		if canonical == tok.Text {
			continue
		}
		issues = append(issues, Issue{
			Text:       tok.Text,
			Start:      tok.Start,
			End:        tok.End,
			Type:       ApostropheVariant,
			Severity:   Info,
			Message:    msgApostrophe,
			Suggestion: canonical,
		})
	}
	return issues
}

// ── Tone marking ───────────────────────────────────────────────────────

// appendMixedToneIssues reports the minority group when a text has both
// tone-marked and unmarked words. On a tie the unmarked words are reported.
// Only words with a vowel take part; legacy è and ò are not tones.
func appendMixedToneIssues(issues []Issue, tokens []tokenizer.Token) []Issue {
	var toned, plain []int
	for i := range tokens {
		tok := &tokens[i]
		if tok.Type != tokenizer.Word || !hasVowel(tok.Text) {
			continue
		}
		if ortho.HasTones(ortho.Map(tok.Text)) {
			toned = append(toned, i)
		} else {
			plain = append(plain, i)
		}
	}
	if len(toned) == 0 || len(plain) == 0 {
		return issues
	}

	report, msg := plain, msgPlainInToned
	if len(toned) < len(plain) {
		report, msg = toned, msgTonedInPlain
	}
	for _, i := range report {
		if len(issues) >= maxIssues {
			return issues
		}
		tok := &tokens[i]
		issue := Issue{
			Text:     tok.Text,
			Start:    tok.Start,
			End:      tok.End,
			Type:     MixedTone,
			Severity: Info,
			Message:  msg,
		}
		if msg == msgTonedInPlain {
			issue.Suggestion = ortho.RemoveTones(tok.Text)
		}
		issues = append(issues, issue)
	}
	return issues
}

func hasVowel(w string) bool {
	for _, r := range w {
		if ortho.IsVowel(r) {
			return true
		}
	}
	return false
}
