package datetime

import (
	"strings"

	"github.com/sudoping01/bambara-text-normalization/numtext"
	"github.com/sudoping01/bambara-text-normalization/tokenizer"
)

// maxNumeralWords bounds a numeral sub-phrase inside a date or time.
const maxNumeralWords = 24

// span is a word of the source text with its byte offsets.
type span struct {
	text   string // as written
	fold   string // lowercased, tone-stripped, modern spelling
	start  int    // byte offset (inclusive)
	end    int    // byte offset (exclusive)
	joined bool   // only whitespace separates it from the previous word
}

// splitSpans returns the Word tokens of s. Any other token between two
// words clears joined on the second.
func splitSpans(s string) []span {
	tokens := tokenizer.WordTokens(s)
	out := make([]span, 0, len(tokens)/2+1)
	joined := true
	for _, t := range tokens {
		switch t.Type {
		case tokenizer.Word:
			out = append(out, span{
				text:   t.Text,
				fold:   fold(t.Text),
				start:  t.Start,
				end:    t.End,
				joined: joined,
			})
			joined = true
		case tokenizer.Space:
		default:
			joined = false
		}
	}
	return out
}

// at reports whether sp[j] exists, follows its predecessor directly and
// folds to want.
func at(sp []span, j int, want string) bool {
	return j < len(sp) && sp[j].joined && sp[j].fold == want
}

// numeral reads the longest numeral phrase starting at sp[i] and returns
// its value and the index after it.
func numeral(sp []span, i int) (int64, int, bool) {
	end := i
	for end < len(sp) && end-i < maxNumeralWords && sp[end].joined && numtext.IsPhraseWord(sp[end].text) {
		end++
	}
	for j := end; j > i; j-- {
		if n, err := numtext.Parse(joinSpans(sp[i:j])); err == nil {
			return n, j, true
		}
	}
	return 0, i, false
}

func joinSpans(sp []span) string {
	var b strings.Builder
	for i, w := range sp {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(w.text)
	}
	return b.String()
}

// parsePhrase runs match over the whole of phrase.
func parsePhrase[T any](phrase string, kind error, match func([]span, int) (T, int, string)) (T, error) {
	var zero T

	sp := splitSpans(phrase)
	if len(sp) == 0 {
		return zero, &ParseError{Kind: kind, Phrase: phrase, Reason: "empty input"}
	}

	v, end, reason := match(sp, 0)
	if reason != "" {
		return zero, &ParseError{Kind: kind, Phrase: phrase, Reason: reason}
	}
	if end != len(sp) {
		return zero, &ParseError{Kind: kind, Phrase: phrase, Reason: "unexpected word " + sp[end].text}
	}
	return v, nil
}

// extract is the internal implementation of Extract.
func extract(s string) []Result {
	sp := splitSpans(s)
	if len(sp) == 0 {
		return nil
	}

	var out []Result
	for i := 0; i < len(sp) && len(out) < maxResults; {
		r, end, ok := matchAt(s, sp, i)
		if !ok {
			i++
			continue
		}
		out = append(out, r)
		i = end
	}
	return out
}

// matchAt tries every phrase kind that can start at sp[i].
func matchAt(s string, sp []span, i int) (Result, int, bool) {
	r := Result{Start: sp[i].start}
	var end int
	var reason string

	switch f := sp[i].fold; {
	case isDateStart(f):
		r.Type = TypeDate
		r.Date, end, reason = matchDate(sp, i)
	case f == foldedNege:
		r.Type = TypeTime
		r.Clock, end, reason = matchClock(sp, i)
	case durationRank(f) > 0:
		r.Type = TypeDuration
		r.Duration, end, reason = matchDuration(sp, i)
	default:
		return Result{}, i, false
	}

	if reason != "" || end <= i {
		return Result{}, i, false
	}
	r.End = sp[end-1].end
	r.Text = s[r.Start:r.End]
	return r, end, true
}

func isDateStart(folded string) bool {
	if _, ok := monthIndex[folded]; ok {
		return true
	}
	_, ok := weekdayIndex[folded]
	return ok
}
