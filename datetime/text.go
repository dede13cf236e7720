package datetime

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// DD-MM-YYYY, DD/MM/YYYY, DD.MM.YYYY
	reDayFirst = regexp.MustCompile(`\b(\d{1,2})([-/.])(\d{1,2})([-/.])(\d{4})\b`)

	// YYYY-MM-DD, YYYY/MM/DD
	reYearFirst = regexp.MustCompile(`\b(\d{4})([-/])(\d{1,2})([-/])(\d{1,2})\b`)

	// HH:MM, HH:MM:SS
	reClock = regexp.MustCompile(`\b(\d{1,2}):(\d{2})(?::(\d{2}))?\b`)

	// 1h30min10s, 45min, 20s
	reDuration = regexp.MustCompile(`(?i)\b\d+\s*h(?:\s*\d+\s*(?:min|m))?(?:\s*\d+\s*s(?:ec)?)?\b|\b\d+\s*min(?:\s*\d+\s*s(?:ec)?)?\b|\b\d+\s*s(?:ec)?\b`)

	reDurationPart = regexp.MustCompile(`(?i)(\d+)\s*(min|sec|h|m|s)`)
)

// Capture group indices (1-based submatch positions).
const (
	grpFirst  = 1
	grpSep1   = 2
	grpSecond = 3
	grpSep2   = 4
	grpThird  = 5
)

// ExpandDates replaces numeric dates (DD-MM-YYYY, DD/MM/YYYY, DD.MM.YYYY,
// YYYY-MM-DD) with Bambara date phrases. Invalid dates are left unchanged.
func ExpandDates(text string, opts ...DateOption) string {
	if !strings.ContainsAny(text, "0123456789") {
		return text
	}
	text = replaceSubmatches(reDayFirst, text, func(g []string) (string, bool) {
		return expandDate(g[grpThird], g[grpSecond], g[grpFirst], g[grpSep1] == g[grpSep2], opts)
	})
	return replaceSubmatches(reYearFirst, text, func(g []string) (string, bool) {
		return expandDate(g[grpFirst], g[grpSecond], g[grpThird], g[grpSep1] == g[grpSep2], opts)
	})
}

func expandDate(year, month, day string, sameSep bool, opts []DateOption) (string, bool) {
	if !sameSep {
		return "", false
	}
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	words, err := DateToWords(y, m, d, opts...)
	if err != nil {
		return "", false
	}
	return words, true
}

// ExpandTimes replaces clock times (HH:MM, HH:MM:SS) and compact durations
// (1h30min, 45min, 20s) with Bambara phrases. Invalid values are left unchanged.
func ExpandTimes(text string) string {
	if !strings.ContainsAny(text, "0123456789") {
		return text
	}

	text = replaceSubmatches(reClock, text, func(g []string) (string, bool) {
		c := Clock{}
		c.Hour, _ = strconv.Atoi(g[1])
		c.Minute, _ = strconv.Atoi(g[2])
		if g[3] != "" {
			c.Second, _ = strconv.Atoi(g[3])
		}
		words, err := ClockToWords(c)
		return words, err == nil
	})

	return reDuration.ReplaceAllStringFunc(text, func(m string) string {
		d, ok := parseCompactDuration(m)
		if !ok || d == (Duration{}) {
			return m
		}
		words, err := DurationToWords(d.Hours, d.Minutes, d.Seconds)
		if err != nil {
			return m
		}
		return words
	})
}

// parseCompactDuration reads "1h30min10s" style strings.
func parseCompactDuration(s string) (Duration, bool) {
	var d Duration
	for _, p := range reDurationPart.FindAllStringSubmatch(s, -1) {
		n, err := strconv.Atoi(p[1])
		if err != nil {
			return Duration{}, false
		}
		switch strings.ToLower(p[2]) {
		case "h":
			d.Hours = n
		case "min", "m":
			d.Minutes = n
		default:
			d.Seconds = n
		}
	}
	return d, true
}

// ContractDates replaces Bambara date phrases with DD-MM-YYYY.
func ContractDates(text string) string {
	return contract(text, func(t Type) bool { return t == TypeDate })
}

// ContractTimes replaces Bambara clock phrases with HH:MM[:SS] and duration
// phrases with 1h30min10s style.
func ContractTimes(text string) string {
	return contract(text, func(t Type) bool { return t == TypeTime || t == TypeDuration })
}

func contract(text string, keep func(Type) bool) string {
	results := Extract(text)
	if len(results) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, r := range results {
		if !keep(r.Type) {
			continue
		}
		b.WriteString(text[last:r.Start])
		b.WriteString(r.Numeric())
		last = r.End
	}
	if last == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// replaceSubmatches replaces each match of re in s with fn(groups) when fn
// reports ok, and leaves the match unchanged otherwise.
func replaceSubmatches(re *regexp.Regexp, s string, fn func([]string) (string, bool)) string {
	matches := re.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	last := 0
	groups := make([]string, re.NumSubexp()+1)
	for _, m := range matches {
		for g := range groups {
			if m[2*g] >= 0 {
				groups[g] = s[m[2*g]:m[2*g+1]]
			} else {
				groups[g] = ""
			}
		}
		repl, ok := fn(groups)
		if !ok {
			continue
		}
		b.WriteString(s[last:m[0]])
		b.WriteString(repl)
		last = m[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
