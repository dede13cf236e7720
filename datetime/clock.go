package datetime

import (
	"fmt"
	"strings"

	"github.com/sudoping01/bambara-text-normalization/numtext"
)

// TimeToWords returns the Bambara phrase for a clock time:
// "Nɛgɛ kaɲɛ <hour> [ni sanga <minute>]".
func TimeToWords(hour, minute int) (string, error) {
	return ClockToWords(Clock{Hour: hour, Minute: minute})
}

// ClockToWords is TimeToWords with an optional seconds clause
// "ni segɔni <second>". The minute clause is omitted when minute and
// second are both zero.
func ClockToWords(c Clock) (string, error) {
	if err := validateClock(c); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(wordNege)
	b.WriteByte(' ')
	b.WriteString(wordKanye)
	b.WriteByte(' ')
	b.WriteString(mustConvert(c.Hour))

	if c.Minute > 0 || c.Second > 0 {
		writeClause(&b, wordSanga, c.Minute)
		if c.Second > 0 {
			writeClause(&b, wordSegoni, c.Second)
		}
	}
	return b.String(), nil
}

// WordsToTime parses a Bambara clock phrase. Failures wrap ErrMalformedTime.
func WordsToTime(phrase string) (Clock, error) {
	return parsePhrase(phrase, ErrMalformedTime, matchClock)
}

// DurationToWords returns the Bambara phrase for a duration:
// "lɛrɛ <h> ni miniti <m> ni segɔni <s>" with zero clauses omitted.
// A zero duration is "segɔni fu". Negative components return ErrOutOfRange.
func DurationToWords(hours, minutes, seconds int) (string, error) {
	if hours < 0 || minutes < 0 || seconds < 0 {
		return "", fmt.Errorf("%w: negative duration %dh%dm%ds", ErrOutOfRange, hours, minutes, seconds)
	}
	if hours == 0 && minutes == 0 && seconds == 0 {
		return wordSegoni + " " + zeroWord, nil
	}

	clauses := make([]string, 0, 3)
	for _, c := range []struct {
		marker string
		n      int
	}{
		{wordLere, hours},
		{wordMiniti, minutes},
		{wordSegoni, seconds},
	} {
		if c.n == 0 {
			continue
		}
		words, err := numtext.Convert(int64(c.n))
		if err != nil {
			return "", fmt.Errorf("%w: %s %d", ErrOutOfRange, c.marker, c.n)
		}
		clauses = append(clauses, c.marker+" "+words)
	}
	return strings.Join(clauses, " "+wordNi+" "), nil
}

// WordsToDuration parses a Bambara duration phrase. Markers must appear in
// the order lɛrɛ, miniti, segɔni, each at most once. Failures wrap
// ErrMalformedTime.
func WordsToDuration(phrase string) (Duration, error) {
	return parsePhrase(phrase, ErrMalformedTime, matchDuration)
}

const zeroWord = "fu"

func validateClock(c Clock) error {
	if c.Hour < 0 || c.Hour > 23 {
		return fmt.Errorf("%w: hour %d", ErrOutOfRange, c.Hour)
	}
	if c.Minute < 0 || c.Minute > 59 {
		return fmt.Errorf("%w: minute %d", ErrOutOfRange, c.Minute)
	}
	if c.Second < 0 || c.Second > 59 {
		return fmt.Errorf("%w: second %d", ErrOutOfRange, c.Second)
	}
	return nil
}

// mustConvert converts a validated clock component.
func mustConvert(n int) string {
	s, err := numtext.Convert(int64(n))
	if err != nil {
		panic(err)
	}
	return s
}

func writeClause(b *strings.Builder, marker string, n int) {
	b.WriteByte(' ')
	b.WriteString(wordNi)
	b.WriteByte(' ')
	b.WriteString(marker)
	b.WriteByte(' ')
	b.WriteString(mustConvert(n))
}

// matchClock reads "Nɛgɛ kaɲɛ <h> [ni sanga <m> [ni segɔni <s>]]" at sp[i].
func matchClock(sp []span, i int) (Clock, int, string) {
	if sp[i].fold != foldedNege || !at(sp, i+1, foldedKanye) {
		return Clock{}, i, "missing Nɛgɛ kaɲɛ"
	}

	hour, j, ok := numeral(sp, i+2)
	if !ok {
		return Clock{}, i + 2, "hour is not a numeral phrase"
	}
	c := Clock{Hour: int(hour)}

	if at(sp, j, foldedNi) && at(sp, j+1, foldedSanga) {
		minute, next, ok := numeral(sp, j+2)
		if !ok {
			return Clock{}, j + 2, "minute is not a numeral phrase"
		}
		c.Minute = int(minute)
		j = next

		if at(sp, j, foldedNi) && at(sp, j+1, foldedSegoni) {
			second, next, ok := numeral(sp, j+2)
			if !ok {
				return Clock{}, j + 2, "second is not a numeral phrase"
			}
			c.Second = int(second)
			j = next
		}
	}

	if err := validateClock(c); err != nil {
		return Clock{}, j, err.Error()
	}
	return c, j, ""
}

// durationRank orders duration markers; 0 means not a marker.
func durationRank(folded string) int {
	switch folded {
	case foldedLere:
		return 1
	case foldedMiniti:
		return 2
	case foldedSegoni:
		return 3
	}
	return 0
}

// matchDuration reads "lɛrɛ <h> ni miniti <m> ni segɔni <s>" at sp[i],
// any clause optional but at least one present.
func matchDuration(sp []span, i int) (Duration, int, string) {
	var d Duration
	j := i
	prev := 0

	for {
		rank := durationRank(sp[j].fold)
		if rank == 0 {
			return Duration{}, j, "expected lɛrɛ, miniti or segɔni"
		}
		if rank <= prev {
			return Duration{}, j, "duration markers out of order"
		}

		n, next, ok := numeral(sp, j+1)
		if !ok {
			return Duration{}, j + 1, "missing numeral after " + sp[j].text
		}
		switch rank {
		case 1:
			d.Hours = int(n)
		case 2:
			d.Minutes = int(n)
		default:
			d.Seconds = int(n)
		}
		prev = rank
		j = next

		if at(sp, j, foldedNi) && j+1 < len(sp) && sp[j+1].joined && durationRank(sp[j+1].fold) > 0 {
			j++
			continue
		}
		return d, j, ""
	}
}
