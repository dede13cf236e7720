package datetime

import (
	"fmt"
	"strings"
	"time"

	"github.com/sudoping01/bambara-text-normalization/numtext"
)

// DateOption configures DateToWords and ExpandDates.
type DateOption func(*dateOptions)

type dateOptions struct {
	kalo    bool
	weekday bool
}

// WithKalo adds "kalo" (month) after the month name.
func WithKalo() DateOption {
	return func(o *dateOptions) { o.kalo = true }
}

// WithWeekday prefixes the phrase with the weekday name.
func WithWeekday() DateOption {
	return func(o *dateOptions) { o.weekday = true }
}

// DateToWords returns the Bambara phrase for a calendar date:
// "[weekday] <month> [kalo] tile <day> san <year>". The year uses "baa" for
// thousands. Returns ErrOutOfRange for a month outside 1..12, a day that
// does not exist in that month, or a year outside 1..9999.
func DateToWords(year, month, day int, opts ...DateOption) (string, error) {
	var o dateOptions
	for _, opt := range opts {
		opt(&o)
	}

	d := Date{Year: year, Month: month, Day: day}
	if err := validateDate(d); err != nil {
		return "", err
	}

	dayWords, err := numtext.Convert(int64(day))
	if err != nil {
		return "", err
	}
	yearWords, err := numtext.ConvertThousands(int64(year), yearThousand)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, 7)
	if o.weekday {
		parts = append(parts, weekdays[d.Weekday()])
	}
	parts = append(parts, months[month])
	if o.kalo {
		parts = append(parts, wordKalo)
	}
	parts = append(parts, wordTile, dayWords, wordSan, yearWords)
	return strings.Join(parts, " "), nil
}

// WordsToDate parses a Bambara date phrase. A leading weekday is optional
// and must agree with the date. Markers "tile" and "san" are mandatory.
// Failures wrap ErrMalformedDate.
func WordsToDate(phrase string) (Date, error) {
	return parsePhrase(phrase, ErrMalformedDate, matchDate)
}

func validateDate(d Date) error {
	if d.Year < minYear || d.Year > maxYear {
		return fmt.Errorf("%w: year %d", ErrOutOfRange, d.Year)
	}
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("%w: month %d", ErrOutOfRange, d.Month)
	}
	if d.Day < 1 || d.Day > 31 {
		return fmt.Errorf("%w: day %d", ErrOutOfRange, d.Day)
	}
	if t := d.Time(); t.Day() != d.Day || t.Month() != time.Month(d.Month) {
		return fmt.Errorf("%w: %s does not exist", ErrOutOfRange, d)
	}
	return nil
}

// matchDate reads "[weekday] month [kalo] tile <day> san <year>" at sp[i].
func matchDate(sp []span, i int) (Date, int, string) {
	j := i

	wd, hasWeekday := weekdayIndex[sp[j].fold]
	if hasWeekday {
		j++
	}

	if j >= len(sp) || !sp[j].joined {
		return Date{}, j, "missing month name"
	}
	month, ok := monthIndex[sp[j].fold]
	if !ok {
		return Date{}, j, "unknown month name"
	}
	j++

	if at(sp, j, foldedKalo) {
		j++
	}
	if !at(sp, j, foldedTile) {
		return Date{}, j, "missing tile"
	}
	j++

	day, next, ok := numeral(sp, j)
	if !ok {
		return Date{}, j, "day is not a numeral phrase"
	}
	j = next

	if !at(sp, j, foldedSan) {
		return Date{}, j, "missing san"
	}
	j++

	year, next, ok := numeral(sp, j)
	if !ok {
		return Date{}, j, "year is not a numeral phrase"
	}

	d := Date{Year: int(year), Month: month, Day: int(day)}
	if err := validateDate(d); err != nil {
		return Date{}, next, err.Error()
	}
	if hasWeekday && d.Weekday() != wd {
		return Date{}, next, fmt.Sprintf("%s is not a %s", d, weekdays[wd])
	}
	return d, next, ""
}
