// Package datetime converts between calendar dates, clock times and
// durations and their Bambara verbal phrases.
//
// A date reads "[weekday] <month> [kalo] tile <day> san <year>", with the
// year spelled in "baa" thousands: 13 October 2024 is
// "Oktɔburu tile tan ni saba san baa fila ni mugan ni naani". A clock time
// reads "Nɛgɛ kaɲɛ <hour> [ni sanga <minute> [ni segɔni <second>]]" and a
// duration "lɛrɛ <h> ni miniti <m> ni segɔni <s>" with zero clauses left out.
//
// Three API layers are provided:
//
//   - Codecs: DateToWords, TimeToWords, DurationToWords and their inverses.
//   - Extract returns []Result with byte offsets for verbal phrases in
//     running text.
//   - Text passes: ExpandDates, ExpandTimes, ContractDates, ContractTimes.
//
// Numerals inside phrases are handled by package numtext.
//
// All functions are safe for concurrent use by multiple goroutines.
package datetime

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// maxInputBytes caps the input Extract will scan.
const maxInputBytes = 1 << 20

// maxResults caps the number of results Extract returns.
const maxResults = 10_000

var (
	// ErrOutOfRange is returned for components outside their calendar or clock range.
	ErrOutOfRange = errors.New("datetime: value out of range")

	// ErrMalformedDate is returned when a date phrase cannot be parsed.
	ErrMalformedDate = errors.New("datetime: malformed date phrase")

	// ErrMalformedTime is returned when a clock or duration phrase cannot be parsed.
	ErrMalformedTime = errors.New("datetime: malformed time phrase")
)

// ParseError describes a phrase that could not be parsed.
// It wraps ErrMalformedDate or ErrMalformedTime.
type ParseError struct {
	Kind   error  // ErrMalformedDate or ErrMalformedTime
	Phrase string // the input phrase
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q: %s", e.Kind, e.Phrase, e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Kind }

// Type classifies the kind of expression that was parsed.
type Type int

const (
	TypeDate     Type = iota // calendar date
	TypeTime                 // clock time
	TypeDuration             // elapsed duration
)

var typeNames = [...]string{
	TypeDate:     "Date",
	TypeTime:     "Time",
	TypeDuration: "Duration",
}

var typeFromName = map[string]Type{
	"Date":     TypeDate,
	"Time":     TypeTime,
	"Duration": TypeDuration,
}

// String returns the name of the type.
func (t Type) String() string {
	if int(t) >= 0 && int(t) < len(typeNames) {
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// MarshalJSON encodes the type as a JSON string (e.g. "Date").
func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a JSON string (e.g. "Date") into a Type.
func (t *Type) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	tt, ok := typeFromName[s]
	if !ok {
		const maxErrLen = 50
		if len(s) > maxErrLen {
			s = s[:maxErrLen] + "..."
		}
		return fmt.Errorf("datetime: unknown type: %q", s)
	}
	*t = tt
	return nil
}

// Date is a calendar date.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// Time returns the date at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// String formats d as DD-MM-YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%d", d.Day, d.Month, d.Year)
}

// Clock is a time of day.
type Clock struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

// String formats c as HH:MM, or HH:MM:SS when seconds are set.
func (c Clock) String() string {
	if c.Second > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
	}
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Duration is an elapsed time split into clauses.
type Duration struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// Std converts d to a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d.Hours)*time.Hour +
		time.Duration(d.Minutes)*time.Minute +
		time.Duration(d.Seconds)*time.Second
}

// DurationFromStd splits d into whole hours, minutes and seconds.
// Sub-second precision is dropped and negative durations yield zero.
func DurationFromStd(d time.Duration) Duration {
	if d < 0 {
		return Duration{}
	}
	return Duration{
		Hours:   int(d / time.Hour),
		Minutes: int(d % time.Hour / time.Minute),
		Seconds: int(d % time.Minute / time.Second),
	}
}

// String formats d as compact units, e.g. 1h30min10s. Zero is "0s".
func (d Duration) String() string {
	var b []byte
	if d.Hours > 0 {
		b = fmt.Appendf(b, "%dh", d.Hours)
	}
	if d.Minutes > 0 {
		b = fmt.Appendf(b, "%dmin", d.Minutes)
	}
	if d.Seconds > 0 || len(b) == 0 {
		b = fmt.Appendf(b, "%ds", d.Seconds)
	}
	return string(b)
}

// Result is a verbal date, time or duration phrase found in running text.
// Only the field matching Type is set.
type Result struct {
	Text     string   `json:"text"`  // The matched substring
	Start    int      `json:"start"` // Byte offset in the original string (inclusive)
	End      int      `json:"end"`   // Byte offset in the original string (exclusive)
	Type     Type     `json:"type"`
	Date     Date     `json:"date,omitzero"`
	Clock    Clock    `json:"clock,omitzero"`
	Duration Duration `json:"duration,omitzero"`
}

// String returns a debug representation, e.g. Date("Mɛ tile kelen san ...")[3:40].
func (r Result) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", r.Type, r.Text, r.Start, r.End)
}

// Numeric returns the numeric form of the result: DD-MM-YYYY for dates,
// HH:MM[:SS] for clock times and 1h30min10s style for durations.
func (r Result) Numeric() string {
	switch r.Type {
	case TypeDate:
		return r.Date.String()
	case TypeTime:
		return r.Clock.String()
	default:
		return r.Duration.String()
	}
}

// Extract finds all verbal date, time and duration phrases in s.
// Returns nil for empty or oversized input.
func Extract(s string) []Result {
	if s == "" || len(s) > maxInputBytes {
		return nil
	}
	return extract(s)
}
