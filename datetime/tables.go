package datetime

import (
	"fmt"
	"time"

	"github.com/sudoping01/bambara-text-normalization/internal/bmcase"
	"github.com/sudoping01/bambara-text-normalization/ortho"
)

// Marker words, in canonical spelling.
const (
	wordKalo   = "kalo"
	wordTile   = "tile"
	wordSan    = "san"
	wordNege   = "Nɛgɛ"
	wordKanye  = "kaɲɛ"
	wordSanga  = "sanga"
	wordSegoni = "segɔni"
	wordLere   = "lɛrɛ"
	wordMiniti = "miniti"
	wordNi     = "ni"

	yearThousand = "baa"
)

// Year bounds accepted by the date codec.
const (
	minYear = 1
	maxYear = 9999
)

// months is indexed by month number; index 0 is unused.
var months = [13]string{
	"",
	"Zanwuye",
	"Feburuye",
	"Marsi",
	"Awirili",
	"Mɛ",
	"Zuwen",
	"Zuluye",
	"Uti",
	"Sɛtanburu",
	"Oktɔburu",
	"Nɔwanburu",
	"Desanburu",
}

// weekdays is indexed by time.Weekday.
var weekdays = [7]string{
	time.Sunday:    "Kari",
	time.Monday:    "Tɛnɛn",
	time.Tuesday:   "Tarata",
	time.Wednesday: "Araba",
	time.Thursday:  "Alamisa",
	time.Friday:    "Juma",
	time.Saturday:  "Sibiri",
}

// monthIndex maps folded month spellings to month numbers.
var monthIndex = buildMonthIndex()

// weekdayIndex maps folded weekday spellings to weekdays.
var weekdayIndex = buildWeekdayIndex()

func buildMonthIndex() map[string]int {
	m := make(map[string]int, len(months)+8)
	for i := 1; i < len(months); i++ {
		m[fold(months[i])] = i
	}
	for w, i := range map[string]int{
		"me":        5,
		"setanburu": 9,
		"sɛtamburu": 9,
		"oktoburu":  10,
		"nowanburu": 11,
	} {
		m[fold(w)] = i
	}
	return m
}

func buildWeekdayIndex() map[string]time.Weekday {
	m := make(map[string]time.Weekday, len(weekdays)+2)
	for d, name := range weekdays {
		m[fold(name)] = time.Weekday(d)
	}
	m["tenen"] = time.Monday
	m["ntenen"] = time.Monday
	return m
}

// fold lowercases w, strips tones and maps legacy spellings.
func fold(w string) string {
	return ortho.Map(bmcase.ToLower(ortho.RemoveTones(w)))
}

// MonthName returns the Bambara name of month m (1..12).
func MonthName(m int) (string, error) {
	if m < 1 || m > 12 {
		return "", fmt.Errorf("%w: month %d", ErrOutOfRange, m)
	}
	return months[m], nil
}

// ParseMonth returns the month number for a Bambara month name.
// Matching is case-, tone- and legacy-spelling-insensitive.
func ParseMonth(name string) (int, bool) {
	m, ok := monthIndex[fold(name)]
	return m, ok
}

// WeekdayName returns the Bambara name of d.
func WeekdayName(d time.Weekday) string {
	if d < time.Sunday || d > time.Saturday {
		return ""
	}
	return weekdays[d]
}

// ParseWeekday returns the weekday for a Bambara weekday name.
func ParseWeekday(name string) (time.Weekday, bool) {
	d, ok := weekdayIndex[fold(name)]
	return d, ok
}

// IsMonthWord reports whether w is a Bambara month name.
func IsMonthWord(w string) bool {
	_, ok := monthIndex[fold(w)]
	return ok
}

// IsWeekdayWord reports whether w is a Bambara weekday name.
func IsWeekdayWord(w string) bool {
	_, ok := weekdayIndex[fold(w)]
	return ok
}

// IsTimeWord reports whether w is a clock or duration marker word.
func IsTimeWord(w string) bool {
	switch fold(w) {
	case foldedNege, foldedKanye, foldedSanga, foldedSegoni, foldedLere, foldedMiniti:
		return true
	}
	return false
}

// Folded marker words, for matching.
var (
	foldedKalo   = fold(wordKalo)
	foldedTile   = fold(wordTile)
	foldedSan    = fold(wordSan)
	foldedNege   = fold(wordNege)
	foldedKanye  = fold(wordKanye)
	foldedSanga  = fold(wordSanga)
	foldedSegoni = fold(wordSegoni)
	foldedLere   = fold(wordLere)
	foldedMiniti = fold(wordMiniti)
	foldedNi     = fold(wordNi)
)
