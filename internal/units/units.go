// Package units holds the static lexical tables the parser matches
// date/time words against. The tables are plain values constructed once
// and never mutated afterwards, so a single Table may be shared by any
// number of concurrent parses.
package units

import "sort"

// Table maps known date/time words to their numeric meaning.
type Table struct {
	weekdays     map[string]int
	months       map[string]int
	relativeDays map[string]int
	relativeHrs  map[string]int
}

// New returns the standard English lexical table.
func New() Table {
	return Table{
		weekdays: map[string]int{
			"sunday":    0,
			"monday":    1,
			"tuesday":   2,
			"wednesday": 3,
			"thursday":  4,
			"friday":    5,
			"saturday":  6,
			"sun":       0,
			"mon":       1,
			"tue":       2,
			"wed":       3,
			"thu":       4,
			"fri":       5,
			"sat":       6,
		},
		months: map[string]int{
			"january":   1,
			"february":  2,
			"march":     3,
			"april":     4,
			"may":       5,
			"june":      6,
			"july":      7,
			"august":    8,
			"september": 9,
			"october":   10,
			"november":  11,
			"december":  12,
			"jan":       1,
			"feb":       2,
			"mar":       3,
			"apr":       4,
			"jun":       6,
			"jul":       7,
			"aug":       8,
			"sep":       9,
			"oct":       10,
			"nov":       11,
			"dec":       12,
		},
		relativeDays: map[string]int{
			"day after tomorrow":   2,
			"day before yesterday": -2,
			"tomorrow":             1,
			"yesterday":            -1,
			"today":                0,
			"now":                  0,
		},
		relativeHrs: map[string]int{
			"hours from now":   1,
			"hours before now": -1,
			"now":              0,
		},
	}
}

// Weekday returns the weekday ordinal (Sunday = 0) for a weekday word.
func (t Table) Weekday(word string) (int, bool) {
	n, ok := t.weekdays[word]
	return n, ok
}

// Month returns the month ordinal (January = 1) for a month word.
func (t Table) Month(word string) (int, bool) {
	n, ok := t.months[word]
	return n, ok
}

// RelativeDay returns the signed day offset for a relative-day phrase.
func (t Table) RelativeDay(phrase string) (int, bool) {
	n, ok := t.relativeDays[phrase]
	return n, ok
}

// RelativeHour returns the signed hour offset for a relative-hour phrase.
func (t Table) RelativeHour(phrase string) (int, bool) {
	n, ok := t.relativeHrs[phrase]
	return n, ok
}

// WeekdayWords returns all weekday words, longest first, so that
// "tuesday" is tried before "tue" when scanning free text.
func (t Table) WeekdayWords() []string {
	return longestFirst(t.weekdays)
}

// MonthWords returns all month words, longest first.
func (t Table) MonthWords() []string {
	return longestFirst(t.months)
}

// RelativeDayPhrases returns all relative-day phrases, longest first, so
// that "day after tomorrow" is consumed before "tomorrow".
func (t Table) RelativeDayPhrases() []string {
	return longestFirst(t.relativeDays)
}

func longestFirst(m map[string]int) []string {
	words := make([]string, 0, len(m))
	for w := range m {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	return words
}
