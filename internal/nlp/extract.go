package nlp

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"tzwhen/internal/units"
)

var (
	rePastWord = regexp.MustCompile(`\b(last|past)\b`)
	reNextWord = regexp.MustCompile(`\bnext\b`)

	reYear = regexp.MustCompile(`\b\d{4}\b`)

	// Signed relative shorthand: +2.5h, -10d, +2days. A missing unit
	// means hours.
	reSigned = regexp.MustCompile(`([+-])(\d{1,2}(?:\.\d{1,2})?)(days?|d|months?|m|hours?|hrs?|hr|h)?`)

	// Clock times: hour with minutes, or a bare hour that carries a
	// qualifying suffix. A bare number with neither is a day of month,
	// not a time.
	reClock      = regexp.MustCompile(`\b(\d{1,2}):(\d{1,2})\s?(hours|hrs|am|pm)?\b`)
	reHourSuffix = regexp.MustCompile(`\b(\d{1,2})\s?(hours|hrs|am|pm)\b`)

	reDayOfMonth = regexp.MustCompile(`\b(\d{1,2})(st|nd|rd|th)?\b`)
)

// direction scans for "last"/"past" and "next" keywords, consuming them.
// Several extractors' wrap arithmetic depends on the answer, so this runs
// before any of them.
func direction(text string) (string, bool, bool, error) {
	past := rePastWord.MatchString(text)
	next := reNextWord.MatchString(text)
	if past && next {
		return "", false, false, fmt.Errorf("%w: conflicting direction keywords", ErrInvalidInput)
	}
	text = rePastWord.ReplaceAllString(text, "")
	text = reNextWord.ReplaceAllString(text, "")
	return text, past, past || next, nil
}

// extract runs the ordered extractors over the cleaned text, each
// consuming its match so later rules cannot re-read it. hasDirection
// switches month names from absolute overrides to deltas.
func extract(text string, c *component, tbl units.Table, hasDirection bool) error {
	text = extractYear(text, c)

	text, err := extractSigned(text, c)
	if err != nil {
		return err
	}

	text = extractClock(text, c)
	text = extractMonth(text, c, tbl, hasDirection)
	text = extractDayOfMonth(text, c)
	text = extractRelativeDay(text, c, tbl)
	extractWeekday(text, c, tbl)
	return nil
}

func extractYear(text string, c *component) string {
	m := reYear.FindString(text)
	if m == "" {
		return text
	}
	year, _ := strconv.Atoi(m)
	c.setYear(year)
	return strings.Replace(text, m, "", 1)
}

func extractSigned(text string, c *component) (string, error) {
	m := reSigned.FindStringSubmatch(text)
	if m == nil {
		return text, nil
	}
	sign := 1
	if m[1] == "-" {
		sign = -1
	}
	magnitude, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return "", fmt.Errorf("%w: bad relative magnitude %q", ErrInvalidInput, m[2])
	}
	whole := int(magnitude)
	frac := magnitude - float64(whole)

	unit := m[3]
	switch {
	case unit == "" || strings.HasPrefix(unit, "h"):
		c.setHourDelta(sign * whole)
		if frac != 0 {
			c.setMinuteDelta(sign * int(math.Round(frac*60)))
		}
	case strings.HasPrefix(unit, "d"):
		if frac != 0 {
			return "", fmt.Errorf("%w: fractional value allowed only with hours", ErrInvalidInput)
		}
		c.setDayDelta(sign * whole)
	case strings.HasPrefix(unit, "m"):
		if frac != 0 {
			return "", fmt.Errorf("%w: fractional value allowed only with hours", ErrInvalidInput)
		}
		c.setMonthDelta(sign * whole)
	}
	return strings.Replace(text, m[0], "", 1), nil
}

func extractClock(text string, c *component) string {
	if m := reClock.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		c.setHour(meridiem(hour, m[3]))
		c.setMinute(min)
		return strings.Replace(text, m[0], "", 1)
	}
	if m := reHourSuffix.FindStringSubmatch(text); m != nil {
		hour, _ := strconv.Atoi(m[1])
		c.setHour(meridiem(hour, m[2]))
		return strings.Replace(text, m[0], "", 1)
	}
	return text
}

// meridiem applies an am/pm suffix to an hour.
func meridiem(hour int, suffix string) int {
	if suffix == "pm" && hour < 12 {
		return hour + 12
	}
	if suffix == "am" && hour == 12 {
		return 0
	}
	return hour
}

func extractMonth(text string, c *component, tbl units.Table, hasDirection bool) string {
	for _, word := range tbl.MonthWords() {
		re := wholeWord(word)
		if !re.MatchString(text) {
			continue
		}
		month, _ := tbl.Month(word)
		if hasDirection {
			c.setMonthByName(month)
		} else {
			c.setMonth(month)
		}
		return re.ReplaceAllString(text, "")
	}
	return text
}

func extractDayOfMonth(text string, c *component) string {
	m := reDayOfMonth.FindStringSubmatch(text)
	if m == nil {
		return text
	}
	day, _ := strconv.Atoi(m[1])
	c.setDay(day)
	return strings.Replace(text, m[0], "", 1)
}

func extractRelativeDay(text string, c *component, tbl units.Table) string {
	for _, phrase := range tbl.RelativeDayPhrases() {
		re := wholeWord(phrase)
		if !re.MatchString(text) {
			continue
		}
		delta, _ := tbl.RelativeDay(phrase)
		c.setDayDelta(delta)
		return re.ReplaceAllString(text, "")
	}
	return text
}

func extractWeekday(text string, c *component, tbl units.Table) string {
	for _, word := range tbl.WeekdayWords() {
		re := wholeWord(word)
		if !re.MatchString(text) {
			continue
		}
		target, _ := tbl.Weekday(word)
		c.setWeekday(target)
		return re.ReplaceAllString(text, "")
	}
	return text
}

func wholeWord(word string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(word) + `\b`)
}
