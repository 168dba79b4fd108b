package nlp

import "time"

const (
	weekdaysPerWeek = 7
	monthsPerYear   = 12
)

// component accumulates the fields the extractors pull out of one input
// and reconciles them into a single instant. A fresh value is built per
// parse and discarded with it; nothing here is shared between calls.
//
// Absolute overrides are seeded from the base instant so that fields the
// input never mentions keep their base values. Two counters drive the
// single-expression rule: absCount counts absolute date fields (day,
// month, year), deltaCount counts day/month/year/hour deltas. A minute
// delta rides along with its hour delta and an absolute hour/minute is a
// refinement of whatever date was given, so neither counts.
type component struct {
	base time.Time
	past bool

	dayDelta    int
	monthDelta  int
	yearDelta   int
	hourDelta   int
	minuteDelta int

	year  int
	month int
	day   int
	hour  int
	min   int

	yearSet    bool // explicit year disables the rollover heuristic
	present    bool
	absCount   int
	deltaCount int
}

func newComponent(base time.Time, past bool) *component {
	return &component{
		base:  base,
		past:  past,
		year:  base.Year(),
		month: int(base.Month()),
		day:   base.Day(),
		hour:  base.Hour(),
		min:   base.Minute(),
	}
}

func (c *component) setYear(year int) {
	c.year = year
	c.yearSet = true
	c.absCount++
	c.present = true
}

func (c *component) setMonth(month int) {
	c.month = month
	c.absCount++
	c.present = true
}

func (c *component) setDay(day int) {
	c.day = day
	c.absCount++
	c.present = true
}

// setHour records an absolute hour. A bare hour means ":00", so the
// minute is reset; a minute captured in the same match is set afterwards.
func (c *component) setHour(hour int) {
	c.hour = hour
	c.min = 0
	c.present = true
}

func (c *component) setMinute(min int) {
	c.min = min
	c.present = true
}

func (c *component) setDayDelta(days int) {
	c.dayDelta = days
	c.deltaCount++
	c.present = true
}

func (c *component) setMonthDelta(months int) {
	c.monthDelta = months
	c.deltaCount++
	c.present = true
}

func (c *component) setYearDelta(years int) {
	c.yearDelta = years
	c.deltaCount++
	c.present = true
}

func (c *component) setHourDelta(hours int) {
	c.hourDelta = hours
	c.deltaCount++
	c.present = true
}

func (c *component) setMinuteDelta(mins int) {
	c.minuteDelta = mins
	c.present = true
}

// setWeekday records the day delta to the named weekday. Resolving
// forward wraps into [0,6]; resolving backward lands on or before the
// base date.
func (c *component) setWeekday(target int) {
	delta := target - int(c.base.Weekday())
	if c.past {
		if delta > 0 {
			delta -= weekdaysPerWeek
		}
	} else if delta < 0 {
		delta += weekdaysPerWeek
	}
	c.setDayDelta(delta)
}

// setMonthByName records the month delta to the named month, wrapping
// mod 12 by direction.
func (c *component) setMonthByName(target int) {
	delta := target - int(c.base.Month())
	if c.past {
		if delta > 0 {
			delta -= monthsPerYear
		}
	} else if delta < 0 {
		delta += monthsPerYear
	}
	c.setMonthDelta(delta)
}

func (c *component) empty() bool {
	return !c.present
}

func (c *component) ambiguous() bool {
	return c.deltaCount > 1 || (c.absCount > 0 && c.deltaCount > 0)
}

// resolve computes the final instant: each non-zero delta shifts the base
// instant and overwrites the matching absolute field, the candidate is
// built from the five absolute fields in the base zone, and a yearless
// future date that already went by this year is rolled forward.
func (c *component) resolve() time.Time {
	if c.dayDelta != 0 {
		c.day = c.base.AddDate(0, 0, c.dayDelta).Day()
	}
	if c.monthDelta != 0 {
		c.month = int(c.base.AddDate(0, c.monthDelta, 0).Month())
	}
	if c.yearDelta != 0 {
		c.year = c.base.AddDate(c.yearDelta, 0, 0).Year()
	}
	if c.hourDelta != 0 {
		c.hour = c.base.Add(time.Duration(c.hourDelta) * time.Hour).Hour()
	}
	if c.minuteDelta != 0 {
		c.min = c.base.Add(time.Duration(c.minuteDelta) * time.Minute).Minute()
	}

	result := time.Date(c.year, time.Month(c.month), c.day, c.hour, c.min, 0, 0, c.base.Location())

	if !c.yearSet && !c.past && result.Month() < c.base.Month() {
		result = result.AddDate(1, 0, 0)
		if result.Day() < c.base.Day() {
			result = result.AddDate(0, 1, 0)
		}
	}
	return result
}
