package nlp

import (
	"testing"
	"time"
)

func TestComponentCounters(t *testing.T) {
	base := time.Date(2024, time.July, 17, 0, 0, 0, 0, time.UTC)

	c := newComponent(base, false)
	if !c.empty() {
		t.Error("fresh component should be empty")
	}

	// Absolute hour and minute refine a date without counting as a
	// separate expression.
	c.setHour(20)
	c.setMinute(30)
	if c.ambiguous() {
		t.Error("hour+minute alone should not be ambiguous")
	}
	if c.empty() {
		t.Error("component with hour set should not be empty")
	}

	// One delta plus absolute date fields is two expressions.
	c.setDay(23)
	c.setDayDelta(2)
	if !c.ambiguous() {
		t.Error("absolute day plus day delta should be ambiguous")
	}
}

func TestComponentHourResetsMinute(t *testing.T) {
	base := time.Date(2024, time.July, 17, 10, 45, 0, 0, time.UTC)

	c := newComponent(base, false)
	c.setHour(8)
	got := c.resolve()
	if got.Minute() != 0 {
		t.Errorf("bare hour: minute = %d, want 0", got.Minute())
	}

	c = newComponent(base, false)
	c.setHour(8)
	c.setMinute(15)
	got = c.resolve()
	if got.Hour() != 8 || got.Minute() != 15 {
		t.Errorf("hour+minute: got %02d:%02d, want 08:15", got.Hour(), got.Minute())
	}
}

func TestComponentRollover(t *testing.T) {
	base := time.Date(2024, time.July, 17, 0, 0, 0, 0, time.UTC)

	// A yearless month already gone this year rolls into next year.
	c := newComponent(base, false)
	c.setMonth(1)
	if got := c.resolve(); got.Year() != 2025 {
		t.Errorf("January from July = %v, want year 2025", got)
	}

	// An explicit year pins the date.
	c = newComponent(base, false)
	c.setMonth(1)
	c.setYear(2024)
	if got := c.resolve(); got.Year() != 2024 {
		t.Errorf("January 2024 = %v, want year 2024", got)
	}

	// Backward resolution never rolls forward.
	c = newComponent(base, true)
	c.setMonth(1)
	if got := c.resolve(); got.Year() != 2024 {
		t.Errorf("past January = %v, want year 2024", got)
	}

	// After the year bump, a day earlier than the base day adds a month.
	c = newComponent(base, false)
	c.setMonth(1)
	c.setDay(10)
	got := c.resolve()
	if got.Year() != 2025 || got.Month() != time.February {
		t.Errorf("January 10th from July 17th = %v, want 2025-02-10", got)
	}
}

func TestComponentDeltaOverwritesField(t *testing.T) {
	base := time.Date(2024, time.July, 17, 0, 0, 0, 0, time.UTC)

	c := newComponent(base, false)
	c.setDayDelta(6)
	got := c.resolve()
	if got.Day() != 23 || got.Month() != time.July {
		t.Errorf("day delta 6 = %v, want 2024-07-23", got)
	}

	c = newComponent(base, false)
	c.setHourDelta(2)
	c.setMinuteDelta(30)
	got = c.resolve()
	if got.Hour() != 2 || got.Minute() != 30 {
		t.Errorf("hour delta 2 + minute delta 30 = %v, want 02:30", got)
	}
}

func TestComponentWeekdayWrap(t *testing.T) {
	// Base is a Wednesday.
	base := time.Date(2024, time.July, 17, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		target int
		past   bool
		want   int // day of month
	}{
		{2, false, 23}, // Tuesday wraps forward a week
		{4, false, 18}, // Thursday is tomorrow
		{3, false, 17}, // same weekday stays put
		{1, true, 15},  // past Monday
		{4, true, 11},  // past Thursday is last week
		{3, true, 17},  // past Wednesday is today
	}

	for _, tt := range tests {
		c := newComponent(base, tt.past)
		c.setWeekday(tt.target)
		if got := c.resolve(); got.Day() != tt.want {
			t.Errorf("weekday %d past=%v = day %d, want %d", tt.target, tt.past, got.Day(), tt.want)
		}
	}
}
