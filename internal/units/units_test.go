package units

import "testing"

func TestLookups(t *testing.T) {
	tbl := New()

	if n, ok := tbl.Weekday("sunday"); !ok || n != 0 {
		t.Errorf("Weekday(sunday) = %d,%v, want 0,true", n, ok)
	}
	if n, ok := tbl.Weekday("sat"); !ok || n != 6 {
		t.Errorf("Weekday(sat) = %d,%v, want 6,true", n, ok)
	}
	if _, ok := tbl.Weekday("noday"); ok {
		t.Error("Weekday(noday) should not match")
	}

	if n, ok := tbl.Month("january"); !ok || n != 1 {
		t.Errorf("Month(january) = %d,%v, want 1,true", n, ok)
	}
	if n, ok := tbl.Month("dec"); !ok || n != 12 {
		t.Errorf("Month(dec) = %d,%v, want 12,true", n, ok)
	}

	if n, ok := tbl.RelativeDay("day after tomorrow"); !ok || n != 2 {
		t.Errorf("RelativeDay(day after tomorrow) = %d,%v, want 2,true", n, ok)
	}
	if n, ok := tbl.RelativeDay("day before yesterday"); !ok || n != -2 {
		t.Errorf("RelativeDay(day before yesterday) = %d,%v, want -2,true", n, ok)
	}

	if n, ok := tbl.RelativeHour("hours before now"); !ok || n != -1 {
		t.Errorf("RelativeHour(hours before now) = %d,%v, want -1,true", n, ok)
	}
}

// Longest-first ordering keeps "day after tomorrow" from being eaten as
// "tomorrow" and "tuesday" from being eaten as "tue".
func TestWordOrdering(t *testing.T) {
	tbl := New()

	phrases := tbl.RelativeDayPhrases()
	for i := 1; i < len(phrases); i++ {
		if len(phrases[i]) > len(phrases[i-1]) {
			t.Fatalf("phrases not longest-first: %q after %q", phrases[i], phrases[i-1])
		}
	}
	if phrases[0] != "day before yesterday" {
		t.Errorf("longest phrase = %q, want day before yesterday", phrases[0])
	}

	words := tbl.WeekdayWords()
	if words[0] != "wednesday" {
		t.Errorf("longest weekday = %q, want wednesday", words[0])
	}
}
