package convert

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tzwhen/internal/refdata"
)

const layout = "02-01-2006 03:04:05 PM"

func testData(t *testing.T) *refdata.Set {
	t.Helper()
	data, err := refdata.Load()
	if err != nil {
		t.Fatalf("loading reference data: %v", err)
	}
	return data
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		offset      string
		wantSeconds int
		wantErr     bool
	}{
		{"+8", 8 * 3600, false},
		{"+8.5", 8*3600 + 30*60, false},
		{"-8", -8 * 3600, false},
		{"-8.5", -(8*3600 + 30*60), false},
		{"+08:00", 8 * 3600, false},
		{"+08:30", 8*3600 + 30*60, false},
		{"-08:30", -(8*3600 + 30*60), false},
		{"8", 0, true},
		{"", 0, true},
		{"+1:2:3", 0, true},
		{"+a", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.offset, func(t *testing.T) {
			loc, err := ParseOffset(tt.offset)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidOffsetFormat)
				return
			}
			require.NoError(t, err)
			_, seconds := time.Date(2024, 7, 17, 0, 0, 0, 0, loc).Zone()
			assert.Equal(t, tt.wantSeconds, seconds)
		})
	}
}

func TestOffsets(t *testing.T) {
	// 2024-07-23 20:00 UTC.
	resolved := time.Date(2024, time.July, 23, 20, 0, 0, 0, time.UTC)

	p := New()
	require.NoError(t, Offsets(p, resolved, layout, []string{"+8", "-8", "+8.5"}))
	assert.Equal(t, []string{
		"+8 : 24-07-2024 04:00:00 AM",
		"-8 : 23-07-2024 12:00:00 PM",
		"+8.5 : 24-07-2024 04:30:00 AM",
	}, p.Lines)

	p = New()
	err := Offsets(p, resolved, layout, []string{"8"})
	assert.True(t, errors.Is(err, ErrInvalidOffsetFormat))
}

func TestZones(t *testing.T) {
	data := testData(t)
	resolved := time.Date(2024, time.July, 23, 20, 0, 0, 0, time.UTC)

	p := New()
	Zones(p, resolved, layout, []string{"SGT", "Europe/London", "NOPE"}, data)

	// SGT is UTC+8, London is UTC+1 in July; unmatched names are skipped.
	assert.Equal(t, []string{
		"SGT : 24-07-2024 04:00:00 AM",
		"Europe/London : 23-07-2024 09:00:00 PM",
	}, p.Lines)

	got, ok := p.ByTarget["SGT"]
	require.True(t, ok)
	assert.True(t, got.Equal(resolved), "conversion must preserve the instant")
}

func TestCountries(t *testing.T) {
	data := testData(t)
	resolved := time.Date(2024, time.July, 23, 20, 0, 0, 0, time.UTC)

	p := New()
	Countries(p, resolved, layout, []string{"Singapore"}, data)
	assert.Equal(t, []string{"Asia/Singapore : 24-07-2024 04:00:00 AM"}, p.Lines)

	// A country with several zones yields one line per zone, in the
	// record's order, each prefixed by the zone ID.
	p = New()
	Countries(p, resolved, layout, []string{"usa"}, data)
	require.Len(t, p.Lines, 6)
	assert.Equal(t, "America/New_York : 23-07-2024 04:00:00 PM", p.Lines[0])
	assert.Equal(t, "Pacific/Honolulu : 23-07-2024 10:00:00 AM", p.Lines[5])

	// Unknown countries are skipped, not errors.
	p = New()
	Countries(p, resolved, layout, []string{"atlantis"}, data)
	assert.Empty(t, p.Lines)
}
