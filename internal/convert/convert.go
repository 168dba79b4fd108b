// Package convert re-expresses a resolved instant in named time zones,
// fixed UTC offsets, and the zones of whole countries, rendering each
// target with a caller-supplied layout. Formatting always happens after
// the zone conversion.
package convert

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"tzwhen/internal/refdata"
)

// ErrInvalidOffsetFormat reports an offset string without a leading sign
// or with more than two numeric segments. Supported forms: +8, +8.5,
// +08:00, +08:30, -8, -8.5, -08:00, -08:30.
var ErrInvalidOffsetFormat = errors.New("convert: invalid offset format")

// Projection is the result of converting one instant into a set of
// targets. Lines are ordered as requested; ByTarget keys each converted
// instant by the target string (or zone ID for country targets) that
// produced it.
type Projection struct {
	Lines    []string
	ByTarget map[string]time.Time
}

// New returns an empty Projection ready to collect targets.
func New() *Projection {
	return &Projection{ByTarget: make(map[string]time.Time)}
}

func (p *Projection) add(label string, t time.Time, layout string) {
	p.Lines = append(p.Lines, fmt.Sprintf("%s : %s", label, t.Format(layout)))
	p.ByTarget[label] = t
}

// Zones converts t into each named zone. Names match a reference zone by
// short name, full name, or identifier; names that match nothing are
// skipped.
func Zones(p *Projection, t time.Time, layout string, names []string, data *refdata.Set) {
	for _, name := range names {
		z := data.MatchZone(strings.ToLower(name), t)
		if z == nil {
			continue
		}
		p.add(name, t.In(z.Location()), layout)
	}
}

// Offsets converts t into each fixed UTC offset.
func Offsets(p *Projection, t time.Time, layout string, offsets []string) error {
	for _, offset := range offsets {
		loc, err := ParseOffset(offset)
		if err != nil {
			return err
		}
		p.add(offset, t.In(loc), layout)
	}
	return nil
}

// Countries converts t into every zone of each named country, one line
// per zone prefixed by the zone identifier. Names that match nothing are
// skipped.
func Countries(p *Projection, t time.Time, layout string, names []string, data *refdata.Set) {
	for _, name := range names {
		c := data.MatchCountry(strings.ToLower(name))
		if c == nil {
			continue
		}
		for _, id := range c.ZoneIDs {
			loc, err := time.LoadLocation(id)
			if err != nil {
				continue
			}
			p.add(id, t.In(loc), layout)
		}
	}
}

// ParseOffset builds a fixed zone from an offset string. The sign is
// mandatory. Minutes after ":" are literal; after "." they are a
// fraction of an hour ("+8.5" is +8h30m).
func ParseOffset(offset string) (*time.Location, error) {
	if offset == "" || (offset[0] != '+' && offset[0] != '-') {
		return nil, fmt.Errorf("%w: %q needs a leading + or -", ErrInvalidOffsetFormat, offset)
	}
	sign := 1
	if offset[0] == '-' {
		sign = -1
	}
	body := offset[1:]

	sep := ""
	if strings.Contains(body, ":") {
		sep = ":"
	} else if strings.Contains(body, ".") {
		sep = "."
	}

	var hours, minutes int
	if sep == "" {
		h, err := strconv.Atoi(body)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOffsetFormat, offset)
		}
		hours = h
	} else {
		parts := strings.Split(body, sep)
		if len(parts) > 2 {
			return nil, fmt.Errorf("%w: %q has too many segments", ErrInvalidOffsetFormat, offset)
		}
		h, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidOffsetFormat, offset)
		}
		hours = h
		if len(parts) == 2 && parts[1] != "" {
			if sep == ":" {
				m, err := strconv.Atoi(parts[1])
				if err != nil {
					return nil, fmt.Errorf("%w: %q", ErrInvalidOffsetFormat, offset)
				}
				minutes = m
			} else {
				frac, err := strconv.ParseFloat("0."+parts[1], 64)
				if err != nil {
					return nil, fmt.Errorf("%w: %q", ErrInvalidOffsetFormat, offset)
				}
				minutes = int(math.Round(frac * 60))
			}
		}
	}

	return time.FixedZone(offset, sign*(hours*3600+minutes*60)), nil
}
