// Package nlp resolves a natural-language date/time phrase against a base
// instant. The pipeline is: normalize (capture and strip zone/country and
// noise), scan direction keywords, run the ordered extractors into a
// fresh accumulator, then reconcile the accumulated fields into one
// instant.
package nlp

import (
	"time"

	"tzwhen/internal/refdata"
	"tzwhen/internal/units"
)

// Parser resolves input phrases. It holds only immutable reference data
// and may be shared across goroutines; each Parse call builds its own
// accumulator.
type Parser struct {
	data  *refdata.Set
	units units.Table
}

// New returns a Parser over the given reference data.
func New(data *refdata.Set) *Parser {
	return &Parser{data: data, units: units.New()}
}

// Result is the outcome of one parse.
type Result struct {
	// Time is the resolved instant, in the base instant's zone.
	Time time.Time
	// Zone is the time zone referenced inside the input, if any.
	Zone *refdata.Zone
	// Country is the country referenced inside the input, if any.
	Country *refdata.Country
	// Past reports whether the input asked for backward resolution.
	Past bool
}

// Parse resolves input against the base instant. Relative expressions
// count from base; absolute fields override base's calendar fields.
func (p *Parser) Parse(input string, base time.Time) (*Result, error) {
	text, zone, country, err := normalize(input, p.data, base)
	if err != nil {
		return nil, err
	}

	text, past, hasDirection, err := direction(text)
	if err != nil {
		return nil, err
	}

	c := newComponent(base, past)
	if err := extract(text, c, p.units, hasDirection); err != nil {
		return nil, err
	}

	if c.ambiguous() {
		return nil, ErrMultipleExpressions
	}
	if c.empty() {
		return nil, ErrNoDateTimeFound
	}

	return &Result{
		Time:    c.resolve(),
		Zone:    zone,
		Country: country,
		Past:    past,
	}, nil
}
