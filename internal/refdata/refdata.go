// Package refdata carries the reference tables the parser and converter
// match input against: the known time zones with their display names and
// the country records with their zone memberships. Load builds the whole
// set once at process start; nothing mutates it afterwards, so a single
// *Set is safe to share across concurrent parses.
package refdata

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

//go:embed countries.json
var dataFS embed.FS

// Country is one country record. Name and codes are lower-cased on load so
// they can be compared against normalized input directly.
type Country struct {
	Name    string   `json:"name"`
	Alpha2  string   `json:"alpha2"`
	Alpha3  string   `json:"alpha3"`
	ZoneIDs []string `json:"timezones"`
}

// Set is the loaded, immutable reference data.
type Set struct {
	zones     []*Zone
	countries []*Country
}

// Load parses the bundled country data and resolves every zone in the
// zone table. It is intended to run once at process start.
func Load() (*Set, error) {
	raw, err := dataFS.ReadFile("countries.json")
	if err != nil {
		return nil, fmt.Errorf("refdata: reading countries.json: %w", err)
	}

	var countries []*Country
	if err := json.Unmarshal(raw, &countries); err != nil {
		return nil, fmt.Errorf("refdata: parsing countries.json: %w", err)
	}
	for _, c := range countries {
		c.Name = strings.ToLower(c.Name)
		c.Alpha2 = strings.ToLower(c.Alpha2)
		c.Alpha3 = strings.ToLower(c.Alpha3)
	}

	zones := make([]*Zone, 0, len(zoneTable))
	for i := range zoneTable {
		z := zoneTable[i]
		loc, err := time.LoadLocation(z.ID)
		if err != nil {
			return nil, fmt.Errorf("refdata: zone %s: %w", z.ID, err)
		}
		z.loc = loc
		zones = append(zones, &z)
	}

	return &Set{zones: zones, countries: countries}, nil
}

// Zones returns the known zones in table order.
func (s *Set) Zones() []*Zone {
	return s.zones
}

// Countries returns the known countries.
func (s *Set) Countries() []*Country {
	return s.countries
}

// ZoneForms returns the lower-cased textual forms of z at instant t: short
// name, full name, and IANA identifier. These are the strings a zone may
// appear as in input.
func ZoneForms(z *Zone, t time.Time) []string {
	return []string{
		strings.ToLower(z.ShortName(t)),
		strings.ToLower(z.FullName(t)),
		strings.ToLower(z.ID),
	}
}

// MatchZone finds the zone whose short name, full name, or identifier at t
// equals the given lower-case string. Returns nil when nothing matches.
func (s *Set) MatchZone(str string, t time.Time) *Zone {
	for _, z := range s.zones {
		for _, form := range ZoneForms(z, t) {
			if str == form {
				return z
			}
		}
	}
	return nil
}

// MatchCountry finds the country whose name, alpha-2, or alpha-3 code
// equals the given lower-case string. Returns nil when nothing matches.
func (s *Set) MatchCountry(str string) *Country {
	for _, c := range s.countries {
		if str == c.Name || str == c.Alpha2 || str == c.Alpha3 {
			return c
		}
	}
	return nil
}
