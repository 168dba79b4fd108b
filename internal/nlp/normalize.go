package nlp

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"tzwhen/internal/refdata"
)

// bareTimePattern matches a token that is an hour with optional minutes.
// A following "am"/"pm" token belongs to it and must not be read as a
// country code (am is Armenia).
var bareTimePattern = regexp.MustCompile(`^[0-9]{1,2}(:[0-9]{1,2})?$`)

// specifiers are words with no date/time meaning of their own, stripped
// wherever they follow a space. Order matters: longer words that contain
// shorter ones come first.
var specifiers = []string{
	"standard",
	"std",
	"timezone",
	"time",
	"zone",
	"daylight",
	"light",
	"savings",
	"day",
}

// ordinalSpecifiers are stripped only as standalone tokens; suffixes
// attached to digits ("23rd") are the day extractor's business.
var ordinalSpecifiers = regexp.MustCompile(`\s(st|nd|rd|th)\b`)

var disallowedRunes = regexp.MustCompile(`[^a-z0-9\s:+\-.]`)

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalize lower-cases the input, captures and removes at most one time
// zone and one country reference, strips specifier noise, and clamps the
// character set. The captured zone and country are handed back for the
// conversion stage.
func normalize(input string, data *refdata.Set, at time.Time) (string, *refdata.Zone, *refdata.Country, error) {
	text := strings.ToLower(input)

	zone, err := matchZone(text, data, at)
	if err != nil {
		return "", nil, nil, err
	}
	if zone != nil {
		for _, form := range refdata.ZoneForms(zone, at) {
			text = strings.ReplaceAll(text, form, "")
		}
	}

	country, err := matchCountry(text, data)
	if err != nil {
		return "", nil, nil, err
	}
	if country != nil {
		for _, form := range []string{country.Name, country.Alpha2, country.Alpha3} {
			text = strings.ReplaceAll(text, form, "")
		}
	}

	for _, spec := range specifiers {
		text = strings.ReplaceAll(text, " "+spec, "")
	}
	text = ordinalSpecifiers.ReplaceAllString(text, "")

	if stripped, _, err := transform.String(accentStripper, text); err == nil {
		text = stripped
	}
	text = disallowedRunes.ReplaceAllString(text, "")

	return strings.TrimSpace(text), zone, country, nil
}

// matchZone scans all known zones for a whole-token match against the
// short name, full name, or identifier. Zones sharing the matched short
// name count as one; two distinct matches are an error.
func matchZone(text string, data *refdata.Set, at time.Time) (*refdata.Zone, error) {
	tokens := tokenSet(text)
	matched := make(map[string]*refdata.Zone)
	var first *refdata.Zone
	for _, z := range data.Zones() {
		for _, form := range refdata.ZoneForms(z, at) {
			if tokens[form] {
				key := strings.ToLower(z.ShortName(at))
				if _, seen := matched[key]; !seen {
					matched[key] = z
					if first == nil {
						first = z
					}
				}
				break
			}
		}
	}
	if len(matched) > 1 {
		return nil, fmt.Errorf("%w: matched %d zones", ErrAmbiguousZone, len(matched))
	}
	return first, nil
}

// matchCountry scans for a whole-token match against country name,
// alpha-2, or alpha-3 code. Tokens tagged as am/pm time suffixes are
// skipped.
func matchCountry(text string, data *refdata.Set) (*refdata.Country, error) {
	tokens := strings.Fields(text)
	matched := make(map[string]*refdata.Country)
	var first *refdata.Country
	for i, tok := range tokens {
		if isTimeSuffix(tokens, i) {
			continue
		}
		c := data.MatchCountry(tok)
		if c == nil {
			continue
		}
		if _, seen := matched[c.Alpha2]; !seen {
			matched[c.Alpha2] = c
			if first == nil {
				first = c
			}
		}
	}
	if len(matched) > 1 {
		return nil, fmt.Errorf("%w: matched %d countries", ErrAmbiguousCountry, len(matched))
	}
	return first, nil
}

// isTimeSuffix reports whether tokens[i] is an "am"/"pm" directly after a
// bare time token.
func isTimeSuffix(tokens []string, i int) bool {
	if tokens[i] != "am" && tokens[i] != "pm" {
		return false
	}
	return i > 0 && bareTimePattern.MatchString(tokens[i-1])
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(text) {
		set[tok] = true
	}
	return set
}
