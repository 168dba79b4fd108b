package refdata

import "time"

// Zone is one entry of the known-zone table. Short and full display names
// depend on whether the instant in question falls in daylight-saving time,
// so both variants are carried and looked up per instant.
type Zone struct {
	ID        string // IANA identifier, e.g. "Asia/Kolkata"
	StdAbbrev string
	DSTAbbrev string // empty when the zone never observes DST
	StdName   string
	DSTName   string

	loc *time.Location
}

// ShortName returns the abbreviation in effect at t, e.g. "EST" or "EDT".
func (z *Zone) ShortName(t time.Time) string {
	if z.DSTAbbrev != "" && t.In(z.loc).IsDST() {
		return z.DSTAbbrev
	}
	return z.StdAbbrev
}

// FullName returns the display name in effect at t.
func (z *Zone) FullName(t time.Time) string {
	if z.DSTName != "" && t.In(z.loc).IsDST() {
		return z.DSTName
	}
	return z.StdName
}

// Location returns the zone's IANA location.
func (z *Zone) Location() *time.Location {
	return z.loc
}

// zoneTable lists the zones the normalizer and converter recognize.
// Abbreviations and display names are not in tzdata, so the table is
// curated by hand; IDs must resolve with time.LoadLocation.
var zoneTable = []Zone{
	{ID: "UTC", StdAbbrev: "UTC", StdName: "Coordinated Universal Time"},
	{ID: "Etc/GMT", StdAbbrev: "GMT", StdName: "Greenwich Mean Time"},

	// Asia
	{ID: "Asia/Kolkata", StdAbbrev: "IST", StdName: "India Standard Time"},
	{ID: "Asia/Singapore", StdAbbrev: "SGT", StdName: "Singapore Time"},
	{ID: "Asia/Tokyo", StdAbbrev: "JST", StdName: "Japan Standard Time"},
	{ID: "Asia/Seoul", StdAbbrev: "KST", StdName: "Korea Standard Time"},
	{ID: "Asia/Shanghai", StdAbbrev: "CST", StdName: "China Standard Time"},
	{ID: "Asia/Hong_Kong", StdAbbrev: "HKT", StdName: "Hong Kong Time"},
	{ID: "Asia/Dubai", StdAbbrev: "GST", StdName: "Gulf Standard Time"},
	{ID: "Asia/Karachi", StdAbbrev: "PKT", StdName: "Pakistan Standard Time"},
	{ID: "Asia/Dhaka", StdAbbrev: "BST", StdName: "Bangladesh Standard Time"},
	{ID: "Asia/Bangkok", StdAbbrev: "ICT", StdName: "Indochina Time"},
	{ID: "Asia/Jakarta", StdAbbrev: "WIB", StdName: "Western Indonesia Time"},
	{ID: "Asia/Manila", StdAbbrev: "PHT", StdName: "Philippine Time"},
	{ID: "Asia/Riyadh", StdAbbrev: "AST", StdName: "Arabia Standard Time"},
	{ID: "Asia/Tehran", StdAbbrev: "IRST", DSTAbbrev: "IRDT", StdName: "Iran Standard Time", DSTName: "Iran Daylight Time"},
	{ID: "Asia/Jerusalem", StdAbbrev: "IST", DSTAbbrev: "IDT", StdName: "Israel Standard Time", DSTName: "Israel Daylight Time"},

	// Europe
	{ID: "Europe/London", StdAbbrev: "GMT", DSTAbbrev: "BST", StdName: "Greenwich Mean Time", DSTName: "British Summer Time"},
	{ID: "Europe/Dublin", StdAbbrev: "GMT", DSTAbbrev: "IST", StdName: "Greenwich Mean Time", DSTName: "Irish Standard Time"},
	{ID: "Europe/Paris", StdAbbrev: "CET", DSTAbbrev: "CEST", StdName: "Central European Time", DSTName: "Central European Summer Time"},
	{ID: "Europe/Berlin", StdAbbrev: "CET", DSTAbbrev: "CEST", StdName: "Central European Time", DSTName: "Central European Summer Time"},
	{ID: "Europe/Madrid", StdAbbrev: "CET", DSTAbbrev: "CEST", StdName: "Central European Time", DSTName: "Central European Summer Time"},
	{ID: "Europe/Rome", StdAbbrev: "CET", DSTAbbrev: "CEST", StdName: "Central European Time", DSTName: "Central European Summer Time"},
	{ID: "Europe/Amsterdam", StdAbbrev: "CET", DSTAbbrev: "CEST", StdName: "Central European Time", DSTName: "Central European Summer Time"},
	{ID: "Europe/Athens", StdAbbrev: "EET", DSTAbbrev: "EEST", StdName: "Eastern European Time", DSTName: "Eastern European Summer Time"},
	{ID: "Europe/Helsinki", StdAbbrev: "EET", DSTAbbrev: "EEST", StdName: "Eastern European Time", DSTName: "Eastern European Summer Time"},
	{ID: "Europe/Moscow", StdAbbrev: "MSK", StdName: "Moscow Standard Time"},
	{ID: "Europe/Istanbul", StdAbbrev: "TRT", StdName: "Turkey Time"},

	// Americas
	{ID: "America/New_York", StdAbbrev: "EST", DSTAbbrev: "EDT", StdName: "Eastern Standard Time", DSTName: "Eastern Daylight Time"},
	{ID: "America/Chicago", StdAbbrev: "CST", DSTAbbrev: "CDT", StdName: "Central Standard Time", DSTName: "Central Daylight Time"},
	{ID: "America/Denver", StdAbbrev: "MST", DSTAbbrev: "MDT", StdName: "Mountain Standard Time", DSTName: "Mountain Daylight Time"},
	{ID: "America/Los_Angeles", StdAbbrev: "PST", DSTAbbrev: "PDT", StdName: "Pacific Standard Time", DSTName: "Pacific Daylight Time"},
	{ID: "America/Anchorage", StdAbbrev: "AKST", DSTAbbrev: "AKDT", StdName: "Alaska Standard Time", DSTName: "Alaska Daylight Time"},
	{ID: "Pacific/Honolulu", StdAbbrev: "HST", StdName: "Hawaii Standard Time"},
	{ID: "America/Toronto", StdAbbrev: "EST", DSTAbbrev: "EDT", StdName: "Eastern Standard Time", DSTName: "Eastern Daylight Time"},
	{ID: "America/Sao_Paulo", StdAbbrev: "BRT", StdName: "Brasilia Time"},
	{ID: "America/Argentina/Buenos_Aires", StdAbbrev: "ART", StdName: "Argentina Time"},
	{ID: "America/Mexico_City", StdAbbrev: "CST", StdName: "Central Standard Time (Mexico)"},

	// Africa
	{ID: "Africa/Cairo", StdAbbrev: "EET", DSTAbbrev: "EEST", StdName: "Eastern European Time", DSTName: "Eastern European Summer Time"},
	{ID: "Africa/Johannesburg", StdAbbrev: "SAST", StdName: "South Africa Standard Time"},
	{ID: "Africa/Lagos", StdAbbrev: "WAT", StdName: "West Africa Time"},
	{ID: "Africa/Nairobi", StdAbbrev: "EAT", StdName: "East Africa Time"},

	// Oceania
	{ID: "Australia/Sydney", StdAbbrev: "AEST", DSTAbbrev: "AEDT", StdName: "Australian Eastern Standard Time", DSTName: "Australian Eastern Daylight Time"},
	{ID: "Australia/Perth", StdAbbrev: "AWST", StdName: "Australian Western Standard Time"},
	{ID: "Pacific/Auckland", StdAbbrev: "NZST", DSTAbbrev: "NZDT", StdName: "New Zealand Standard Time", DSTName: "New Zealand Daylight Time"},
}
