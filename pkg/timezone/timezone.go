// Package timezone resolves carrier-supplied timezone abbreviations and
// free-text localities into IANA timezone names.
package timezone

import (
	"strings"
	"sync"
	"time"
	_ "time/tzdata" // carriers report zones the host may not have installed
)

// DefaultTimezone is used when nothing else resolves.
const DefaultTimezone = "America/New_York"

// abbreviations maps US abbreviations to a deterministic zone. Several zones
// share each abbreviation, so these are pinned instead of searched.
//
//nolint: gochecknoglobals
var abbreviations = map[string]string{
	"ET":   "America/New_York",
	"EST":  "America/New_York",
	"EDT":  "America/New_York",
	"CT":   "America/Chicago",
	"CST":  "America/Chicago",
	"CDT":  "America/Chicago",
	"MT":   "America/Denver",
	"MST":  "America/Denver",
	"MDT":  "America/Denver",
	"PT":   "America/Los_Angeles",
	"PST":  "America/Los_Angeles",
	"PDT":  "America/Los_Angeles",
	"AKST": "America/Anchorage",
	"AKDT": "America/Anchorage",
	"HST":  "Pacific/Honolulu",
	"HDT":  "America/Adak",
}

// knownZones is searched in order for abbreviations missing from the fixed table.
//
//nolint: gochecknoglobals
var knownZones = []string{
	"Africa/Cairo",
	"Africa/Johannesburg",
	"Africa/Lagos",
	"Africa/Nairobi",
	"America/Adak",
	"America/Anchorage",
	"America/Argentina/Buenos_Aires",
	"America/Bogota",
	"America/Boise",
	"America/Chicago",
	"America/Denver",
	"America/Detroit",
	"America/Halifax",
	"America/Indiana/Indianapolis",
	"America/Los_Angeles",
	"America/Mexico_City",
	"America/New_York",
	"America/Phoenix",
	"America/Puerto_Rico",
	"America/Regina",
	"America/Santiago",
	"America/Sao_Paulo",
	"America/St_Johns",
	"America/Toronto",
	"America/Vancouver",
	"Asia/Dubai",
	"Asia/Hong_Kong",
	"Asia/Jerusalem",
	"Asia/Karachi",
	"Asia/Kolkata",
	"Asia/Manila",
	"Asia/Seoul",
	"Asia/Shanghai",
	"Asia/Singapore",
	"Asia/Tokyo",
	"Atlantic/Reykjavik",
	"Australia/Adelaide",
	"Australia/Brisbane",
	"Australia/Perth",
	"Australia/Sydney",
	"Europe/Amsterdam",
	"Europe/Berlin",
	"Europe/Dublin",
	"Europe/Helsinki",
	"Europe/Istanbul",
	"Europe/Lisbon",
	"Europe/London",
	"Europe/Madrid",
	"Europe/Moscow",
	"Europe/Paris",
	"Europe/Warsaw",
	"Pacific/Auckland",
	"Pacific/Guam",
	"Pacific/Honolulu",
	"Pacific/Pago_Pago",
}

// abbreviationIndex maps every abbreviation observed in knownZones to the
// first zone using it. Winter and summer reference dates cover both offsets.
var abbreviationIndex = sync.OnceValue(func() map[string]string { //nolint: gochecknoglobals
	refs := []time.Time{
		time.Date(2024, time.January, 15, 12, 0, 0, 0, time.UTC),
		time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC),
	}

	index := make(map[string]string)
	for _, name := range knownZones {
		loc, err := time.LoadLocation(name)
		if err != nil {
			continue
		}
		for _, ref := range refs {
			abbr, _ := ref.In(loc).Zone()
			if _, ok := index[abbr]; !ok {
				index[abbr] = name
			}
		}
	}

	return index
})

// Resolve maps a timezone abbreviation or IANA name to an IANA name. It
// never fails: unresolvable input yields DefaultTimezone.
func Resolve(abbrOrName string) string {
	if name, ok := Lookup(abbrOrName); ok {
		return name
	}

	return DefaultTimezone
}

// Lookup is Resolve without the fallback.
func Lookup(abbrOrName string) (string, bool) {
	s := strings.TrimSpace(abbrOrName)
	if s == "" {
		return "", false
	}

	if name, ok := abbreviations[strings.ToUpper(s)]; ok {
		return name, true
	}
	if isZoneName(s) {
		return s, true
	}
	if name, ok := abbreviationIndex()[strings.ToUpper(s)]; ok {
		return name, true
	}

	return "", false
}

func isZoneName(s string) bool {
	if s != "UTC" && !strings.Contains(s, "/") {
		return false
	}
	_, err := Load(s)

	return err == nil
}

var locations sync.Map //nolint: gochecknoglobals

// Load returns the location for an IANA name, caching successful loads.
func Load(name string) (*time.Location, error) {
	if loc, ok := locations.Load(name); ok {
		return loc.(*time.Location), nil //nolint: forcetypeassert
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, err
	}
	locations.Store(name, loc)

	return loc, nil
}

// Location resolves abbrOrName and returns its location. It falls back to
// DefaultTimezone.
func Location(abbrOrName string) *time.Location {
	if loc, err := Load(Resolve(abbrOrName)); err == nil {
		return loc
	}
	loc, _ := Load(DefaultTimezone)

	return loc
}
