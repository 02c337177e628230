package carrier

import (
	"strings"
	"time"
	"tracker/pkg/domain"
	"tracker/pkg/timezone"
)

// ParseIn parses a local timestamp with the first layout that fits and
// returns the UTC instant it denotes in loc.
func ParseIn(loc *time.Location, value string, layouts ...string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	if loc == nil {
		loc = timezone.Location(timezone.DefaultTimezone)
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

// ParseAbsolute parses a timestamp that carries its own offset.
func ParseAbsolute(value string, layouts ...string) (time.Time, bool) {
	if len(layouts) == 0 {
		layouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05-0700", "2006-01-02T15:04:05.000-0700"}
	}
	value = strings.TrimSpace(value)
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), true
		}
	}

	return time.Time{}, false
}

// Place is the outcome of resolving an event location.
type Place struct {
	Address  *domain.Address
	Location *time.Location
}

// Locate resolves an event location from the localities found for a payload.
// Unresolved locations keep only the components the carrier reported in
// separate fields; the composite text is never split into a guessed city or
// state. They fall back to the default timezone.
func Locate(found map[string]timezone.Locality, text string, reported domain.Address) Place {
	loc, ok := found[text]
	if !ok {
		return Place{Address: addressOrNil(reported), Location: timezone.Location(timezone.DefaultTimezone)}
	}

	addr := domain.Address{
		City:    loc.City,
		State:   loc.State,
		Zip:     firstNonEmpty(reported.Zip, loc.Zip),
		Country: firstNonEmpty(reported.Country, loc.Country),
	}

	return Place{Address: addressOrNil(addr), Location: timezone.Location(loc.Timezone)}
}

func addressOrNil(a domain.Address) *domain.Address {
	if a.IsZero() {
		return nil
	}

	return &a
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}

	return ""
}

// JoinLocation builds the free-text location handed to the geocoder from
// separate components, skipping empty ones.
func JoinLocation(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}

	return strings.Join(out, " ")
}
