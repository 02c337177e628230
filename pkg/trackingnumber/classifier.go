// Package trackingnumber identifies which carriers could have issued a
// tracking number by its structural shape and check digit.
//
// Several carriers share the IMpb shapes, so one number may validate for more
// than one carrier. The classifier keeps that overlap; choosing between the
// candidates is up to the caller.
package trackingnumber

import (
	"sync"
	"tracker/pkg/domain"
)

// Classifier holds the immutable per-carrier format tables.
type Classifier struct {
	formats map[domain.Carrier][]Format
}

// New builds a Classifier from the built-in format tables.
func New() *Classifier {
	return &Classifier{formats: formatTable()}
}

// Identify reports whether raw is a plausible tracking number for carrier.
// Whitespace is stripped and letters upper-cased before matching. Unknown
// carriers never match.
func (c *Classifier) Identify(carrier domain.Carrier, raw string) bool {
	return c.format(carrier, domain.NormalizeTrackingNumber(raw)) != nil
}

// Format returns the first format of carrier that accepts raw, or nil.
func (c *Classifier) Format(carrier domain.Carrier, raw string) *Format {
	return c.format(carrier, domain.NormalizeTrackingNumber(raw))
}

func (c *Classifier) format(carrier domain.Carrier, number string) *Format {
	for i := range c.formats[carrier] {
		if c.formats[carrier][i].Matches(number) {
			return &c.formats[carrier][i]
		}
	}

	return nil
}

// Match returns every carrier whose formats accept raw, in detection order.
func (c *Classifier) Match(raw string) []domain.Carrier {
	number := domain.NormalizeTrackingNumber(raw)

	var out []domain.Carrier
	for _, carrier := range domain.Carriers() {
		if c.format(carrier, number) != nil {
			out = append(out, carrier)
		}
	}

	return out
}

// Formats returns a copy of the formats registered for carrier.
func (c *Classifier) Formats(carrier domain.Carrier) []Format {
	return append([]Format(nil), c.formats[carrier]...)
}

var defaultClassifier = sync.OnceValue(New) //nolint: gochecknoglobals

// Identify reports whether raw is a plausible tracking number for carrier
// using the built-in tables.
func Identify(carrier domain.Carrier, raw string) bool {
	return defaultClassifier().Identify(carrier, raw)
}

// Match returns every carrier whose built-in formats accept raw.
func Match(raw string) []domain.Carrier {
	return defaultClassifier().Match(raw)
}
