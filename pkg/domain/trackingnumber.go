package domain

import (
	"strings"
	"unicode"
)

// TrackingNumber pairs the caller-supplied string with its normalized form.
type TrackingNumber struct {
	Raw        string
	Normalized string
}

// NewTrackingNumber strips all whitespace from raw and upper-cases it.
func NewTrackingNumber(raw string) TrackingNumber {
	return TrackingNumber{Raw: raw, Normalized: NormalizeTrackingNumber(raw)}
}

// NormalizeTrackingNumber removes every whitespace rune and upper-cases the rest.
func NormalizeTrackingNumber(raw string) string {
	return strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}

		return r
	}, raw))
}

func (t TrackingNumber) String() string { return t.Normalized }
