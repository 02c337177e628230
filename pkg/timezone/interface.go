package timezone

import "context"

// Locality is a normalized place and the timezone observed there.
type Locality struct {
	City    string
	State   string
	Zip     string
	Country string
	// Timezone is an IANA name; empty when the collaborator did not report one.
	Timezone string
}

// Geocoder looks up a free-text location such as "NEW YORK NY US".
// Implementations return an error of kind serrors.ErrNotFound when nothing
// matches.
//
//go:generate mockgen -package mocktimezone -source=interface.go -destination=mock/mocktimezone.go *
type Geocoder interface {
	Geocode(ctx context.Context, text string) (Locality, error)
}
