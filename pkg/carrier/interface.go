// Package carrier defines the contract implemented by every carrier
// normalizer and the helpers they share: HTTP status classification, payload
// decoding, local time resolution and canonical result assembly.
package carrier

import (
	"context"
	"time"
	"tracker/pkg/domain"
)

// Options are per-call tracking options.
type Options struct {
	// MinDate excludes events strictly before it. The zero value disables filtering.
	MinDate time.Time
}

// Normalizer fetches a carrier payload and maps it to a canonical TrackResult.
//
// A well-formed "not found" reply yields a result with no events and a nil
// error. Transport failures are returned as serrors kinds: ErrUnavailable,
// ErrTimeout, ErrRateLimited, ErrUnauthorized or ErrBadRequest.
//
//go:generate mockgen -package mockcarrier -source=interface.go -destination=mock/mockcarrier.go *
type Normalizer interface {
	// Carrier is the carrier network whose numbers this normalizer tracks.
	Carrier() domain.Carrier
	// Provider names the upstream API, unique across normalizers.
	Provider() string
	Track(ctx context.Context, trackingNumber string, opts Options) (*domain.TrackResult, error)
}
