package tracker

import (
	"context"
	"time"
	"tracker/pkg/domain"
)

// Request is a single tracking lookup.
type Request struct {
	// TrackingNumber is normalized before use: whitespace is removed and letters upper-cased.
	TrackingNumber string
	// Carrier is an optional case-insensitive carrier designation. When empty the
	// carrier is detected from the number's format.
	Carrier string
	// MinDate excludes events strictly before it. The zero value disables filtering.
	MinDate time.Time
}

//go:generate mockgen -package mocktracker -source=interface.go -destination=mock/mocktracker.go *
type Tracker interface {
	Track(ctx context.Context, req Request) (*domain.TrackResult, error)
	Identify(trackingNumber string) []domain.Carrier
}
