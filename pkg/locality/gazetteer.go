// Package locality provides timezone.Geocoder implementations backed by the
// gazetteer storage, optionally in front of a remote geocoder.
package locality

import (
	"context"
	"fmt"
	"strings"
	"tracker/pkg/logger"
	"tracker/pkg/serrors"
	"tracker/pkg/storage"
	"tracker/pkg/timezone"

	"go.uber.org/zap"
)

// countrySuffixes are trailing country designations carriers append to
// US localities; entries are usually stored without them.
//
//nolint: gochecknoglobals
var countrySuffixes = []string{" - USA", " - US", ", USA", ", US", " USA", " US"}

// Candidates returns the search keys tried for text, most specific first.
func Candidates(text string) []string {
	key := timezone.Key(text)
	if key == "" {
		return nil
	}

	out := []string{key}
	for _, suffix := range countrySuffixes {
		if trimmed, ok := strings.CutSuffix(key, suffix); ok {
			if trimmed = strings.TrimRight(trimmed, " ,-"); trimmed != "" {
				out = append(out, trimmed)
			}

			break
		}
	}

	return out
}

// Gazetteer resolves localities from stored entries only.
type Gazetteer struct {
	store storage.LocalityStorage
}

var _ timezone.Geocoder = (*Gazetteer)(nil)

// NewGazetteer creates a Gazetteer reading from store.
func NewGazetteer(store storage.LocalityStorage) *Gazetteer {
	return &Gazetteer{store: store}
}

// Geocode implements timezone.Geocoder. Unknown texts yield serrors.ErrNotFound.
func (g *Gazetteer) Geocode(ctx context.Context, text string) (timezone.Locality, error) {
	candidates := Candidates(text)
	if len(candidates) == 0 {
		return timezone.Locality{}, serrors.With(serrors.ErrNotFound, "empty location")
	}

	found, err := g.store.LocalitiesByKeys(ctx, candidates...)
	if err != nil {
		return timezone.Locality{}, serrors.Wrap(serrors.ErrUnavailable, err, "could not query gazetteer")
	}
	for _, c := range candidates {
		if rec, ok := found[c]; ok {
			return rec.Locality, nil
		}
	}

	return timezone.Locality{}, serrors.With(serrors.ErrNotFound, "no gazetteer entry for %q", candidates[0])
}

// Cached answers from the gazetteer first and falls back to a remote
// geocoder, storing what it finds for later lookups.
type Cached struct {
	gazetteer *Gazetteer
	store     storage.LocalityStorage
	remote    timezone.Geocoder
}

var _ timezone.Geocoder = (*Cached)(nil)

// NewCached creates a Cached geocoder.
func NewCached(store storage.LocalityStorage, remote timezone.Geocoder) *Cached {
	return &Cached{gazetteer: NewGazetteer(store), store: store, remote: remote}
}

// Geocode implements timezone.Geocoder. Gazetteer failures other than a miss
// are logged and the remote geocoder is consulted anyway.
func (c *Cached) Geocode(ctx context.Context, text string) (timezone.Locality, error) {
	loc, err := c.gazetteer.Geocode(ctx, text)
	if err == nil {
		return loc, nil
	}
	if !serrors.IsAny(err, serrors.ErrNotFound) {
		logger.Warn(ctx, "could not read gazetteer", zap.String("location", text), zap.Error(err))
	}

	loc, err = c.remote.Geocode(ctx, text)
	if err != nil {
		return timezone.Locality{}, fmt.Errorf("could not geocode location: %w", err)
	}

	if _, err := c.store.StoreLocalities(ctx, storage.LocalityRecord{
		SearchKey: timezone.Key(text),
		Locality:  loc,
		Source:    storage.SourceGeocoder,
	}); err != nil {
		logger.Warn(ctx, "could not cache locality", zap.String("location", text), zap.Error(err))
	}

	return loc, nil
}
