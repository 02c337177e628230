package timezone

import (
	"context"
	"errors"
	"strings"
	"tracker/pkg/logger"
	"tracker/pkg/serrors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds parallel geocoder lookups in ResolveAll.
const DefaultConcurrency = 4

// Resolver turns free-text locations into localities using a Geocoder.
// A nil Geocoder resolves nothing. It is safe for concurrent use.
type Resolver struct {
	geocoder    Geocoder
	concurrency int
}

// NewResolver creates a Resolver. A non-positive concurrency uses DefaultConcurrency.
func NewResolver(geocoder Geocoder, concurrency int) *Resolver {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	return &Resolver{geocoder: geocoder, concurrency: concurrency}
}

// Key canonicalizes a free-text location for deduplication.
func Key(text string) string {
	return strings.ToUpper(strings.Join(strings.Fields(text), " "))
}

// ResolveLocality looks up text and reports whether it was found. Lookup
// errors are logged and reported as not found so one bad location never fails
// a tracking call. A found locality always carries a timezone.
func (r *Resolver) ResolveLocality(ctx context.Context, text string) (Locality, bool) {
	key := Key(text)
	if r == nil || r.geocoder == nil || key == "" {
		return Locality{}, false
	}

	loc, err := r.geocoder.Geocode(ctx, key)
	if err != nil {
		if !errors.Is(err, serrors.ErrNotFound) {
			logger.Warn(ctx, "could not resolve locality", zap.String("location", key), zap.Error(err))
		}

		return Locality{}, false
	}

	loc.Timezone = Resolve(loc.Timezone)

	return loc, true
}

// ResolveAll resolves each distinct location with bounded concurrency and
// returns the found ones keyed by the input strings. Unresolved inputs are
// absent from the result.
func (r *Resolver) ResolveAll(ctx context.Context, texts []string) map[string]Locality {
	keys := make([]string, 0, len(texts))
	seen := make(map[string]struct{}, len(texts))
	for _, t := range texts {
		k := Key(t)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}

	type found struct {
		loc Locality
		ok  bool
	}
	results := make([]found, len(keys))

	var g errgroup.Group
	g.SetLimit(r.limit())
	for i, k := range keys {
		g.Go(func() error {
			loc, ok := r.ResolveLocality(ctx, k)
			results[i] = found{loc: loc, ok: ok}

			return nil
		})
	}
	_ = g.Wait()

	byKey := make(map[string]Locality, len(keys))
	for i, k := range keys {
		if results[i].ok {
			byKey[k] = results[i].loc
		}
	}

	out := make(map[string]Locality, len(texts))
	for _, t := range texts {
		if loc, ok := byKey[Key(t)]; ok {
			out[t] = loc
		}
	}

	return out
}

func (r *Resolver) limit() int {
	if r == nil || r.concurrency <= 0 {
		return DefaultConcurrency
	}

	return r.concurrency
}
