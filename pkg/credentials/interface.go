// Package credentials caches short-lived bearer tokens per credential key and
// performs the OAuth2 client-credentials exchange that produces them.
package credentials

import (
	"context"
	"time"
)

// DefaultSafetyMargin is subtracted from a token's declared expiry so a
// cached token is never handed out moments before it lapses.
const DefaultSafetyMargin = 100 * time.Second

// Token is a bearer token and the instant it stops being accepted.
type Token struct {
	Value     string
	ExpiresAt time.Time
}

// Fetcher exchanges credentials for a fresh token.
type Fetcher func(ctx context.Context) (Token, error)

// Cache returns a cached token for key or obtains one with fetch.
// Implementations are safe for concurrent use.
type Cache interface {
	GetOrFetch(ctx context.Context, key string, fetch Fetcher) (string, error)
}

// Invalidator is implemented by caches that can drop a token the upstream
// has rejected before its recorded expiry.
type Invalidator interface {
	Invalidate(ctx context.Context, key string)
}

// Invalidate drops key from cache when the cache supports it.
func Invalidate(ctx context.Context, cache Cache, key string) {
	if inv, ok := cache.(Invalidator); ok {
		inv.Invalidate(ctx, key)
	}
}

// Options configure cache implementations.
type Options struct {
	// SafetyMargin defaults to DefaultSafetyMargin when zero.
	SafetyMargin time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.SafetyMargin <= 0 {
		o.SafetyMargin = DefaultSafetyMargin
	}
	if o.Now == nil {
		o.Now = time.Now
	}

	return o
}
