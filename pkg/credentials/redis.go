package credentials

import (
	"context"
	"errors"
	"tracker/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// DefaultRedisPrefix namespaces token keys in Redis.
const DefaultRedisPrefix = "tracker:token:"

// Redis is a Cache shared by every process pointing at the same Redis. Expiry
// is delegated to the key TTL. Redis failures degrade to fetching a fresh
// token rather than failing the caller.
type Redis struct {
	client  redis.UniversalClient
	prefix  string
	options Options
	group   singleflight.Group
}

var _ Cache = (*Redis)(nil)

// NewRedis creates a Redis-backed cache. An empty prefix uses DefaultRedisPrefix.
func NewRedis(client redis.UniversalClient, prefix string, options Options) *Redis {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}

	return &Redis{client: client, prefix: prefix, options: options.withDefaults()}
}

// GetOrFetch implements Cache.
func (r *Redis) GetOrFetch(ctx context.Context, key string, fetch Fetcher) (string, error) {
	redisKey := r.prefix + key

	v, err := r.client.Get(ctx, redisKey).Result()
	switch {
	case err == nil:
		return v, nil
	case !errors.Is(err, redis.Nil):
		logger.Warn(ctx, "could not read cached token", zap.String("key", key), zap.Error(err))
	}

	res, err, _ := r.group.Do(key, func() (any, error) {
		tok, err := fetch(ctx)
		if err != nil {
			return "", err
		}

		ttl := tok.ExpiresAt.Sub(r.options.Now()) - r.options.SafetyMargin
		if ttl > 0 {
			if err := r.client.Set(ctx, redisKey, tok.Value, ttl).Err(); err != nil {
				logger.Warn(ctx, "could not cache token", zap.String("key", key), zap.Error(err))
			}
		}

		return tok.Value, nil
	})
	if err != nil {
		return "", err
	}

	return res.(string), nil //nolint: forcetypeassert
}

// Invalidate implements Invalidator.
func (r *Redis) Invalidate(ctx context.Context, key string) {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		logger.Warn(ctx, "could not drop cached token", zap.String("key", key), zap.Error(err))
	}
}
