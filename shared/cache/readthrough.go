package cache

import (
	"context"

	"github.com/rs/zerolog/log"
)

// ReadThrough serves key from the cache, or calls load and stores its result
// in the background for ttlSeconds. A failing load is returned as is and
// nothing is cached.
func ReadThrough[T any](ctx context.Context, c RedisCache, key string, ttlSeconds int, load func(context.Context) (T, error)) (T, error) {
	var value T

	if err := c.Get(ctx, key, &value); err == nil {
		log.Debug().Str("cacheKey", key).Msg("cache hit")

		return value, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	go func() {
		if err := c.Save(context.WithoutCancel(ctx), key, value, ttlSeconds); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save to cache")
		}
	}()

	return value, nil
}
