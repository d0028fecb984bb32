package ratelimiter

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore approximates a token bucket with a fixed window shared by every
// storefront instance. Each key counts consumed tokens in a window as long as
// Config.Window; the counter expires with the window.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

type RedisStoreOption func(*RedisStore)

// WithKeyPrefix namespaces the counters. The default is "ratelimit:".
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(rs *RedisStore) { rs.prefix = prefix }
}

func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) *RedisStore {
	rs := &RedisStore{client: client, prefix: "ratelimit:"}
	for _, opt := range opts {
		opt(rs)
	}
	return rs
}

func (rs *RedisStore) ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (int, time.Time, error) {
	k := rs.prefix + key
	window := cfg.Window()

	var (
		incr *redis.IntCmd
		pttl *redis.DurationCmd
	)
	_, err := rs.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		incr = p.IncrBy(ctx, k, int64(tokens))
		pttl = p.PTTL(ctx, k)
		return nil
	})
	if err != nil {
		return 0, time.Time{}, errors.Join(ErrStoreUnavailable, err)
	}

	ttl := pttl.Val()
	if ttl < 0 {
		if err := rs.client.PExpire(ctx, k, window).Err(); err != nil {
			return 0, time.Time{}, errors.Join(ErrStoreUnavailable, err)
		}
		ttl = window
	}

	used := int(incr.Val())
	remaining := cfg.Capacity - used
	if remaining < 0 && tokens > 0 {
		// Denied requests give their tokens back so retries do not extend the penalty.
		if err := rs.client.DecrBy(ctx, k, int64(tokens)).Err(); err != nil {
			return 0, time.Time{}, errors.Join(ErrStoreUnavailable, err)
		}
	}
	return remaining, time.Now().Add(ttl), nil
}

func (rs *RedisStore) Reset(ctx context.Context, key string) error {
	if err := rs.client.Del(ctx, rs.prefix+key).Err(); err != nil {
		return errors.Join(ErrStoreUnavailable, err)
	}
	return nil
}
