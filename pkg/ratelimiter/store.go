package ratelimiter

import (
	"context"
	"time"
)

// Store keeps bucket state. ConsumeTokens returns the tokens left after
// taking the requested amount; a negative value means the request is denied.
type Store interface {
	ConsumeTokens(ctx context.Context, key string, tokens int, cfg Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}
