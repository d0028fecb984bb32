// Package ratelimiter throttles the public write endpoints of the storefront
// (contact, quotes, enrollments, live validation) per client IP.
//
// Bucket implements a token bucket on top of a Store. MemoryStore keeps
// exact bucket state in process; RedisStore shares a fixed-window
// approximation across instances using INCRBY and PEXPIRE.
//
//	store := ratelimiter.NewRedisStore(rdb)
//	limiter, err := ratelimiter.NewBucket(store, cfg)
//	r.Use(ratelimiter.Middleware(limiter, ratelimiter.ClientIP))
//
// Middleware sets X-RateLimit-Limit, X-RateLimit-Remaining and
// X-RateLimit-Reset on every limited response and Retry-After on rejections.
package ratelimiter
