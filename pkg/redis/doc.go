// Package redis connects to Redis with bounded retries and exposes a
// readiness probe. The client backs the shared rate-limit counters.
package redis
