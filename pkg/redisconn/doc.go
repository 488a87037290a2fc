// Package redisconn connects to Redis with retries and exposes a readiness
// probe. It backs the Redis-based response cache in pkg/ttlcache when the
// cache is shared across processes.
package redisconn
