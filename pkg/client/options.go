package client

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/profilekit/pkg/ttlcache"
)

// Option configures client construction.
type Option func(*Client)

// WithHTTPClient replaces the default pooled HTTP client, for custom
// transports, proxies, or testing. Nil is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger attaches a structured logger. The client logs request
// outcomes and cache hits at debug level; by default logs are discarded.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithCache replaces the response cache, e.g. with a Redis-backed store
// shared across processes. Nil is ignored.
func WithCache(store ttlcache.Store) Option {
	return func(c *Client) {
		if store != nil {
			c.cache = store
		}
	}
}
