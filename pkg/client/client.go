package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/profilekit/pkg/ttlcache"
)

// Cache key prefixes; the scoping identifier is appended by the caller of
// the cache, not by the cache itself.
const (
	cacheKeySettings   = "settings"
	cacheKeyAttributes = "attributes"
)

const userAgent = "profilekit/1.0"

// Client is the remote access layer of the SDK: it issues HTTP requests
// against the profile service and hands parsed bodies to the core model.
// A Client is safe for concurrent use.
type Client struct {
	cfg   Config
	http  *http.Client
	cache ttlcache.Store
	log   *slog.Logger
}

// New creates a client. The configuration is validated before any I/O;
// validation errors name the missing field.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = ttlcache.DefaultTTL
	}
	if cfg.EvaluationURL == "" {
		cfg.EvaluationURL = cfg.APIURL
	}
	if cfg.SchedulerURL == "" {
		cfg.SchedulerURL = cfg.APIURL
	}

	c := &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.cache == nil {
		cacheOpts := []ttlcache.Option{ttlcache.WithTTL(cfg.CacheTTL)}
		if cfg.NoCache {
			cacheOpts = append(cacheOpts, ttlcache.Disabled())
		}
		c.cache = ttlcache.NewMemoryStore(cacheOpts...)
	}

	return c, nil
}

// ExpireCache evicts a single response cache entry immediately.
func (c *Client) ExpireCache(ctx context.Context, key string) error {
	return c.cache.Expire(ctx, key)
}

// ClearCache evicts the whole response cache.
func (c *Client) ClearCache(ctx context.Context) error {
	return c.cache.Clear(ctx)
}

// do issues a JSON request and decodes the response body into out when out
// is non-nil. Non-2xx responses are wrapped in ErrRequestFailed with the
// status code; network failures are surfaced verbatim.
func (c *Client) do(ctx context.Context, method, rawURL string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.AppKey)
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Request-Id", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "profile api request",
		slog.String("method", method),
		slog.String("url", rawURL),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Include a short body snippet: the service reports the reason there.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: status %d: %s", ErrRequestFailed, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response body: %w", err)
	}
	return nil
}

// profileURL builds the profile resource URL for the configured bucket.
func (c *Client) profileURL(profileID string) string {
	return fmt.Sprintf("%s/v1/companies/%s/buckets/%s/profiles/%s",
		strings.TrimRight(c.cfg.APIURL, "/"),
		url.PathEscape(c.cfg.GroupID),
		url.PathEscape(c.cfg.BucketName),
		url.PathEscape(profileID),
	)
}

// appSettingsURL builds the application settings URL.
func (c *Client) appSettingsURL() string {
	return fmt.Sprintf("%s/v1/companies/%s/buckets/%s/apps/%s",
		strings.TrimRight(c.cfg.APIURL, "/"),
		url.PathEscape(c.cfg.GroupID),
		url.PathEscape(c.cfg.BucketName),
		url.PathEscape(c.cfg.AppName),
	)
}
