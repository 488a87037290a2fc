package client

import (
	"context"
	"encoding/json"

	"github.com/dmitrymomot/profilekit/pkg/profile"
)

// GetProfileAttributes returns the attributes of a profile, reusing a
// cached copy of the profile body while it is fresh. The cache entry is
// scoped per profile id.
func (c *Client) GetProfileAttributes(ctx context.Context, profileID string) ([]*profile.Attribute, error) {
	if profileID == "" {
		return nil, ErrMissingProfileID
	}
	key := cacheKeyAttributes + profileID

	if raw, ok, err := c.cache.Get(ctx, key); err == nil && ok {
		c.log.DebugContext(ctx, "profile attributes cache hit", "profile_id", profileID)
		cached, err := profile.Parse(raw)
		if err == nil {
			return cached.Attributes(), nil
		}
		// A corrupt entry is dropped and the read falls through to the API.
		_ = c.cache.Expire(ctx, key)
	}

	p, err := c.LoadProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(p); err == nil {
		if err := c.cache.Set(ctx, key, raw); err != nil {
			c.log.WarnContext(ctx, "failed to cache profile attributes", "error", err)
		}
	}
	return p.Attributes(), nil
}
