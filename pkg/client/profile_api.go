package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrymomot/profilekit/pkg/profile"
)

// profileEnvelope is the wire envelope every profile endpoint responds
// with. A nil Profile after decoding means the member was absent.
type profileEnvelope struct {
	Profile *profile.Profile `json:"profile"`
}

// LoadProfile fetches the profile with the given id. A 2xx response
// without a profile member is a shape error (ErrNoProfile), never an empty
// success.
func (c *Client) LoadProfile(ctx context.Context, profileID string) (*profile.Profile, error) {
	if profileID == "" {
		return nil, ErrMissingProfileID
	}

	var envelope profileEnvelope
	if err := c.do(ctx, http.MethodGet, c.profileURL(profileID), nil, &envelope); err != nil {
		return nil, err
	}
	if envelope.Profile == nil {
		return nil, ErrNoProfile
	}
	return envelope.Profile, nil
}

// SaveProfile persists the profile in its serialized wire form and returns
// the profile the service responded with.
func (c *Client) SaveProfile(ctx context.Context, p *profile.Profile) (*profile.Profile, error) {
	if p == nil {
		return nil, ErrMissingProfile
	}

	var envelope profileEnvelope
	if err := c.do(ctx, http.MethodPost, c.profileURL(p.ID()), p, &envelope); err != nil {
		return nil, err
	}
	if envelope.Profile == nil {
		return nil, ErrNoProfile
	}
	return envelope.Profile, nil
}

// RefreshProfile reloads the remote copy of local and merges it into local
// in place, preserving unsynchronized local edits. See profile.Merge for
// the reconciliation policy.
func (c *Client) RefreshProfile(ctx context.Context, local *profile.Profile) error {
	if local == nil {
		return ErrMissingProfile
	}

	remote, err := c.LoadProfile(ctx, local.ID())
	if err != nil {
		return err
	}
	if _, err := local.Merge(remote); err != nil {
		return fmt.Errorf("merge refreshed profile: %w", err)
	}
	return nil
}

// DeleteProfile removes the profile with the given id from the remote
// store and drops its cached attributes.
func (c *Client) DeleteProfile(ctx context.Context, profileID string) error {
	if profileID == "" {
		return ErrMissingProfileID
	}
	if err := c.do(ctx, http.MethodDelete, c.profileURL(profileID), nil, nil); err != nil {
		return err
	}
	return c.cache.Expire(ctx, cacheKeyAttributes+profileID)
}
