package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// settingsEnvelope carries raw JSON so that a missing custom member is
// distinguishable from an empty object.
type settingsEnvelope struct {
	Custom json.RawMessage `json:"custom"`
}

// GetAppSettings returns the application's custom settings, reusing a
// cached copy while it is fresh. A 2xx response without a custom member is
// a shape error (ErrNoCustomSettings).
func (c *Client) GetAppSettings(ctx context.Context) (map[string]any, error) {
	key := cacheKeySettings + c.cfg.AppName

	if raw, ok, err := c.cache.Get(ctx, key); err == nil && ok {
		c.log.DebugContext(ctx, "app settings cache hit", "app", c.cfg.AppName)
		return decodeSettings(raw)
	}

	var envelope settingsEnvelope
	if err := c.do(ctx, http.MethodGet, c.appSettingsURL(), nil, &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Custom) == 0 || string(envelope.Custom) == "null" {
		return nil, ErrNoCustomSettings
	}

	settings, err := decodeSettings(envelope.Custom)
	if err != nil {
		return nil, err
	}
	if err := c.cache.Set(ctx, key, envelope.Custom); err != nil {
		c.log.WarnContext(ctx, "failed to cache app settings", "error", err)
	}
	return settings, nil
}

// SetAppSettings replaces the application's custom settings and refreshes
// the cached copy with what the service responded.
func (c *Client) SetAppSettings(ctx context.Context, settings map[string]any) (map[string]any, error) {
	if settings == nil {
		return nil, ErrMissingSettings
	}

	body := map[string]any{"custom": settings}
	var envelope settingsEnvelope
	if err := c.do(ctx, http.MethodPut, c.appSettingsURL(), body, &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Custom) == 0 || string(envelope.Custom) == "null" {
		return nil, ErrNoCustomSettings
	}

	updated, err := decodeSettings(envelope.Custom)
	if err != nil {
		return nil, err
	}
	key := cacheKeySettings + c.cfg.AppName
	if err := c.cache.Set(ctx, key, envelope.Custom); err != nil {
		c.log.WarnContext(ctx, "failed to cache app settings", "error", err)
	}
	return updated, nil
}

func decodeSettings(raw []byte) (map[string]any, error) {
	var settings map[string]any
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("decode custom settings: %w", err)
	}
	return settings, nil
}
