package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/profilekit/pkg/client"
)

func TestClient_GetAppSettings(t *testing.T) {
	t.Parallel()

	t.Run("reads through the cache", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			assert.Equal(t, "/v1/companies/acme/buckets/main/apps/web", r.URL.Path)
			w.Write([]byte(`{"custom":{"theme":"dark"}}`))
		}))
		defer srv.Close()

		c := newTestClient(t, srv)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			settings, err := c.GetAppSettings(ctx)
			require.NoError(t, err)
			assert.Equal(t, map[string]any{"theme": "dark"}, settings)
		}
		assert.Equal(t, int32(1), hits.Load(), "second and third reads come from the cache")

		// Expiring the key forces a fresh read.
		require.NoError(t, c.ExpireCache(ctx, "settingsweb"))
		_, err := c.GetAppSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, int32(2), hits.Load())
	})

	t.Run("missing custom member is a shape error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"settings":{}}`))
		}))
		defer srv.Close()

		_, err := newTestClient(t, srv).GetAppSettings(context.Background())
		assert.ErrorIs(t, err, client.ErrNoCustomSettings)
	})

	t.Run("cache disabled hits the server every time", func(t *testing.T) {
		t.Parallel()

		var hits atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			w.Write([]byte(`{"custom":{}}`))
		}))
		defer srv.Close()

		cfg := validConfig()
		cfg.APIURL = srv.URL
		cfg.NoCache = true
		c, err := client.New(cfg)
		require.NoError(t, err)

		for i := 0; i < 2; i++ {
			_, err := c.GetAppSettings(context.Background())
			require.NoError(t, err)
		}
		assert.Equal(t, int32(2), hits.Load())
	})
}

func TestClient_SetAppSettings(t *testing.T) {
	t.Parallel()

	t.Run("updates and refreshes the cache", func(t *testing.T) {
		t.Parallel()

		var gets atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPut:
				var body struct {
					Custom map[string]any `json:"custom"`
				}
				require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, map[string]any{"theme": "light"}, body.Custom)
				w.Write([]byte(`{"custom":{"theme":"light"}}`))
			case http.MethodGet:
				gets.Add(1)
				w.Write([]byte(`{"custom":{"theme":"stale"}}`))
			}
		}))
		defer srv.Close()

		c := newTestClient(t, srv)
		ctx := context.Background()

		updated, err := c.SetAppSettings(ctx, map[string]any{"theme": "light"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"theme": "light"}, updated)

		// The follow-up read is served from the refreshed cache entry.
		settings, err := c.GetAppSettings(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"theme": "light"}, settings)
		assert.Equal(t, int32(0), gets.Load())
	})

	t.Run("nil settings fail before I/O", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("no request expected")
		}))
		defer srv.Close()

		_, err := newTestClient(t, srv).SetAppSettings(context.Background(), nil)
		assert.ErrorIs(t, err, client.ErrMissingSettings)
	})
}
