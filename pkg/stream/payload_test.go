package stream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/profilekit/pkg/stream"
)

func TestParsePayload(t *testing.T) {
	t.Parallel()

	t.Run("full payload", func(t *testing.T) {
		t.Parallel()

		p, err := stream.ParsePayload([]byte(`{
			"profile": {"id":"p1","attributes":[],"sessions":[]},
			"meta": {"delivery":"d1"}
		}`))
		require.NoError(t, err)

		prof, err := p.Profile()
		require.NoError(t, err)
		assert.Equal(t, "p1", prof.ID())

		meta, err := p.Meta()
		require.NoError(t, err)
		assert.Equal(t, "d1", meta["delivery"])
	})

	t.Run("missing profile only fails the profile accessor", func(t *testing.T) {
		t.Parallel()

		p, err := stream.ParsePayload([]byte(`{"meta":{"delivery":"d1"}}`))
		require.NoError(t, err)

		_, err = p.Profile()
		assert.ErrorIs(t, err, stream.ErrNoProfile)

		_, err = p.Meta()
		assert.NoError(t, err)
	})

	t.Run("missing meta only fails the meta accessor", func(t *testing.T) {
		t.Parallel()

		p, err := stream.ParsePayload([]byte(`{"profile":{"id":"p1","attributes":[],"sessions":[]}}`))
		require.NoError(t, err)

		_, err = p.Meta()
		assert.ErrorIs(t, err, stream.ErrNoMeta)

		_, err = p.Profile()
		assert.NoError(t, err)
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		_, err := stream.ParsePayload([]byte(`{not json`))
		assert.ErrorIs(t, err, stream.ErrMalformedPayload)
	})

	t.Run("malformed nested profile", func(t *testing.T) {
		t.Parallel()

		p, err := stream.ParsePayload([]byte(`{"profile":{"attributes":[{"collectApp":"","section":"s","data":{"x":1}}]}}`))
		require.NoError(t, err)

		_, err = p.Profile()
		assert.ErrorIs(t, err, stream.ErrMalformedPayload)
	})
}
