package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/profilekit/pkg/idgen"
)

const base62 = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("exact length", func(t *testing.T) {
		t.Parallel()

		for _, n := range []int{1, 8, 32, 64} {
			assert.Len(t, idgen.New(n), n)
		}
	})

	t.Run("base62 alphabet only", func(t *testing.T) {
		t.Parallel()

		id := idgen.New(256)
		for _, r := range id {
			require.True(t, strings.ContainsRune(base62, r), "unexpected character %q", r)
		}
	})

	t.Run("no trivial collisions", func(t *testing.T) {
		t.Parallel()

		seen := make(map[string]struct{}, 1000)
		for i := 0; i < 1000; i++ {
			id := idgen.New(32)
			_, dup := seen[id]
			require.False(t, dup, "duplicate identifier %s", id)
			seen[id] = struct{}{}
		}
	})

	t.Run("panics on non-positive length", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { idgen.New(0) })
		assert.Panics(t, func() { idgen.New(-1) })
	})
}

func TestDefaultLengths(t *testing.T) {
	t.Parallel()

	assert.Len(t, idgen.NewProfileID(), idgen.ProfileIDLength)
	assert.Len(t, idgen.NewSessionID(), idgen.SessionIDLength)
	assert.Len(t, idgen.NewEventID(), idgen.EventIDLength)
}
