package redisconn_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/profilekit/pkg/redisconn"
)

func TestConnect_InvalidConfig(t *testing.T) {
	t.Parallel()

	t.Run("empty URL", func(t *testing.T) {
		t.Parallel()

		_, err := redisconn.Connect(context.Background(), redisconn.Config{
			ConnectTimeout: time.Second,
		})
		assert.ErrorIs(t, err, redisconn.ErrEmptyConnectionURL)
	})

	t.Run("unparsable URL", func(t *testing.T) {
		t.Parallel()

		_, err := redisconn.Connect(context.Background(), redisconn.Config{
			ConnectionURL:  "not-a-redis-url",
			ConnectTimeout: time.Second,
		})
		assert.ErrorIs(t, err, redisconn.ErrInvalidConnectionURL)
	})
}

func TestConnect_Unreachable(t *testing.T) {
	t.Parallel()

	// Reserved TEST-NET address, nothing listens there.
	_, err := redisconn.Connect(context.Background(), redisconn.Config{
		ConnectionURL:  "redis://192.0.2.1:6379/0",
		RetryAttempts:  1,
		RetryInterval:  10 * time.Millisecond,
		ConnectTimeout: 500 * time.Millisecond,
	})
	assert.ErrorIs(t, err, redisconn.ErrNotReady)
}
