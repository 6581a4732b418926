package myredis

import (
	"context"
	"testing"
	"time"

	"distsn/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHealthChecker(t *testing.T) {
	assert.PanicsWithValue(t, "myredis.health.go: redis client is required", func() {
		NewHealthChecker(nil)
	})

	t.Run("closed client is unhealthy", func(t *testing.T) {
		client, err := NewRedisUniversalClient(testRedisAddr)
		require.NoError(t, err)
		client.Close()

		err = NewHealthChecker(client).Check(context.Background())
		require.Error(t, err)
		assert.True(t, service.IsInternalServerError(err))
	})

	t.Run("reachable redis is healthy", func(t *testing.T) {
		client, cleanup := setupTestRedis(t)
		defer cleanup()

		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		assert.NoError(t, NewHealthChecker(client).Check(ctx))
	})
}
