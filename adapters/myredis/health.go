package myredis

import (
	"context"
	"fmt"

	"distsn/helpers"
	"distsn/interfaces"
	"distsn/service"

	"github.com/go-redis/redis/v8"
)

// NewHealthChecker reports the instance store healthy when Redis answers PING.
func NewHealthChecker(client redis.UniversalClient) interfaces.HealthChecker {
	client = helpers.NilPanic(client, "myredis.health.go: redis client is required")
	return interfaces.HealthCheckerFunc(func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return service.NewInternalServerError("Redis ping error", fmt.Errorf("redis ping error, err: %w", err))
		}
		return nil
	})
}
