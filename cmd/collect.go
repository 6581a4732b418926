package main

import (
	"context"
	"time"

	"distsn/adapters"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// runCollector collects once right away, then every interval until ctx is done.
func runCollector(ctx context.Context, collector *adapters.InstanceCollector, hosts []string, interval time.Duration, ttlMs int, logger log.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	collector.Collect(ctx, hosts, ttlMs)
	for {
		select {
		case <-ctx.Done():
			level.Info(logger).Log("msg", "Collector stopped")
			return
		case <-ticker.C:
			collector.Collect(ctx, hosts, ttlMs)
		}
	}
}
