package main

import (
	"fmt"
	"os"
	"strconv"

	"distsn/adapters/myredis"
)

// Env variable names.
const (
	envHTTPPort          = "SERVICE_PORT_HTTP"
	envRedisAddr         = "REDIS_ADDR"
	envInstancesAPIURL   = "INSTANCES_API_URL"
	envSeedPath          = "INSTANCES_SEED_PATH"
	envSeedTTLMs         = "INSTANCES_SEED_TTL_MS"
	envHostsPath         = "INSTANCES_HOSTS_PATH"
	envCollectIntervalMs = "INSTANCES_COLLECT_INTERVAL_MS"
	envCollectTTLMs      = "INSTANCES_COLLECT_TTL_MS"
)

const (
	defaultSeedTTLMs         = 24 * 60 * 60 * 1000
	defaultCollectIntervalMs = 60 * 60 * 1000
	defaultCollectTTLMs      = 3 * defaultCollectIntervalMs
)

type DistsnConfig struct {
	Redis    myredis.RedisConfig
	HTTPPort int
	// InstancesAPIURL is the base URL page loads fetch the instance list from.
	InstancesAPIURL string
	// SeedPath is an optional YAML file of descriptors written to the store at startup.
	SeedPath  string
	SeedTTLMs int
	// HostsPath is an optional host list; when set the collector measures these hosts every CollectIntervalMs.
	HostsPath         string
	CollectIntervalMs int
	CollectTTLMs      int
}

// LoadConfig loads configuration from environment variables.
// REDIS_ADDR and SERVICE_PORT_HTTP are required; INSTANCES_API_URL defaults to this service on localhost.
func LoadConfig() (*DistsnConfig, error) {
	redisAddr := os.Getenv(envRedisAddr)
	if redisAddr == "" {
		return nil, fmt.Errorf("%s is required", envRedisAddr)
	}

	httpPort, err := requiredInt(envHTTPPort)
	if err != nil {
		return nil, err
	}

	apiURL := os.Getenv(envInstancesAPIURL)
	if apiURL == "" {
		apiURL = fmt.Sprintf("http://localhost:%d", httpPort)
	}

	seedTTLMs, err := positiveInt(envSeedTTLMs, defaultSeedTTLMs)
	if err != nil {
		return nil, err
	}
	collectIntervalMs, err := positiveInt(envCollectIntervalMs, defaultCollectIntervalMs)
	if err != nil {
		return nil, err
	}
	collectTTLMs, err := positiveInt(envCollectTTLMs, defaultCollectTTLMs)
	if err != nil {
		return nil, err
	}

	return &DistsnConfig{
		Redis: myredis.RedisConfig{
			Addr: redisAddr,
		},
		HTTPPort:          httpPort,
		InstancesAPIURL:   apiURL,
		SeedPath:          os.Getenv(envSeedPath),
		SeedTTLMs:         seedTTLMs,
		HostsPath:         os.Getenv(envHostsPath),
		CollectIntervalMs: collectIntervalMs,
		CollectTTLMs:      collectTTLMs,
	}, nil
}

func requiredInt(name string) (int, error) {
	s := os.Getenv(name)
	if s == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return v, nil
}

// positiveInt reads an optional positive integer, def when unset.
func positiveInt(name string, def int) (int, error) {
	s := os.Getenv(name)
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive, got %d", name, v)
	}
	return v, nil
}
