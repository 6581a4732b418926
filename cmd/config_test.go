package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("REDIS_ADDR", "redis://localhost:6379")
	t.Setenv("SERVICE_PORT_HTTP", "8080")
	t.Setenv("INSTANCES_API_URL", "")
	t.Setenv("INSTANCES_SEED_PATH", "")
	t.Setenv("INSTANCES_SEED_TTL_MS", "")
	t.Setenv("INSTANCES_HOSTS_PATH", "")
	t.Setenv("INSTANCES_COLLECT_INTERVAL_MS", "")
	t.Setenv("INSTANCES_COLLECT_TTL_MS", "")
}

func TestLoadConfig_RedisAddrRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_ADDR", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "REDIS_ADDR is required")
}

func TestLoadConfig_ServicePortRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVICE_PORT_HTTP", "")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SERVICE_PORT_HTTP is required")
}

func TestLoadConfig_InvalidServicePort(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVICE_PORT_HTTP", "not-a-number")

	cfg, err := LoadConfig()
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "SERVICE_PORT_HTTP")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "redis://localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "http://localhost:8080", cfg.InstancesAPIURL)
	assert.Empty(t, cfg.SeedPath)
	assert.Equal(t, 86400000, cfg.SeedTTLMs)
	assert.Empty(t, cfg.HostsPath)
	assert.Equal(t, 3600000, cfg.CollectIntervalMs)
	assert.Equal(t, 10800000, cfg.CollectTTLMs)
}

func TestLoadConfig_Custom(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVICE_PORT_HTTP", "9000")
	t.Setenv("INSTANCES_API_URL", "http://distsn.internal")
	t.Setenv("INSTANCES_SEED_PATH", "/etc/distsn/instances.yaml")
	t.Setenv("INSTANCES_SEED_TTL_MS", "60000")
	t.Setenv("INSTANCES_HOSTS_PATH", "/etc/distsn/hosts.txt")
	t.Setenv("INSTANCES_COLLECT_INTERVAL_MS", "600000")
	t.Setenv("INSTANCES_COLLECT_TTL_MS", "1800000")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.HTTPPort)
	assert.Equal(t, "http://distsn.internal", cfg.InstancesAPIURL)
	assert.Equal(t, "/etc/distsn/instances.yaml", cfg.SeedPath)
	assert.Equal(t, 60000, cfg.SeedTTLMs)
	assert.Equal(t, "/etc/distsn/hosts.txt", cfg.HostsPath)
	assert.Equal(t, 600000, cfg.CollectIntervalMs)
	assert.Equal(t, 1800000, cfg.CollectTTLMs)
}

func TestLoadConfig_InvalidSeedTTL(t *testing.T) {
	for _, v := range []string{"soon", "0", "-1"} {
		t.Run(v, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("INSTANCES_SEED_TTL_MS", v)

			cfg, err := LoadConfig()
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), "INSTANCES_SEED_TTL_MS")
		})
	}
}

func TestLoadConfig_InvalidCollectSettings(t *testing.T) {
	for _, name := range []string{"INSTANCES_COLLECT_INTERVAL_MS", "INSTANCES_COLLECT_TTL_MS"} {
		for _, v := range []string{"hourly", "0", "-5"} {
			t.Run(name+"="+v, func(t *testing.T) {
				setRequiredEnv(t)
				t.Setenv(name, v)

				cfg, err := LoadConfig()
				require.Error(t, err)
				assert.Nil(t, cfg)
				assert.Contains(t, err.Error(), name)
			})
		}
	}
}
