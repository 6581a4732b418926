package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"distsn/adapters"
	"distsn/adapters/myredis"
	"distsn/api"
	"distsn/handlers"
	"distsn/interfaces"
	"distsn/service"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

// collectRequestTimeout bounds each request to a remote host.
const collectRequestTimeout = 10 * time.Second

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting distsn service")

	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"redis_addr", config.Redis.Addr,
		"instances_api_url", config.InstancesAPIURL,
		"seed_path", config.SeedPath,
		"hosts_path", config.HostsPath,
		"collect_interval_ms", config.CollectIntervalMs,
	)

	var store interfaces.InstanceStore
	var health interfaces.HealthChecker
	{
		redisClient, err := myredis.NewRedisUniversalClient(config.Redis.Addr)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create Redis client", "err", err)
			os.Exit(1)
		}
		defer redisClient.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			level.Error(logger).Log("msg", "Failed to connect to Redis", "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Connected to Redis")

		store = myredis.NewInstanceStore(redisClient, myredis.InstanceKeyPrefix)
		health = myredis.NewHealthChecker(redisClient)
	}

	if config.SeedPath != "" {
		if err := seedStore(store, config.SeedPath, config.SeedTTLMs); err != nil {
			level.Error(logger).Log("msg", "Failed to seed instance store", "path", config.SeedPath, "err", err)
			os.Exit(1)
		}
		level.Info(logger).Log("msg", "Instance store seeded", "path", config.SeedPath)
	}

	collectCtx, stopCollector := context.WithCancel(context.Background())
	defer stopCollector()
	if config.HostsPath != "" {
		hosts, err := loadHosts(config.HostsPath)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to load hosts", "path", config.HostsPath, "err", err)
			os.Exit(1)
		}
		collector := adapters.NewInstanceCollector(&http.Client{Timeout: collectRequestTimeout}, store, logger)
		interval := time.Duration(config.CollectIntervalMs) * time.Millisecond
		level.Info(logger).Log("msg", "Starting collector", "hosts", len(hosts), "interval", interval)
		go runCollector(collectCtx, collector, hosts, interval, config.CollectTTLMs, logger)
	}

	var httpServer handlers.ServerInterface
	{
		// No client timeout: a page load's instance request lives as long as the page request does.
		source := adapters.InstancesHTTP(config.InstancesAPIURL, &http.Client{})
		httpServer = handlers.NewHTTPServer(store, source, logger)
	}

	var e *echo.Echo
	{
		e = echo.New()
		e.HideBanner = true

		renderer, err := handlers.NewTemplateRenderer()
		if err != nil {
			level.Error(logger).Log("msg", "Failed to load page templates", "err", err)
			os.Exit(1)
		}
		e.Renderer = renderer

		router, err := handlers.LoadOpenAPIRouter(api.OpenAPISpec)
		if err != nil {
			level.Error(logger).Log("msg", "Failed to load OpenAPI document", "err", err)
			os.Exit(1)
		}
		e.Use(handlers.OpenAPIRequestValidator(router))

		service.RegisterErrorHandler(e, logger)
		handlers.RegisterHandlers(e, httpServer)
		handlers.RegisterHealthHandler(e, handlers.NewHealthHandler(health))
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	<-quit
	level.Info(logger).Log("msg", "Shutting down server...")
	stopCollector()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}

	level.Info(logger).Log("msg", "Server stopped")
}

func seedStore(store interfaces.InstanceStore, path string, ttlMs int) error {
	instances, err := loadSeed(path)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return writeSeed(ctx, store, instances, ttlMs)
}
