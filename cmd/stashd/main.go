// SPDX-License-Identifier: MIT

// Command stashd runs the stash collection service: an HTTP API over
// in-memory named string collections, with metrics, tracing and config
// hot reload.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ManuGH/stash/internal/api"
	"github.com/ManuGH/stash/internal/collection"
	"github.com/ManuGH/stash/internal/config"
	"github.com/ManuGH/stash/internal/daemon"
	"github.com/ManuGH/stash/internal/health"
	"github.com/ManuGH/stash/internal/log"
	"github.com/ManuGH/stash/internal/telemetry"
	"github.com/ManuGH/stash/internal/version"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	configPath := flag.String("config", "", "path to config.yaml (default: ${STASH_DATA}/config.yaml if present)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("stashd %s (commit %s, built %s)\n", version.Version, version.Commit, version.Date)
		return
	}

	if err := run(*configPath); err != nil {
		logger := log.Base()
		logger.Fatal().Err(err).Msg("stashd exited with error")
	}
}

func run(configPath string) error {
	// Bootstrap logger so config loading itself is observable; reconfigured
	// once the effective log level is known.
	log.Configure(log.Config{
		Level:   "info",
		Service: config.DefaultLogService,
		Version: version.Version,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	configPath = resolveConfigPath(configPath)
	loader := config.NewLoader(configPath, version.Version)
	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log.Configure(log.Config{
		Level:   cfg.LogLevel,
		Service: cfg.LogService,
		Version: version.Version,
	})
	logger := log.WithComponent("main")
	logger.Info().
		Str("version", version.Version).
		Str("commit", version.Commit).
		Str("listen", cfg.ListenAddr).
		Str("config_path", configPath).
		Msg("stashd starting")

	tracer, err := telemetry.NewProvider(ctx, telemetry.Config{
		Enabled:        cfg.Tracing.Enabled,
		ServiceName:    cfg.LogService,
		ServiceVersion: version.Version,
		Environment:    cfg.Tracing.Environment,
		ExporterType:   cfg.Tracing.ExporterType,
		Endpoint:       cfg.Tracing.Endpoint,
		SamplingRate:   cfg.Tracing.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}

	registry := collection.NewRegistry()

	healthMgr := health.NewManager(version.Version)
	healthMgr.RegisterChecker(health.NewRegistryChecker(registry))

	server := api.New(cfg, registry, healthMgr)

	holder := config.NewHolder(cfg, loader, configPath)
	if err := holder.StartWatcher(ctx); err != nil {
		return fmt.Errorf("start config watcher: %w", err)
	}
	watchReloads(ctx, holder)

	deps := daemon.Deps{
		Logger:     log.WithComponent("daemon"),
		APIHandler: server.Handler(),
	}
	if cfg.MetricsEnabled {
		deps.MetricsHandler = promhttp.Handler()
		deps.MetricsAddr = cfg.MetricsAddr
	}

	mgr, err := daemon.NewManager(config.ParseServerConfig(cfg), deps)
	if err != nil {
		return fmt.Errorf("create daemon manager: %w", err)
	}
	mgr.RegisterShutdownHook("config-watcher", func(context.Context) error {
		return holder.Close()
	})
	mgr.RegisterShutdownHook("tracing", tracer.Shutdown)

	return mgr.Start(ctx)
}

// resolveConfigPath prefers the explicit flag; otherwise the conventional
// ${STASH_DATA}/config.yaml is used when it exists.
func resolveConfigPath(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}

	dataDir := os.Getenv("STASH_DATA")
	if dataDir == "" {
		dataDir = config.DefaultDataDir
	}
	candidate := filepath.Join(dataDir, "config.yaml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}

// watchReloads applies logger settings from hot-reloaded configs.
func watchReloads(ctx context.Context, holder *config.Holder) {
	updates := make(chan config.AppConfig, 1)
	holder.Subscribe(updates)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case cfg := <-updates:
				log.Configure(log.Config{
					Level:   cfg.LogLevel,
					Service: cfg.LogService,
					Version: version.Version,
				})
				logger := log.WithComponent("main")
				logger.Info().
					Str("log_level", cfg.LogLevel).
					Msg("configuration reloaded")
			}
		}
	}()
}
