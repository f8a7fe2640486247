package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"fin-analyst/internal/engine"
	"fin-analyst/internal/engine/engineobs"
	"fin-analyst/internal/interfaces"
	"fin-analyst/internal/logger"
	"fin-analyst/internal/provider"
	"fin-analyst/internal/runlog"
	"fin-analyst/internal/store"
	"fin-analyst/internal/trace"
)

// initializeSystem loads the environment and brings up logging and tracing.
func initializeSystem() error {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}

	return nil
}

// loadConfig reads the yaml config, falling back to built-in defaults when
// no file exists at the given path.
func loadConfig(ctx context.Context, path string) *store.Config {
	cfg, err := store.LoadConfig(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn(ctx, "No config file found, using defaults", "path", path)
			return store.DefaultConfig()
		}
		logger.ErrorWithErr(ctx, "Failed to load config", err, "path", path)
		os.Exit(1)
	}
	return cfg
}

// compressOldLogs gzips old run logs if retention is configured.
func compressOldLogs(ctx context.Context) {
	if v := os.Getenv("ANALYST_LOG_RETENTION_DAYS"); v != "" {
		var n int
		fmt.Sscanf(v, "%d", &n)
		if err := runlog.CompressOlder(n); err != nil {
			logger.Warn(ctx, "Failed to compress old logs", "error", err)
		}
	}
}

// initializeAnalyzer wires the engine with observability plus the
// file-backed snapshot source.
func initializeAnalyzer(cfg *store.Config) (interfaces.Analyzer, interfaces.SnapshotSource) {
	analyzer := engineobs.Wrap(engine.New(cfg))
	src := provider.NewFileSource(cfg.Snapshots.Dir)
	return analyzer, src
}
