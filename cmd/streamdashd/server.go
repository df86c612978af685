package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	v1 "github.com/vmunix/streamdash/internal/api/v1"
	"github.com/vmunix/streamdash/internal/config"
	"github.com/vmunix/streamdash/internal/dashboard"
	"github.com/vmunix/streamdash/internal/loader"
	"github.com/vmunix/streamdash/internal/server"
)

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// app is the loaded catalog and the API serving it.
type app struct {
	handler http.Handler
	catalog *loader.Catalog
}

func (a *app) Close() error {
	return a.catalog.Close()
}

// newApp loads the catalog named by cfg and builds the API handler over it.
func newApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	c, err := loader.Load(cfg, logger)
	if err != nil {
		return nil, err
	}

	engine := dashboard.NewEngine(c.Dataset, dashboard.WithTopN(cfg.Dashboard.TopN))

	deps := v1.ServerDeps{
		Dashboard: engine,
		Logger:    logger,
	}
	// A nil *library.Store must not become a non-nil interface.
	if c.Store != nil {
		deps.Imports = c.Store
	}

	api, err := v1.New(deps, v1.Config{
		Source:      c.Source,
		CORSOrigins: cfg.Dashboard.CORSOrigins,
	})
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	return &app{handler: api.Handler(), catalog: c}, nil
}

func runServer(configPath string) error {
	if configPath == "" {
		found, err := config.Discover()
		if err != nil {
			return err
		}
		configPath = found
	}

	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Create logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Server.LogLevel),
	}))

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))
	logger.Info("server starting",
		"addr", addr,
		"source", cfg.Dataset.Source,
		"top_n", cfg.Dashboard.TopN,
		"log_level", cfg.Server.LogLevel,
	)

	// Stop on interrupt signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := server.NewRunner(server.Config{Addr: addr}, a.handler, logger)
	if err := runner.Run(ctx); err != nil {
		return err
	}

	logger.Info("server stopped")
	return nil
}
