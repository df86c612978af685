package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/vmunix/streamdash/internal/config"
	"github.com/vmunix/streamdash/internal/dashboard"
	"github.com/vmunix/streamdash/internal/loader"
)

// loadConfig reads the --config file, or the discovered one. When nothing is
// found the defaults apply so the CLI works against ./data/catalog.csv; a
// STREAMDASH_CONFIG naming a missing file is still an error.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		found, err := config.Discover()
		if errors.Is(err, config.ErrNoConfig) {
			return config.Default(), nil
		}
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		path = found
	}

	cfg, err := config.LoadWithoutValidation(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// cliLogger reports load warnings on stderr without the info chatter.
func cliLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// openEngine loads the configured catalog and wraps it in an engine.
func openEngine() (*dashboard.Engine, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if datasetPath != "" {
		cfg.Dataset.Path = datasetPath
		cfg.Dataset.Source = config.SourceCSV
	}

	c, err := loader.Load(cfg, cliLogger())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w (set dataset.path or pass --dataset)", err)
		}
		return nil, err
	}
	defer func() { _ = c.Close() }()

	topN := cfg.Dashboard.TopN
	if topFlag > 0 {
		topN = topFlag
	}
	return dashboard.NewEngine(c.Dataset, dashboard.WithTopN(topN)), nil
}
