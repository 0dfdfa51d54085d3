// Command bench seeds links into a running linkly and drives load against it.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"linkly/internal/bench/attack"
	"linkly/internal/bench/config"
	"linkly/internal/bench/seed"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var codes []string
	if cfg.NeedsSeed() {
		codes, err = seed.Run(ctx, seed.Options{
			BaseURL:            cfg.BaseURL,
			Count:              cfg.SeedCount,
			Workers:            cfg.SeedWorkers,
			Timeout:            cfg.SeedTimeout,
			BypassSecret:       cfg.RateLimitBypass,
			InsecureSkipVerify: cfg.InsecureSkipVerify,
		})
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}
	}

	return attack.Run(&attack.Config{
		BaseURL:            cfg.BaseURL,
		Codes:              codes,
		Rate:               cfg.Rate,
		Duration:           cfg.Duration,
		CreateRatio:        cfg.CreateRatio,
		AnalyticsRatio:     cfg.AnalyticsRatio,
		Visitors:           cfg.Visitors,
		Type:               cfg.BenchType,
		RateLimitBypass:    cfg.RateLimitBypass,
		InsecureSkipVerify: cfg.InsecureSkipVerify,
		Connections:        cfg.Connections,
		MaxWorkers:         cfg.MaxWorkers,
	}, os.Stdout)
}
