package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/borjaregueral/wrc-speakers-go/internal/app"
	"github.com/borjaregueral/wrc-speakers-go/internal/config"
	"github.com/borjaregueral/wrc-speakers-go/internal/util"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Speaker scraper starting...",
		zap.String("base_url", cfg.Scraper.BaseURL),
		zap.Int("max_pages", cfg.Scraper.MaxPages),
		zap.Bool("headless", cfg.Scraper.Headless),
		zap.Bool("enrichment", cfg.Enrichment.Enabled),
	)

	buildCtx, buildCancel := context.WithTimeout(context.Background(), 30*time.Second)
	container, err := app.Build(buildCtx, cfg, logger)
	buildCancel()
	if err != nil {
		logger.Error("Failed to assemble services", zap.Error(err))
		os.Exit(1)
	}
	defer container.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- container.Run(ctx)
	}()

	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
		// Run flushes partial results before returning on cancellation.
		<-errCh
	case err := <-errCh:
		if err != nil {
			logger.Error("Scrape run failed", zap.Error(err))
		}
	}

	logger.Info("Shutdown complete")
}
