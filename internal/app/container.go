package app

import (
	"context"
	"fmt"

	"github.com/borjaregueral/wrc-speakers-go/internal/browser"
	"github.com/borjaregueral/wrc-speakers-go/internal/config"
	"github.com/borjaregueral/wrc-speakers-go/internal/scraper"
	"github.com/borjaregueral/wrc-speakers-go/internal/service"
	"github.com/borjaregueral/wrc-speakers-go/internal/service/cache"
	"github.com/borjaregueral/wrc-speakers-go/internal/store"
	"go.uber.org/zap"
)

// Container bundles the assembled services for one scrape run. Heavy-weight
// initialization (browser, model clients, cache) happens in Build so the run
// loop stays focused on orchestration.
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	Browser  *browser.Browser
	Pipeline *scraper.Pipeline
	Store    *store.Store
	Enricher *service.EnrichmentService

	cacheSvc *cache.CacheService
}

func Build(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	dataStore := store.New(cfg.Output.JSONFile, cfg.Output.CSVFile, logger)

	b, err := browser.New(cfg.Scraper.Headless, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}
	openPage := func() scraper.Page { return b.NewPage() }
	pipeline := scraper.NewPipeline(cfg, openPage, dataStore, logger)

	container := &Container{
		Config:   cfg,
		Logger:   logger,
		Browser:  b,
		Pipeline: pipeline,
		Store:    dataStore,
	}

	if cfg.Enrichment.Enabled {
		if !cfg.EnrichmentCredentialed() {
			// Missing credential aborts the whole enrichment pass up front.
			logger.Warn("Company enrichment enabled but GEMINI_API_KEY is not set, pass will be skipped")
		} else {
			modelManager, err := service.NewModelManager(ctx, service.ModelManagerConfig{
				GeminiAPIKey:   cfg.Gemini.APIKey,
				OpenAIAPIKey:   cfg.OpenAI.APIKey,
				EnableFallback: cfg.OpenAI.EnableFallback,
			}, logger)
			if err != nil {
				b.Close()
				return nil, fmt.Errorf("failed to create model manager: %w", err)
			}

			var factsCache service.FactsCache
			if cfg.RedisEnabled() {
				cacheSvc, err := cache.NewCacheService(cache.CacheConfig{
					Host:     cfg.Redis.Host,
					Port:     cfg.Redis.Port,
					Password: cfg.Redis.Password,
					DB:       cfg.Redis.DB,
				}, logger)
				if err != nil {
					logger.Warn("Redis unavailable, enrichment cache disabled", zap.Error(err))
				} else {
					factsCache = cacheSvc
					container.cacheSvc = cacheSvc
				}
			}

			container.Enricher = service.NewEnrichmentService(modelManager, factsCache, logger)
		}
	}

	return container, nil
}

// Run executes the full scrape: extraction, optional enrichment, final
// flush. Partial results are flushed even when extraction was cut short.
func (c *Container) Run(ctx context.Context) error {
	collection, runErr := c.Pipeline.Run(ctx)
	if runErr != nil {
		c.Logger.Error("Extraction ended early", zap.Error(runErr))
	}

	if c.Enricher != nil && collection.Len() > 0 {
		c.Enricher.EnrichAll(ctx, collection)
	}

	if err := c.Store.Save(collection); err != nil {
		c.Logger.Error("Final save failed", zap.Error(err))
	}

	return runErr
}

// Close releases the browser and any optional services. Must run on every
// exit path, success or failure.
func (c *Container) Close() {
	if c.cacheSvc != nil {
		_ = c.cacheSvc.Close()
	}
	c.Browser.Close()
}
