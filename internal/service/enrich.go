package service

import (
	"context"
	"time"

	"github.com/borjaregueral/wrc-speakers-go/internal/constants"
	"github.com/borjaregueral/wrc-speakers-go/internal/domain"
	"github.com/borjaregueral/wrc-speakers-go/internal/prompt"
	"github.com/borjaregueral/wrc-speakers-go/pkg/errors"
	"go.uber.org/zap"
)

// JSONGenerator is the model facade the enrichment pass calls.
type JSONGenerator interface {
	GenerateJSON(ctx context.Context, prompt string, dest any) (*GenerateMetadata, error)
}

// FactsCache memoizes company lookups. Optional; a nil cache disables it.
type FactsCache interface {
	GetCompanyFacts(ctx context.Context, company string) (*domain.CompanyFacts, bool)
	SetCompanyFacts(ctx context.Context, company string, facts *domain.CompanyFacts)
}

// EnrichmentService adds company facts to assembled records. Failures stay
// record-local: a malformed model response leaves that record's enrichment
// fields untouched and the pass moves on.
type EnrichmentService struct {
	generator JSONGenerator
	cache     FactsCache
	logger    *zap.Logger
}

func NewEnrichmentService(generator JSONGenerator, cache FactsCache, logger *zap.Logger) *EnrichmentService {
	return &EnrichmentService{
		generator: generator,
		cache:     cache,
		logger:    logger,
	}
}

// EnrichAll runs one paced enrichment pass over the collection. Records
// without a known company, or with every enrichment field already populated,
// are skipped.
func (es *EnrichmentService) EnrichAll(ctx context.Context, collection *domain.SpeakerCollection) {
	enriched := 0
	failed := 0

	for _, speaker := range collection.Speakers {
		if ctx.Err() != nil {
			es.logger.Warn("Enrichment pass cancelled",
				zap.Int("enriched", enriched),
				zap.Int("failed", failed))
			return
		}

		if !speaker.NeedsEnrichment() {
			continue
		}

		if es.enrichOne(ctx, speaker) {
			enriched++
		} else {
			failed++
		}

		es.pace(ctx)
	}

	es.logger.Info("Enrichment pass finished",
		zap.Int("enriched", enriched),
		zap.Int("failed", failed),
		zap.Int("total", collection.Len()))
}

func (es *EnrichmentService) enrichOne(ctx context.Context, speaker *domain.Speaker) bool {
	if es.cache != nil {
		if facts, found := es.cache.GetCompanyFacts(ctx, speaker.Company); found {
			facts.ApplyTo(speaker)
			es.logger.Debug("Company facts from cache",
				zap.String("name", speaker.Name),
				zap.String("company", speaker.Company))
			return true
		}
	}

	companyPrompt := prompt.BuildCompanyFactsPrompt(prompt.CompanyFactsVars{
		Company: speaker.Company,
		Speaker: speaker.Name,
		Role:    speaker.Position,
	})

	var facts domain.CompanyFacts
	metadata, err := es.generator.GenerateJSON(ctx, companyPrompt, &facts)
	if err != nil {
		es.logger.Warn("Company enrichment failed",
			zap.String("name", speaker.Name),
			zap.Error(errors.NewEnrichmentError("model call failed", speaker.Company, err)))
		return false
	}

	facts.ApplyTo(speaker)

	if es.cache != nil {
		es.cache.SetCompanyFacts(ctx, speaker.Company, &facts)
	}

	es.logger.Info("Company enriched",
		zap.String("name", speaker.Name),
		zap.String("company", speaker.Company),
		zap.String("provider", metadata.Provider),
		zap.Bool("used_fallback", metadata.UsedFallback))
	return true
}

func (es *EnrichmentService) pace(ctx context.Context) {
	timer := time.NewTimer(constants.EnrichmentConfig.PacingDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
