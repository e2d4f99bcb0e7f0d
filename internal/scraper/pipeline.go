package scraper

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/borjaregueral/wrc-speakers-go/internal/config"
	"github.com/borjaregueral/wrc-speakers-go/internal/domain"
	"github.com/borjaregueral/wrc-speakers-go/pkg/errors"
	"go.uber.org/zap"
)

// Sink receives checkpoint flushes of the full in-memory collection.
type Sink interface {
	Save(collection *domain.SpeakerCollection) error
}

// Pipeline drives the whole extraction run: listing traversal, per-speaker
// detail resolution, record assembly and periodic checkpoints. All browser
// work is strictly sequential; one speaker's detail page is fully resolved
// before the next begins.
type Pipeline struct {
	cfg      *config.Config
	openPage func() Page
	sink     Sink
	logger   *zap.Logger
}

func NewPipeline(cfg *config.Config, openPage func() Page, sink Sink, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		openPage: openPage,
		sink:     sink,
		logger:   logger,
	}
}

// Run walks listing pages 1..MaxPages and returns the assembled collection.
// Page-level failures are logged and skipped; per-speaker failures become
// "Error"-sentinel records. Partial results are always returned, even on
// context cancellation.
func (p *Pipeline) Run(ctx context.Context) (*domain.SpeakerCollection, error) {
	collection := domain.NewSpeakerCollection()

	listing := p.openPage()
	defer listing.Close()

	for pageNum := 1; pageNum <= p.cfg.Scraper.MaxPages; pageNum++ {
		if ctx.Err() != nil {
			return collection, ctx.Err()
		}

		url := p.cfg.ListingURL(pageNum)
		p.logger.Info("Navigating to listing page",
			zap.Int("page", pageNum),
			zap.String("url", url))

		if err := listing.Navigate(ctx, url); err != nil {
			p.logger.Error("Listing navigation failed, skipping page",
				zap.Int("page", pageNum),
				zap.Error(err))
			continue
		}

		DismissCookies(ctx, listing, p.logger)

		doc, err := p.snapshot(ctx, listing)
		if err != nil {
			p.logger.Error("Listing snapshot failed, skipping page",
				zap.Int("page", pageNum),
				zap.Error(err))
			continue
		}

		stubs := ExtractStubs(doc, p.cfg.Scraper.BaseURL, p.logger)
		if len(stubs) == 0 {
			p.logger.Info("No speakers found, stopping", zap.Int("page", pageNum))
			break
		}

		for i, stub := range stubs {
			if ctx.Err() != nil {
				return collection, ctx.Err()
			}

			record := p.processSpeaker(ctx, stub, pageNum)
			collection.Add(record)

			p.logger.Info("Speaker processed",
				zap.String("name", record.Name),
				zap.String("session_title", record.SessionTitle),
				zap.Int("index", i+1),
				zap.Int("page_total", len(stubs)))

			if collection.Len()%p.cfg.Scraper.CheckpointInterval == 0 {
				p.checkpoint(collection)
			}
		}

		if p.cfg.Scraper.DetectPaginationEnd && !HasNextPage(doc) {
			p.logger.Info("Pagination reports no next page, stopping", zap.Int("page", pageNum))
			break
		}
	}

	p.logger.Info("Extraction finished", zap.Int("speakers", collection.Len()))
	return collection, nil
}

// processSpeaker resolves one stub into a record. Failures are contained
// here: the returned record carries "Error" sentinels instead of propagating.
func (p *Pipeline) processSpeaker(ctx context.Context, stub domain.SpeakerStub, pageNum int) *domain.Speaker {
	if !stub.HasDetailURL() {
		p.logger.Warn("Speaker has no detail page reference", zap.String("name", stub.Name))
		return AssembleRecord(stub, nil, nil)
	}

	detail, err := p.fetchDetail(ctx, stub)
	if err != nil {
		p.logger.Error("Detail extraction failed",
			zap.String("name", stub.Name),
			zap.String("url", stub.DetailURL),
			zap.Error(err))
		return AssembleRecord(stub, nil, err)
	}

	return AssembleRecord(stub, detail, nil)
}

// fetchDetail opens a short-lived page for one speaker, used once and closed
// on every exit path. This isolates detail DOM state from the listing tab.
func (p *Pipeline) fetchDetail(ctx context.Context, stub domain.SpeakerStub) (*domain.DetailResult, error) {
	page := p.openPage()
	defer page.Close()

	if err := page.Navigate(ctx, stub.DetailURL); err != nil {
		return nil, errors.NewExtractionError("detail navigation failed", stub.Name, 0, err)
	}

	DismissCookies(ctx, page, p.logger)

	doc, err := p.snapshot(ctx, page)
	if err != nil {
		return nil, errors.NewExtractionError("detail snapshot failed", stub.Name, 0, err)
	}

	result := ParseDetail(doc)
	return &result, nil
}

func (p *Pipeline) snapshot(ctx context.Context, page Page) (*goquery.Document, error) {
	html, err := page.HTML(ctx)
	if err != nil {
		return nil, err
	}
	return ParseHTML(html)
}

// checkpoint flushes the full collection so far. Write failures are logged
// and never abort the run.
func (p *Pipeline) checkpoint(collection *domain.SpeakerCollection) {
	p.logger.Info("Checkpointing progress", zap.Int("speakers", collection.Len()))
	if err := p.sink.Save(collection); err != nil {
		p.logger.Error("Checkpoint save failed", zap.Error(err))
	}
}
