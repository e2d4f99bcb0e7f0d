package browser

import (
	"context"
	"fmt"

	"github.com/borjaregueral/wrc-speakers-go/internal/constants"
	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// Browser owns a single Chrome process via a chromedp exec allocator. The
// pipeline creates one listing page for traversal and a fresh short-lived
// page per speaker detail view; all of them are tabs of the one process.
type Browser struct {
	allocCtx      context.Context
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
	logger        *zap.Logger
}

func New(headless bool, logger *zap.Logger) (*Browser, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(constants.BrowserConfig.ViewportWidth, constants.BrowserConfig.ViewportHeight),
		chromedp.UserAgent(constants.BrowserConfig.UserAgent),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Start the process now so that every page context derives from a live
	// browser and attaches as a tab instead of allocating its own process.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	logger.Info("Browser started",
		zap.Bool("headless", headless),
		zap.Int("viewport_width", constants.BrowserConfig.ViewportWidth),
		zap.Int("viewport_height", constants.BrowserConfig.ViewportHeight),
	)

	return &Browser{
		allocCtx:      allocCtx,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
		logger:        logger,
	}, nil
}

// NewPage opens a fresh tab in the shared browser. The caller owns the
// returned page and must call Close on every exit path.
func (b *Browser) NewPage() *Page {
	ctx, cancel := chromedp.NewContext(b.browserCtx)
	return &Page{
		ctx:    ctx,
		cancel: cancel,
		logger: b.logger,
	}
}

// Close tears down the Chrome process. Safe to call once on any exit path.
func (b *Browser) Close() {
	b.browserCancel()
	b.allocCancel()
	b.logger.Info("Browser closed")
}

// Page wraps one chromedp tab context.
type Page struct {
	ctx    context.Context
	cancel context.CancelFunc
	logger *zap.Logger
}

// Navigate loads a URL, waits for the document body, then settles for a
// fixed delay. chromedp has no network-idle primitive; ready + settle is the
// closest equivalent.
func (p *Page) Navigate(ctx context.Context, url string) error {
	runCtx, cancel := p.runContext(ctx)
	defer cancel()

	err := chromedp.Run(runCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(constants.BrowserConfig.SettleDelay),
	)
	if err != nil {
		return fmt.Errorf("navigation to %s failed: %w", url, err)
	}
	return nil
}

// HTML snapshots the rendered document for out-of-browser parsing.
func (p *Page) HTML(ctx context.Context) (string, error) {
	runCtx, cancel := p.runContext(ctx)
	defer cancel()

	var html string
	if err := chromedp.Run(runCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("HTML snapshot failed: %w", err)
	}
	return html, nil
}

// EvaluateBool runs a script in the page and returns its boolean result.
func (p *Page) EvaluateBool(ctx context.Context, script string) (bool, error) {
	runCtx, cancel := p.runContext(ctx)
	defer cancel()

	var result bool
	if err := chromedp.Run(runCtx, chromedp.Evaluate(script, &result)); err != nil {
		return false, fmt.Errorf("script evaluation failed: %w", err)
	}
	return result, nil
}

// ClickFirst clicks the first element matching the selector using the native
// CDP query path. Returns false without error when nothing matches.
func (p *Page) ClickFirst(ctx context.Context, selector string) (bool, error) {
	runCtx, cancel := p.runContext(ctx)
	defer cancel()

	var nodes []*cdp.Node
	err := chromedp.Run(runCtx, chromedp.Nodes(selector, &nodes, chromedp.ByQuery, chromedp.AtLeast(0)))
	if err != nil {
		return false, fmt.Errorf("node query for %q failed: %w", selector, err)
	}
	if len(nodes) == 0 {
		return false, nil
	}

	if err := chromedp.Run(runCtx, chromedp.MouseClickNode(nodes[0])); err != nil {
		return false, fmt.Errorf("click on %q failed: %w", selector, err)
	}
	return true, nil
}

func (p *Page) Close() {
	p.cancel()
}

// runContext derives a chromedp-compatible context bounded by both the
// caller's context and the navigation timeout.
func (p *Page) runContext(ctx context.Context) (context.Context, context.CancelFunc) {
	runCtx, timeoutCancel := context.WithTimeout(p.ctx, constants.BrowserConfig.NavigationTimeout)

	stop := context.AfterFunc(ctx, timeoutCancel)
	return runCtx, func() {
		stop()
		timeoutCancel()
	}
}
