package scraper

import "context"

// Page is the browser-tab capability surface the extraction components need.
// The chromedp-backed implementation lives in internal/browser; tests use
// in-memory fakes.
type Page interface {
	Navigate(ctx context.Context, url string) error
	HTML(ctx context.Context) (string, error)
	EvaluateBool(ctx context.Context, script string) (bool, error)
	ClickFirst(ctx context.Context, selector string) (bool, error)
	Close()
}
