package browser

import (
	"context"
	"testing"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

// Builds the context hierarchy without starting Chrome: pages must be tabs of
// the one shared browser context, not siblings hanging off the allocator.
func newUnstartedBrowser(t *testing.T) *Browser {
	t.Helper()

	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background())
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	t.Cleanup(func() {
		browserCancel()
		allocCancel()
	})

	return &Browser{
		allocCtx:      allocCtx,
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
		logger:        zap.NewNop(),
	}
}

func TestNewPageDerivesFromBrowserContext(t *testing.T) {
	b := newUnstartedBrowser(t)

	page := b.NewPage()
	defer page.Close()

	b.browserCancel()

	if page.ctx.Err() == nil {
		t.Fatalf("expected tab context to be cancelled with the shared browser context")
	}
}

func TestClosingOnePageLeavesOthersAlive(t *testing.T) {
	b := newUnstartedBrowser(t)

	first := b.NewPage()
	second := b.NewPage()

	first.Close()

	if second.ctx.Err() != nil {
		t.Fatalf("expected other tabs to survive one tab closing")
	}
	if b.browserCtx.Err() != nil {
		t.Fatalf("expected the browser context to survive a tab closing")
	}
}
