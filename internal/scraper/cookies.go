package scraper

import (
	"context"
	"time"

	"github.com/borjaregueral/wrc-speakers-go/internal/constants"
	"go.uber.org/zap"
)

// cookieConsentScript tries the detection strategies in order inside the
// page: consent-tool attribute, accessibility label, library class, button
// text scans, then any button nested under a cookie/consent/privacy element.
// First hit is clicked immediately.
const cookieConsentScript = `(() => {
	const byTag = document.querySelector('button[data-cky-tag="accept-button"]');
	if (byTag) { byTag.click(); return true; }

	const byLabel = document.querySelector('button[aria-label="Accept All"]');
	if (byLabel) { byLabel.click(); return true; }

	const byClass = document.querySelector('.cky-btn-accept');
	if (byClass) { byClass.click(); return true; }

	const buttons = Array.from(document.querySelectorAll('button'));
	const acceptAll = buttons.find(btn => btn.textContent.includes('Accept All'));
	if (acceptAll) { acceptAll.click(); return true; }

	const accept = buttons.find(btn => btn.textContent.toLowerCase().includes('accept'));
	if (accept) { accept.click(); return true; }

	const bannerButtons = document.querySelectorAll('[class*="cookie"] button, [class*="consent"] button, [class*="privacy"] button');
	if (bannerButtons.length > 0) { bannerButtons[0].click(); return true; }

	return false;
})()`

// cookieSelectors is the native-query fallback for environments where script
// evaluation is blocked. Text-content strategies cannot be expressed as CSS,
// so this list carries the attribute and class strategies only.
var cookieSelectors = []string{
	`button[data-cky-tag="accept-button"]`,
	`button[aria-label="Accept All"]`,
	`.cky-btn-accept`,
	`[class*="cookie"] button`,
	`[class*="consent"] button`,
	`[class*="privacy"] button`,
}

// DismissCookies makes a best-effort attempt to clear a consent overlay.
// It never fails: absence of a banner is a normal outcome. The scripted
// search is retried to cover banners that render asynchronously; if scripting
// is unavailable the same strategies are re-attempted natively.
func DismissCookies(ctx context.Context, page Page, logger *zap.Logger) {
	for attempt := 1; attempt <= constants.CookieConfig.MaxAttempts; attempt++ {
		clicked, err := page.EvaluateBool(ctx, cookieConsentScript)
		if err != nil {
			logger.Warn("Cookie consent script failed, falling back to native queries", zap.Error(err))
			break
		}

		if clicked {
			logger.Info("Cookie banner dismissed", zap.Int("attempt", attempt))
			sleepWithContext(ctx, constants.CookieConfig.ClickDelay)
			return
		}

		logger.Debug("No cookie banner found via script",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", constants.CookieConfig.MaxAttempts),
		)
		sleepWithContext(ctx, constants.CookieConfig.ClickDelay)
	}

	for _, selector := range cookieSelectors {
		clicked, err := page.ClickFirst(ctx, selector)
		if err != nil {
			logger.Warn("Native cookie click failed",
				zap.String("selector", selector),
				zap.Error(err))
			continue
		}
		if clicked {
			logger.Info("Cookie banner dismissed natively", zap.String("selector", selector))
			sleepWithContext(ctx, constants.CookieConfig.ClickDelay)
			return
		}
	}

	logger.Info("No cookie banner to dismiss")
}

func sleepWithContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
