package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/borjaregueral/wrc-speakers-go/internal/constants"
	"github.com/borjaregueral/wrc-speakers-go/internal/domain"
	"github.com/borjaregueral/wrc-speakers-go/internal/util"
	"go.uber.org/zap"
)

// speakerCardSelector matches the site's list-item class plus a loose
// fallback for markup variants.
const speakerCardSelector = `.m-speakers-list__items__item, [class*="speaker-item"]`

// modalURLPattern extracts the URL literal from an openRemoteModal('<url>'...)
// invocation carried in an onclick or href attribute.
var modalURLPattern = regexp.MustCompile(`openRemoteModal\('([^']+)'`)

// ParseHTML parses a rendered page snapshot into a goquery document.
func ParseHTML(html string) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

// ExtractStubs collects speaker stubs from a listing page. An empty result is
// the "no more content" signal, not an error; the pagination driver stops on
// it.
func ExtractStubs(doc *goquery.Document, baseURL string, logger *zap.Logger) []domain.SpeakerStub {
	stubs := make([]domain.SpeakerStub, 0)

	doc.Find(speakerCardSelector).Each(func(i int, card *goquery.Selection) {
		stub := domain.SpeakerStub{
			Name:    textOrUnknown(card.Find(`h2, h3, h4, [class*="name"]`)),
			Role:    textOrUnknown(card.Find(`[class*="position"], [class*="job"]`)),
			Company: textOrUnknown(card.Find(`[class*="company"], [class*="organization"]`)),
		}

		anchor := card.Find("a").First()
		if anchor.Length() > 0 {
			stub.DetailURL = resolveDetailURL(baseURL, detailReference(anchor))
		}

		stubs = append(stubs, stub)
	})

	logger.Info("Listing extracted", zap.Int("speaker_cards", len(stubs)))
	return stubs
}

func textOrUnknown(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return constants.SentinelUnknown
	}
	text := util.CleanText(sel.First().Text())
	if text == "" {
		return constants.SentinelUnknown
	}
	return text
}

// detailReference pulls the raw reference off an anchor. A modal-invocation
// token (in onclick or href) yields its embedded URL; any other href is used
// directly.
func detailReference(anchor *goquery.Selection) string {
	if onclick, exists := anchor.Attr("onclick"); exists && strings.Contains(onclick, "openRemoteModal") {
		if match := modalURLPattern.FindStringSubmatch(onclick); match != nil {
			return match[1]
		}
	}

	href, exists := anchor.Attr("href")
	if !exists {
		return ""
	}

	if strings.Contains(href, "openRemoteModal") {
		if match := modalURLPattern.FindStringSubmatch(href); match != nil {
			return match[1]
		}
		return ""
	}

	return href
}

func resolveDetailURL(baseURL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	if strings.HasPrefix(ref, "http") {
		return ref
	}
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(ref, "/")
}
