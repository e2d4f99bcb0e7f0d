package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/borjaregueral/wrc-speakers-go/internal/util"
)

const paginationSelector = `.pagination, [class*="pagination"], [class*="pager"], nav[aria-label*="pagination"]`

// HasNextPage checks the listing page for an enabled "next" control. The
// fixed page budget remains the primary stop condition; this check is an
// optional early stop wired in behind configuration.
func HasNextPage(doc *goquery.Document) bool {
	hasNext := false

	doc.Find(paginationSelector).Each(func(i int, pagination *goquery.Selection) {
		if hasNext {
			return
		}

		pagination.Find("a, button").Each(func(j int, link *goquery.Selection) {
			if hasNext || !isNextLink(link) {
				return
			}
			if !isDisabledLink(link) {
				hasNext = true
			}
		})
	})

	return hasNext
}

func isNextLink(link *goquery.Selection) bool {
	text := strings.ToLower(util.CleanText(link.Text()))
	switch text {
	case "next", ">", "next page", "→":
		return true
	}

	if label, exists := link.Attr("aria-label"); exists {
		return strings.Contains(strings.ToLower(label), "next")
	}
	return false
}

func isDisabledLink(link *goquery.Selection) bool {
	if _, exists := link.Attr("disabled"); exists {
		return true
	}
	if link.HasClass("disabled") {
		return true
	}
	return link.Parent().HasClass("disabled")
}
