package scraper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/borjaregueral/wrc-speakers-go/internal/constants"
	"github.com/borjaregueral/wrc-speakers-go/internal/domain"
	"github.com/borjaregueral/wrc-speakers-go/internal/util"
)

const (
	sessionBlobSelector = `.session-title, [class*="session"], [class*="talk"], [class*="presentation"]`
	dateTimeSelector    = `[class*="date"], [class*="time"], [class*="schedule"], time`
	venueSelector       = `[class*="location"], [class*="venue"], [class*="place"], [class*="track"]`
)

var (
	// "13-May-2025" shaped, en-dash or hyphen separators.
	datePattern = regexp.MustCompile(`(\d{1,2})[-–]May[-–](\d{4})`)

	// Looser variant tolerating ordinal suffixes and an optional year.
	looseDatePattern = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)?\s*[-–]\s*(\d{1,2})(?:st|nd|rd|th)?\s*May\s*(\d{4})?`)

	// "12:10 – 12:50" with en-dash or hyphen between the clock times.
	timePattern = regexp.MustCompile(`(\d{1,2}:\d{2})\s*[–-]\s*(\d{1,2}:\d{2})`)

	// "Track 2" or "<word(s)> Suite".
	venuePattern = regexp.MustCompile(`Track\s*(\d+)|([\w\s]+Suite)`)

	// Text after a session keyword plus colon.
	titlePattern = regexp.MustCompile(`(?:Debate|Briefing|Keynote|Panel|Fireside Chat|Workshop|Presentation):\s*(.+)$`)
)

// ParseDetail extracts a biography and session metadata from a speaker detail
// page. It never fails: every heuristic miss just leaves the field at its
// sentinel. The passes are ordered and each one checks "still unset" before
// acting, so running them out of order cannot corrupt an already-set field.
func ParseDetail(doc *goquery.Document) domain.DetailResult {
	result := domain.NewDetailResult()
	result.Description = extractDescription(doc)

	parseSessionBlob(doc, &result.Session)
	parseTitleFromHeadings(doc, &result.Session)
	parseDateTimeElements(doc, &result.Session)
	parseVenueElements(doc, &result.Session)
	normalizeDateRange(&result.Session)

	return result
}

// extractDescription picks the longest paragraph that is neither consent
// boilerplate nor the site's canned marketing copy. The length heuristic
// approximates "the actual biography" against short nav and legal fragments.
func extractDescription(doc *goquery.Document) string {
	longest := ""

	doc.Find("p").Each(func(i int, p *goquery.Selection) {
		text := util.CleanText(p.Text())
		if len(text) <= len(longest) {
			return
		}
		if isBoilerplate(text) || isGenericDescription(text) {
			return
		}
		longest = text
	})

	if longest == "" {
		return constants.SentinelNoDescription
	}
	return longest
}

func isBoilerplate(text string) bool {
	return util.ContainsAnyFold(text, constants.CookieBoilerplateKeywords)
}

func isGenericDescription(text string) bool {
	return strings.Contains(text, constants.GenericDescription)
}

// parseSessionBlob is the first metadata pass: a composite session text blob
// like "Sessions 13-May-2025 12:10 – 12:50 Track 2 Debate: From Traffic to
// Revenue". The first qualifying blob wins and the pass stops.
func parseSessionBlob(doc *goquery.Document, session *domain.SessionInfo) {
	doc.Find(sessionBlobSelector).EachWithBreak(func(i int, el *goquery.Selection) bool {
		text := util.CleanText(el.Text())
		if text == "" || text == "We value your privacy" || isBoilerplate(text) {
			return true
		}

		if session.Date == constants.SentinelNotAvailable {
			if match := datePattern.FindStringSubmatch(text); match != nil {
				session.Date = fmt.Sprintf("%s May %s", match[1], match[2])
			}
		}

		if session.Time == constants.SentinelNotAvailable {
			if match := timePattern.FindStringSubmatch(text); match != nil {
				session.Time = fmt.Sprintf("%s - %s", match[1], match[2])
			}
		}

		if session.Venue == constants.SentinelNotAvailable {
			if match := venuePattern.FindString(text); match != "" {
				session.Venue = match
			}
		}

		if session.Title == constants.SentinelNotAvailable {
			session.Title = extractTitle(text)
		}

		return false
	})
}

// extractTitle takes the text after a session keyword plus colon; with no
// keyword it falls back to the text after the last colon.
func extractTitle(text string) string {
	if match := titlePattern.FindStringSubmatch(text); match != nil {
		return strings.TrimSpace(match[1])
	}

	parts := strings.Split(text, ":")
	if len(parts) > 1 {
		return strings.TrimSpace(parts[len(parts)-1])
	}
	return constants.SentinelNotAvailable
}

// parseTitleFromHeadings is the second pass: hunt h1-h6 for a session-keyword
// heading, skipping site navigation and boilerplate.
func parseTitleFromHeadings(doc *goquery.Document, session *domain.SessionInfo) {
	if session.Title != constants.SentinelNotAvailable {
		return
	}

	doc.Find("h1, h2, h3, h4, h5, h6").EachWithBreak(func(i int, h *goquery.Selection) bool {
		text := util.CleanText(h.Text())
		if text == "" || isNavigationHeading(text) || isBoilerplate(text) {
			return true
		}
		if !containsSessionKeyword(text) {
			return true
		}

		if match := titlePattern.FindStringSubmatch(text); match != nil {
			session.Title = strings.TrimSpace(match[1])
		} else {
			session.Title = text
		}
		return false
	})
}

func isNavigationHeading(text string) bool {
	for _, heading := range constants.NavigationHeadings {
		if strings.Contains(text, heading) {
			return true
		}
	}
	return false
}

func containsSessionKeyword(text string) bool {
	for _, keyword := range constants.SessionKeywords {
		if strings.Contains(text, keyword+":") {
			return true
		}
	}
	return false
}

// parseDateTimeElements is the third pass: date/time/schedule class patterns
// and semantic time elements, with the permissive date pattern. The first
// qualifying element is consumed whether or not its text matches.
func parseDateTimeElements(doc *goquery.Document, session *domain.SessionInfo) {
	if session.Date != constants.SentinelNotAvailable && session.Time != constants.SentinelNotAvailable {
		return
	}

	doc.Find(dateTimeSelector).EachWithBreak(func(i int, el *goquery.Selection) bool {
		text := util.CleanText(el.Text())
		if text == "" || isNavigationHeading(text) || isBoilerplate(text) {
			return true
		}

		if session.Date == constants.SentinelNotAvailable {
			if match := looseDatePattern.FindString(text); match != "" {
				session.Date = match
			}
		}

		if session.Time == constants.SentinelNotAvailable {
			if match := timePattern.FindStringSubmatch(text); match != nil {
				session.Time = fmt.Sprintf("%s - %s", match[1], match[2])
			}
		}

		return false
	})
}

// parseVenueElements is the fourth pass: location class patterns whose text
// carries a venue keyword, then a page-wide sweep that extracts just the
// "Track N" / "<...> Suite" fragment from any keyword-bearing element.
func parseVenueElements(doc *goquery.Document, session *domain.SessionInfo) {
	if session.Venue != constants.SentinelNotAvailable {
		return
	}

	doc.Find(venueSelector).EachWithBreak(func(i int, el *goquery.Selection) bool {
		text := util.CleanText(el.Text())
		if text == "" || isBoilerplate(text) {
			return true
		}
		if !containsVenueKeyword(text) {
			return true
		}

		session.Venue = text
		return false
	})

	if session.Venue != constants.SentinelNotAvailable {
		return
	}

	doc.Find("*").EachWithBreak(func(i int, el *goquery.Selection) bool {
		text := util.CleanText(el.Text())
		if !containsVenueKeyword(text) || isBoilerplate(text) {
			return true
		}

		if match := venuePattern.FindString(text); match != "" {
			session.Venue = match
			return false
		}
		return true
	})
}

func containsVenueKeyword(text string) bool {
	for _, keyword := range constants.VenueKeywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

// normalizeDateRange collapses a date field that absorbed the full conference
// range back to exactly the range literal.
func normalizeDateRange(session *domain.SessionInfo) {
	if strings.Contains(session.Date, constants.ConferenceDateRange) {
		session.Date = constants.ConferenceDateRange
	}
}
