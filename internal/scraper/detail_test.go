package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/borjaregueral/wrc-speakers-go/internal/constants"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := ParseHTML(html)
	if err != nil {
		t.Fatalf("failed to parse test HTML: %v", err)
	}
	return doc
}

func TestParseDetailSessionBlob(t *testing.T) {
	html := `<html><body>
		<div class="session-title">Sessions 13-May-2025 12:10 – 12:50 Track 2 Debate: From Traffic to Revenue</div>
	</body></html>`

	result := ParseDetail(parseDoc(t, html))

	if result.Session.Date != "13 May 2025" {
		t.Fatalf("expected date '13 May 2025', got %q", result.Session.Date)
	}
	if result.Session.Time != "12:10 - 12:50" {
		t.Fatalf("expected time '12:10 - 12:50', got %q", result.Session.Time)
	}
	if result.Session.Venue != "Track 2" {
		t.Fatalf("expected venue 'Track 2', got %q", result.Session.Venue)
	}
	if result.Session.Title != "From Traffic to Revenue" {
		t.Fatalf("expected title 'From Traffic to Revenue', got %q", result.Session.Title)
	}
}

func TestParseDetailEmptyPageYieldsSentinels(t *testing.T) {
	result := ParseDetail(parseDoc(t, `<html><body></body></html>`))

	if result.Description != constants.SentinelNoDescription {
		t.Fatalf("expected description sentinel, got %q", result.Description)
	}
	for field, value := range map[string]string{
		"title": result.Session.Title,
		"date":  result.Session.Date,
		"time":  result.Session.Time,
		"venue": result.Session.Venue,
	} {
		if value != constants.SentinelNotAvailable {
			t.Fatalf("expected %s to be %q, got %q", field, constants.SentinelNotAvailable, value)
		}
	}
}

func TestExtractDescriptionPrefersLongestParagraph(t *testing.T) {
	html := `<html><body>
		<p>Short nav fragment</p>
		<p>Jane has led retail transformation programmes across three continents and now heads the digital commerce division of a global grocer.</p>
		<p>Menu</p>
	</body></html>`

	result := ParseDetail(parseDoc(t, html))

	if !strings.HasPrefix(result.Description, "Jane has led") {
		t.Fatalf("expected the biography paragraph, got %q", result.Description)
	}
}

func TestExtractDescriptionSkipsBoilerplate(t *testing.T) {
	html := `<html><body>
		<p>We use cookies to personalise content and ads, to provide social media features and to analyse our traffic. We also share information about your use of our site with partners.</p>
		<p>A seasoned retail executive.</p>
	</body></html>`

	result := ParseDetail(parseDoc(t, html))

	if result.Description != "A seasoned retail executive." {
		t.Fatalf("expected the biography to beat longer consent text, got %q", result.Description)
	}
}

func TestExtractDescriptionSkipsGenericMarketingCopy(t *testing.T) {
	html := `<html><body>
		<p>` + constants.GenericDescription + ` And a trailing sentence to make this the longest paragraph on the page by a wide margin.</p>
		<p>An actual speaker biography.</p>
	</body></html>`

	result := ParseDetail(parseDoc(t, html))

	if result.Description != "An actual speaker biography." {
		t.Fatalf("expected the biography over canned marketing copy, got %q", result.Description)
	}
}

func TestParseTitleFromHeadingsSkipsNavigation(t *testing.T) {
	html := `<html><body>
		<h2>About</h2>
		<h2>Programme</h2>
		<h3>Keynote: Retail in the Age of AI</h3>
	</body></html>`

	result := ParseDetail(parseDoc(t, html))

	if result.Session.Title != "Retail in the Age of AI" {
		t.Fatalf("expected heading-derived title, got %q", result.Session.Title)
	}
}

func TestParseDateTimeElementsLooseDate(t *testing.T) {
	html := `<html><body>
		<div class="session-date">13th - 14th May 2025</div>
	</body></html>`

	result := ParseDetail(parseDoc(t, html))

	if result.Session.Date != "13th - 14th May 2025" {
		t.Fatalf("expected loose date match, got %q", result.Session.Date)
	}
}

func TestParseDetailCollapsesConferenceDateRange(t *testing.T) {
	html := `<html><body>
		<div class="session-date">Join us 12th - 14th May 2025 at the ExCeL</div>
	</body></html>`

	result := ParseDetail(parseDoc(t, html))

	if result.Session.Date != constants.ConferenceDateRange {
		t.Fatalf("expected date collapsed to %q, got %q", constants.ConferenceDateRange, result.Session.Date)
	}
}

func TestParseVenueElementsRequiresKeyword(t *testing.T) {
	html := `<html><body>
		<div class="location">London</div>
		<div class="venue">Innovation Suite</div>
	</body></html>`

	result := ParseDetail(parseDoc(t, html))

	if result.Session.Venue != "Innovation Suite" {
		t.Fatalf("expected keyword-bearing venue, got %q", result.Session.Venue)
	}
}

func TestParseVenueElementsFallsBackToPatternSweep(t *testing.T) {
	html := `<html><body>
		<p>Join the afternoon debate at Track 3 right after lunch</p>
	</body></html>`

	result := ParseDetail(parseDoc(t, html))

	if result.Session.Venue != "Track 3" {
		t.Fatalf("expected pattern fragment 'Track 3', got %q", result.Session.Venue)
	}
}

func TestParseSessionBlobDoesNotOverwriteSetFields(t *testing.T) {
	html := `<html><body>
		<div class="session-title">Panel: First Session 13-May-2025 10:00 – 10:40 Track 1</div>
		<div class="session-date">14th May 2025</div>
	</body></html>`

	result := ParseDetail(parseDoc(t, html))

	if result.Session.Date != "13 May 2025" {
		t.Fatalf("expected blob date to win over later passes, got %q", result.Session.Date)
	}
	if result.Session.Time != "10:00 - 10:40" {
		t.Fatalf("expected time '10:00 - 10:40', got %q", result.Session.Time)
	}
}
