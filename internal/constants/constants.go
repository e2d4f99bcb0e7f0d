package constants

import "time"

// Sentinel values shared by the parser, assembler, persistence and viewer
// layers. Comparisons against these must be exact, so every call site goes
// through this package instead of repeating the literals.
const (
	SentinelUnknown       = "Unknown"
	SentinelNotAvailable  = "Not available"
	SentinelError         = "Error"
	SentinelNoDescription = "No description available"
)

// GenericDescription is the site's canned marketing paragraph. It outranks
// most biographies in length, so the detail parser and the assembler both
// filter it.
const GenericDescription = "Since 2007, World Retail Congress has been the premier platform for in-depth research, content and events; driving retail growth and inspiring valuable global connections."

// ConferenceDateRange is the full multi-day range of the event. When a date
// field accidentally absorbs surrounding text containing this range, it is
// collapsed back to exactly this literal.
const ConferenceDateRange = "12th - 14th May 2025"

// CookieBoilerplateKeywords disqualify a text block from being used as a
// biography or session blob. Matched case-insensitively as substrings.
var CookieBoilerplateKeywords = []string{
	"cookie",
	"consent",
	"privacy",
	"necessary cookies",
	"data protection",
	"gdpr",
	"personal data",
	"tracking",
	"third party",
	"third-party",
}

// SessionKeywords are the session-type prefixes that introduce a title,
// always followed by a colon.
var SessionKeywords = []string{
	"Debate",
	"Briefing",
	"Keynote",
	"Panel",
	"Fireside Chat",
	"Workshop",
	"Presentation",
}

// NavigationHeadings are site-chrome heading fragments skipped while hunting
// for a session title among h1-h6 elements.
var NavigationHeadings = []string{
	"About",
	"Programme",
	"Sponsor",
	"Insights",
	"BOOK YOUR PLACE",
	"We value your privacy",
}

// VenueKeywords mark a text block as venue-like.
var VenueKeywords = []string{
	"Track",
	"Room",
	"Hall",
	"Suite",
	"Stage",
}

var BrowserConfig = struct {
	ViewportWidth     int
	ViewportHeight    int
	NavigationTimeout time.Duration
	SettleDelay       time.Duration
	UserAgent         string
}{
	ViewportWidth:     1920,
	ViewportHeight:    1080,
	NavigationTimeout: 30 * time.Second,
	SettleDelay:       2 * time.Second, // approximates networkidle after document ready
	UserAgent:         "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
}

var CookieConfig = struct {
	MaxAttempts int
	ClickDelay  time.Duration
}{
	MaxAttempts: 3,
	ClickDelay:  1 * time.Second, // lets the overlay animate out
}

var PipelineConfig = struct {
	DefaultMaxPages           int
	DefaultCheckpointInterval int
}{
	DefaultMaxPages:           2,
	DefaultCheckpointInterval: 10,
}

var EnrichmentConfig = struct {
	PacingDelay time.Duration
	CacheTTL    time.Duration
}{
	PacingDelay: 1 * time.Second, // politeness between model calls
	CacheTTL:    7 * 24 * time.Hour,
}
