package scraper

import (
	"strings"

	"github.com/borjaregueral/wrc-speakers-go/internal/constants"
	"github.com/borjaregueral/wrc-speakers-go/internal/domain"
)

// descriptionRejectKeywords is the assembler's coarser safety net on top of
// the parser's paragraph-level filter: sparse pages can let boilerplate win
// the longest-paragraph contest.
var descriptionRejectKeywords = []string{"cookie", "consent"}

// AssembleRecord merges a listing stub with a detail-parse result into one
// complete record. A nil detail with a nil error means the stub had no detail
// reference; a non-nil extractErr marks an extraction failure and stamps the
// session fields with the "Error" sentinel, distinct from "Not available".
func AssembleRecord(stub domain.SpeakerStub, detail *domain.DetailResult, extractErr error) *domain.Speaker {
	speaker := domain.NewSpeaker(stub.Name)
	if stub.Role != "" {
		speaker.Position = stub.Role
	}
	if stub.Company != "" {
		speaker.Company = stub.Company
	}

	if extractErr != nil {
		speaker.SessionTitle = constants.SentinelError
		speaker.Date = constants.SentinelError
		speaker.Time = constants.SentinelError
		speaker.Location = constants.SentinelError
		return speaker
	}

	if detail == nil {
		return speaker
	}

	speaker.Description = FilterDescription(detail.Description)
	speaker.SessionTitle = detail.Session.Title
	speaker.Date = detail.Session.Date
	speaker.Time = detail.Session.Time
	speaker.Location = detail.Session.Venue
	return speaker
}

// FilterDescription replaces boilerplate or canned marketing text wholesale
// with the no-description sentinel. Idempotent: the sentinel itself passes
// through untouched.
func FilterDescription(description string) string {
	lower := strings.ToLower(description)
	for _, keyword := range descriptionRejectKeywords {
		if strings.Contains(lower, keyword) {
			return constants.SentinelNoDescription
		}
	}

	if strings.Contains(description, constants.GenericDescription) {
		return constants.SentinelNoDescription
	}

	return description
}
