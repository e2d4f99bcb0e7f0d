package domain

import (
	"strings"

	"github.com/borjaregueral/wrc-speakers-go/internal/constants"
)

// SpeakerStub is the minimal identity harvested from a listing-page card.
// DetailURL is either a resolvable URL or empty; raw modal-invocation tokens
// never leave the listing extractor.
type SpeakerStub struct {
	Name      string
	Role      string
	Company   string
	DetailURL string
}

func (s SpeakerStub) HasDetailURL() bool {
	return s.DetailURL != ""
}

// SessionInfo holds the session metadata extracted from a detail page. The
// fields stay display strings: the source formats are too irregular (ordinal
// suffixes, en-dash ranges, partial dates) for a structured type.
type SessionInfo struct {
	Title string
	Date  string
	Time  string
	Venue string
}

func NewSessionInfo() SessionInfo {
	return SessionInfo{
		Title: constants.SentinelNotAvailable,
		Date:  constants.SentinelNotAvailable,
		Time:  constants.SentinelNotAvailable,
		Venue: constants.SentinelNotAvailable,
	}
}

// DetailResult is the full output of one detail-page parse.
type DetailResult struct {
	Description string
	Session     SessionInfo
}

func NewDetailResult() DetailResult {
	return DetailResult{
		Description: constants.SentinelNoDescription,
		Session:     NewSessionInfo(),
	}
}

// Speaker is the assembled, persisted record. Every field always holds a
// defined value; consumers never see null or a missing key.
type Speaker struct {
	Name                 string `json:"name"`
	Position             string `json:"position"`
	Company              string `json:"company"`
	Description          string `json:"description"`
	SessionTitle         string `json:"session_title"`
	Date                 string `json:"date"`
	Time                 string `json:"time"`
	Location             string `json:"location"`
	CompanyType          string `json:"company_type"`
	CompanySize          string `json:"company_size"`
	CompanyHQAddress     string `json:"company_hq_address"`
	CompanyHQCountry     string `json:"company_hq_country"`
	CompanyInternational string `json:"company_international"`
}

func NewSpeaker(name string) *Speaker {
	if name == "" {
		name = constants.SentinelUnknown
	}
	return &Speaker{
		Name:                 name,
		Position:             constants.SentinelUnknown,
		Company:              constants.SentinelUnknown,
		Description:          constants.SentinelNoDescription,
		SessionTitle:         constants.SentinelNotAvailable,
		Date:                 constants.SentinelNotAvailable,
		Time:                 constants.SentinelNotAvailable,
		Location:             constants.SentinelNotAvailable,
		CompanyType:          constants.SentinelNotAvailable,
		CompanySize:          constants.SentinelNotAvailable,
		CompanyHQAddress:     constants.SentinelNotAvailable,
		CompanyHQCountry:     constants.SentinelNotAvailable,
		CompanyInternational: constants.SentinelNotAvailable,
	}
}

// HasKnownCompany reports whether the company came from the page rather than
// a sentinel.
func (s *Speaker) HasKnownCompany() bool {
	return s.Company != "" &&
		s.Company != constants.SentinelUnknown &&
		s.Company != constants.SentinelNotAvailable
}

// NeedsEnrichment reports whether an enrichment call could still add data.
func (s *Speaker) NeedsEnrichment() bool {
	if !s.HasKnownCompany() {
		return false
	}
	for _, field := range []string{
		s.CompanyType,
		s.CompanySize,
		s.CompanyHQAddress,
		s.CompanyHQCountry,
		s.CompanyInternational,
	} {
		if field == constants.SentinelNotAvailable {
			return true
		}
	}
	return false
}

// FieldNames is the canonical field order, used as the CSV header.
func FieldNames() []string {
	return []string{
		"name",
		"position",
		"company",
		"description",
		"session_title",
		"date",
		"time",
		"location",
		"company_type",
		"company_size",
		"company_hq_address",
		"company_hq_country",
		"company_international",
	}
}

// Values returns the field values in FieldNames order.
func (s *Speaker) Values() []string {
	return []string{
		s.Name,
		s.Position,
		s.Company,
		s.Description,
		s.SessionTitle,
		s.Date,
		s.Time,
		s.Location,
		s.CompanyType,
		s.CompanySize,
		s.CompanyHQAddress,
		s.CompanyHQCountry,
		s.CompanyInternational,
	}
}

// SpeakerCollection is an insertion-ordered set of speakers. Duplicate names
// are legal and preserved.
type SpeakerCollection struct {
	Speakers []*Speaker
}

func NewSpeakerCollection() *SpeakerCollection {
	return &SpeakerCollection{Speakers: make([]*Speaker, 0)}
}

func (c *SpeakerCollection) Add(speaker *Speaker) {
	c.Speakers = append(c.Speakers, speaker)
}

func (c *SpeakerCollection) Len() int {
	return len(c.Speakers)
}

// GetByName returns the first speaker whose name matches, case-insensitively.
func (c *SpeakerCollection) GetByName(name string) *Speaker {
	for _, speaker := range c.Speakers {
		if strings.EqualFold(speaker.Name, name) {
			return speaker
		}
	}
	return nil
}

// GetByCompany returns all speakers whose company contains the query,
// case-insensitively.
func (c *SpeakerCollection) GetByCompany(company string) []*Speaker {
	query := strings.ToLower(company)
	matched := make([]*Speaker, 0)
	for _, speaker := range c.Speakers {
		if strings.Contains(strings.ToLower(speaker.Company), query) {
			matched = append(matched, speaker)
		}
	}
	return matched
}

// GetByDate returns all speakers whose date field contains the query,
// case-insensitively.
func (c *SpeakerCollection) GetByDate(date string) []*Speaker {
	query := strings.ToLower(date)
	matched := make([]*Speaker, 0)
	for _, speaker := range c.Speakers {
		if strings.Contains(strings.ToLower(speaker.Date), query) {
			matched = append(matched, speaker)
		}
	}
	return matched
}
