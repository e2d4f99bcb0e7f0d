package domain

import (
	"testing"

	"github.com/borjaregueral/wrc-speakers-go/internal/constants"
)

func TestNewSpeakerDefaults(t *testing.T) {
	speaker := NewSpeaker("Jane Smith")

	if speaker.Name != "Jane Smith" {
		t.Fatalf("expected name to be kept, got %q", speaker.Name)
	}
	if speaker.Position != constants.SentinelUnknown || speaker.Company != constants.SentinelUnknown {
		t.Fatalf("expected unknown identity defaults, got %+v", speaker)
	}
	if speaker.Description != constants.SentinelNoDescription {
		t.Fatalf("expected description default, got %q", speaker.Description)
	}
	if speaker.SessionTitle != constants.SentinelNotAvailable || speaker.CompanyType != constants.SentinelNotAvailable {
		t.Fatalf("expected not-available defaults, got %+v", speaker)
	}
}

func TestNewSpeakerEmptyName(t *testing.T) {
	speaker := NewSpeaker("")

	if speaker.Name != constants.SentinelUnknown {
		t.Fatalf("expected empty name to become %q, got %q", constants.SentinelUnknown, speaker.Name)
	}
}

func TestHasKnownCompany(t *testing.T) {
	speaker := NewSpeaker("Jane")
	if speaker.HasKnownCompany() {
		t.Fatalf("expected sentinel company to be unknown")
	}

	speaker.Company = constants.SentinelNotAvailable
	if speaker.HasKnownCompany() {
		t.Fatalf("expected not-available company to be unknown")
	}

	speaker.Company = "Global Grocer"
	if !speaker.HasKnownCompany() {
		t.Fatalf("expected a real company to be known")
	}
}

func TestNeedsEnrichment(t *testing.T) {
	speaker := NewSpeaker("Jane")
	if speaker.NeedsEnrichment() {
		t.Fatalf("expected no enrichment without a known company")
	}

	speaker.Company = "Global Grocer"
	if !speaker.NeedsEnrichment() {
		t.Fatalf("expected enrichment with empty fact fields")
	}

	speaker.CompanyType = "Retailer"
	speaker.CompanySize = "10000+"
	speaker.CompanyHQAddress = "1 Main St"
	speaker.CompanyHQCountry = "UK"
	speaker.CompanyInternational = "Yes"
	if speaker.NeedsEnrichment() {
		t.Fatalf("expected no enrichment once all facts are filled")
	}
}

func TestValuesMatchesFieldNames(t *testing.T) {
	speaker := NewSpeaker("Jane")
	if len(speaker.Values()) != len(FieldNames()) {
		t.Fatalf("expected %d values, got %d", len(FieldNames()), len(speaker.Values()))
	}
}

func TestCollectionQueries(t *testing.T) {
	collection := NewSpeakerCollection()

	jane := NewSpeaker("Jane Smith")
	jane.Company = "Global Grocer"
	jane.Date = "13 May 2025"
	collection.Add(jane)

	john := NewSpeaker("John Doe")
	john.Company = "Acme Retail"
	john.Date = "14 May 2025"
	collection.Add(john)

	if got := collection.GetByName("jane smith"); got != jane {
		t.Fatalf("expected case-insensitive name lookup to find Jane, got %v", got)
	}
	if got := collection.GetByName("nobody"); got != nil {
		t.Fatalf("expected nil for a missing name, got %v", got)
	}

	if got := collection.GetByCompany("retail"); len(got) != 1 || got[0] != john {
		t.Fatalf("expected company substring match to find John, got %v", got)
	}

	if got := collection.GetByDate("13 may"); len(got) != 1 || got[0] != jane {
		t.Fatalf("expected date substring match to find Jane, got %v", got)
	}
}

func TestCollectionPreservesDuplicates(t *testing.T) {
	collection := NewSpeakerCollection()
	collection.Add(NewSpeaker("Jane Smith"))
	collection.Add(NewSpeaker("Jane Smith"))

	if collection.Len() != 2 {
		t.Fatalf("expected duplicate names to be preserved, got %d", collection.Len())
	}
}
