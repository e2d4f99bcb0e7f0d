package scraper

import (
	"errors"
	"testing"

	"github.com/borjaregueral/wrc-speakers-go/internal/constants"
	"github.com/borjaregueral/wrc-speakers-go/internal/domain"
)

func TestAssembleRecordExtractionError(t *testing.T) {
	stub := domain.SpeakerStub{
		Name:      "Jane Smith",
		Role:      "CDO",
		Company:   "Global Grocer",
		DetailURL: "https://example.com/jane",
	}

	speaker := AssembleRecord(stub, nil, errors.New("navigation timeout"))

	if speaker.Name != "Jane Smith" || speaker.Position != "CDO" || speaker.Company != "Global Grocer" {
		t.Fatalf("expected listing identity to survive an extraction error, got %+v", speaker)
	}
	for field, value := range map[string]string{
		"session_title": speaker.SessionTitle,
		"date":          speaker.Date,
		"time":          speaker.Time,
		"location":      speaker.Location,
	} {
		if value != constants.SentinelError {
			t.Fatalf("expected %s to be %q, got %q", field, constants.SentinelError, value)
		}
	}
	if speaker.Description != constants.SentinelNoDescription {
		t.Fatalf("expected default description, got %q", speaker.Description)
	}
}

func TestAssembleRecordWithoutDetail(t *testing.T) {
	stub := domain.SpeakerStub{Name: "John Doe", Role: "CEO", Company: "Acme"}

	speaker := AssembleRecord(stub, nil, nil)

	if speaker.SessionTitle != constants.SentinelNotAvailable {
		t.Fatalf("expected %q session title, got %q", constants.SentinelNotAvailable, speaker.SessionTitle)
	}
	if speaker.Date != constants.SentinelNotAvailable {
		t.Fatalf("expected %q date, got %q", constants.SentinelNotAvailable, speaker.Date)
	}
}

func TestAssembleRecordCopiesDetail(t *testing.T) {
	stub := domain.SpeakerStub{Name: "Amy Chen", Role: "VP", Company: "Retailer"}
	detail := &domain.DetailResult{
		Description: "Amy runs the loyalty programme.",
		Session: domain.SessionInfo{
			Title: "From Traffic to Revenue",
			Date:  "13 May 2025",
			Time:  "12:10 - 12:50",
			Venue: "Track 2",
		},
	}

	speaker := AssembleRecord(stub, detail, nil)

	if speaker.Description != "Amy runs the loyalty programme." {
		t.Fatalf("unexpected description: %q", speaker.Description)
	}
	if speaker.SessionTitle != "From Traffic to Revenue" {
		t.Fatalf("unexpected session title: %q", speaker.SessionTitle)
	}
	if speaker.Date != "13 May 2025" || speaker.Time != "12:10 - 12:50" || speaker.Location != "Track 2" {
		t.Fatalf("unexpected session metadata: %+v", speaker)
	}
}

func TestAssembleRecordEmptyStubFieldsStayUnknown(t *testing.T) {
	speaker := AssembleRecord(domain.SpeakerStub{Name: "Solo Name"}, nil, nil)

	if speaker.Position != constants.SentinelUnknown {
		t.Fatalf("expected unknown position, got %q", speaker.Position)
	}
	if speaker.Company != constants.SentinelUnknown {
		t.Fatalf("expected unknown company, got %q", speaker.Company)
	}
}

func TestFilterDescription(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"keeps biography", "A retail veteran.", "A retail veteran."},
		{"rejects cookie text", "This site uses Cookies to improve your visit.", constants.SentinelNoDescription},
		{"rejects consent text", "Manage your Consent preferences here.", constants.SentinelNoDescription},
		{"rejects canned marketing", "Intro. " + constants.GenericDescription, constants.SentinelNoDescription},
		{"sentinel passes through", constants.SentinelNoDescription, constants.SentinelNoDescription},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FilterDescription(tc.input); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
