package scraper

import (
	"testing"

	"github.com/borjaregueral/wrc-speakers-go/internal/constants"
	"go.uber.org/zap"
)

const baseURL = "https://www.worldretailcongress.com"

func TestExtractStubsReadsCardFields(t *testing.T) {
	html := `<html><body>
		<div class="m-speakers-list__items__item">
			<h3 class="name">Jane Smith</h3>
			<div class="position">Chief Digital Officer</div>
			<div class="company">Global Grocer</div>
			<a href="/speakers/jane-smith"></a>
		</div>
	</body></html>`

	stubs := ExtractStubs(parseDoc(t, html), baseURL, zap.NewNop())

	if len(stubs) != 1 {
		t.Fatalf("expected one stub, got %d", len(stubs))
	}
	stub := stubs[0]
	if stub.Name != "Jane Smith" {
		t.Fatalf("expected name 'Jane Smith', got %q", stub.Name)
	}
	if stub.Role != "Chief Digital Officer" {
		t.Fatalf("expected role 'Chief Digital Officer', got %q", stub.Role)
	}
	if stub.Company != "Global Grocer" {
		t.Fatalf("expected company 'Global Grocer', got %q", stub.Company)
	}
	if stub.DetailURL != baseURL+"/speakers/jane-smith" {
		t.Fatalf("expected resolved detail URL, got %q", stub.DetailURL)
	}
}

func TestExtractStubsResolvesModalReference(t *testing.T) {
	html := `<html><body>
		<div class="speaker-item">
			<h3>John Doe</h3>
			<a onclick="openRemoteModal('/modal/speakers/john-doe', 'ajax')">View</a>
		</div>
	</body></html>`

	stubs := ExtractStubs(parseDoc(t, html), baseURL, zap.NewNop())

	if len(stubs) != 1 {
		t.Fatalf("expected one stub, got %d", len(stubs))
	}
	if stubs[0].DetailURL != baseURL+"/modal/speakers/john-doe" {
		t.Fatalf("expected modal URL extracted and resolved, got %q", stubs[0].DetailURL)
	}
}

func TestExtractStubsModalReferenceInHref(t *testing.T) {
	html := `<html><body>
		<div class="speaker-item">
			<h3>Amy Chen</h3>
			<a href="javascript:openRemoteModal('https://cdn.example.com/speakers/amy-chen')">View</a>
		</div>
	</body></html>`

	stubs := ExtractStubs(parseDoc(t, html), baseURL, zap.NewNop())

	if stubs[0].DetailURL != "https://cdn.example.com/speakers/amy-chen" {
		t.Fatalf("expected absolute modal URL kept intact, got %q", stubs[0].DetailURL)
	}
}

func TestExtractStubsMissingFieldsFallBackToUnknown(t *testing.T) {
	html := `<html><body>
		<div class="speaker-item"><a href="/speakers/mystery"></a></div>
	</body></html>`

	stubs := ExtractStubs(parseDoc(t, html), baseURL, zap.NewNop())

	if len(stubs) != 1 {
		t.Fatalf("expected one stub, got %d", len(stubs))
	}
	stub := stubs[0]
	if stub.Name != constants.SentinelUnknown {
		t.Fatalf("expected unknown name, got %q", stub.Name)
	}
	if stub.Role != constants.SentinelUnknown {
		t.Fatalf("expected unknown role, got %q", stub.Role)
	}
	if stub.Company != constants.SentinelUnknown {
		t.Fatalf("expected unknown company, got %q", stub.Company)
	}
}

func TestExtractStubsWithoutAnchorHasNoDetailURL(t *testing.T) {
	html := `<html><body>
		<div class="speaker-item"><h3>Sam Fields</h3></div>
	</body></html>`

	stubs := ExtractStubs(parseDoc(t, html), baseURL, zap.NewNop())

	if stubs[0].HasDetailURL() {
		t.Fatalf("expected no detail URL, got %q", stubs[0].DetailURL)
	}
}

func TestExtractStubsEmptyPage(t *testing.T) {
	stubs := ExtractStubs(parseDoc(t, `<html><body><div class="content"></div></body></html>`), baseURL, zap.NewNop())

	if len(stubs) != 0 {
		t.Fatalf("expected no stubs on an empty page, got %d", len(stubs))
	}
}
