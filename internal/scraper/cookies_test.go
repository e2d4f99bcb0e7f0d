package scraper

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

// consentPage scripts EvaluateBool results per call and records native
// click attempts.
type consentPage struct {
	evalResults []bool
	evalErr     error
	evalCalls   int
	clickFor    string
	clicks      []string
}

func (p *consentPage) Navigate(_ context.Context, _ string) error { return nil }
func (p *consentPage) HTML(_ context.Context) (string, error)     { return "", nil }
func (p *consentPage) Close()                                     {}

func (p *consentPage) EvaluateBool(_ context.Context, _ string) (bool, error) {
	if p.evalErr != nil {
		return false, p.evalErr
	}
	result := false
	if p.evalCalls < len(p.evalResults) {
		result = p.evalResults[p.evalCalls]
	}
	p.evalCalls++
	return result, nil
}

func (p *consentPage) ClickFirst(_ context.Context, selector string) (bool, error) {
	p.clicks = append(p.clicks, selector)
	return selector == p.clickFor, nil
}

func TestDismissCookiesFirstAttempt(t *testing.T) {
	page := &consentPage{evalResults: []bool{true}}

	DismissCookies(context.Background(), page, zap.NewNop())

	if page.evalCalls != 1 {
		t.Fatalf("expected one script evaluation, got %d", page.evalCalls)
	}
	if len(page.clicks) != 0 {
		t.Fatalf("expected no native clicks after a scripted dismiss, got %v", page.clicks)
	}
}

func TestDismissCookiesRetriesScript(t *testing.T) {
	page := &consentPage{evalResults: []bool{false, true}}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	DismissCookies(ctx, page, zap.NewNop())

	if page.evalCalls != 2 {
		t.Fatalf("expected the script to be retried once, got %d evaluations", page.evalCalls)
	}
}

func TestDismissCookiesFallsBackToNativeClicks(t *testing.T) {
	page := &consentPage{
		evalErr:  errors.New("scripting disabled"),
		clickFor: ".cky-btn-accept",
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	DismissCookies(ctx, page, zap.NewNop())

	if len(page.clicks) != 3 {
		t.Fatalf("expected native clicks to stop at the first hit, got %v", page.clicks)
	}
	if page.clicks[len(page.clicks)-1] != ".cky-btn-accept" {
		t.Fatalf("expected the accept class selector to be the hit, got %v", page.clicks)
	}
}

func TestDismissCookiesNoBannerAnywhere(t *testing.T) {
	page := &consentPage{evalResults: []bool{false, false, false}}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	DismissCookies(ctx, page, zap.NewNop())

	if page.evalCalls != 3 {
		t.Fatalf("expected the full scripted retry budget, got %d evaluations", page.evalCalls)
	}
	if len(page.clicks) != 6 {
		t.Fatalf("expected every native selector to be tried, got %d", len(page.clicks))
	}
}
