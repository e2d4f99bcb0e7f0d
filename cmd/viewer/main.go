package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/borjaregueral/wrc-speakers-go/internal/config"
	"github.com/borjaregueral/wrc-speakers-go/internal/constants"
	"github.com/borjaregueral/wrc-speakers-go/internal/domain"
	"github.com/borjaregueral/wrc-speakers-go/internal/store"
	"github.com/borjaregueral/wrc-speakers-go/internal/util"
	"github.com/jedib0t/go-pretty/v6/table"
	"go.uber.org/zap"
)

// Viewer mode: loads the persisted collection and renders it as terminal
// tables. An optional positional argument filters speakers by name or
// company substring.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := util.NewLogger("warn", "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	dataStore := store.New(cfg.Output.JSONFile, cfg.Output.CSVFile, logger)
	collection, err := dataStore.LoadJSON()
	if err != nil {
		logger.Error("Failed to load speaker data", zap.Error(err))
		os.Exit(1)
	}

	if collection.Len() == 0 {
		fmt.Printf("No speaker data found at %s. Run the scraper first.\n", cfg.Output.JSONFile)
		os.Exit(0)
	}

	speakers := collection.Speakers
	if len(os.Args) > 1 {
		query := os.Args[1]
		speakers = filterSpeakers(collection, query)
		fmt.Printf("Filter %q matched %d of %d speakers\n\n", query, len(speakers), collection.Len())
	}

	renderSpeakers(speakers)
	renderCompanies(speakers)
	renderDates(speakers)
}

func filterSpeakers(collection *domain.SpeakerCollection, query string) []*domain.Speaker {
	lowered := strings.ToLower(query)
	matched := make([]*domain.Speaker, 0)
	for _, speaker := range collection.Speakers {
		if strings.Contains(strings.ToLower(speaker.Name), lowered) ||
			strings.Contains(strings.ToLower(speaker.Company), lowered) {
			matched = append(matched, speaker)
		}
	}
	return matched
}

func renderSpeakers(speakers []*domain.Speaker) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Speakers (%d)", len(speakers))
	t.AppendHeader(table.Row{"Name", "Position", "Company", "Session", "Date", "Time", "Location"})

	for _, speaker := range speakers {
		t.AppendRow(table.Row{
			speaker.Name,
			util.TruncateString(speaker.Position, 40),
			util.TruncateString(speaker.Company, 30),
			util.TruncateString(speaker.SessionTitle, 50),
			speaker.Date,
			speaker.Time,
			util.TruncateString(speaker.Location, 20),
		})
	}

	t.SetStyle(table.StyleLight)
	t.Render()
	fmt.Println()
}

func renderCompanies(speakers []*domain.Speaker) {
	counts := make(map[string]int)
	for _, speaker := range speakers {
		if speaker.Company != constants.SentinelUnknown {
			counts[speaker.Company]++
		}
	}

	type companyCount struct {
		company string
		count   int
	}
	sorted := make([]companyCount, 0, len(counts))
	for company, count := range counts {
		sorted = append(sorted, companyCount{company, count})
	}
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].count != sorted[j].count {
			return sorted[i].count > sorted[j].count
		}
		return sorted[i].company < sorted[j].company
	})

	if len(sorted) > 15 {
		sorted = sorted[:15]
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Top companies")
	t.AppendHeader(table.Row{"Company", "Speakers"})
	for _, entry := range sorted {
		t.AppendRow(table.Row{entry.company, entry.count})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
	fmt.Println()
}

func renderDates(speakers []*domain.Speaker) {
	counts := make(map[string]int)
	for _, speaker := range speakers {
		if speaker.Date != constants.SentinelNotAvailable && speaker.Date != constants.SentinelError {
			counts[speaker.Date]++
		}
	}

	dates := make([]string, 0, len(counts))
	for date := range counts {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Sessions by date")
	t.AppendHeader(table.Row{"Date", "Sessions"})
	for _, date := range dates {
		t.AppendRow(table.Row{date, counts[date]})
	}
	t.SetStyle(table.StyleLight)
	t.Render()
}
