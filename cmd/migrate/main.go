package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/borjaregueral/wrc-speakers-go/internal/constants"
	"github.com/borjaregueral/wrc-speakers-go/internal/domain"
	"github.com/borjaregueral/wrc-speakers-go/internal/service/database"
	"github.com/borjaregueral/wrc-speakers-go/internal/store"
	"go.uber.org/zap"
)

// CLI flags
var (
	jsonPath = flag.String("json", "data/speakers.json", "Path to the scraped speakers JSON file")
	dryRun   = flag.Bool("dry-run", false, "Validate and summarize without touching the database")
	dbHost   = flag.String("db-host", "localhost", "PostgreSQL host")
	dbPort   = flag.Int("db-port", 5432, "PostgreSQL port")
	dbUser   = flag.String("db-user", "postgres", "PostgreSQL user")
	dbPass   = flag.String("db-pass", "", "PostgreSQL password")
	dbName   = flag.String("db-name", "speakers", "PostgreSQL database")
	verbose  = flag.Bool("verbose", false, "Verbose output")
)

func main() {
	flag.Parse()

	log.Println("================================")
	log.Println("Speakers JSON to PostgreSQL")
	log.Println("================================")

	if *dryRun {
		log.Println("[DRY RUN MODE] No database changes will be made")
	}

	collection, err := loadCollection(*jsonPath)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *jsonPath, err)
	}
	log.Printf("✓ Loaded %d speakers", collection.Len())

	if collection.Len() == 0 {
		log.Fatalf("No speakers found in %s, nothing to import", *jsonPath)
	}

	if err := validateCollection(collection); err != nil {
		log.Fatalf("Data validation failed: %v", err)
	}
	log.Println("✓ Data validation passed")

	if *dryRun {
		log.Println("✓ Dry-run completed successfully")
		printSummary(collection)
		return
	}

	svc, err := database.NewPostgresService(database.PostgresConfig{
		Host:     *dbHost,
		Port:     *dbPort,
		User:     *dbUser,
		Password: *dbPass,
		Database: *dbName,
	}, zap.NewNop())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	if err := svc.CreateSchema(ctx); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}
	log.Println("✓ Schema ready")

	if err := svc.ImportCollection(ctx, collection); err != nil {
		log.Fatalf("Failed to import speakers: %v", err)
	}
	log.Printf("✓ Imported %d speakers", collection.Len())

	if *verbose {
		printSummary(collection)
	}

	log.Println("✓ Migration completed successfully")
}

func loadCollection(path string) (*domain.SpeakerCollection, error) {
	dataStore := store.New(path, "", zap.NewNop())
	return dataStore.LoadJSON()
}

func validateCollection(collection *domain.SpeakerCollection) error {
	for i, speaker := range collection.Speakers {
		if speaker.Name == "" {
			log.Printf("  Warning: speaker %d has an empty name, importing as %q", i, constants.SentinelUnknown)
			speaker.Name = constants.SentinelUnknown
		}
	}
	return nil
}

func printSummary(collection *domain.SpeakerCollection) {
	withCompany := 0
	withSession := 0
	withDescription := 0
	enriched := 0

	for _, speaker := range collection.Speakers {
		if speaker.HasKnownCompany() {
			withCompany++
		}
		if speaker.SessionTitle != constants.SentinelNotAvailable && speaker.SessionTitle != constants.SentinelError {
			withSession++
		}
		if speaker.Description != constants.SentinelNoDescription {
			withDescription++
		}
		if speaker.CompanyType != constants.SentinelNotAvailable {
			enriched++
		}
	}

	log.Println("\n===== Import Summary =====")
	log.Printf("Total speakers: %d", collection.Len())
	log.Printf("With company: %d, with session title: %d, with description: %d",
		withCompany, withSession, withDescription)
	log.Printf("With company enrichment: %d", enriched)
	log.Println("==========================")
}
