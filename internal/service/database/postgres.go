package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/borjaregueral/wrc-speakers-go/internal/domain"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type PostgresService struct {
	db     *sql.DB
	logger *zap.Logger
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

func NewPostgresService(cfg PostgresConfig, logger *zap.Logger) (*PostgresService, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Database)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	logger.Info("PostgreSQL connected",
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
	)

	return &PostgresService{
		db:     db,
		logger: logger,
	}, nil
}

func (ps *PostgresService) Close() error {
	if ps.db != nil {
		return ps.db.Close()
	}
	return nil
}

func (ps *PostgresService) Ping(ctx context.Context) error {
	return ps.db.PingContext(ctx)
}

// CreateSchema creates the speakers table when it does not exist yet.
func (ps *PostgresService) CreateSchema(ctx context.Context) error {
	_, err := ps.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS speakers (
			id SERIAL PRIMARY KEY,
			name TEXT NOT NULL,
			position TEXT NOT NULL,
			company TEXT NOT NULL,
			description TEXT NOT NULL,
			session_title TEXT NOT NULL,
			date TEXT NOT NULL,
			time TEXT NOT NULL,
			location TEXT NOT NULL,
			company_type TEXT NOT NULL,
			company_size TEXT NOT NULL,
			company_hq_address TEXT NOT NULL,
			company_hq_country TEXT NOT NULL,
			company_international TEXT NOT NULL,
			imported_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create speakers table: %w", err)
	}
	return nil
}

// ImportCollection replaces the stored speaker set with the given collection
// inside one transaction, mirroring the overwrite-in-full file semantics.
func (ps *PostgresService) ImportCollection(ctx context.Context, collection *domain.SpeakerCollection) error {
	tx, err := ps.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM speakers`); err != nil {
		return fmt.Errorf("failed to clear speakers table: %w", err)
	}

	for _, speaker := range collection.Speakers {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO speakers (name, position, company, description, session_title, date, time, location,
				company_type, company_size, company_hq_address, company_hq_country, company_international)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		`, speaker.Name, speaker.Position, speaker.Company, speaker.Description,
			speaker.SessionTitle, speaker.Date, speaker.Time, speaker.Location,
			speaker.CompanyType, speaker.CompanySize, speaker.CompanyHQAddress,
			speaker.CompanyHQCountry, speaker.CompanyInternational)
		if err != nil {
			return fmt.Errorf("failed to insert speaker %q: %w", speaker.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}

	ps.logger.Info("Collection imported to PostgreSQL", zap.Int("speakers", collection.Len()))
	return nil
}
