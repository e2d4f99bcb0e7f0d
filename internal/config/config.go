package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/borjaregueral/wrc-speakers-go/internal/constants"
	"github.com/borjaregueral/wrc-speakers-go/pkg/errors"
	"github.com/joho/godotenv"
)

type Config struct {
	Scraper    ScraperConfig
	Output     OutputConfig
	Gemini     GeminiConfig
	OpenAI     OpenAIConfig
	Enrichment EnrichmentConfig
	Redis      RedisConfig
	Postgres   PostgresConfig
	Logging    LoggingConfig
}

type ScraperConfig struct {
	BaseURL             string
	ListingPath         string
	MaxPages            int
	Headless            bool
	CheckpointInterval  int
	DetectPaginationEnd bool
}

type OutputConfig struct {
	Dir      string
	JSONFile string
	CSVFile  string
}

type GeminiConfig struct {
	APIKey string
}

type OpenAIConfig struct {
	APIKey         string
	EnableFallback bool
}

type EnrichmentConfig struct {
	Enabled bool
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type LoggingConfig struct {
	Level string
	File  string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	outputDir := getEnv("OUTPUT_DIR", "data")

	cfg := &Config{
		Scraper: ScraperConfig{
			BaseURL:             getEnv("SCRAPER_BASE_URL", "https://www.worldretailcongress.com"),
			ListingPath:         getEnv("SCRAPER_LISTING_PATH", "/2025-speakers"),
			MaxPages:            getEnvInt("SCRAPER_MAX_PAGES", constants.PipelineConfig.DefaultMaxPages),
			Headless:            getEnvBool("SCRAPER_HEADLESS", true),
			CheckpointInterval:  getEnvInt("SCRAPER_CHECKPOINT_INTERVAL", constants.PipelineConfig.DefaultCheckpointInterval),
			DetectPaginationEnd: getEnvBool("SCRAPER_DETECT_PAGINATION_END", false),
		},
		Output: OutputConfig{
			Dir:      outputDir,
			JSONFile: filepath.Join(outputDir, "speakers.json"),
			CSVFile:  filepath.Join(outputDir, "speakers.csv"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
		},
		OpenAI: OpenAIConfig{
			APIKey:         getEnv("OPENAI_API_KEY", ""),
			EnableFallback: getEnvBool("OPENAI_ENABLE_FALLBACK", true),
		},
		Enrichment: EnrichmentConfig{
			Enabled: getEnvBool("ENABLE_COMPANY_ENRICHMENT", true),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", ""),
			Port:     getEnvInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Postgres: PostgresConfig{
			Host:     getEnv("POSTGRES_HOST", ""),
			Port:     getEnvInt("POSTGRES_PORT", 5432),
			User:     getEnv("POSTGRES_USER", "postgres"),
			Password: getEnv("POSTGRES_PASSWORD", ""),
			Database: getEnv("POSTGRES_DB", "speakers"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Scraper.BaseURL == "" {
		return errors.NewValidationError("SCRAPER_BASE_URL is required", "SCRAPER_BASE_URL", c.Scraper.BaseURL)
	}
	if c.Scraper.MaxPages < 1 {
		return errors.NewValidationError("SCRAPER_MAX_PAGES must be at least 1", "SCRAPER_MAX_PAGES", c.Scraper.MaxPages)
	}
	if c.Scraper.CheckpointInterval < 1 {
		return errors.NewValidationError("SCRAPER_CHECKPOINT_INTERVAL must be at least 1", "SCRAPER_CHECKPOINT_INTERVAL", c.Scraper.CheckpointInterval)
	}
	return nil
}

// ListingURL returns the listing URL for a 1-based page index. Page 1 is the
// bare listing path; later pages carry the page query parameter.
func (c *Config) ListingURL(page int) string {
	base := c.Scraper.BaseURL + c.Scraper.ListingPath
	if page <= 1 {
		return base
	}
	return fmt.Sprintf("%s?page=%d", base, page)
}

func (c *Config) EnrichmentCredentialed() bool {
	return c.Gemini.APIKey != ""
}

func (c *Config) RedisEnabled() bool {
	return c.Redis.Host != ""
}

func (c *Config) PostgresEnabled() bool {
	return c.Postgres.Host != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
