package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/borjaregueral/wrc-speakers-go/internal/constants"
	"github.com/borjaregueral/wrc-speakers-go/internal/domain"
	"github.com/borjaregueral/wrc-speakers-go/internal/util"
	"github.com/borjaregueral/wrc-speakers-go/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// CacheService memoizes company-fact lookups in Redis. The same company
// appears under many speakers; a cache hit skips a model call entirely.
type CacheService struct {
	client *redis.Client
	logger *zap.Logger
}

type CacheConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

func NewCacheService(cfg CacheConfig, logger *zap.Logger) (*CacheService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, errors.NewCacheError("failed to connect to Redis", "ping", "", err)
	}

	logger.Info("Redis connected",
		zap.String("addr", fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)),
		zap.Int("db", cfg.DB),
	)

	return &CacheService{
		client: client,
		logger: logger,
	}, nil
}

func companyKey(company string) string {
	return fmt.Sprintf("wrc:company:%s", util.Normalize(company))
}

// GetCompanyFacts returns cached facts for a company, or (nil, false) on a
// miss. Cache failures degrade to a miss.
func (c *CacheService) GetCompanyFacts(ctx context.Context, company string) (*domain.CompanyFacts, bool) {
	key := companyKey(company)

	value, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Error("Cache get failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	var facts domain.CompanyFacts
	if err := json.Unmarshal([]byte(value), &facts); err != nil {
		c.logger.Error("Cache unmarshal failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}

	c.logger.Debug("Company facts cache hit", zap.String("company", company))
	return &facts, true
}

// SetCompanyFacts stores facts for a company. Failures are logged and
// swallowed; the cache is an optimization, never a dependency.
func (c *CacheService) SetCompanyFacts(ctx context.Context, company string, facts *domain.CompanyFacts) {
	key := companyKey(company)

	jsonData, err := json.Marshal(facts)
	if err != nil {
		c.logger.Error("Cache marshal failed", zap.String("key", key), zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, key, jsonData, constants.EnrichmentConfig.CacheTTL).Err(); err != nil {
		c.logger.Error("Cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *CacheService) Close() error {
	return c.client.Close()
}
