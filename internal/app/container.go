package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"career-intel/internal/artifact"
	"career-intel/internal/config"
	"career-intel/internal/embedding"
	"career-intel/internal/infrastructure/cache"
	"career-intel/internal/usecase"
)

// Container owns everything the serving process needs: the embedding
// client, the loaded artifact snapshot and the usecases built on top.
// Artifacts are read once at startup; a failure here is fatal by design
// of the serving path, which never trains or mutates models.
type Container struct {
	Config   config.Config
	Logger   *zap.Logger
	Snapshot *artifact.Snapshot
	Analysis usecase.AnalysisUsecase
	Roles    usecase.RolesUsecase

	redis *cache.Redis
}

func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	provider, err := embedding.NewGemini(ctx, cfg.Embedding.GeminiAPIKey, cfg.Embedding.Model, cfg.Embedding.Dimension)
	if err != nil {
		return nil, fmt.Errorf("embedding provider: %w", err)
	}

	store, err := artifact.NewStore(cfg.Artifacts.Dir)
	if err != nil {
		return nil, fmt.Errorf("artifact store: %w", err)
	}

	snapshot, err := artifact.LoadSnapshot(store, cfg.Embedding.Dimension)
	if err != nil {
		return nil, fmt.Errorf("load artifacts: %w", err)
	}

	redis := cache.NewRedis(logger)

	c := &Container{
		Config:   cfg,
		Logger:   logger,
		Snapshot: snapshot,
		redis:    redis,
	}

	ttl := int(cfg.Cache.AnalysisTTL / time.Second)
	c.Analysis = usecase.NewAnalysisUsecase(provider, snapshot, redisAnalysisCache{redis}, ttl, logger)
	c.Roles = usecase.NewRolesUsecase(snapshot)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil || c.redis == nil {
		return nil
	}
	return c.redis.Close()
}

// redisAnalysisCache adapts the redis client's duration-based TTL to the
// usecase's second-granularity cache contract.
type redisAnalysisCache struct {
	redis *cache.Redis
}

func (a redisAnalysisCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	return a.redis.GetJSON(ctx, key, out)
}

func (a redisAnalysisCache) SetJSON(ctx context.Context, key string, value any, ttl int) error {
	return a.redis.SetJSON(ctx, key, value, time.Duration(ttl)*time.Second)
}
