package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Embedding EmbeddingConfig
	Artifacts ArtifactConfig
	Training  TrainingConfig
	Cache     CacheConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	Debug       bool
	LogJSON     bool
}

type DatabaseConfig struct {
	Host         string
	Port         string
	Name         string
	User         string
	Password     string
	SSLMode      string
	PoolMaxConns int32
}

type EmbeddingConfig struct {
	GeminiAPIKey string
	Model        string
	// Dimension is fixed process-wide and must agree with the persisted
	// artifacts' vector dimensionality.
	Dimension int
}

type ArtifactConfig struct {
	Dir string
}

type TrainingConfig struct {
	Trees               int
	Seed                int64
	HighDemandThreshold int
	MockCorpusSize      int
	SourceWorkers       int
	SourceRPS           int
}

type CacheConfig struct {
	AnalysisTTL time.Duration
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optInt := func(key string, def int) int {
		v := opt(key)
		if v == "" {
			return def
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return def
		}
		return n
	}
	optBool := func(key string) bool {
		v := strings.ToLower(opt(key))
		return v == "1" || v == "true" || v == "yes"
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    opt("HTTP_PORT"),
		Debug:       optBool("APP_DEBUG"),
		LogJSON:     optBool("LOG_JSON"),
	}

	cfg.Database = DatabaseConfig{
		Host:         opt("DB_HOST"),
		Port:         opt("DB_PORT"),
		Name:         opt("DB_NAME"),
		User:         opt("DB_USER"),
		Password:     opt("DB_PASSWORD"),
		SSLMode:      opt("DB_SSL_MODE"),
		PoolMaxConns: int32(optInt("DB_POOL_MAX_CONNS", 0)),
	}

	cfg.Embedding = EmbeddingConfig{
		GeminiAPIKey: opt("GEMINI_API_KEY"),
		Model:        opt("EMBED_MODEL"),
		Dimension:    optInt("EMBED_DIM", 384),
	}

	cfg.Artifacts = ArtifactConfig{
		Dir: opt("ARTIFACT_DIR"),
	}
	if cfg.Artifacts.Dir == "" {
		cfg.Artifacts.Dir = "artifacts"
	}

	cfg.Training = TrainingConfig{
		Trees:               optInt("TRAIN_TREES", 100),
		Seed:                int64(optInt("TRAIN_SEED", 42)),
		HighDemandThreshold: optInt("DEMAND_HIGH_THRESHOLD", 15),
		MockCorpusSize:      optInt("MOCK_CORPUS_SIZE", 300),
		SourceWorkers:       optInt("SOURCE_WORKERS", 4),
		SourceRPS:           optInt("SOURCE_RPS", 0),
	}

	cfg.Cache = CacheConfig{
		AnalysisTTL: time.Duration(optInt("ANALYSIS_CACHE_TTL_SECONDS", 600)) * time.Second,
	}

	if cfg.Embedding.Dimension <= 0 {
		return Config{}, fmt.Errorf("invalid EMBED_DIM: %d", cfg.Embedding.Dimension)
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}
