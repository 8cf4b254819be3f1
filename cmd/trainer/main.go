package main

import (
	"context"
	"flag"
	"log"
	"time"

	"go.uber.org/zap"

	"career-intel/internal/artifact"
	"career-intel/internal/config"
	"career-intel/internal/database"
	"career-intel/internal/database/migration"
	dbpostgres "career-intel/internal/database/postgres"
	"career-intel/internal/domain/profile"
	"career-intel/internal/embedding"
	"career-intel/internal/ingestion"
	"career-intel/internal/logger"
	"career-intel/internal/repository"
	"career-intel/internal/salary"
	"career-intel/internal/training"
)

// staticCorpus serves an in-memory record set to the training pipeline
// when no database is configured.
type staticCorpus []profile.JobRecord

func (s staticCorpus) ListAll(context.Context) ([]profile.JobRecord, error) {
	return s, nil
}

func main() {
	ingest := flag.Bool("ingest", false, "fetch fresh postings from remote sources before training")
	mock := flag.Bool("mock", false, "train on a generated corpus even if a database is configured")
	boardURL := flag.String("board_url", "", "optional HTML job board start URL to scrape")
	boardDomain := flag.String("board_domain", "", "allowed domain for -board_url")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zl, err := logger.New(cfg.App.LogJSON, cfg.App.Debug)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	provider, err := embedding.NewGemini(ctx, cfg.Embedding.GeminiAPIKey, cfg.Embedding.Model, cfg.Embedding.Dimension)
	if err != nil {
		zl.Fatal("embedding provider init failed", zap.Error(err))
	}

	store, err := artifact.NewStore(cfg.Artifacts.Dir)
	if err != nil {
		zl.Fatal("artifact store init failed", zap.Error(err))
	}

	var db database.DB
	useDB := cfg.Database.Host != "" && !*mock
	if useDB {
		connCtx, connCancel := context.WithTimeout(ctx, 10*time.Second)
		db, err = dbpostgres.Connect(connCtx, cfg.Database)
		connCancel()
		if err != nil {
			zl.Fatal("database connect failed", zap.Error(err))
		}
		defer func() { _ = db.Close() }()

		migCtx, migCancel := context.WithTimeout(ctx, 2*time.Minute)
		r := migration.Runner{Dir: "migrations"}
		err = r.Run(migCtx, db.SQLDB())
		migCancel()
		if err != nil {
			zl.Fatal("migration failed", zap.Error(err))
		}
	}

	var source training.CorpusSource
	switch {
	case useDB:
		repo := repository.NewJobRecordRepository(db)
		if *ingest {
			fetchAndStore(ctx, cfg, zl, repo, *boardURL, *boardDomain)
		}
		source = repo
	default:
		zl.Info("no database configured, generating mock corpus",
			zap.Int("size", cfg.Training.MockCorpusSize),
			zap.Int64("seed", cfg.Training.Seed),
		)
		source = staticCorpus(ingestion.GenerateMockCorpus(cfg.Training.MockCorpusSize, cfg.Training.Seed))
	}

	pipeline := training.NewPipeline(
		source,
		provider,
		store,
		zl,
		salary.TrainConfig{Trees: cfg.Training.Trees, Seed: cfg.Training.Seed},
		cfg.Training.HighDemandThreshold,
	)
	if err := pipeline.Run(ctx); err != nil {
		zl.Fatal("training pipeline failed", zap.Error(err))
	}

	zl.Info("artifacts written", zap.String("dir", cfg.Artifacts.Dir))
}

func fetchAndStore(ctx context.Context, cfg config.Config, zl *zap.Logger, repo repository.JobRecordRepository, boardURL, boardDomain string) {
	remoteok := ingestion.NewRemoteOKFetcher(zl)
	sources := []ingestion.Source{
		ingestion.NamedSource{SourceName: "remoteok", FetchFunc: remoteok.Fetch},
	}
	if boardURL != "" && boardDomain != "" {
		board, err := ingestion.NewBoardScraper(ingestion.BoardTarget{
			Name:          "board",
			StartURL:      boardURL,
			AllowedDomain: boardDomain,
			CardSelector:  "div.job",
			TitleSelector: "h2",
			TagSelector:   ".tag",
		}, zl)
		if err != nil {
			zl.Fatal("board scraper init failed", zap.Error(err))
		}
		sources = append(sources, ingestion.NamedSource{SourceName: "board", FetchFunc: board.Fetch})
	}

	runner := ingestion.NewRunner(cfg.Training.SourceWorkers, cfg.Training.SourceRPS, zl)
	records := runner.FetchAll(ctx, sources)
	if len(records) == 0 {
		zl.Warn("ingestion returned no records, training on existing corpus")
		return
	}

	n, err := repo.InsertBatch(ctx, records, "ingest")
	if err != nil {
		zl.Fatal("corpus insert failed", zap.Error(err))
	}
	zl.Info("corpus updated", zap.Int("inserted", n))
}
