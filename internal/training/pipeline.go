package training

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"career-intel/internal/artifact"
	"career-intel/internal/domain/demand"
	"career-intel/internal/domain/profile"
	"career-intel/internal/embedding"
	"career-intel/internal/salary"
)

var ErrEmptyCorpus = errors.New("training corpus is empty")

// CorpusSource supplies the full job record corpus for one training run.
type CorpusSource interface {
	ListAll(ctx context.Context) ([]profile.JobRecord, error)
}

// Pipeline is one offline batch training run: every derived artifact is
// rebuilt wholesale from the full corpus, nothing is updated
// incrementally. It shares no memory with the serving process; the
// artifact store directory is the only hand-off.
type Pipeline struct {
	source   CorpusSource
	provider embedding.Provider
	store    *artifact.Store
	logger   *zap.Logger

	trainCfg            salary.TrainConfig
	highDemandThreshold int
}

func NewPipeline(source CorpusSource, provider embedding.Provider, store *artifact.Store, logger *zap.Logger, trainCfg salary.TrainConfig, highDemandThreshold int) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		source:              source,
		provider:            provider,
		store:               store,
		logger:              logger,
		trainCfg:            trainCfg,
		highDemandThreshold: highDemandThreshold,
	}
}

func (p *Pipeline) Run(ctx context.Context) error {
	records, err := p.source.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("load corpus: %w", err)
	}
	if len(records) == 0 {
		return ErrEmptyCorpus
	}
	p.logger.Info("corpus loaded", zap.Int("records", len(records)))

	demandMap := demand.Compute(records)
	p.logger.Info("demand map computed", zap.Int("skills", len(demandMap)))

	// One mean embedding per record, reused by both the role profiles
	// and the salary model features. Records with no skills resolve to
	// the zero vector.
	vectors := make([]profile.Vector, len(records))
	for i, r := range records {
		vec, err := embedding.EmbedMany(ctx, p.provider, r.Skills)
		if err != nil {
			return fmt.Errorf("embed record %d (%q): %w", i, r.Title, err)
		}
		vectors[i] = vec
	}
	p.logger.Info("record embeddings computed", zap.Int("dimension", p.provider.Dimension()))

	roles, err := BuildRoleProfiles(records, vectors, p.highDemandThreshold)
	if err != nil {
		return fmt.Errorf("build role profiles: %w", err)
	}
	p.logger.Info("role profiles built", zap.Int("roles", len(roles)))

	features := make([][]float64, len(records))
	labels := make([]float64, len(records))
	for i, r := range records {
		features[i] = salary.Features(vectors[i], r.Experience)
		labels[i] = r.Salary
	}
	model, err := salary.Train(features, labels, p.trainCfg)
	if err != nil {
		return fmt.Errorf("train salary model: %w", err)
	}
	p.logger.Info("salary model trained", zap.Int("trees", len(model.Trees)), zap.Int("features", model.NumFeatures))

	if err := p.store.SaveSalaryModel(model); err != nil {
		return err
	}
	if err := p.store.SaveRoleProfiles(roles); err != nil {
		return err
	}
	if err := p.store.SaveDemandMap(demandMap); err != nil {
		return err
	}
	p.logger.Info("artifacts persisted")

	return nil
}
