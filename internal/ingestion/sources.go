package ingestion

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"career-intel/internal/domain/profile"
)

// Source is one posting provider: the RemoteOK API, an HTML board, or the
// mock generator wrapped as a fallback.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]profile.JobRecord, error)
}

// NamedSource adapts a fetch function into a Source.
type NamedSource struct {
	SourceName string
	FetchFunc  func(ctx context.Context) ([]profile.JobRecord, error)
}

func (s NamedSource) Name() string { return s.SourceName }
func (s NamedSource) Fetch(ctx context.Context) ([]profile.JobRecord, error) {
	return s.FetchFunc(ctx)
}

// Runner fetches all sources concurrently through a small worker pool and
// merges their records. A failing source is logged and skipped; the run
// only fails when every source fails.
type Runner struct {
	workers int
	rps     int
	logger  *zap.Logger
}

func NewRunner(workers, rps int, logger *zap.Logger) *Runner {
	if workers <= 0 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{workers: workers, rps: rps, logger: logger}
}

type sourceResult struct {
	name    string
	records []profile.JobRecord
	err     error
}

func (r *Runner) FetchAll(ctx context.Context, sources []Source) []profile.JobRecord {
	if len(sources) == 0 {
		return nil
	}

	var rate <-chan time.Time
	if r.rps > 0 {
		t := time.NewTicker(time.Second / time.Duration(r.rps))
		defer t.Stop()
		rate = t.C
	}

	tasks := make(chan Source)
	results := make(chan sourceResult, len(sources))

	var wg sync.WaitGroup
	wg.Add(r.workers)
	for i := 0; i < r.workers; i++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case src, ok := <-tasks:
					if !ok {
						return
					}
					if rate != nil {
						select {
						case <-ctx.Done():
							return
						case <-rate:
						}
					}
					records, err := src.Fetch(ctx)
					results <- sourceResult{name: src.Name(), records: records, err: err}
				}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for _, src := range sources {
			select {
			case <-ctx.Done():
				return
			case tasks <- src:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var merged []profile.JobRecord
	for res := range results {
		if res.err != nil {
			r.logger.Warn("source failed, skipping", zap.String("source", res.name), zap.Error(res.err))
			continue
		}
		r.logger.Info("source fetched", zap.String("source", res.name), zap.Int("records", len(res.records)))
		merged = append(merged, res.records...)
	}
	return merged
}
