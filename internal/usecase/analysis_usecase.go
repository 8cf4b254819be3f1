package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"career-intel/internal/artifact"
	"career-intel/internal/domain/gap"
	"career-intel/internal/domain/matching"
	"career-intel/internal/domain/profile"
	"career-intel/internal/domain/roadmap"
	"career-intel/internal/embedding"
	"career-intel/internal/ingestion"
	"career-intel/internal/salary"
	"career-intel/internal/taxonomy"
)

const (
	minExperienceYears = 0
	maxExperienceYears = 15
)

var (
	ErrInvalidExperience = errors.New("experience years out of range")
	ErrUnknownRole       = errors.New("unknown target role")
	ErrInternal          = errors.New("internal error")
)

type AnalyzeParams struct {
	SkillsText      string
	ExperienceYears int
	TargetRole      string
}

type TargetInsight struct {
	Role        string  `json:"role"`
	MatchPct    int     `json:"match_pct"`
	AvgSalary   float64 `json:"avg_salary"`
	DemandLevel string  `json:"demand_level"`
}

// AnalysisResult is the full per-request payload: everything here is
// derived on the fly and discarded after the response.
type AnalysisResult struct {
	SalaryLow   float64               `json:"salary_low"`
	SalaryHigh  float64               `json:"salary_high"`
	Matches     []profile.MatchResult `json:"matches"`
	Target      *TargetInsight        `json:"target,omitempty"`
	GapSkills   []string              `json:"gap_skills"`
	Roadmap     roadmap.Roadmap       `json:"roadmap"`
	SkillDemand map[string]int        `json:"skill_demand"`
}

type AnalysisUsecase interface {
	Analyze(ctx context.Context, params AnalyzeParams) (AnalysisResult, error)
}

// AnalysisCache is the serving-path response cache; redis in production,
// absent in tests.
type AnalysisCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl int) error
}

type Analysis struct {
	provider embedding.Provider
	snapshot *artifact.Snapshot
	cache    AnalysisCache
	cacheTTL int
	logger   *zap.Logger
}

func NewAnalysisUsecase(provider embedding.Provider, snapshot *artifact.Snapshot, cache AnalysisCache, cacheTTLSeconds int, logger *zap.Logger) *Analysis {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analysis{
		provider: provider,
		snapshot: snapshot,
		cache:    cache,
		cacheTTL: cacheTTLSeconds,
		logger:   logger,
	}
}

// Analyze runs the whole serving path: tokenize, embed, predict, rank,
// gap, plan. Empty skill input is legal and resolves through the zero
// vector; a missing salary model yields the (0, 0) range sentinel.
func (u *Analysis) Analyze(ctx context.Context, params AnalyzeParams) (AnalysisResult, error) {
	if params.ExperienceYears < minExperienceYears || params.ExperienceYears > maxExperienceYears {
		return AnalysisResult{}, ErrInvalidExperience
	}
	if params.TargetRole != "" && !taxonomy.IsKnown(params.TargetRole) {
		return AnalysisResult{}, ErrUnknownRole
	}

	key := analysisCacheKey(params)
	if u.cache != nil {
		var cached AnalysisResult
		if found, err := u.cache.GetJSON(ctx, key, &cached); err == nil && found {
			u.logger.Debug("analysis cache hit", zap.String("key", key))
			return cached, nil
		}
	}

	tokens := ingestion.Tokenize(params.SkillsText)
	vec, err := embedding.EmbedMany(ctx, u.provider, tokens)
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	low, high, err := salary.PredictRange(u.snapshot.Model, vec, params.ExperienceYears)
	if err != nil {
		// A shape mismatch means stale artifacts; refuse rather than
		// serve a garbage prediction.
		return AnalysisResult{}, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	result := AnalysisResult{
		SalaryLow:   low,
		SalaryHigh:  high,
		Matches:     matching.Match(vec, u.snapshot.Roles),
		GapSkills:   []string{},
		Roadmap:     roadmap.Plan(nil),
		SkillDemand: make(map[string]int, len(tokens)),
	}

	for _, t := range tokens {
		result.SkillDemand[t] = u.snapshot.DemandMap.Score(t)
	}

	if params.TargetRole != "" {
		if role, ok := u.snapshot.RoleByName(params.TargetRole); ok {
			missing := gap.Missing(tokens, role.CoreSkills)
			result.Target = &TargetInsight{
				Role:        role.Role,
				MatchPct:    matching.ScoreRole(vec, role),
				AvgSalary:   role.AvgSalary,
				DemandLevel: role.DemandLevel,
			}
			result.GapSkills = sortedSkills(missing)
			result.Roadmap = roadmap.Plan(missing)
		}
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, key, result, u.cacheTTL)
	}
	return result, nil
}

func sortedSkills(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
