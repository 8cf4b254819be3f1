package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"career-intel/internal/artifact"
	"career-intel/internal/domain/demand"
	"career-intel/internal/domain/profile"
	"career-intel/internal/embedding"
	"career-intel/internal/salary"
	"career-intel/internal/taxonomy"
)

// hashProvider embeds tokens deterministically so related skill sets get
// related vectors.
type hashProvider struct {
	dim int
	err error
}

func (p hashProvider) Dimension() int { return p.dim }
func (p hashProvider) Encode(_ context.Context, texts []string) ([][]float64, error) {
	if p.err != nil {
		return nil, p.err
	}
	rows := make([][]float64, len(texts))
	for i, t := range texts {
		row := make([]float64, p.dim)
		for j, b := range []byte(t) {
			row[j%p.dim] += float64(b) / 256
		}
		rows[i] = row
	}
	return rows, nil
}

type memoryCache struct {
	data map[string][]byte
	hits int
}

func (c *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	c.hits++
	return true, json.Unmarshal(b, out)
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value any, _ int) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if c.data == nil {
		c.data = make(map[string][]byte)
	}
	c.data[key] = b
	return nil
}

func testSnapshot(t *testing.T, dim int) *artifact.Snapshot {
	t.Helper()

	p := hashProvider{dim: dim}
	ctx := context.Background()

	backendVec, err := embedding.EmbedMany(ctx, p, []string{"python", "django", "sql"})
	if err != nil {
		t.Fatalf("encode backend vec: %v", err)
	}
	mlVec, err := embedding.EmbedMany(ctx, p, []string{"python", "machine learning", "pytorch"})
	if err != nil {
		t.Fatalf("encode ml vec: %v", err)
	}

	features := [][]float64{
		salary.Features(backendVec, 2),
		salary.Features(backendVec, 5),
		salary.Features(mlVec, 3),
		salary.Features(mlVec, 6),
	}
	labels := []float64{12, 18, 20, 28}
	model, err := salary.Train(features, labels, salary.TrainConfig{Trees: 10, Seed: 1})
	if err != nil {
		t.Fatalf("train: %v", err)
	}

	return &artifact.Snapshot{
		Model: model,
		Roles: []profile.RoleProfile{
			{Role: taxonomy.CategoryBackend, Vector: backendVec, AvgSalary: 15, DemandLevel: profile.DemandHigh, CoreSkills: []string{"python", "django", "sql"}},
			{Role: taxonomy.CategoryML, Vector: mlVec, AvgSalary: 24, DemandLevel: profile.DemandMedium, CoreSkills: []string{"python", "machine learning", "pytorch"}},
		},
		DemandMap: demand.Map{"python": 100, "sql": 70},
	}
}

func TestAnalyze_FullFlow(t *testing.T) {
	snap := testSnapshot(t, 8)
	uc := NewAnalysisUsecase(hashProvider{dim: 8}, snap, nil, 0, nil)

	res, err := uc.Analyze(context.Background(), AnalyzeParams{
		SkillsText:      "Python, SQL",
		ExperienceYears: 3,
		TargetRole:      taxonomy.CategoryML,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if res.SalaryLow <= 0 || res.SalaryHigh <= res.SalaryLow {
		t.Fatalf("unexpected salary range (%v, %v)", res.SalaryLow, res.SalaryHigh)
	}
	if len(res.Matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(res.Matches))
	}
	if res.Matches[0].MatchPct < res.Matches[1].MatchPct {
		t.Fatalf("matches not sorted: %v", res.Matches)
	}
	if res.Target == nil || res.Target.Role != taxonomy.CategoryML {
		t.Fatalf("expected target insight, got %+v", res.Target)
	}
	if len(res.GapSkills) != 2 || res.GapSkills[0] != "machine learning" || res.GapSkills[1] != "pytorch" {
		t.Fatalf("expected sorted gap [machine learning, pytorch], got %v", res.GapSkills)
	}
	if len(res.Roadmap.Buckets) != 3 {
		t.Fatalf("expected 3 roadmap buckets, got %d", len(res.Roadmap.Buckets))
	}
	if res.SkillDemand["python"] != 100 {
		t.Fatalf("expected python demand 100, got %d", res.SkillDemand["python"])
	}
	if res.SkillDemand["sql"] != 70 {
		t.Fatalf("expected sql demand 70, got %d", res.SkillDemand["sql"])
	}
}

func TestAnalyze_UnknownSkillNeutralDemand(t *testing.T) {
	snap := testSnapshot(t, 8)
	uc := NewAnalysisUsecase(hashProvider{dim: 8}, snap, nil, 0, nil)

	res, err := uc.Analyze(context.Background(), AnalyzeParams{SkillsText: "cobol", ExperienceYears: 1})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.SkillDemand["cobol"] != demand.NeutralScore {
		t.Fatalf("expected neutral demand, got %d", res.SkillDemand["cobol"])
	}
}

func TestAnalyze_NoTargetRole(t *testing.T) {
	snap := testSnapshot(t, 8)
	uc := NewAnalysisUsecase(hashProvider{dim: 8}, snap, nil, 0, nil)

	res, err := uc.Analyze(context.Background(), AnalyzeParams{SkillsText: "python", ExperienceYears: 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Target != nil {
		t.Fatalf("expected no target insight, got %+v", res.Target)
	}
	if len(res.GapSkills) != 0 || len(res.Roadmap.Buckets) != 0 {
		t.Fatalf("expected empty gap and roadmap, got %v %v", res.GapSkills, res.Roadmap)
	}
}

func TestAnalyze_ExperienceOutOfRange(t *testing.T) {
	snap := testSnapshot(t, 8)
	uc := NewAnalysisUsecase(hashProvider{dim: 8}, snap, nil, 0, nil)

	if _, err := uc.Analyze(context.Background(), AnalyzeParams{SkillsText: "python", ExperienceYears: 16}); !errors.Is(err, ErrInvalidExperience) {
		t.Fatalf("expected ErrInvalidExperience, got %v", err)
	}
	if _, err := uc.Analyze(context.Background(), AnalyzeParams{SkillsText: "python", ExperienceYears: -1}); !errors.Is(err, ErrInvalidExperience) {
		t.Fatalf("expected ErrInvalidExperience, got %v", err)
	}
}

func TestAnalyze_UnknownTargetRole(t *testing.T) {
	snap := testSnapshot(t, 8)
	uc := NewAnalysisUsecase(hashProvider{dim: 8}, snap, nil, 0, nil)

	if _, err := uc.Analyze(context.Background(), AnalyzeParams{SkillsText: "python", ExperienceYears: 2, TargetRole: "Astronaut"}); !errors.Is(err, ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestAnalyze_EmptySkillsLegal(t *testing.T) {
	snap := testSnapshot(t, 8)
	uc := NewAnalysisUsecase(hashProvider{dim: 8}, snap, nil, 0, nil)

	res, err := uc.Analyze(context.Background(), AnalyzeParams{SkillsText: "  ", ExperienceYears: 0})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	// Zero vector: matching declines to rank against nothing meaningful,
	// salary still comes back from the model.
	if len(res.SkillDemand) != 0 {
		t.Fatalf("expected no demand entries, got %v", res.SkillDemand)
	}
}

func TestAnalyze_EmbeddingFailureSurfaces(t *testing.T) {
	snap := testSnapshot(t, 8)
	uc := NewAnalysisUsecase(hashProvider{dim: 8, err: errors.New("backend down")}, snap, nil, 0, nil)

	if _, err := uc.Analyze(context.Background(), AnalyzeParams{SkillsText: "python", ExperienceYears: 2}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestAnalyze_CacheRoundtrip(t *testing.T) {
	snap := testSnapshot(t, 8)
	c := &memoryCache{}
	uc := NewAnalysisUsecase(hashProvider{dim: 8}, snap, c, 60, nil)

	params := AnalyzeParams{SkillsText: "python, sql", ExperienceYears: 3, TargetRole: taxonomy.CategoryBackend}
	first, err := uc.Analyze(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	second, err := uc.Analyze(context.Background(), params)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if c.hits != 1 {
		t.Fatalf("expected 1 cache hit, got %d", c.hits)
	}
	if first.SalaryLow != second.SalaryLow || first.SalaryHigh != second.SalaryHigh {
		t.Fatalf("cached result differs: %+v vs %+v", first, second)
	}
}

func TestAnalysisCacheKey_NormalizesInput(t *testing.T) {
	a := analysisCacheKey(AnalyzeParams{SkillsText: "Python, SQL", ExperienceYears: 3})
	b := analysisCacheKey(AnalyzeParams{SkillsText: "sql,python", ExperienceYears: 3})
	if a != b {
		t.Fatalf("expected equivalent inputs to share a key")
	}

	c := analysisCacheKey(AnalyzeParams{SkillsText: "sql,python", ExperienceYears: 4})
	if a == c {
		t.Fatalf("expected different experience to change the key")
	}
}
