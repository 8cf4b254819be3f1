package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"

	"career-intel/internal/delivery/http/handler"
	"career-intel/internal/delivery/http/middleware"
	"career-intel/internal/delivery/http/routes"
	"career-intel/internal/domain/profile"
	"career-intel/internal/domain/roadmap"
	"career-intel/internal/usecase"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type stubAnalysis struct {
	result usecase.AnalysisResult
	err    error
	params usecase.AnalyzeParams
}

func (s *stubAnalysis) Analyze(_ context.Context, params usecase.AnalyzeParams) (usecase.AnalysisResult, error) {
	s.params = params
	return s.result, s.err
}

type stubRoles struct {
	roles []profile.RoleProfile
}

func (s *stubRoles) ListRoles(context.Context) ([]profile.RoleProfile, error) {
	return s.roles, nil
}

func newTestApp(t *testing.T, analysis usecase.AnalysisUsecase, roles usecase.RolesUsecase) *fiber.App {
	t.Helper()

	app := fiber.New(fiber.Config{})
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	routes.NewRegistry(
		handler.NewHealthHandler(func() bool { return true }),
		handler.NewAnalysisHandler(analysis),
		handler.NewRolesHandler(roles),
	).Register(app)
	return app
}

func TestAnalyzeEndpoint_OK(t *testing.T) {
	stub := &stubAnalysis{
		result: usecase.AnalysisResult{
			SalaryLow:  10.2,
			SalaryHigh: 13.8,
			Matches: []profile.MatchResult{
				{Role: "Backend Developer", MatchPct: 91, AvgSalary: 12.5, DemandLevel: profile.DemandHigh},
			},
			GapSkills:   []string{"docker"},
			Roadmap:     roadmap.Roadmap{Buckets: []roadmap.Bucket{{Label: "Month 1", Skills: []string{"docker"}}}},
			SkillDemand: map[string]int{"python": 100},
		},
	}
	app := newTestApp(t, stub, &stubRoles{})

	body, _ := json.Marshal(map[string]any{
		"skills":           "Python, SQL",
		"experience_years": 3,
		"target_role":      "Backend Developer",
	})
	req := httptest.NewRequest("POST", "/api/v1/analysis", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if sr.Status != 200 || sr.Message != "ok" {
		t.Fatalf("expected 200/ok, got %d/%s", sr.Status, sr.Message)
	}
	if stub.params.SkillsText != "Python, SQL" || stub.params.ExperienceYears != 3 {
		t.Fatalf("params not forwarded: %+v", stub.params)
	}

	var data struct {
		SalaryRange struct {
			Low  float64 `json:"low"`
			High float64 `json:"high"`
		} `json:"salary_range"`
		Matches     []map[string]any `json:"matches"`
		SkillDemand map[string]int   `json:"skill_demand"`
	}
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("data unmarshal error: %v", err)
	}
	if data.SalaryRange.Low != 10.2 || data.SalaryRange.High != 13.8 {
		t.Fatalf("unexpected salary range: %+v", data.SalaryRange)
	}
	if len(data.Matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(data.Matches))
	}
	if data.SkillDemand["python"] != 100 {
		t.Fatalf("unexpected skill demand: %v", data.SkillDemand)
	}
}

func TestAnalyzeEndpoint_ValidationErrors(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid experience", usecase.ErrInvalidExperience, fiber.StatusUnprocessableEntity},
		{"unknown role", usecase.ErrUnknownRole, fiber.StatusUnprocessableEntity},
		{"internal", usecase.ErrInternal, fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(t, &stubAnalysis{err: tc.err}, &stubRoles{})

			body, _ := json.Marshal(map[string]any{"skills": "python"})
			req := httptest.NewRequest("POST", "/api/v1/analysis", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request error: %v", err)
			}
			defer resp.Body.Close()

			var sr semanticResponse
			if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
				t.Fatalf("decode error: %v", err)
			}
			if sr.Status != tc.wantStatus {
				t.Fatalf("expected status %d, got %d (message=%s)", tc.wantStatus, sr.Status, sr.Message)
			}
		})
	}
}

func TestAnalyzeEndpoint_MalformedBody(t *testing.T) {
	app := newTestApp(t, &stubAnalysis{}, &stubRoles{})

	req := httptest.NewRequest("POST", "/api/v1/analysis", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if sr.Status != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", sr.Status)
	}
}

func TestRolesEndpoint(t *testing.T) {
	roles := &stubRoles{roles: []profile.RoleProfile{
		{Role: "Backend Developer", AvgSalary: 12.5, DemandLevel: profile.DemandHigh, CoreSkills: []string{"python", "sql"}},
		{Role: "Machine Learning Engineer", AvgSalary: 20, DemandLevel: profile.DemandMedium, CoreSkills: []string{"python"}},
	}}
	app := newTestApp(t, &stubAnalysis{}, roles)

	req := httptest.NewRequest("GET", "/api/v1/roles", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if sr.Status != 200 {
		t.Fatalf("expected 200, got %d", sr.Status)
	}

	var data struct {
		Roles []map[string]any `json:"roles"`
	}
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("data unmarshal error: %v", err)
	}
	if len(data.Roles) != 2 {
		t.Fatalf("expected 2 roles, got %d", len(data.Roles))
	}
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t, &stubAnalysis{}, &stubRoles{})

	req := httptest.NewRequest("GET", "/health", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if sr.Status != 200 {
		t.Fatalf("expected 200, got %d", sr.Status)
	}
}
