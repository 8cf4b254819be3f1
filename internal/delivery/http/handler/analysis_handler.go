package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"career-intel/internal/delivery/http/dto"
	"career-intel/internal/delivery/http/middleware"
	"career-intel/internal/pkg/response"
	"career-intel/internal/usecase"
)

type AnalysisHandler struct {
	uc usecase.AnalysisUsecase
}

func NewAnalysisHandler(uc usecase.AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

func (h *AnalysisHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Post("/analysis", h.Analyze)
}

func (h *AnalysisHandler) Analyze(c fiber.Ctx) error {
	var req dto.AnalysisRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Malformed request body", nil, err)
	}

	res, err := h.uc.Analyze(c.Context(), usecase.AnalyzeParams{
		SkillsText:      req.Skills,
		ExperienceYears: req.ExperienceYears,
		TargetRole:      req.TargetRole,
	})
	if err != nil {
		return mapAnalysisUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toAnalysisResponse(res))
}

func toAnalysisResponse(res usecase.AnalysisResult) dto.AnalysisResponse {
	out := dto.AnalysisResponse{
		SalaryRange: dto.SalaryRangeResponse{Low: res.SalaryLow, High: res.SalaryHigh},
		Matches:     make([]dto.MatchResponse, 0, len(res.Matches)),
		GapSkills:   res.GapSkills,
		Roadmap:     make([]dto.RoadmapBucketResponse, 0, len(res.Roadmap.Buckets)),
		SkillDemand: res.SkillDemand,
	}
	for _, m := range res.Matches {
		out.Matches = append(out.Matches, dto.MatchResponse{
			Role:        m.Role,
			MatchPct:    m.MatchPct,
			AvgSalary:   m.AvgSalary,
			DemandLevel: m.DemandLevel,
		})
	}
	if res.Target != nil {
		out.Target = &dto.TargetRoleResponse{
			Role:        res.Target.Role,
			MatchPct:    res.Target.MatchPct,
			AvgSalary:   res.Target.AvgSalary,
			DemandLevel: res.Target.DemandLevel,
		}
	}
	for _, b := range res.Roadmap.Buckets {
		out.Roadmap = append(out.Roadmap, dto.RoadmapBucketResponse{Label: b.Label, Skills: b.Skills})
	}
	return out
}

func mapAnalysisUsecaseError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrInvalidExperience):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Experience years must be between 0 and 15", nil, err)
	case errors.Is(err, usecase.ErrUnknownRole):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Unknown target role", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
