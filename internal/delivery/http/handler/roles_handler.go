package handler

import (
	"github.com/gofiber/fiber/v3"

	"career-intel/internal/delivery/http/dto"
	"career-intel/internal/delivery/http/middleware"
	"career-intel/internal/pkg/response"
	"career-intel/internal/usecase"
)

type RolesHandler struct {
	uc usecase.RolesUsecase
}

func NewRolesHandler(uc usecase.RolesUsecase) *RolesHandler {
	return &RolesHandler{uc: uc}
}

func (h *RolesHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/roles", h.ListRoles)
}

func (h *RolesHandler) ListRoles(c fiber.Ctx) error {
	roles, err := h.uc.ListRoles(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := dto.RoleListResponse{Roles: make([]dto.RoleProfileResponse, 0, len(roles))}
	for _, r := range roles {
		out.Roles = append(out.Roles, dto.RoleProfileResponse{
			Role:        r.Role,
			AvgSalary:   r.AvgSalary,
			DemandLevel: r.DemandLevel,
			CoreSkills:  r.CoreSkills,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
