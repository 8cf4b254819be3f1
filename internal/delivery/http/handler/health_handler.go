package handler

import (
	"github.com/gofiber/fiber/v3"

	"career-intel/internal/pkg/response"
)

// HealthHandler reports liveness plus whether the model artifacts loaded.
// A server running without a snapshot is reported as degraded so a probe
// can route around it.
type HealthHandler struct {
	snapshotLoaded func() bool
}

func NewHealthHandler(snapshotLoaded func() bool) *HealthHandler {
	return &HealthHandler{snapshotLoaded: snapshotLoaded}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	loaded := h.snapshotLoaded != nil && h.snapshotLoaded()
	body := fiber.Map{"artifacts_loaded": loaded}
	if !loaded {
		return response.Error(c, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, body)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, body)
}
