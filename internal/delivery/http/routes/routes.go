package routes

import (
	"github.com/gofiber/fiber/v3"

	"career-intel/internal/delivery/http/handler"
)

type Registry struct {
	health   *handler.HealthHandler
	analysis *handler.AnalysisHandler
	roles    *handler.RolesHandler
}

func NewRegistry(health *handler.HealthHandler, analysis *handler.AnalysisHandler, roles *handler.RolesHandler) *Registry {
	return &Registry{health: health, analysis: analysis, roles: roles}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	v1 := app.Group("/api").Group("/v1")
	r.analysis.RegisterRoutes(v1)
	r.roles.RegisterRoutes(v1)
}
