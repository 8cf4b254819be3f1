package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"career-intel/internal/config"
	"career-intel/internal/delivery/http/handler"
	"career-intel/internal/delivery/http/middleware"
	"career-intel/internal/delivery/http/routes"
	"career-intel/internal/logger"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap assembles the serving process: container, middleware chain
// and routes. The returned cleanup closes long-lived clients.
func Bootstrap(ctx context.Context, cfg config.Config) (*App, func() error, error) {
	zl, err := newLogger(cfg)
	if err != nil {
		return nil, nil, err
	}

	c, err := NewContainer(ctx, cfg, zl)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	accessLog := middleware.NewAccessLogMiddleware(zl)
	errMw := middleware.NewErrorMiddleware(zl)
	f.Use(accessLog.Middleware())
	f.Use(errMw.Middleware())

	registry := routes.NewRegistry(
		handler.NewHealthHandler(func() bool { return c.Snapshot != nil }),
		handler.NewAnalysisHandler(c.Analysis),
		handler.NewRolesHandler(c.Roles),
	)
	registry.Register(f)

	app := &App{Fiber: f, Container: c}
	cleanup := func() error {
		err := c.Close()
		_ = zl.Sync()
		return err
	}
	return app, cleanup, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	return logger.New(cfg.App.LogJSON, cfg.App.Debug)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
