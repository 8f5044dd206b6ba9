package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"empleos-backend/internal/config"
	"empleos-backend/internal/database/migration"
	"empleos-backend/internal/database/seeder"
	"empleos-backend/internal/delivery/http/middleware"
	"empleos-backend/internal/delivery/http/routes"
	v1 "empleos-backend/internal/delivery/http/routes/v1"
	"empleos-backend/internal/usecase"
	"empleos-backend/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the full application: infrastructure, schema, seed data,
// routes. The returned cleanup closes what Bootstrap opened.
func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.Default()

	if err := cfg.JWT.Validate(); err != nil {
		return nil, nil, fmt.Errorf("config: %w", err)
	}

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("container: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := (migration.Runner{}).Run(ctx, c.DB); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("migrations: %w", err)
	}
	if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, c.DB); err != nil {
		_ = c.Close()
		return nil, nil, fmt.Errorf("seeders: %w", err)
	}

	go c.Hub.Run()
	ws.SetDefaultHub(c.Hub)

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
		// CVs go up to MaxResumeSize; leave headroom for the rest of the
		// multipart form.
		BodyLimit: usecase.MaxResumeSize + 1<<20,
	})

	registerGlobalMiddleware(f, logger)

	registry := routes.NewRegistry(v1.Deps{
		Config: cfg,
		DB:     c.DB,
		Cache:  c.Cache,
		Store:  c.Store,
		Mail:   c.Mail,
		WS:     ws.NewHandler(c.Hub, logger),
		Logger: logger,
	})
	registry.Register(f)

	app := &App{Fiber: f, Container: c}
	return app, c.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(cors.New(cors.Config{
		AllowMethods: []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodPatch, fiber.MethodDelete},
	}))
	app.Use(middleware.NewErrorMiddleware().Middleware())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
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
