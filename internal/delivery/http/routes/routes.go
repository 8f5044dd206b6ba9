package routes

import (
	"empleos-backend/internal/delivery/http/handler"
	v1 "empleos-backend/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	deps v1.Deps
}

func NewRegistry(deps v1.Deps) *Registry {
	return &Registry{deps: deps}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerSEO(app)
	r.registerAPI(app)
}

func (r *Registry) registerHealth(app *fiber.App) {
	handler.NewHealthHandler(r.deps.DB, r.deps.Cache).RegisterRoutes(app)
}

func (r *Registry) registerSEO(app *fiber.App) {
	handler.NewSEOHandler(r.deps.Catalog(), r.deps.Config.Site.BaseURL).RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.deps)
}
