package handler

import (
	"context"

	"empleos-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports liveness plus the state of the two backends the site
// can degrade around. A down cache is reported but never fails the check.
type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	data := map[string]string{
		"status":   "up",
		"database": pingState(c.Context(), h.db),
		"cache":    pingState(c.Context(), h.cache),
	}

	status := fiber.StatusOK
	if data["database"] == "down" {
		status = fiber.StatusServiceUnavailable
		data["status"] = "degraded"
	}
	return response.Success(c, status, data["status"], data)
}

func pingState(ctx context.Context, p Pinger) string {
	if p == nil {
		return "unknown"
	}
	if err := p.Ping(ctx); err != nil {
		return "down"
	}
	return "up"
}
