package handler

import (
	"empleos-backend/internal/delivery/http/middleware"
	"empleos-backend/internal/sitemap"
	"empleos-backend/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// SEOHandler serves robots.txt and a sitemap built from the live catalog.
// The catalog usecase degrades to an empty list on backend failure, so the
// sitemap always contains at least the static routes.
type SEOHandler struct {
	catalog usecase.CatalogUsecase
	baseURL string
}

func NewSEOHandler(catalog usecase.CatalogUsecase, baseURL string) *SEOHandler {
	return &SEOHandler{catalog: catalog, baseURL: baseURL}
}

func (h *SEOHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/robots.txt", h.Robots)
	r.Get("/sitemap.xml", h.Sitemap)
}

func (h *SEOHandler) Robots(c fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	return c.Send(sitemap.Robots(h.baseURL))
}

func (h *SEOHandler) Sitemap(c fiber.Ctx) error {
	postings := h.catalog.ListActive(c.Context())

	out, err := sitemap.Generate(h.baseURL, postings)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}

	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	return c.Send(out)
}
