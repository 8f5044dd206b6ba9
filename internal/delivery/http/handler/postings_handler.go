package handler

import (
	"errors"

	"empleos-backend/internal/delivery/http/dto"
	"empleos-backend/internal/delivery/http/middleware"
	"empleos-backend/internal/pkg/response"
	"empleos-backend/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// PostingsHandler serves the public catalog. It never surfaces backend
// failures to visitors: the list endpoint always answers 200.
type PostingsHandler struct {
	uc usecase.CatalogUsecase
}

func NewPostingsHandler(uc usecase.CatalogUsecase) *PostingsHandler {
	return &PostingsHandler{uc: uc}
}

func (h *PostingsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.Get)
}

func (h *PostingsHandler) List(c fiber.Ctx) error {
	items := h.uc.ListActive(c.Context())
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPostingListResponse(items))
}

func (h *PostingsHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	}

	p, err := h.uc.GetActiveByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPostingResponse(p))
}
