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

// AdminPostingsHandler is the back-office CRUD surface. Unlike the public
// catalog it propagates repository failures so the admin sees them.
type AdminPostingsHandler struct {
	uc usecase.EditorUsecase
}

type postingRequest struct {
	Title       string `json:"titulo"`
	Company     string `json:"empresa"`
	Industry    string `json:"rubro"`
	Education   string `json:"educacion"`
	Skills      string `json:"habilidades"`
	Schedule    string `json:"horario"`
	Location    string `json:"ubicacion"`
	Mode        string `json:"modalidad"`
	SalaryFrom  string `json:"salario_desde"`
	SalaryTo    string `json:"salario_hasta"`
	Currency    string `json:"moneda"`
	Description string `json:"descripcion"`
	Active      bool   `json:"activo"`
}

func NewAdminPostingsHandler(uc usecase.EditorUsecase) *AdminPostingsHandler {
	return &AdminPostingsHandler{uc: uc}
}

func (h *AdminPostingsHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", h.Delete)
}

func (h *AdminPostingsHandler) List(c fiber.Ctx) error {
	items, err := h.uc.ListAll(c.Context())
	if err != nil {
		return mapEditorUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPostingListResponse(items))
}

func (h *AdminPostingsHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	}

	p, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapEditorUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPostingResponse(p))
}

func (h *AdminPostingsHandler) Create(c fiber.Ctx) error {
	var req postingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.Create(c.Context(), editorInputFromRequest(req))
	if err != nil {
		return mapEditorUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "created", dto.NewPostingResponse(p))
}

func (h *AdminPostingsHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	}

	var req postingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	p, err := h.uc.Update(c.Context(), id, editorInputFromRequest(req))
	if err != nil {
		return mapEditorUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewPostingResponse(p))
}

func (h *AdminPostingsHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapEditorUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func editorInputFromRequest(req postingRequest) usecase.EditorInput {
	return usecase.EditorInput{
		Title:       req.Title,
		Company:     req.Company,
		Industry:    req.Industry,
		Education:   req.Education,
		Skills:      req.Skills,
		Schedule:    req.Schedule,
		Location:    req.Location,
		Mode:        req.Mode,
		SalaryFrom:  req.SalaryFrom,
		SalaryTo:    req.SalaryTo,
		Currency:    req.Currency,
		Description: req.Description,
		Active:      req.Active,
	}
}

func mapEditorUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var vErr *usecase.ValidationError
	switch {
	case errors.As(err, &vErr):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", vErr.Fields, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	case errors.Is(err, usecase.ErrInternal):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
