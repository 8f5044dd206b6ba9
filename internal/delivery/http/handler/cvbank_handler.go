package handler

import (
	"errors"

	"empleos-backend/internal/delivery/http/dto"
	"empleos-backend/internal/delivery/http/middleware"
	"empleos-backend/internal/pkg/response"
	"empleos-backend/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// CVBankHandler exposes the spontaneous-CV drop box (public upload) and the
// merged bank view for admins.
type CVBankHandler struct {
	uc usecase.CVBankUsecase
}

type cvDeleteRequest struct {
	Key string `json:"clave"`
}

func NewCVBankHandler(uc usecase.CVBankUsecase) *CVBankHandler {
	return &CVBankHandler{uc: uc}
}

func (h *CVBankHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Upload)
}

func (h *CVBankHandler) RegisterAdminRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Delete("/", h.Delete)
}

func (h *CVBankHandler) Upload(c fiber.Ctx) error {
	fileHeader, err := c.FormFile("cv")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request",
			map[string]string{"cv": "a file is required"}, err)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	defer file.Close()

	key, err := h.uc.Upload(c.Context(), usecase.CVUploadInput{
		FileName: fileHeader.Filename,
		FileSize: fileHeader.Size,
		File:     file,
	})
	if err != nil {
		return mapCVBankUsecaseError(err)
	}

	data := map[string]any{"clave": key}
	return response.Success(c, fiber.StatusCreated, "created", data)
}

func (h *CVBankHandler) List(c fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return mapCVBankUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewResumeListResponse(items))
}

func (h *CVBankHandler) Delete(c fiber.Ctx) error {
	var req cvDeleteRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.uc.Delete(c.Context(), req.Key); err != nil {
		return mapCVBankUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapCVBankUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	var vErr *usecase.ValidationError
	switch {
	case errors.As(err, &vErr):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", vErr.Fields, err)
	case errors.Is(err, usecase.ErrDuplicateFile):
		return middleware.NewAppError(fiber.StatusConflict, "A file with that name already exists", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	case errors.Is(err, usecase.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
