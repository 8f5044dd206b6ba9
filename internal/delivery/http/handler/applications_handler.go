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

// ApplicationsHandler covers both sides of the intake flow: the public
// multipart submit and the authenticated back-office review endpoints.
type ApplicationsHandler struct {
	intake usecase.IntakeUsecase
	admin  usecase.ApplicationsUsecase
}

type statusRequest struct {
	Status string `json:"estado"`
}

func NewApplicationsHandler(intake usecase.IntakeUsecase, admin usecase.ApplicationsUsecase) *ApplicationsHandler {
	return &ApplicationsHandler{intake: intake, admin: admin}
}

func (h *ApplicationsHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/", h.Submit)
}

func (h *ApplicationsHandler) RegisterAdminRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Patch("/:id/estado", h.UpdateStatus)
	r.Delete("/:id", h.Delete)
}

func (h *ApplicationsHandler) Submit(c fiber.Ctx) error {
	postingID, err := uuid.Parse(c.FormValue("trabajo_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request",
			map[string]string{"trabajo_id": "is not a valid id"}, err)
	}

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

	res, err := h.intake.Submit(c.Context(), usecase.IntakeInput{
		FirstName: c.FormValue("nombre"),
		LastName:  c.FormValue("apellido"),
		Email:     c.FormValue("email"),
		Phone:     c.FormValue("telefono"),
		Message:   c.FormValue("mensaje"),
		PostingID: postingID,
		FileName:  fileHeader.Filename,
		FileSize:  fileHeader.Size,
		File:      file,
	})
	if err != nil {
		return mapApplicationUsecaseError(err)
	}

	data := map[string]any{"id": res.ApplicationID}
	return response.Success(c, fiber.StatusCreated, "created", data)
}

func (h *ApplicationsHandler) List(c fiber.Ctx) error {
	items, err := h.admin.List(c.Context())
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationListResponse(items))
}

func (h *ApplicationsHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	}

	it, err := h.admin.Get(c.Context(), id)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewApplicationResponse(it))
}

func (h *ApplicationsHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	}

	var req statusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	if err := h.admin.UpdateStatus(c.Context(), id, req.Status); err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ApplicationsHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Not found", nil, err)
	}

	if err := h.admin.Delete(c.Context(), id); err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func mapApplicationUsecaseError(err error) error {
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
	case errors.Is(err, usecase.ErrUploadFailed):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	case errors.Is(err, usecase.ErrInternal):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
