package dto

import (
	"github.com/google/uuid"

	"empleos-backend/internal/domain/admin"
)

type AdminResponse struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

func NewAdminResponse(a admin.Admin) AdminResponse {
	return AdminResponse{ID: a.ID, Email: a.Email}
}
