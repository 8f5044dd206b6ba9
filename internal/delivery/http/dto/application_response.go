package dto

import (
	"time"

	"github.com/google/uuid"

	"empleos-backend/internal/usecase"
)

type ApplicationResponse struct {
	ID             uuid.UUID `json:"id"`
	FirstName      string    `json:"nombre"`
	LastName       string    `json:"apellido"`
	Email          string    `json:"email"`
	Phone          string    `json:"telefono"`
	Message        string    `json:"mensaje"`
	PostingID      uuid.UUID `json:"trabajo_id"`
	PostingTitle   string    `json:"trabajo_titulo"`
	PostingCompany string    `json:"trabajo_empresa"`
	Status         string    `json:"estado"`
	ResumeURL      string    `json:"cv_url,omitempty"`
	SubmittedAt    string    `json:"fecha_postulacion"`
}

func NewApplicationResponse(it usecase.ApplicationItem) ApplicationResponse {
	submitted := ""
	if !it.Application.SubmittedAt.IsZero() {
		submitted = it.Application.SubmittedAt.UTC().Format(time.RFC3339)
	}

	return ApplicationResponse{
		ID:             it.Application.ID,
		FirstName:      it.Application.FirstName,
		LastName:       it.Application.LastName,
		Email:          it.Application.Email,
		Phone:          it.Application.Phone,
		Message:        it.Application.Message,
		PostingID:      it.Application.PostingID,
		PostingTitle:   it.Application.PostingTitle,
		PostingCompany: it.Application.PostingCompany,
		Status:         string(it.Application.Status),
		ResumeURL:      it.ResumeURL,
		SubmittedAt:    submitted,
	}
}

func NewApplicationListResponse(items []usecase.ApplicationItem) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewApplicationResponse(it))
	}
	return out
}
