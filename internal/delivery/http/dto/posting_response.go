package dto

import (
	"time"

	"github.com/google/uuid"

	"empleos-backend/internal/domain/posting"
)

type PostingResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"titulo"`
	Company     string    `json:"empresa"`
	Industry    string    `json:"rubro"`
	Education   string    `json:"educacion"`
	Skills      string    `json:"habilidades"`
	Schedule    string    `json:"horario"`
	Location    string    `json:"ubicacion"`
	Mode        string    `json:"modalidad"`
	Salary      string    `json:"salario"`
	Description string    `json:"descripcion"`
	Active      bool      `json:"activo"`
	PublishedAt string    `json:"fecha_publicacion"`
}

func NewPostingResponse(p posting.Posting) PostingResponse {
	published := ""
	if !p.PublishedAt.IsZero() {
		published = p.PublishedAt.UTC().Format(time.RFC3339)
	}

	return PostingResponse{
		ID:          p.ID,
		Title:       p.Title,
		Company:     p.Company,
		Industry:    p.Industry,
		Education:   p.Education,
		Skills:      p.Skills,
		Schedule:    p.Schedule,
		Location:    p.Location,
		Mode:        string(p.Mode),
		Salary:      p.Salary,
		Description: p.Description,
		Active:      p.Active,
		PublishedAt: published,
	}
}

func NewPostingListResponse(items []posting.Posting) []PostingResponse {
	out := make([]PostingResponse, 0, len(items))
	for _, p := range items {
		out = append(out, NewPostingResponse(p))
	}
	return out
}
