package dto

import (
	"time"

	"empleos-backend/internal/domain/resume"
)

type ResumeEntryResponse struct {
	ObjectKey  string `json:"clave"`
	FileName   string `json:"archivo"`
	Size       int64  `json:"tamano"`
	Source     string `json:"origen"`
	Applicant  string `json:"postulante,omitempty"`
	URL        string `json:"url"`
	UploadedAt string `json:"fecha_subida"`
}

func NewResumeEntryResponse(e resume.Entry) ResumeEntryResponse {
	uploaded := ""
	if !e.UploadedAt.IsZero() {
		uploaded = e.UploadedAt.UTC().Format(time.RFC3339)
	}

	return ResumeEntryResponse{
		ObjectKey:  e.ObjectKey,
		FileName:   e.FileName,
		Size:       e.Size,
		Source:     string(e.Source),
		Applicant:  e.Applicant,
		URL:        e.URL,
		UploadedAt: uploaded,
	}
}

func NewResumeListResponse(items []resume.Entry) []ResumeEntryResponse {
	out := make([]ResumeEntryResponse, 0, len(items))
	for _, e := range items {
		out = append(out, NewResumeEntryResponse(e))
	}
	return out
}
