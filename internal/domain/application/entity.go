package application

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("application not found")

type Status string

const (
	StatusPending   Status = "pendiente"
	StatusInReview  Status = "en revision"
	StatusInterview Status = "entrevista"
	StatusRejected  Status = "rechazado"
	StatusAccepted  Status = "aceptado"
)

func ParseStatus(s string) (Status, bool) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	switch st {
	case StatusPending, StatusInReview, StatusInterview, StatusRejected, StatusAccepted:
		return st, true
	default:
		return "", false
	}
}

// Application is an applicant's submission. PostingTitle and PostingCompany
// are snapshots taken at write time so the row stays displayable after the
// posting is edited or deleted; they are never re-derived from trabajos.
type Application struct {
	ID             uuid.UUID
	FirstName      string
	LastName       string
	Email          string
	Phone          string
	Message        string
	PostingID      uuid.UUID
	PostingTitle   string
	PostingCompany string
	ResumeKey      string // object key in the resume bucket
	Status         Status
	SubmittedAt    time.Time
}
