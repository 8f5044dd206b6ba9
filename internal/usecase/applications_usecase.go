package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"empleos-backend/internal/domain/application"
	"empleos-backend/internal/repository"

	"github.com/google/uuid"
)

// AdminResumeURLTTL is the signed-URL lifetime in the back-office views.
const AdminResumeURLTTL = time.Hour

// ResumeLinker resolves a stored object key to a downloadable URL.
type ResumeLinker interface {
	PresignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// ApplicationItem is an application plus a short-lived download link for its
// CV.
type ApplicationItem struct {
	application.Application
	ResumeURL string
}

type ApplicationsUsecase interface {
	List(ctx context.Context) ([]ApplicationItem, error)
	Get(ctx context.Context, id uuid.UUID) (ApplicationItem, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type Applications struct {
	applications repository.ApplicationRepository
	linker       ResumeLinker
	logger       *log.Logger
}

func NewApplicationsUsecase(applications repository.ApplicationRepository, linker ResumeLinker, logger *log.Logger) *Applications {
	return &Applications{applications: applications, linker: linker, logger: logger}
}

func (u *Applications) List(ctx context.Context) ([]ApplicationItem, error) {
	items, err := u.applications.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]ApplicationItem, 0, len(items))
	for _, a := range items {
		out = append(out, ApplicationItem{Application: a, ResumeURL: u.resumeURL(ctx, a.ResumeKey)})
	}
	return out, nil
}

func (u *Applications) Get(ctx context.Context, id uuid.UUID) (ApplicationItem, error) {
	a, err := u.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return ApplicationItem{}, ErrNotFound
		}
		return ApplicationItem{}, ErrInternal
	}
	return ApplicationItem{Application: a, ResumeURL: u.resumeURL(ctx, a.ResumeKey)}, nil
}

func (u *Applications) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	st, ok := application.ParseStatus(status)
	if !ok {
		return newValidationError(map[string]string{"status": "unknown status"})
	}

	updated, err := u.applications.UpdateStatus(ctx, id, st)
	if err != nil {
		return ErrInternal
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

// Delete removes the record only; the stored CV remains reachable through
// the CV bank until deleted there.
func (u *Applications) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := u.applications.Delete(ctx, id)
	if err != nil {
		return ErrInternal
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

func (u *Applications) resumeURL(ctx context.Context, key string) string {
	if u.linker == nil || key == "" {
		return ""
	}
	url, err := u.linker.PresignedGetURL(ctx, key, AdminResumeURLTTL)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Applications] presign failed key=%s err=%v", key, err)
		}
		return ""
	}
	return url
}
