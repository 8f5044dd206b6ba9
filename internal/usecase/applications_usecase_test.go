package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"empleos-backend/internal/domain/application"

	"github.com/google/uuid"
)

type mockLinker struct {
	err error
}

func (m mockLinker) PresignedGetURL(_ context.Context, key string, expiry time.Duration) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if expiry != AdminResumeURLTTL {
		return "", errors.New("unexpected expiry")
	}
	return "https://cdn.example/" + key + "?sig=abc", nil
}

func TestApplications_List_AttachesSignedURLs(t *testing.T) {
	apps := &mockApplicationRepo{created: []application.Application{
		{ID: uuid.New(), ResumeKey: "1700000000-cv.pdf"},
	}}
	uc := NewApplicationsUsecase(apps, mockLinker{}, nil)

	items, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if !strings.Contains(items[0].ResumeURL, "1700000000-cv.pdf") {
		t.Fatalf("expected signed URL, got %q", items[0].ResumeURL)
	}
}

func TestApplications_List_PresignFailureLeavesEmptyURL(t *testing.T) {
	apps := &mockApplicationRepo{created: []application.Application{
		{ID: uuid.New(), ResumeKey: "1700000000-cv.pdf"},
	}}
	uc := NewApplicationsUsecase(apps, mockLinker{err: errors.New("storage down")}, nil)

	items, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if items[0].ResumeURL != "" {
		t.Fatalf("expected empty URL on presign failure, got %q", items[0].ResumeURL)
	}
}

func TestApplications_UpdateStatus_RejectsUnknown(t *testing.T) {
	uc := NewApplicationsUsecase(&mockApplicationRepo{}, nil, nil)

	if err := uc.UpdateStatus(context.Background(), uuid.New(), "archivado"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestApplications_Delete_UnknownID(t *testing.T) {
	uc := NewApplicationsUsecase(&mockApplicationRepo{}, nil, nil)

	if err := uc.Delete(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
