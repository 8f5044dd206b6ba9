package usecase

import (
	"context"
	"errors"
	"testing"

	"empleos-backend/internal/domain/application"
	"empleos-backend/internal/domain/posting"

	"github.com/google/uuid"
)

func validEditorInput() EditorInput {
	return EditorInput{
		Title:       "Analista Contable",
		Company:     "Estudio Sur",
		Industry:    "Contabilidad",
		Education:   "Terciario completo",
		Skills:      "Tango, Excel avanzado",
		Schedule:    "Lunes a viernes 9 a 18",
		Location:    "Rosario, Santa Fe",
		Mode:        "presencial",
		SalaryFrom:  "800000",
		SalaryTo:    "1000000",
		Currency:    "ARS",
		Description: "Se busca analista con experiencia.",
		Active:      true,
	}
}

func TestEditor_Create_DerivesSalaryString(t *testing.T) {
	repo := &mockPostingRepo{byID: map[uuid.UUID]posting.Posting{}}
	uc := NewEditorUsecase(repo, nil, nil)

	p, err := uc.Create(context.Background(), validEditorInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Salary != "$800.000 - $1.000.000 ARS" {
		t.Fatalf("unexpected salary string %q", p.Salary)
	}
	if p.ID == uuid.Nil {
		t.Fatalf("expected assigned id")
	}
	if p.PublishedAt.IsZero() {
		t.Fatalf("expected publication timestamp")
	}
}

func TestEditor_Create_NoSalaryMeansEmptyString(t *testing.T) {
	repo := &mockPostingRepo{byID: map[uuid.UUID]posting.Posting{}}
	uc := NewEditorUsecase(repo, nil, nil)

	in := validEditorInput()
	in.SalaryFrom = ""
	in.SalaryTo = ""

	p, err := uc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Salary != "" {
		t.Fatalf("expected empty salary string, got %q", p.Salary)
	}
}

func TestEditor_Create_MissingFields(t *testing.T) {
	uc := NewEditorUsecase(&mockPostingRepo{}, nil, nil)

	in := validEditorInput()
	in.Title = ""
	in.Company = ""

	_, err := uc.Create(context.Background(), in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["title"]; !ok {
		t.Fatalf("expected title error, got %v", verr.Fields)
	}
	if _, ok := verr.Fields["company"]; !ok {
		t.Fatalf("expected company error, got %v", verr.Fields)
	}
}

func TestEditor_Create_RejectsUnknownModeAndCurrency(t *testing.T) {
	uc := NewEditorUsecase(&mockPostingRepo{}, nil, nil)

	in := validEditorInput()
	in.Mode = "freelance"
	in.Currency = "EUR"

	_, err := uc.Create(context.Background(), in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["mode"]; !ok {
		t.Fatalf("expected mode error, got %v", verr.Fields)
	}
	if _, ok := verr.Fields["currency"]; !ok {
		t.Fatalf("expected currency error, got %v", verr.Fields)
	}
}

func TestEditor_Update_UnknownID(t *testing.T) {
	uc := NewEditorUsecase(&mockPostingRepo{byID: map[uuid.UUID]posting.Posting{}}, nil, nil)

	_, err := uc.Update(context.Background(), uuid.New(), validEditorInput())
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEditor_Delete_DoesNotTouchApplications(t *testing.T) {
	postingID := uuid.New()
	repo := &mockPostingRepo{byID: map[uuid.UUID]posting.Posting{
		postingID: {ID: postingID, Title: "Analista Contable", Active: true},
	}}
	apps := &mockApplicationRepo{created: []application.Application{
		{ID: uuid.New(), PostingID: postingID, PostingTitle: "Analista Contable", PostingCompany: "Estudio Sur"},
	}}
	uc := NewEditorUsecase(repo, nil, nil)

	if err := uc.Delete(context.Background(), postingID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("posting should be gone")
	}

	// Orphaned references stay readable with their snapshots intact.
	remaining, err := apps.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(remaining) != 1 {
		t.Fatalf("applications must survive posting deletion")
	}
	if remaining[0].PostingID != postingID || remaining[0].PostingTitle != "Analista Contable" {
		t.Fatalf("orphaned reference altered: %+v", remaining[0])
	}
}

func TestEditor_Delete_UnknownID(t *testing.T) {
	uc := NewEditorUsecase(&mockPostingRepo{byID: map[uuid.UUID]posting.Posting{}}, nil, nil)

	if err := uc.Delete(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestEditor_Writes_InvalidateCatalogCache(t *testing.T) {
	repo := &mockPostingRepo{byID: map[uuid.UUID]posting.Posting{}}
	cache := &mockListingCache{store: map[string][]byte{}}
	uc := NewEditorUsecase(repo, cache, nil)

	created, err := uc.Create(context.Background(), validEditorInput())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := uc.Update(context.Background(), created.ID, validEditorInput()); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if err := uc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if len(cache.deletes) != 3 {
		t.Fatalf("expected 3 cache invalidations, got %d", len(cache.deletes))
	}
	for _, key := range cache.deletes {
		if key != catalogCacheKey {
			t.Fatalf("invalidated key %q, want %q", key, catalogCacheKey)
		}
	}
}
