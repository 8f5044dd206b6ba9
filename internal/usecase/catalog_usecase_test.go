package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"empleos-backend/internal/domain/posting"

	"github.com/google/uuid"
)

type mockListingCache struct {
	store   map[string][]byte
	sets    int
	deletes []string
}

func (m *mockListingCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	return false, nil
}
func (m *mockListingCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	m.sets++
	return nil
}
func (m *mockListingCache) Delete(_ context.Context, key string) error {
	m.deletes = append(m.deletes, key)
	delete(m.store, key)
	return nil
}

func TestCatalog_ListActive_BackendErrorReturnsEmpty(t *testing.T) {
	uc := NewCatalogUsecase(&mockPostingRepo{err: errors.New("connection refused")}, nil, nil)

	items := uc.ListActive(context.Background())
	if items == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestCatalog_ListActive_ReturnsOnlyActive(t *testing.T) {
	activeID := uuid.New()
	repo := &mockPostingRepo{byID: map[uuid.UUID]posting.Posting{
		activeID:   {ID: activeID, Title: "Desarrollador Go", Active: true},
		uuid.New(): {ID: uuid.New(), Title: "Puesto cerrado", Active: false},
	}}
	cache := &mockListingCache{}
	uc := NewCatalogUsecase(repo, cache, nil)

	items := uc.ListActive(context.Background())
	if len(items) != 1 {
		t.Fatalf("expected 1 active posting, got %d", len(items))
	}
	if items[0].ID != activeID {
		t.Fatalf("unexpected posting")
	}
	if cache.sets != 1 {
		t.Fatalf("expected listing to be cached")
	}
}

func TestCatalog_GetActiveByID(t *testing.T) {
	id := uuid.New()
	inactiveID := uuid.New()
	repo := &mockPostingRepo{byID: map[uuid.UUID]posting.Posting{
		id:         {ID: id, Title: "Desarrollador Go", Active: true},
		inactiveID: {ID: inactiveID, Title: "Oculto", Active: false},
	}}
	uc := NewCatalogUsecase(repo, nil, nil)

	if _, err := uc.GetActiveByID(context.Background(), id); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.GetActiveByID(context.Background(), inactiveID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("inactive posting must read as not found, got %v", err)
	}
	if _, err := uc.GetActiveByID(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
