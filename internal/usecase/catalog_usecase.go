package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"empleos-backend/internal/domain/posting"
	"empleos-backend/internal/repository"

	"github.com/google/uuid"
)

const catalogCacheKey = "catalog:active"

// ListingCache is the subset of the redis cache the catalog needs.
type ListingCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type CatalogUsecase interface {
	// ListActive never fails: on a backend error it logs and returns an empty
	// slice, so callers cannot distinguish "no jobs" from "fetch failed".
	ListActive(ctx context.Context) []posting.Posting
	GetActiveByID(ctx context.Context, id uuid.UUID) (posting.Posting, error)
}

type Catalog struct {
	postings repository.PostingRepository
	cache    ListingCache
	logger   *log.Logger
}

func NewCatalogUsecase(postings repository.PostingRepository, cache ListingCache, logger *log.Logger) *Catalog {
	return &Catalog{postings: postings, cache: cache, logger: logger}
}

func (u *Catalog) ListActive(ctx context.Context) []posting.Posting {
	if u.cache != nil {
		var cached []posting.Posting
		hit, err := u.cache.GetJSON(ctx, catalogCacheKey, &cached)
		if err == nil && hit {
			return cached
		}
	}

	items, err := u.postings.ListActive(ctx)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[Catalog] list active postings failed: %v", err)
		}
		return []posting.Posting{}
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, catalogCacheKey, items, 0)
	}
	return items
}

func (u *Catalog) GetActiveByID(ctx context.Context, id uuid.UUID) (posting.Posting, error) {
	p, err := u.postings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, posting.ErrNotFound) {
			return posting.Posting{}, ErrNotFound
		}
		return posting.Posting{}, ErrInternal
	}
	if !p.Active {
		return posting.Posting{}, ErrNotFound
	}
	return p, nil
}
