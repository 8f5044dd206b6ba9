package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"empleos-backend/internal/domain/posting"
	"empleos-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

// EditorInput is the admin-authored form. Salary bounds are free-text numeric
// strings; the stored display string is always derived from them, never
// accepted as-is.
type EditorInput struct {
	Title       string `validate:"required"`
	Company     string `validate:"required"`
	Industry    string `validate:"required"`
	Education   string `validate:"required"`
	Skills      string `validate:"required"`
	Schedule    string `validate:"required"`
	Location    string `validate:"required"`
	Mode        string `validate:"required"`
	SalaryFrom  string
	SalaryTo    string
	Currency    string
	Description string `validate:"required"`
	Active      bool
}

type EditorUsecase interface {
	Create(ctx context.Context, in EditorInput) (posting.Posting, error)
	Update(ctx context.Context, id uuid.UUID, in EditorInput) (posting.Posting, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListAll(ctx context.Context) ([]posting.Posting, error)
	Get(ctx context.Context, id uuid.UUID) (posting.Posting, error)
}

type Editor struct {
	postings repository.PostingRepository
	cache    ListingCache
	logger   *log.Logger
	now      func() time.Time
}

func NewEditorUsecase(postings repository.PostingRepository, cache ListingCache, logger *log.Logger) *Editor {
	return &Editor{postings: postings, cache: cache, logger: logger, now: time.Now}
}

func (u *Editor) Create(ctx context.Context, in EditorInput) (posting.Posting, error) {
	p, err := u.buildPosting(in)
	if err != nil {
		return posting.Posting{}, err
	}
	p.ID = uuid.New()
	p.PublishedAt = u.now().UTC()

	if err := u.postings.Create(ctx, p); err != nil {
		return posting.Posting{}, ErrInternal
	}
	u.invalidateCatalog(ctx)
	return p, nil
}

// Update replaces the record in place; concurrent admin edits are last write
// wins.
func (u *Editor) Update(ctx context.Context, id uuid.UUID, in EditorInput) (posting.Posting, error) {
	p, err := u.buildPosting(in)
	if err != nil {
		return posting.Posting{}, err
	}
	p.ID = id

	ok, err := u.postings.Update(ctx, p)
	if err != nil {
		return posting.Posting{}, ErrInternal
	}
	if !ok {
		return posting.Posting{}, ErrNotFound
	}
	u.invalidateCatalog(ctx)

	updated, err := u.postings.GetByID(ctx, id)
	if err != nil {
		return posting.Posting{}, ErrInternal
	}
	return updated, nil
}

// Delete is irreversible and does not touch postulaciones rows referencing
// the posting. The confirmation step lives in the UI; the warning about
// orphaned applications is policy, not a data-layer constraint.
func (u *Editor) Delete(ctx context.Context, id uuid.UUID) error {
	ok, err := u.postings.Delete(ctx, id)
	if err != nil {
		return ErrInternal
	}
	if !ok {
		return ErrNotFound
	}
	u.invalidateCatalog(ctx)
	return nil
}

func (u *Editor) ListAll(ctx context.Context) ([]posting.Posting, error) {
	items, err := u.postings.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *Editor) Get(ctx context.Context, id uuid.UUID) (posting.Posting, error) {
	p, err := u.postings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, posting.ErrNotFound) {
			return posting.Posting{}, ErrNotFound
		}
		return posting.Posting{}, ErrInternal
	}
	return p, nil
}

func (u *Editor) buildPosting(in EditorInput) (posting.Posting, error) {
	fields := map[string]string{}

	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				fields[strings.ToLower(fe.Field())] = "is required"
			}
		} else {
			return posting.Posting{}, ErrInvalidInput
		}
	}

	mode, okMode := posting.ParseWorkMode(in.Mode)
	if in.Mode != "" && !okMode {
		fields["mode"] = "must be presencial, remoto or hibrido"
	}

	currency := posting.CurrencyARS
	if strings.TrimSpace(in.Currency) != "" {
		c, ok := posting.ParseCurrency(in.Currency)
		if !ok {
			fields["currency"] = "must be ARS or USD"
		} else {
			currency = c
		}
	}

	if len(fields) > 0 {
		return posting.Posting{}, newValidationError(fields)
	}

	return posting.Posting{
		Title:       strings.TrimSpace(in.Title),
		Company:     strings.TrimSpace(in.Company),
		Industry:    strings.TrimSpace(in.Industry),
		Education:   strings.TrimSpace(in.Education),
		Skills:      strings.TrimSpace(in.Skills),
		Schedule:    strings.TrimSpace(in.Schedule),
		Location:    strings.TrimSpace(in.Location),
		Mode:        mode,
		Salary:      posting.FormatSalary(in.SalaryFrom, in.SalaryTo, currency),
		Description: strings.TrimSpace(in.Description),
		Active:      in.Active,
	}, nil
}

func (u *Editor) invalidateCatalog(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Delete(ctx, catalogCacheKey); err != nil && u.logger != nil {
		u.logger.Printf("[Editor] catalog cache invalidation failed: %v", err)
	}
}
