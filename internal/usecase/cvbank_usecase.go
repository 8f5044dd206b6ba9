package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"path"
	"sort"
	"strings"

	"empleos-backend/internal/domain/resume"
	"empleos-backend/internal/repository"
	"empleos-backend/internal/storage"
)

// ResumeStore is the blob-store surface the CV bank needs.
type ResumeStore interface {
	ResumeLinker
	CreateExclusive(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	List(ctx context.Context, prefix string) ([]storage.Object, error)
	Delete(ctx context.Context, key string) error
}

type CVUploadInput struct {
	FileName string
	FileSize int64
	File     io.Reader
}

type CVBankUsecase interface {
	Upload(ctx context.Context, in CVUploadInput) (string, error)
	List(ctx context.Context) ([]resume.Entry, error)
	Delete(ctx context.Context, key string) error
}

// CVBank manages unsolicited uploads and the merged admin view over both CV
// sources: files attached to applications and stand-alone files under
// curriculums/.
type CVBank struct {
	store        ResumeStore
	applications repository.ApplicationRepository
	logger       *log.Logger
}

func NewCVBankUsecase(store ResumeStore, applications repository.ApplicationRepository, logger *log.Logger) *CVBank {
	return &CVBank{store: store, applications: applications, logger: logger}
}

// Upload keeps the original filename (sanitized, no timestamp prefix) so
// duplicate submissions of the same CV are rejected rather than silently
// stacked. The conditional write makes the guard atomic.
func (u *CVBank) Upload(ctx context.Context, in CVUploadInput) (string, error) {
	fields := map[string]string{}
	contentType := ""

	switch {
	case in.File == nil || strings.TrimSpace(in.FileName) == "":
		fields["resume"] = "a file is required"
	default:
		ct, ok := allowedResumeExtensions[strings.ToLower(path.Ext(in.FileName))]
		switch {
		case !ok:
			fields["resume"] = "only PDF, DOC or DOCX files are accepted"
		case in.FileSize <= 0 || in.FileSize > MaxResumeSize:
			fields["resume"] = "file must be at most 5 MB"
		default:
			contentType = ct
		}
	}
	if len(fields) > 0 {
		return "", newValidationError(fields)
	}

	key := storage.UnsolicitedPrefix + storage.SanitizeFileName(in.FileName)
	if err := u.store.CreateExclusive(ctx, key, in.File, in.FileSize, contentType); err != nil {
		if errors.Is(err, storage.ErrObjectExists) {
			return "", ErrDuplicateFile
		}
		if u.logger != nil {
			u.logger.Printf("[CVBank] upload failed key=%s err=%v", key, err)
		}
		return "", ErrUploadFailed
	}
	return key, nil
}

// List merges both sources, de-duplicated by object key with the application
// entry winning, newest first.
func (u *CVBank) List(ctx context.Context) ([]resume.Entry, error) {
	apps, err := u.applications.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	blobs, err := u.store.List(ctx, storage.UnsolicitedPrefix)
	if err != nil {
		return nil, ErrInternal
	}

	seen := map[string]struct{}{}
	out := make([]resume.Entry, 0, len(apps)+len(blobs))

	for _, a := range apps {
		if a.ResumeKey == "" {
			continue
		}
		if _, dup := seen[a.ResumeKey]; dup {
			continue
		}
		seen[a.ResumeKey] = struct{}{}
		out = append(out, resume.Entry{
			ObjectKey:  a.ResumeKey,
			FileName:   path.Base(a.ResumeKey),
			Source:     resume.SourceApplication,
			Applicant:  strings.TrimSpace(a.FirstName + " " + a.LastName),
			URL:        u.presign(ctx, a.ResumeKey),
			UploadedAt: a.SubmittedAt,
		})
	}

	for _, b := range blobs {
		if _, dup := seen[b.Key]; dup {
			continue
		}
		seen[b.Key] = struct{}{}
		out = append(out, resume.Entry{
			ObjectKey:  b.Key,
			FileName:   path.Base(b.Key),
			Size:       b.Size,
			Source:     resume.SourceUnsolicited,
			URL:        u.presign(ctx, b.Key),
			UploadedAt: b.LastModified,
		})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].UploadedAt.After(out[j].UploadedAt)
	})
	return out, nil
}

// Delete only touches stand-alone uploads; CVs referenced by applications
// are managed through the applications view.
func (u *CVBank) Delete(ctx context.Context, key string) error {
	if !strings.HasPrefix(key, storage.UnsolicitedPrefix) {
		return newValidationError(map[string]string{"key": "not an unsolicited upload"})
	}
	if err := u.store.Delete(ctx, key); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *CVBank) presign(ctx context.Context, key string) string {
	url, err := u.store.PresignedGetURL(ctx, key, AdminResumeURLTTL)
	if err != nil {
		if u.logger != nil {
			u.logger.Printf("[CVBank] presign failed key=%s err=%v", key, err)
		}
		return ""
	}
	return url
}
