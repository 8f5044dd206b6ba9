package usecase

import (
	"context"
	"errors"
	"io"
	"log"
	"path"
	"regexp"
	"strings"
	"time"

	"empleos-backend/internal/domain/application"
	"empleos-backend/internal/domain/posting"
	"empleos-backend/internal/repository"
	"empleos-backend/internal/storage"

	"github.com/google/uuid"
)

// MaxResumeSize is the hard cap on uploaded CVs, checked before any network
// call.
const MaxResumeSize = 5 << 20

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var allowedResumeExtensions = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ResumeUploader is the slice of the blob store the intake flow needs.
type ResumeUploader interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
}

type IntakeInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Message   string
	PostingID uuid.UUID

	FileName string
	FileSize int64
	File     io.Reader
}

type IntakeResult struct {
	ApplicationID uuid.UUID
	ResumeKey     string
}

// Notifier pushes an event to connected admin dashboards. Nil is fine.
type Notifier func(postingTitle, applicant string)

type IntakeUsecase interface {
	Submit(ctx context.Context, in IntakeInput) (IntakeResult, error)
}

type Intake struct {
	applications repository.ApplicationRepository
	postings     repository.PostingRepository
	uploader     ResumeUploader
	notify       Notifier
	logger       *log.Logger
	now          func() time.Time
}

func NewIntakeUsecase(
	applications repository.ApplicationRepository,
	postings repository.PostingRepository,
	uploader ResumeUploader,
	notify Notifier,
	logger *log.Logger,
) *Intake {
	return &Intake{
		applications: applications,
		postings:     postings,
		uploader:     uploader,
		notify:       notify,
		logger:       logger,
		now:          time.Now,
	}
}

// Submit validates, uploads the CV, then writes the application row. The
// order is load-bearing: the row must never reference an object that was not
// stored, so an upload failure aborts before any insert.
func (u *Intake) Submit(ctx context.Context, in IntakeInput) (IntakeResult, error) {
	contentType, err := validateIntake(in)
	if err != nil {
		return IntakeResult{}, err
	}

	p, err := u.postings.GetByID(ctx, in.PostingID)
	if err != nil {
		if errors.Is(err, posting.ErrNotFound) {
			return IntakeResult{}, newValidationError(map[string]string{"posting": "posting not found"})
		}
		return IntakeResult{}, ErrInternal
	}

	now := u.now().UTC()
	key := storage.ObjectKey(in.FileName, now)

	if err := u.uploader.Upload(ctx, key, in.File, in.FileSize, contentType); err != nil {
		if u.logger != nil {
			u.logger.Printf("[Intake] resume upload failed key=%s err=%v", key, err)
		}
		return IntakeResult{}, ErrUploadFailed
	}

	a := application.Application{
		ID:        uuid.New(),
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Message:   strings.TrimSpace(in.Message),
		PostingID: p.ID,
		// Snapshots: the row stays displayable after the posting changes.
		PostingTitle:   p.Title,
		PostingCompany: p.Company,
		ResumeKey:      key,
		Status:         application.StatusPending,
		SubmittedAt:    now,
	}

	if err := u.applications.Create(ctx, a); err != nil {
		// The uploaded object is left behind; there is no compensating
		// delete in this flow.
		if u.logger != nil {
			u.logger.Printf("[Intake] application write failed after upload key=%s err=%v", key, err)
		}
		return IntakeResult{}, ErrInternal
	}

	if u.notify != nil {
		u.notify(p.Title, a.FirstName+" "+a.LastName)
	}

	return IntakeResult{ApplicationID: a.ID, ResumeKey: key}, nil
}

func validateIntake(in IntakeInput) (string, error) {
	fields := map[string]string{}

	if strings.TrimSpace(in.FirstName) == "" {
		fields["first_name"] = "is required"
	}
	if strings.TrimSpace(in.LastName) == "" {
		fields["last_name"] = "is required"
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		fields["email"] = "is required"
	} else if !emailPattern.MatchString(email) {
		fields["email"] = "is not a valid email"
	}
	if strings.TrimSpace(in.Phone) == "" {
		fields["phone"] = "is required"
	}

	contentType := ""
	switch {
	case in.File == nil || strings.TrimSpace(in.FileName) == "":
		fields["resume"] = "a file is required"
	default:
		ext := strings.ToLower(path.Ext(in.FileName))
		ct, ok := allowedResumeExtensions[ext]
		switch {
		case !ok:
			// The type message wins over the size one.
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
	return contentType, nil
}
