package usecase

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"empleos-backend/internal/domain/application"
	"empleos-backend/internal/domain/posting"

	"github.com/google/uuid"
)

type mockApplicationRepo struct {
	created []application.Application
	err     error
}

func (m *mockApplicationRepo) Create(_ context.Context, a application.Application) error {
	if m.err != nil {
		return m.err
	}
	m.created = append(m.created, a)
	return nil
}
func (m *mockApplicationRepo) List(context.Context) ([]application.Application, error) {
	return m.created, nil
}
func (m *mockApplicationRepo) GetByID(context.Context, uuid.UUID) (application.Application, error) {
	return application.Application{}, application.ErrNotFound
}
func (m *mockApplicationRepo) UpdateStatus(context.Context, uuid.UUID, application.Status) (bool, error) {
	return false, nil
}
func (m *mockApplicationRepo) Delete(context.Context, uuid.UUID) (bool, error) {
	return false, nil
}

type mockPostingRepo struct {
	byID map[uuid.UUID]posting.Posting
	err  error
}

func (m *mockPostingRepo) ListActive(context.Context) ([]posting.Posting, error) {
	if m.err != nil {
		return nil, m.err
	}
	out := make([]posting.Posting, 0)
	for _, p := range m.byID {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}
func (m *mockPostingRepo) ListAll(context.Context) ([]posting.Posting, error) {
	out := make([]posting.Posting, 0)
	for _, p := range m.byID {
		out = append(out, p)
	}
	return out, nil
}
func (m *mockPostingRepo) GetByID(_ context.Context, id uuid.UUID) (posting.Posting, error) {
	if m.err != nil {
		return posting.Posting{}, m.err
	}
	p, ok := m.byID[id]
	if !ok {
		return posting.Posting{}, posting.ErrNotFound
	}
	return p, nil
}
func (m *mockPostingRepo) Create(_ context.Context, p posting.Posting) error {
	if m.byID == nil {
		m.byID = map[uuid.UUID]posting.Posting{}
	}
	m.byID[p.ID] = p
	return nil
}
func (m *mockPostingRepo) Update(_ context.Context, p posting.Posting) (bool, error) {
	if _, ok := m.byID[p.ID]; !ok {
		return false, nil
	}
	m.byID[p.ID] = p
	return true, nil
}
func (m *mockPostingRepo) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if _, ok := m.byID[id]; !ok {
		return false, nil
	}
	delete(m.byID, id)
	return true, nil
}

type mockUploader struct {
	calls int
	err   error
}

func (m *mockUploader) Upload(_ context.Context, _ string, _ io.Reader, _ int64, _ string) error {
	m.calls++
	return m.err
}

func validIntakeInput(postingID uuid.UUID) IntakeInput {
	return IntakeInput{
		FirstName: "Ana",
		LastName:  "Gómez",
		Email:     "ana@example.com",
		Phone:     "+54 11 5555-0000",
		Message:   "Me interesa el puesto.",
		PostingID: postingID,
		FileName:  "Currículum Vitae (2024).pdf",
		FileSize:  1 << 20,
		File:      strings.NewReader("%PDF-1.4"),
	}
}

func intakeFixture(t *testing.T, uploader *mockUploader) (*Intake, *mockApplicationRepo, uuid.UUID) {
	t.Helper()
	postingID := uuid.New()
	postings := &mockPostingRepo{byID: map[uuid.UUID]posting.Posting{
		postingID: {ID: postingID, Title: "Analista Contable", Company: "Estudio Sur", Active: true},
	}}
	apps := &mockApplicationRepo{}
	uc := NewIntakeUsecase(apps, postings, uploader, nil, nil)
	return uc, apps, postingID
}

func TestIntake_Submit_Success(t *testing.T) {
	uploader := &mockUploader{}
	uc, apps, postingID := intakeFixture(t, uploader)
	uc.now = func() time.Time { return time.Unix(1700000000, 0) }

	res, err := uc.Submit(context.Background(), validIntakeInput(postingID))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if uploader.calls != 1 {
		t.Fatalf("expected 1 upload, got %d", uploader.calls)
	}
	if len(apps.created) != 1 {
		t.Fatalf("expected 1 application, got %d", len(apps.created))
	}

	a := apps.created[0]
	if a.PostingTitle != "Analista Contable" || a.PostingCompany != "Estudio Sur" {
		t.Fatalf("posting snapshot not taken: %+v", a)
	}
	if a.Status != application.StatusPending {
		t.Fatalf("expected status pendiente, got %q", a.Status)
	}
	if !strings.HasPrefix(res.ResumeKey, "1700000000-") {
		t.Fatalf("unexpected resume key %q", res.ResumeKey)
	}
	if strings.ContainsAny(res.ResumeKey, "áéíóúü ()") {
		t.Fatalf("resume key not sanitized: %q", res.ResumeKey)
	}
}

func TestIntake_Submit_RejectsNonPDFBeforeUpload(t *testing.T) {
	uploader := &mockUploader{}
	uc, apps, postingID := intakeFixture(t, uploader)

	in := validIntakeInput(postingID)
	in.FileName = "malware.exe"

	_, err := uc.Submit(context.Background(), in)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if uploader.calls != 0 {
		t.Fatalf("uploader must not be called for invalid input")
	}
	if len(apps.created) != 0 {
		t.Fatalf("no record should be written for invalid input")
	}
}

func TestIntake_Submit_RejectsOversizeFile(t *testing.T) {
	uploader := &mockUploader{}
	uc, _, postingID := intakeFixture(t, uploader)

	in := validIntakeInput(postingID)
	in.FileSize = MaxResumeSize + 1

	_, err := uc.Submit(context.Background(), in)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if uploader.calls != 0 {
		t.Fatalf("uploader must not be called for oversize file")
	}
}

func TestIntake_Submit_RejectsMissingFields(t *testing.T) {
	uploader := &mockUploader{}
	uc, _, postingID := intakeFixture(t, uploader)

	in := validIntakeInput(postingID)
	in.Email = "not-an-email"

	_, err := uc.Submit(context.Background(), in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["email"]; !ok {
		t.Fatalf("expected email field error, got %v", verr.Fields)
	}
}

func TestIntake_Submit_UploadFailurePreventsRecordWrite(t *testing.T) {
	uploader := &mockUploader{err: errors.New("bucket unreachable")}
	uc, apps, postingID := intakeFixture(t, uploader)

	_, err := uc.Submit(context.Background(), validIntakeInput(postingID))
	if !errors.Is(err, ErrUploadFailed) {
		t.Fatalf("expected ErrUploadFailed, got %v", err)
	}
	if len(apps.created) != 0 {
		t.Fatalf("application must not reference a file that was not stored")
	}
}

func TestIntake_Submit_UnknownPosting(t *testing.T) {
	uploader := &mockUploader{}
	uc, _, _ := intakeFixture(t, uploader)

	_, err := uc.Submit(context.Background(), validIntakeInput(uuid.New()))
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if uploader.calls != 0 {
		t.Fatalf("uploader must not be called for unknown posting")
	}
}

func TestIntake_Submit_OversizeWrongTypeReportsTypeError(t *testing.T) {
	uploader := &mockUploader{}
	uc, _, postingID := intakeFixture(t, uploader)

	in := validIntakeInput(postingID)
	in.FileName = "malware.exe"
	in.FileSize = MaxResumeSize + 1

	_, err := uc.Submit(context.Background(), in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if got := verr.Fields["resume"]; got != "only PDF, DOC or DOCX files are accepted" {
		t.Fatalf("resume message = %q, want the file-type message", got)
	}
}
