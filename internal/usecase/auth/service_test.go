package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"empleos-backend/internal/domain/admin"
	"empleos-backend/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type mockAdminRepo struct {
	byEmail map[string]admin.Admin
	byID    map[uuid.UUID]admin.Admin
	err     error
}

func (m mockAdminRepo) GetByEmail(_ context.Context, email string) (admin.Admin, error) {
	if m.err != nil {
		return admin.Admin{}, m.err
	}
	a, ok := m.byEmail[email]
	if !ok {
		return admin.Admin{}, admin.ErrNotFound
	}
	return a, nil
}

func (m mockAdminRepo) GetByID(_ context.Context, id uuid.UUID) (admin.Admin, error) {
	if m.err != nil {
		return admin.Admin{}, m.err
	}
	a, ok := m.byID[id]
	if !ok {
		return admin.Admin{}, admin.ErrNotFound
	}
	return a, nil
}

func fixtureAdmin(t *testing.T, password string) admin.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return admin.Admin{ID: uuid.New(), Email: "admin@agencia.example", PasswordHash: string(hash)}
}

func newTokens() jwt.Service {
	return jwt.NewHMACService("a-secret", "r-secret", 15*time.Minute, time.Hour)
}

func TestService_Login_Success(t *testing.T) {
	a := fixtureAdmin(t, "hunter22")
	svc := NewService(mockAdminRepo{byEmail: map[string]admin.Admin{a.Email: a}}, newTokens())

	got, pair, err := svc.Login(context.Background(), LoginInput{Email: " Admin@Agencia.Example ", Password: "hunter22"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ID != a.ID {
		t.Fatalf("unexpected admin")
	}
	if got.PasswordHash != "" {
		t.Fatalf("password hash must not leak")
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Fatalf("expected both tokens")
	}
}

func TestService_Login_WrongPassword(t *testing.T) {
	a := fixtureAdmin(t, "hunter22")
	svc := NewService(mockAdminRepo{byEmail: map[string]admin.Admin{a.Email: a}}, newTokens())

	_, _, err := svc.Login(context.Background(), LoginInput{Email: a.Email, Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestService_Login_UnknownEmail(t *testing.T) {
	svc := NewService(mockAdminRepo{}, newTokens())

	_, _, err := svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "x"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestService_Refresh_RoundTrip(t *testing.T) {
	a := fixtureAdmin(t, "hunter22")
	tokens := newTokens()
	svc := NewService(mockAdminRepo{byID: map[uuid.UUID]admin.Admin{a.ID: a}}, tokens)

	refresh, err := tokens.GenerateRefreshToken(a.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	pair, err := svc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Fatalf("expected new token pair")
	}
}

func TestService_Refresh_RejectsAccessToken(t *testing.T) {
	a := fixtureAdmin(t, "hunter22")
	tokens := newTokens()
	svc := NewService(mockAdminRepo{byID: map[uuid.UUID]admin.Admin{a.ID: a}}, tokens)

	access, err := tokens.GenerateAccessToken(a.ID, a.Email)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestService_Refresh_DeletedAdmin(t *testing.T) {
	tokens := newTokens()
	svc := NewService(mockAdminRepo{}, tokens)

	refresh, err := tokens.GenerateRefreshToken(uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := svc.Refresh(context.Background(), refresh); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}
