package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"empleos-backend/internal/domain/admin"
	"empleos-backend/internal/pkg/jwt"
	"empleos-backend/internal/repository"
)

var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
	ErrInternal            = errors.New("internal error")
)

type LoginInput struct {
	Email    string
	Password string
}

type TokenPair struct {
	Access  string
	Refresh string
}

type AuthUsecase interface {
	Login(ctx context.Context, in LoginInput) (admin.Admin, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Service struct {
	admins repository.AdminRepository
	tokens jwt.Service
}

func NewService(admins repository.AdminRepository, tokens jwt.Service) *Service {
	return &Service{admins: admins, tokens: tokens}
}

func (s *Service) Login(ctx context.Context, in LoginInput) (admin.Admin, TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return admin.Admin{}, TokenPair{}, ErrInvalidCredentials
	}

	a, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, admin.ErrNotFound) {
			return admin.Admin{}, TokenPair{}, ErrInvalidCredentials
		}
		return admin.Admin{}, TokenPair{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.Password)); err != nil {
		return admin.Admin{}, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := s.issuePair(a)
	if err != nil {
		return admin.Admin{}, TokenPair{}, ErrInternal
	}

	a.PasswordHash = ""
	return a, pair, nil
}

func (s *Service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenPair{}, ErrRefreshTokenExpired
		}
		return TokenPair{}, ErrInvalidRefreshToken
	}
	if !s.tokens.IsRefreshToken(claims) {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	// The account must still exist; a deleted admin cannot mint new sessions.
	a, err := s.admins.GetByID(ctx, claims.AdminID)
	if err != nil {
		if errors.Is(err, admin.ErrNotFound) {
			return TokenPair{}, ErrInvalidRefreshToken
		}
		return TokenPair{}, ErrInternal
	}

	pair, err := s.issuePair(a)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return pair, nil
}

func (s *Service) issuePair(a admin.Admin) (TokenPair, error) {
	access, err := s.tokens.GenerateAccessToken(a.ID, a.Email)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(a.ID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{Access: access, Refresh: refresh}, nil
}
