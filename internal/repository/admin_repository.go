package repository

import (
	"context"
	"errors"

	"empleos-backend/internal/database"
	"empleos-backend/internal/domain/admin"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (admin.Admin, error)
	GetByID(ctx context.Context, id uuid.UUID) (admin.Admin, error)
}

type PostgresAdminRepository struct {
	db database.DB
}

func NewPostgresAdminRepository(db database.DB) *PostgresAdminRepository {
	return &PostgresAdminRepository{db: db}
}

func (r *PostgresAdminRepository) GetByEmail(ctx context.Context, email string) (admin.Admin, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at FROM admins WHERE email = $1`,
		email,
	)
	return scanAdmin(row)
}

func (r *PostgresAdminRepository) GetByID(ctx context.Context, id uuid.UUID) (admin.Admin, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, created_at FROM admins WHERE id = $1`,
		id,
	)
	return scanAdmin(row)
}

func scanAdmin(row database.Row) (admin.Admin, error) {
	var a admin.Admin
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return admin.Admin{}, admin.ErrNotFound
		}
		return admin.Admin{}, err
	}
	return a, nil
}
