package repository

import (
	"context"
	"errors"

	"empleos-backend/internal/database"
	"empleos-backend/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ApplicationRepository interface {
	Create(ctx context.Context, a application.Application) error
	List(ctx context.Context) ([]application.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (application.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationColumns = `id, nombre, apellido, email, telefono, mensaje, trabajo_id, trabajo_titulo, trabajo_empresa, cv_objeto, estado, fecha_envio`

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO postulaciones (`+applicationColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		a.ID, a.FirstName, a.LastName, a.Email, a.Phone, a.Message,
		a.PostingID, a.PostingTitle, a.PostingCompany, a.ResumeKey, string(a.Status), a.SubmittedAt,
	)
	return err
}

func (r *PostgresApplicationRepository) List(ctx context.Context) ([]application.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+applicationColumns+`
		 FROM postulaciones
		 ORDER BY fecha_envio DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+applicationColumns+` FROM postulaciones WHERE id = $1`,
		id,
	)
	a, err := scanApplication(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) (bool, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE postulaciones SET estado = $2 WHERE id = $1`,
		id, string(status),
	)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *PostgresApplicationRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.db.Exec(ctx, `DELETE FROM postulaciones WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanApplication(s scanner) (application.Application, error) {
	var a application.Application
	var status string
	if err := s.Scan(
		&a.ID, &a.FirstName, &a.LastName, &a.Email, &a.Phone, &a.Message,
		&a.PostingID, &a.PostingTitle, &a.PostingCompany, &a.ResumeKey, &status, &a.SubmittedAt,
	); err != nil {
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	return a, nil
}
