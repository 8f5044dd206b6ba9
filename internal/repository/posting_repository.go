package repository

import (
	"context"
	"errors"

	"empleos-backend/internal/database"
	"empleos-backend/internal/domain/posting"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostingRepository interface {
	ListActive(ctx context.Context) ([]posting.Posting, error)
	ListAll(ctx context.Context) ([]posting.Posting, error)
	GetByID(ctx context.Context, id uuid.UUID) (posting.Posting, error)
	Create(ctx context.Context, p posting.Posting) error
	Update(ctx context.Context, p posting.Posting) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostgresPostingRepository struct {
	db database.DB
}

func NewPostgresPostingRepository(db database.DB) *PostgresPostingRepository {
	return &PostgresPostingRepository{db: db}
}

const postingColumns = `id, titulo, empresa, rubro, educacion, conocimientos, horario, ubicacion, modalidad, sueldo, descripcion, activo, fecha_publicacion`

func (r *PostgresPostingRepository) ListActive(ctx context.Context) ([]posting.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+postingColumns+`
		 FROM trabajos
		 WHERE activo = true
		 ORDER BY fecha_publicacion DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPostings(rows)
}

func (r *PostgresPostingRepository) ListAll(ctx context.Context) ([]posting.Posting, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+postingColumns+`
		 FROM trabajos
		 ORDER BY fecha_publicacion DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPostings(rows)
}

func (r *PostgresPostingRepository) GetByID(ctx context.Context, id uuid.UUID) (posting.Posting, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+postingColumns+` FROM trabajos WHERE id = $1`,
		id,
	)
	p, err := scanPosting(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return posting.Posting{}, posting.ErrNotFound
		}
		return posting.Posting{}, err
	}
	return p, nil
}

func (r *PostgresPostingRepository) Create(ctx context.Context, p posting.Posting) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO trabajos (`+postingColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		p.ID, p.Title, p.Company, p.Industry, p.Education, p.Skills, p.Schedule,
		p.Location, string(p.Mode), p.Salary, p.Description, p.Active, p.PublishedAt,
	)
	return err
}

// Update replaces the whole record; last write wins.
func (r *PostgresPostingRepository) Update(ctx context.Context, p posting.Posting) (bool, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE trabajos
		 SET titulo=$2, empresa=$3, rubro=$4, educacion=$5, conocimientos=$6, horario=$7,
		     ubicacion=$8, modalidad=$9, sueldo=$10, descripcion=$11, activo=$12
		 WHERE id=$1`,
		p.ID, p.Title, p.Company, p.Industry, p.Education, p.Skills, p.Schedule,
		p.Location, string(p.Mode), p.Salary, p.Description, p.Active,
	)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Delete removes the posting only. Applications referencing it are left in
// place deliberately.
func (r *PostgresPostingRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.db.Exec(ctx, `DELETE FROM trabajos WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func scanPostings(rows database.Rows) ([]posting.Posting, error) {
	out := make([]posting.Posting, 0)
	for rows.Next() {
		var p posting.Posting
		var mode string
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Company, &p.Industry, &p.Education, &p.Skills,
			&p.Schedule, &p.Location, &mode, &p.Salary, &p.Description, &p.Active, &p.PublishedAt,
		); err != nil {
			return nil, err
		}
		p.Mode = posting.WorkMode(mode)
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanPosting(row database.Row) (posting.Posting, error) {
	var p posting.Posting
	var mode string
	if err := row.Scan(
		&p.ID, &p.Title, &p.Company, &p.Industry, &p.Education, &p.Skills,
		&p.Schedule, &p.Location, &mode, &p.Salary, &p.Description, &p.Active, &p.PublishedAt,
	); err != nil {
		return posting.Posting{}, err
	}
	p.Mode = posting.WorkMode(mode)
	return p, nil
}
