package migration

import (
	"context"
	"errors"
	"fmt"

	"empleos-backend/internal/database"
)

type Migration struct {
	Version int64
	Name    string
	SQL     string
}

var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_trabajos",
		SQL: `CREATE TABLE IF NOT EXISTS trabajos (
			id UUID PRIMARY KEY,
			titulo TEXT NOT NULL,
			empresa TEXT NOT NULL,
			rubro TEXT NOT NULL,
			educacion TEXT NOT NULL,
			conocimientos TEXT NOT NULL,
			horario TEXT NOT NULL,
			ubicacion TEXT NOT NULL,
			modalidad TEXT NOT NULL,
			sueldo TEXT NOT NULL DEFAULT '',
			descripcion TEXT NOT NULL,
			activo BOOLEAN NOT NULL DEFAULT true,
			fecha_publicacion TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	},
	{
		Version: 2,
		Name:    "create_postulaciones",
		SQL: `CREATE TABLE IF NOT EXISTS postulaciones (
			id UUID PRIMARY KEY,
			nombre TEXT NOT NULL,
			apellido TEXT NOT NULL,
			email TEXT NOT NULL,
			telefono TEXT NOT NULL,
			mensaje TEXT NOT NULL DEFAULT '',
			trabajo_id UUID NOT NULL,
			trabajo_titulo TEXT NOT NULL DEFAULT '',
			trabajo_empresa TEXT NOT NULL DEFAULT '',
			cv_objeto TEXT NOT NULL,
			estado TEXT NOT NULL DEFAULT 'pendiente',
			fecha_envio TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	},
	{
		Version: 3,
		Name:    "create_admins",
		SQL: `CREATE TABLE IF NOT EXISTS admins (
			id UUID PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	},
	{
		Version: 4,
		Name:    "index_trabajos_activo_fecha",
		SQL:     `CREATE INDEX IF NOT EXISTS idx_trabajos_activo_fecha ON trabajos (activo, fecha_publicacion DESC)`,
	},
	{
		Version: 5,
		Name:    "index_postulaciones_fecha",
		SQL:     `CREATE INDEX IF NOT EXISTS idx_postulaciones_fecha ON postulaciones (fecha_envio DESC)`,
	},
}

type Runner struct{}

// Run applies pending migrations in version order. Each migration and its
// bookkeeping row commit in one transaction.
func (Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errors.New("nil db")
	}

	if _, err := db.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS schema_migrations (
			version BIGINT PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	); err != nil {
		return err
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if _, ok := applied[m.Version]; ok {
			continue
		}
		if err := applyOne(ctx, db, m); err != nil {
			return fmt.Errorf("apply migration %d (%s): %w", m.Version, m.Name, err)
		}
	}
	return nil
}

func appliedVersions(ctx context.Context, db database.DB) (map[int64]struct{}, error) {
	rows, err := db.Query(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[int64]struct{}{}
	for rows.Next() {
		var v int64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		out[v] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func applyOne(ctx context.Context, db database.DB, m Migration) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if _, err := tx.Exec(ctx, m.SQL); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`,
		m.Version, m.Name,
	); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
