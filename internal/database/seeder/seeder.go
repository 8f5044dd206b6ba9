package seeder

import (
	"context"

	"empleos-backend/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
