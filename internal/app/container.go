package app

import (
	"context"
	"log"
	"time"

	"empleos-backend/internal/config"
	"empleos-backend/internal/database"
	dbpostgres "empleos-backend/internal/database/postgres"
	"empleos-backend/internal/infrastructure/cache"
	"empleos-backend/internal/mailer"
	"empleos-backend/internal/storage"
	"empleos-backend/internal/ws"
)

// Container holds the process-wide infrastructure. Everything downstream
// (repositories, usecases, handlers) is built per-route-registration from
// these.
type Container struct {
	Config config.Config
	DB     database.DB
	Cache  *cache.Redis
	Store  *storage.ResumeStore
	Mail   mailer.Mailer
	Hub    *ws.Hub
	Logger *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	store, err := storage.New(cfg.Storage)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := store.EnsureBucket(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Container{
		Config: cfg,
		DB:     db,
		Cache:  cache.NewRedis(logger),
		Store:  store,
		Mail:   mailer.NewResend(cfg.Mail),
		Hub:    ws.NewHub(logger),
		Logger: logger,
	}, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.DB == nil {
		return nil
	}
	return c.DB.Close()
}
