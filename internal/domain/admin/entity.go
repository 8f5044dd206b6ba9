package admin

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("admin not found")

type Admin struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
