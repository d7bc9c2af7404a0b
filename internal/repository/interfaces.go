package repository

import (
	"context"
	"errors"

	"github.com/storyhour/storysign/internal/domain"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// RunRepo persists logged sign sessions.
type RunRepo interface {
	Create(ctx context.Context, run *domain.Run) error
	GetByID(ctx context.Context, id string) (*domain.Run, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.Run, error)
	CountByKind(ctx context.Context) (map[domain.RunKind]int, error)
	DeleteAll(ctx context.Context) (int64, error)
}
