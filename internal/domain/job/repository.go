package job

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

// Filter narrows List; zero values mean "no filter". Results are always
// ordered newest-first.
type Filter struct {
	HiringManagerID *uuid.UUID
	Status          *Status
}

type Repository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	List(ctx context.Context, f Filter) ([]Job, error)
	Update(ctx context.Context, j Job) error
	Delete(ctx context.Context, id uuid.UUID) error
}
