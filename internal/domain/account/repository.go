package account

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("account not found")

type Repository interface {
	Create(ctx context.Context, a Account) error
	GetByID(ctx context.Context, id uuid.UUID) (Account, error)
	GetByEmail(ctx context.Context, email string) (Account, error)
	GetByUsername(ctx context.Context, username string) (Account, error)
	// FindByUsernameOrEmail returns the first account matching either value,
	// used for the signup uniqueness check.
	FindByUsernameOrEmail(ctx context.Context, username, email string) (Account, error)
	Update(ctx context.Context, a Account) error
	Delete(ctx context.Context, id uuid.UUID) error
}
