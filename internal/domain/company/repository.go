package company

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound        = errors.New("company not found")
	ErrListingNotFound = errors.New("job listing not found")
)

type Repository interface {
	Create(ctx context.Context, c Company) error
	GetByID(ctx context.Context, id uuid.UUID) (Company, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]Company, error)
	Update(ctx context.Context, c Company) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ListingRepository interface {
	Create(ctx context.Context, l Listing) error
	GetByID(ctx context.Context, id uuid.UUID) (Listing, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]Listing, error)
	Update(ctx context.Context, l Listing) error
	Delete(ctx context.Context, id uuid.UUID) error
}
