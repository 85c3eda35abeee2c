package postgres

import (
	"context"
	"fmt"

	"talenthub/internal/database"
	"talenthub/internal/domain/company"

	"github.com/google/uuid"
)

const listingColumns = `id, company_id, listing_name, listing_description, requirements, listing_type, salary, benefits, created_at, updated_at`

type ListingRepository struct {
	db database.DB
}

func NewListingRepository(db database.DB) *ListingRepository {
	return &ListingRepository{db: db}
}

func (r *ListingRepository) Create(ctx context.Context, l company.Listing) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO job_listings (id, company_id, listing_name, listing_description, requirements, listing_type, salary, benefits)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		l.ID, l.CompanyID, l.ListingName, l.ListingDescription, l.Requirements, l.ListingType, l.Salary, l.Benefits,
	)
	return err
}

func (r *ListingRepository) GetByID(ctx context.Context, id uuid.UUID) (company.Listing, error) {
	row := r.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM job_listings WHERE id = $1`, listingColumns), id)
	return scanListing(row)
}

func (r *ListingRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM job_listings WHERE lower(listing_name) = lower($1))`, name,
	).Scan(&exists)
	return exists, err
}

func (r *ListingRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]company.Listing, error) {
	rows, err := r.db.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM job_listings WHERE company_id = $1 ORDER BY created_at`, listingColumns),
		companyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var listings []company.Listing
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func (r *ListingRepository) Update(ctx context.Context, l company.Listing) error {
	n, err := r.db.Exec(ctx, `
		UPDATE job_listings SET
			listing_name = $2, listing_description = $3, requirements = $4,
			listing_type = $5, salary = $6, benefits = $7, updated_at = now()
		WHERE id = $1`,
		l.ID, l.ListingName, l.ListingDescription, l.Requirements, l.ListingType, l.Salary, l.Benefits,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return company.ErrListingNotFound
	}
	return nil
}

func (r *ListingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM job_listings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return company.ErrListingNotFound
	}
	return nil
}

func scanListing(row scannable) (company.Listing, error) {
	var l company.Listing
	err := row.Scan(
		&l.ID, &l.CompanyID, &l.ListingName, &l.ListingDescription, &l.Requirements,
		&l.ListingType, &l.Salary, &l.Benefits, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return company.Listing{}, company.ErrListingNotFound
		}
		return company.Listing{}, err
	}
	return l, nil
}
