package postgres

import (
	"context"
	"fmt"

	"talenthub/internal/database"
	"talenthub/internal/domain/company"

	"github.com/google/uuid"
)

const companyColumns = `id, company_name, company_description, country, size, industry, open_positions, created_at, updated_at`

type CompanyRepository struct {
	db database.DB
}

func NewCompanyRepository(db database.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

func (r *CompanyRepository) Create(ctx context.Context, c company.Company) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO companies (id, company_name, company_description, country, size, industry, open_positions)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.CompanyName, c.CompanyDescription, c.Country, c.Size, c.Industry, c.OpenPositions,
	)
	return err
}

func (r *CompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (company.Company, error) {
	row := r.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM companies WHERE id = $1`, companyColumns), id)
	return scanCompany(row)
}

func (r *CompanyRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM companies WHERE lower(company_name) = lower($1))`, name,
	).Scan(&exists)
	return exists, err
}

func (r *CompanyRepository) List(ctx context.Context) ([]company.Company, error) {
	rows, err := r.db.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM companies ORDER BY created_at DESC`, companyColumns))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []company.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *CompanyRepository) Update(ctx context.Context, c company.Company) error {
	n, err := r.db.Exec(ctx, `
		UPDATE companies SET
			company_name = $2, company_description = $3, country = $4,
			size = $5, industry = $6, open_positions = $7, updated_at = now()
		WHERE id = $1`,
		c.ID, c.CompanyName, c.CompanyDescription, c.Country, c.Size, c.Industry, c.OpenPositions,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return company.ErrNotFound
	}
	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return company.ErrNotFound
	}
	return nil
}

func scanCompany(row scannable) (company.Company, error) {
	var c company.Company
	err := row.Scan(
		&c.ID, &c.CompanyName, &c.CompanyDescription, &c.Country,
		&c.Size, &c.Industry, &c.OpenPositions, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return company.Company{}, company.ErrNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}
