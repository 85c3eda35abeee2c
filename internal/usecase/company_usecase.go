package usecase

import (
	"context"
	"errors"
	"strings"

	"talenthub/internal/domain/company"

	"github.com/google/uuid"
)

type CreateCompanyInput struct {
	CompanyName        string
	CompanyDescription string
	Country            string
	Size               string
	Industry           string
	OpenPositions      int
}

type UpdateCompanyInput struct {
	CompanyName        *string
	CompanyDescription *string
	Country            *string
	Size               *string
	Industry           *string
	OpenPositions      *int
}

type CreateListingInput struct {
	ListingName        string
	ListingDescription string
	Requirements       *string
	ListingType        string
	Salary             *string
	Benefits           *string
}

type UpdateListingInput struct {
	ListingName        *string
	ListingDescription *string
	Requirements       *string
	ListingType        *string
	Salary             *string
	Benefits           *string
}

type CompanyUsecase interface {
	Create(ctx context.Context, in CreateCompanyInput) (company.Company, error)
	Get(ctx context.Context, id uuid.UUID) (company.Company, error)
	List(ctx context.Context) ([]company.Company, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateCompanyInput) (company.Company, error)
	Delete(ctx context.Context, id uuid.UUID) error

	CreateListing(ctx context.Context, companyID uuid.UUID, in CreateListingInput) (company.Listing, error)
	GetListing(ctx context.Context, id uuid.UUID) (company.Listing, error)
	ListListings(ctx context.Context, companyID uuid.UUID) ([]company.Listing, error)
	UpdateListing(ctx context.Context, id uuid.UUID, in UpdateListingInput) (company.Listing, error)
	DeleteListing(ctx context.Context, id uuid.UUID) error
}

type Companies struct {
	companies company.Repository
	listings  company.ListingRepository
}

func NewCompanyUsecase(companies company.Repository, listings company.ListingRepository) *Companies {
	return &Companies{companies: companies, listings: listings}
}

func (u *Companies) Create(ctx context.Context, in CreateCompanyInput) (company.Company, error) {
	var missing []string
	if strings.TrimSpace(in.CompanyName) == "" {
		missing = append(missing, "Company name")
	}
	if strings.TrimSpace(in.CompanyDescription) == "" {
		missing = append(missing, "Company description")
	}
	if strings.TrimSpace(in.Country) == "" {
		missing = append(missing, "Country")
	}
	if strings.TrimSpace(in.Size) == "" {
		missing = append(missing, "Size")
	}
	if strings.TrimSpace(in.Industry) == "" {
		missing = append(missing, "Industry")
	}
	if in.OpenPositions < 1 {
		missing = append(missing, "Open positions")
	}
	if len(missing) > 0 {
		return company.Company{}, &ValidationError{Message: "Missing required fields", Fields: missing}
	}

	name := strings.ToLower(strings.TrimSpace(in.CompanyName))
	exists, err := u.companies.ExistsByName(ctx, name)
	if err != nil {
		return company.Company{}, ErrInternal
	}
	if exists {
		return company.Company{}, &ValidationError{Message: "Company name already taken"}
	}

	c := company.Company{
		ID:                 uuid.New(),
		CompanyName:        name,
		CompanyDescription: in.CompanyDescription,
		Country:            in.Country,
		Size:               in.Size,
		Industry:           in.Industry,
		OpenPositions:      in.OpenPositions,
	}

	if err := u.companies.Create(ctx, c); err != nil {
		return company.Company{}, ErrInternal
	}
	return c, nil
}

func (u *Companies) Get(ctx context.Context, id uuid.UUID) (company.Company, error) {
	c, err := u.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return company.Company{}, company.ErrNotFound
		}
		return company.Company{}, ErrInternal
	}
	return c, nil
}

func (u *Companies) List(ctx context.Context) ([]company.Company, error) {
	companies, err := u.companies.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return companies, nil
}

func (u *Companies) Update(ctx context.Context, id uuid.UUID, in UpdateCompanyInput) (company.Company, error) {
	c, err := u.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return company.Company{}, company.ErrNotFound
		}
		return company.Company{}, ErrInternal
	}

	if in.CompanyName != nil && strings.TrimSpace(*in.CompanyName) != "" {
		c.CompanyName = strings.ToLower(strings.TrimSpace(*in.CompanyName))
	}
	if in.CompanyDescription != nil {
		c.CompanyDescription = *in.CompanyDescription
	}
	if in.Country != nil {
		c.Country = *in.Country
	}
	if in.Size != nil {
		c.Size = *in.Size
	}
	if in.Industry != nil {
		c.Industry = *in.Industry
	}
	if in.OpenPositions != nil {
		if *in.OpenPositions < 1 {
			return company.Company{}, &ValidationError{Message: "Open positions must be at least 1"}
		}
		c.OpenPositions = *in.OpenPositions
	}

	if err := u.companies.Update(ctx, c); err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return company.Company{}, company.ErrNotFound
		}
		return company.Company{}, ErrInternal
	}
	return c, nil
}

func (u *Companies) Delete(ctx context.Context, id uuid.UUID) error {
	// Listings keep their company_id; orphans are accepted, no cascade.
	if err := u.companies.Delete(ctx, id); err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return company.ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

func (u *Companies) CreateListing(ctx context.Context, companyID uuid.UUID, in CreateListingInput) (company.Listing, error) {
	if strings.TrimSpace(in.ListingName) == "" || strings.TrimSpace(in.ListingDescription) == "" {
		return company.Listing{}, &ValidationError{Message: "Job name and description are required"}
	}

	if _, err := u.companies.GetByID(ctx, companyID); err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return company.Listing{}, company.ErrNotFound
		}
		return company.Listing{}, ErrInternal
	}

	name := strings.ToLower(strings.TrimSpace(in.ListingName))
	exists, err := u.listings.ExistsByName(ctx, name)
	if err != nil {
		return company.Listing{}, ErrInternal
	}
	if exists {
		return company.Listing{}, &ValidationError{Message: "Listing name already taken"}
	}

	listingType := in.ListingType
	if listingType == "" {
		listingType = company.DefaultListingType
	}
	if !contains(company.ListingTypes, listingType) {
		return company.Listing{}, &ValidationError{Message: "Invalid listing type"}
	}

	l := company.Listing{
		ID:                 uuid.New(),
		CompanyID:          &companyID,
		ListingName:        name,
		ListingDescription: in.ListingDescription,
		Requirements:       in.Requirements,
		ListingType:        listingType,
		Salary:             in.Salary,
		Benefits:           in.Benefits,
	}

	if err := u.listings.Create(ctx, l); err != nil {
		return company.Listing{}, ErrInternal
	}
	return l, nil
}

func (u *Companies) GetListing(ctx context.Context, id uuid.UUID) (company.Listing, error) {
	l, err := u.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, company.ErrListingNotFound) {
			return company.Listing{}, company.ErrListingNotFound
		}
		return company.Listing{}, ErrInternal
	}
	return l, nil
}

func (u *Companies) ListListings(ctx context.Context, companyID uuid.UUID) ([]company.Listing, error) {
	if _, err := u.companies.GetByID(ctx, companyID); err != nil {
		if errors.Is(err, company.ErrNotFound) {
			return nil, company.ErrNotFound
		}
		return nil, ErrInternal
	}

	listings, err := u.listings.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, ErrInternal
	}
	return listings, nil
}

func (u *Companies) UpdateListing(ctx context.Context, id uuid.UUID, in UpdateListingInput) (company.Listing, error) {
	l, err := u.listings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, company.ErrListingNotFound) {
			return company.Listing{}, company.ErrListingNotFound
		}
		return company.Listing{}, ErrInternal
	}

	if in.ListingName != nil && strings.TrimSpace(*in.ListingName) != "" {
		l.ListingName = strings.ToLower(strings.TrimSpace(*in.ListingName))
	}
	if in.ListingDescription != nil {
		l.ListingDescription = *in.ListingDescription
	}
	if in.Requirements != nil {
		l.Requirements = in.Requirements
	}
	if in.ListingType != nil {
		if !contains(company.ListingTypes, *in.ListingType) {
			return company.Listing{}, &ValidationError{Message: "Invalid listing type"}
		}
		l.ListingType = *in.ListingType
	}
	if in.Salary != nil {
		l.Salary = in.Salary
	}
	if in.Benefits != nil {
		l.Benefits = in.Benefits
	}

	if err := u.listings.Update(ctx, l); err != nil {
		if errors.Is(err, company.ErrListingNotFound) {
			return company.Listing{}, company.ErrListingNotFound
		}
		return company.Listing{}, ErrInternal
	}
	return l, nil
}

func (u *Companies) DeleteListing(ctx context.Context, id uuid.UUID) error {
	if err := u.listings.Delete(ctx, id); err != nil {
		if errors.Is(err, company.ErrListingNotFound) {
			return company.ErrListingNotFound
		}
		return ErrInternal
	}
	return nil
}
