package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"talenthub/internal/domain/company"

	"github.com/google/uuid"
)

type fakeCompanyRepo struct {
	byID map[uuid.UUID]company.Company
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{byID: make(map[uuid.UUID]company.Company)}
}

func (f *fakeCompanyRepo) Create(_ context.Context, c company.Company) error {
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) GetByID(_ context.Context, id uuid.UUID) (company.Company, error) {
	c, ok := f.byID[id]
	if !ok {
		return company.Company{}, company.ErrNotFound
	}
	return c, nil
}

func (f *fakeCompanyRepo) List(_ context.Context) ([]company.Company, error) {
	var out []company.Company
	for _, c := range f.byID {
		out = append(out, c)
	}
	return out, nil
}

func (f *fakeCompanyRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, c := range f.byID {
		if strings.EqualFold(c.CompanyName, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCompanyRepo) Update(_ context.Context, c company.Company) error {
	if _, ok := f.byID[c.ID]; !ok {
		return company.ErrNotFound
	}
	f.byID[c.ID] = c
	return nil
}

func (f *fakeCompanyRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return company.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeListingRepo struct {
	byID map[uuid.UUID]company.Listing
}

func newFakeListingRepo() *fakeListingRepo {
	return &fakeListingRepo{byID: make(map[uuid.UUID]company.Listing)}
}

func (f *fakeListingRepo) Create(_ context.Context, l company.Listing) error {
	f.byID[l.ID] = l
	return nil
}

func (f *fakeListingRepo) GetByID(_ context.Context, id uuid.UUID) (company.Listing, error) {
	l, ok := f.byID[id]
	if !ok {
		return company.Listing{}, company.ErrListingNotFound
	}
	return l, nil
}

func (f *fakeListingRepo) ListByCompany(_ context.Context, companyID uuid.UUID) ([]company.Listing, error) {
	var out []company.Listing
	for _, l := range f.byID {
		if l.CompanyID != nil && *l.CompanyID == companyID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeListingRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, l := range f.byID {
		if strings.EqualFold(l.ListingName, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeListingRepo) Update(_ context.Context, l company.Listing) error {
	if _, ok := f.byID[l.ID]; !ok {
		return company.ErrListingNotFound
	}
	f.byID[l.ID] = l
	return nil
}

func (f *fakeListingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return company.ErrListingNotFound
	}
	delete(f.byID, id)
	return nil
}

func validCompanyInput() CreateCompanyInput {
	return CreateCompanyInput{
		CompanyName:        "Acme",
		CompanyDescription: "We make everything",
		Country:            "United Arab Emirates",
		Size:               "11-50",
		Industry:           "Software",
		OpenPositions:      3,
	}
}

func TestCompanyCreate_NameUniqueness(t *testing.T) {
	uc := NewCompanyUsecase(newFakeCompanyRepo(), newFakeListingRepo())

	created, err := uc.Create(context.Background(), validCompanyInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.CompanyName != "acme" {
		t.Fatalf("expected lowercased stored name, got %q", created.CompanyName)
	}

	in := validCompanyInput()
	in.CompanyName = "ACME"
	_, err = uc.Create(context.Background(), in)
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Message != "Company name already taken" {
		t.Fatalf("expected name-taken validation error, got %v", err)
	}
}

func TestCompanyCreate_MissingFields(t *testing.T) {
	uc := NewCompanyUsecase(newFakeCompanyRepo(), newFakeListingRepo())

	in := validCompanyInput()
	in.CompanyName = ""
	in.Industry = ""

	_, err := uc.Create(context.Background(), in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Message != "Missing required fields" || len(verr.Fields) != 2 {
		t.Fatalf("expected 2 itemized fields, got %v", verr)
	}
}

func TestCreateListing_RequiresNameAndDescription(t *testing.T) {
	companies := newFakeCompanyRepo()
	uc := NewCompanyUsecase(companies, newFakeListingRepo())

	created, err := uc.Create(context.Background(), validCompanyInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, err = uc.CreateListing(context.Background(), created.ID, CreateListingInput{ListingName: "Backend role"})
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Message != "Job name and description are required" {
		t.Fatalf("expected name-and-description error, got %v", err)
	}
}

func TestCreateListing_DefaultsTypeAndLinksCompany(t *testing.T) {
	companies := newFakeCompanyRepo()
	uc := NewCompanyUsecase(companies, newFakeListingRepo())

	created, err := uc.Create(context.Background(), validCompanyInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	l, err := uc.CreateListing(context.Background(), created.ID, CreateListingInput{
		ListingName:        "Backend role",
		ListingDescription: "Build the backend",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if l.ListingType != company.DefaultListingType {
		t.Fatalf("expected default listing type, got %q", l.ListingType)
	}
	if l.CompanyID == nil || *l.CompanyID != created.ID {
		t.Fatalf("listing not linked to its company")
	}
}

func TestCreateListing_UnknownCompany(t *testing.T) {
	uc := NewCompanyUsecase(newFakeCompanyRepo(), newFakeListingRepo())

	_, err := uc.CreateListing(context.Background(), uuid.New(), CreateListingInput{
		ListingName:        "Backend role",
		ListingDescription: "Build the backend",
	})
	if !errors.Is(err, company.ErrNotFound) {
		t.Fatalf("expected company.ErrNotFound, got %v", err)
	}
}

func TestCompanyDelete_LeavesListings(t *testing.T) {
	companies := newFakeCompanyRepo()
	listings := newFakeListingRepo()
	uc := NewCompanyUsecase(companies, listings)

	created, err := uc.Create(context.Background(), validCompanyInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	l, err := uc.CreateListing(context.Background(), created.ID, CreateListingInput{
		ListingName:        "Backend role",
		ListingDescription: "Build the backend",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := uc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.GetListing(context.Background(), l.ID); err != nil {
		t.Fatalf("orphaned listings must survive company deletion: %v", err)
	}
}
