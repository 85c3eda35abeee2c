package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talenthub/internal/domain/job"

	"github.com/google/uuid"
)

type fakeJobRepo struct {
	byID map[uuid.UUID]job.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{byID: make(map[uuid.UUID]job.Job)}
}

func (f *fakeJobRepo) Create(_ context.Context, j job.Job) error {
	f.byID[j.ID] = j
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := f.byID[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (f *fakeJobRepo) List(_ context.Context, flt job.Filter) ([]job.Job, error) {
	var out []job.Job
	for _, j := range f.byID {
		if flt.HiringManagerID != nil && j.HiringManagerID != *flt.HiringManagerID {
			continue
		}
		if flt.Status != nil && j.Status != *flt.Status {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (f *fakeJobRepo) Update(_ context.Context, j job.Job) error {
	if _, ok := f.byID[j.ID]; !ok {
		return job.ErrNotFound
	}
	f.byID[j.ID] = j
	return nil
}

func (f *fakeJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.byID[id]; !ok {
		return job.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeCache struct {
	store      map[string][]byte
	invalidate int
}

func (f *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) { return false, nil }
func (f *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	return nil
}
func (f *fakeCache) DeleteByPattern(_ context.Context, _ string) error {
	f.invalidate++
	return nil
}

func validJobInput() CreateJobInput {
	return CreateJobInput{
		Title:            "Backend Engineer",
		Company:          "Acme",
		Location:         "Qatar",
		Type:             "Full-time",
		Description:      "Build services",
		Requirements:     []string{"Go"},
		Responsibilities: []string{"Ship features"},
		Salary:           &job.Salary{Min: 10000, Max: 20000, Currency: "AED"},
		Skills:           []string{"Go", "PostgreSQL"},
		Experience:       "Mid Level",
		Education:        "Bachelor's",
	}
}

func TestJobCreate_MissingFieldsItemized(t *testing.T) {
	uc := NewJobUsecase(newFakeJobRepo(), nil)

	in := validJobInput()
	in.Title = ""
	in.Salary = nil
	in.Skills = nil

	_, err := uc.Create(context.Background(), uuid.New(), in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Message != "Missing required fields" {
		t.Fatalf("unexpected message %q", verr.Message)
	}
	want := map[string]bool{"Job title": true, "Salary information": true, "Required skills": true}
	if len(verr.Fields) != len(want) {
		t.Fatalf("expected %d missing fields, got %v", len(want), verr.Fields)
	}
	for _, f := range verr.Fields {
		if !want[f] {
			t.Fatalf("unexpected missing field %q", f)
		}
	}
}

func TestJobCreate_InvalidSalary(t *testing.T) {
	uc := NewJobUsecase(newFakeJobRepo(), nil)

	in := validJobInput()
	in.Salary = &job.Salary{Min: 10000, Max: 0, Currency: "AED"}

	_, err := uc.Create(context.Background(), uuid.New(), in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Message != "Invalid salary information" {
		t.Fatalf("unexpected message %q", verr.Message)
	}
}

func TestJobCreate_DefaultsAndOwnership(t *testing.T) {
	repo := newFakeJobRepo()
	cache := &fakeCache{}
	uc := NewJobUsecase(repo, cache)
	managerID := uuid.New()

	created, err := uc.Create(context.Background(), managerID, validJobInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Status != job.StatusActive {
		t.Fatalf("expected default Active status, got %q", created.Status)
	}
	if created.HiringManagerID != managerID {
		t.Fatalf("owner not stamped on job")
	}
	if cache.invalidate == 0 {
		t.Fatalf("expected list cache invalidation on create")
	}
}

func TestJobCreate_EnumValidation(t *testing.T) {
	uc := NewJobUsecase(newFakeJobRepo(), nil)

	in := validJobInput()
	in.Location = "Mars"
	in.Type = "Gig"

	_, err := uc.Create(context.Background(), uuid.New(), in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Message != "Validation error" {
		t.Fatalf("unexpected message %q", verr.Message)
	}
	if len(verr.Details) != 2 {
		t.Fatalf("expected 2 invalid values itemized, got %v", verr.Details)
	}
}

func TestJobUpdate_OwnershipEnforced(t *testing.T) {
	repo := newFakeJobRepo()
	uc := NewJobUsecase(repo, nil)
	ownerID := uuid.New()

	created, err := uc.Create(context.Background(), ownerID, validJobInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	title := "Staff Engineer"
	if _, err := uc.Update(context.Background(), created.ID, uuid.New(), UpdateJobInput{Title: &title}); !errors.Is(err, ErrNotJobOwner) {
		t.Fatalf("expected ErrNotJobOwner, got %v", err)
	}

	updated, err := uc.Update(context.Background(), created.ID, ownerID, UpdateJobInput{Title: &title})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Title != "Staff Engineer" {
		t.Fatalf("update not applied, got %q", updated.Title)
	}
}

func TestJobDelete_OwnershipEnforced(t *testing.T) {
	repo := newFakeJobRepo()
	uc := NewJobUsecase(repo, nil)
	ownerID := uuid.New()

	created, err := uc.Create(context.Background(), ownerID, validJobInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if err := uc.Delete(context.Background(), created.ID, uuid.New()); !errors.Is(err, ErrNotJobOwner) {
		t.Fatalf("expected ErrNotJobOwner, got %v", err)
	}
	if err := uc.Delete(context.Background(), created.ID, ownerID); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Get(context.Background(), created.ID); !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("expected job gone, got %v", err)
	}
}

func TestJobGet_NotFound(t *testing.T) {
	uc := NewJobUsecase(newFakeJobRepo(), nil)
	if _, err := uc.Get(context.Background(), uuid.New()); !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("expected job.ErrNotFound, got %v", err)
	}
}
