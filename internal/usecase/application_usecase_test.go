package usecase

import (
	"context"
	"errors"
	"testing"

	"talenthub/internal/domain/application"
	"talenthub/internal/domain/job"

	"github.com/google/uuid"
)

type fakeApplicationRepo struct {
	byID map[uuid.UUID]application.Application
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{byID: make(map[uuid.UUID]application.Application)}
}

func (f *fakeApplicationRepo) Create(_ context.Context, a application.Application) error {
	for _, existing := range f.byID {
		if existing.JobID == a.JobID && existing.ApplicantID == a.ApplicantID {
			return application.ErrDuplicate
		}
	}
	f.byID[a.ID] = a
	return nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	a, ok := f.byID[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (f *fakeApplicationRepo) ExistsByJobAndApplicant(_ context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	for _, a := range f.byID {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationRepo) ListByApplicant(_ context.Context, applicantID uuid.UUID) ([]application.Application, error) {
	var out []application.Application
	for _, a := range f.byID {
		if a.ApplicantID == applicantID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListByJobIDs(_ context.Context, jobIDs []uuid.UUID) ([]application.Application, error) {
	ids := make(map[uuid.UUID]bool, len(jobIDs))
	for _, id := range jobIDs {
		ids[id] = true
	}
	var out []application.Application
	for _, a := range f.byID {
		if ids[a.JobID] {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status application.Status) (application.Application, error) {
	a, ok := f.byID[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	a.Status = status
	f.byID[id] = a
	return a, nil
}

func seedJob(t *testing.T, repo *fakeJobRepo, managerID uuid.UUID) job.Job {
	t.Helper()
	j := job.Job{ID: uuid.New(), Title: "Backend Engineer", HiringManagerID: managerID, Status: job.StatusActive}
	if err := repo.Create(context.Background(), j); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	return j
}

func TestApply_CreatesPendingApplication(t *testing.T) {
	jobs := newFakeJobRepo()
	apps := newFakeApplicationRepo()
	uc := NewApplicationUsecase(apps, jobs)

	managerID := uuid.New()
	applicantID := uuid.New()
	j := seedJob(t, jobs, managerID)

	created, err := uc.Apply(context.Background(), applicantID, ApplyInput{JobID: j.ID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Status != application.StatusPending {
		t.Fatalf("expected Pending status, got %q", created.Status)
	}
	if created.ApplicantID != applicantID || created.JobID != j.ID {
		t.Fatalf("application not linked to caller and job")
	}
}

func TestApply_UnknownJob(t *testing.T) {
	uc := NewApplicationUsecase(newFakeApplicationRepo(), newFakeJobRepo())

	if _, err := uc.Apply(context.Background(), uuid.New(), ApplyInput{JobID: uuid.New()}); !errors.Is(err, job.ErrNotFound) {
		t.Fatalf("expected job.ErrNotFound, got %v", err)
	}
}

func TestApply_DuplicateRejected(t *testing.T) {
	jobs := newFakeJobRepo()
	apps := newFakeApplicationRepo()
	uc := NewApplicationUsecase(apps, jobs)

	applicantID := uuid.New()
	j := seedJob(t, jobs, uuid.New())

	if _, err := uc.Apply(context.Background(), applicantID, ApplyInput{JobID: j.ID}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Apply(context.Background(), applicantID, ApplyInput{JobID: j.ID}); !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestGet_ViewerAuthorization(t *testing.T) {
	jobs := newFakeJobRepo()
	apps := newFakeApplicationRepo()
	uc := NewApplicationUsecase(apps, jobs)

	managerID := uuid.New()
	applicantID := uuid.New()
	j := seedJob(t, jobs, managerID)

	created, err := uc.Apply(context.Background(), applicantID, ApplyInput{JobID: j.ID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := uc.Get(context.Background(), created.ID, applicantID); err != nil {
		t.Fatalf("applicant must see own application: %v", err)
	}
	if _, err := uc.Get(context.Background(), created.ID, managerID); err != nil {
		t.Fatalf("owning manager must see the application: %v", err)
	}
	if _, err := uc.Get(context.Background(), created.ID, uuid.New()); !errors.Is(err, ErrNotApplicationViewer) {
		t.Fatalf("expected ErrNotApplicationViewer, got %v", err)
	}
}

func TestUpdateStatus_OwnershipAndValidation(t *testing.T) {
	jobs := newFakeJobRepo()
	apps := newFakeApplicationRepo()
	uc := NewApplicationUsecase(apps, jobs)

	managerID := uuid.New()
	j := seedJob(t, jobs, managerID)

	created, err := uc.Apply(context.Background(), uuid.New(), ApplyInput{JobID: j.ID})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if _, err := uc.UpdateStatus(context.Background(), created.ID, managerID, "Archived"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := uc.UpdateStatus(context.Background(), created.ID, uuid.New(), "Accepted"); !errors.Is(err, ErrNotApplicationManager) {
		t.Fatalf("expected ErrNotApplicationManager, got %v", err)
	}

	updated, err := uc.UpdateStatus(context.Background(), created.ID, managerID, "Accepted")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != application.StatusAccepted {
		t.Fatalf("expected Accepted, got %q", updated.Status)
	}
}

func TestListForManager_OnlyOwnJobs(t *testing.T) {
	jobs := newFakeJobRepo()
	apps := newFakeApplicationRepo()
	uc := NewApplicationUsecase(apps, jobs)

	managerA := uuid.New()
	managerB := uuid.New()
	jobA := seedJob(t, jobs, managerA)
	jobB := seedJob(t, jobs, managerB)

	if _, err := uc.Apply(context.Background(), uuid.New(), ApplyInput{JobID: jobA.ID}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if _, err := uc.Apply(context.Background(), uuid.New(), ApplyInput{JobID: jobB.ID}); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	got, err := uc.ListForManager(context.Background(), managerA)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].JobID != jobA.ID {
		t.Fatalf("expected only manager A's applications, got %v", got)
	}
}
