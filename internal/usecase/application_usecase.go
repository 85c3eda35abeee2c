package usecase

import (
	"context"
	"errors"

	"talenthub/internal/domain/application"
	"talenthub/internal/domain/job"

	"github.com/google/uuid"
)

var (
	ErrAlreadyApplied        = errors.New("already applied for this job")
	ErrNotApplicationViewer  = errors.New("not authorized to view this application")
	ErrNotApplicationManager = errors.New("not authorized to update this application")
	ErrInvalidStatus         = errors.New("invalid application status")
)

type ApplyInput struct {
	JobID       uuid.UUID
	CoverLetter *string
	Resume      *string
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, applicantID uuid.UUID, in ApplyInput) (application.Application, error)
	Get(ctx context.Context, id, callerID uuid.UUID) (application.Application, error)
	ListForApplicant(ctx context.Context, applicantID uuid.UUID) ([]application.Application, error)
	ListForManager(ctx context.Context, managerID uuid.UUID) ([]application.Application, error)
	UpdateStatus(ctx context.Context, id, managerID uuid.UUID, status string) (application.Application, error)
}

type Applications struct {
	applications application.Repository
	jobs         job.Repository
}

func NewApplicationUsecase(applications application.Repository, jobs job.Repository) *Applications {
	return &Applications{applications: applications, jobs: jobs}
}

// Apply submits one application per (job, applicant). The pre-check keeps
// the common path friendly; the store's unique constraint closes the race
// between concurrent submissions.
func (u *Applications) Apply(ctx context.Context, applicantID uuid.UUID, in ApplyInput) (application.Application, error) {
	if _, err := u.jobs.GetByID(ctx, in.JobID); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Application{}, job.ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	exists, err := u.applications.ExistsByJobAndApplicant(ctx, in.JobID, applicantID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if exists {
		return application.Application{}, ErrAlreadyApplied
	}

	a := application.Application{
		ID:          uuid.New(),
		JobID:       in.JobID,
		ApplicantID: applicantID,
		Status:      application.StatusPending,
		CoverLetter: in.CoverLetter,
		Resume:      in.Resume,
	}

	if err := u.applications.Create(ctx, a); err != nil {
		if errors.Is(err, application.ErrDuplicate) {
			return application.Application{}, ErrAlreadyApplied
		}
		return application.Application{}, ErrInternal
	}

	return a, nil
}

// Get enforces that the caller is either the applicant or the hiring manager
// who owns the referenced job.
func (u *Applications) Get(ctx context.Context, id, callerID uuid.UUID) (application.Application, error) {
	a, err := u.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	j, err := u.jobs.GetByID(ctx, a.JobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Application{}, job.ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	if a.ApplicantID != callerID && j.HiringManagerID != callerID {
		return application.Application{}, ErrNotApplicationViewer
	}

	return a, nil
}

func (u *Applications) ListForApplicant(ctx context.Context, applicantID uuid.UUID) ([]application.Application, error) {
	apps, err := u.applications.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, ErrInternal
	}
	return apps, nil
}

func (u *Applications) ListForManager(ctx context.Context, managerID uuid.UUID) ([]application.Application, error) {
	jobs, err := u.jobs.List(ctx, job.Filter{HiringManagerID: &managerID})
	if err != nil {
		return nil, ErrInternal
	}

	jobIDs := make([]uuid.UUID, 0, len(jobs))
	for _, j := range jobs {
		jobIDs = append(jobIDs, j.ID)
	}

	apps, err := u.applications.ListByJobIDs(ctx, jobIDs)
	if err != nil {
		return nil, ErrInternal
	}
	return apps, nil
}

// UpdateStatus is the only status transition path and it belongs to the
// hiring manager owning the referenced job.
func (u *Applications) UpdateStatus(ctx context.Context, id, managerID uuid.UUID, status string) (application.Application, error) {
	st := application.Status(status)
	if !st.Valid() {
		return application.Application{}, ErrInvalidStatus
	}

	a, err := u.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	j, err := u.jobs.GetByID(ctx, a.JobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Application{}, job.ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	if j.HiringManagerID != managerID {
		return application.Application{}, ErrNotApplicationManager
	}

	updated, err := u.applications.UpdateStatus(ctx, id, st)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, ErrInternal
	}

	return updated, nil
}
