package usecase

import (
	"context"
	"errors"
	"time"

	"talenthub/internal/domain/job"

	"github.com/google/uuid"
)

var ErrNotJobOwner = errors.New("not the owner of this job")

const jobListCacheKey = "jobs:list:all"

// Cache is the best-effort JSON cache consumed by the job catalog; a nil
// Cache disables caching entirely.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type CreateJobInput struct {
	Title            string
	Company          string
	Location         string
	Type             string
	Description      string
	Requirements     []string
	Responsibilities []string
	Salary           *job.Salary
	Benefits         []string
	Skills           []string
	Experience       string
	Education        string
	Status           string
}

// UpdateJobInput applies only the fields present in the request body.
type UpdateJobInput struct {
	Title            *string
	Company          *string
	Location         *string
	Type             *string
	Description      *string
	Requirements     []string
	Responsibilities []string
	Salary           *job.Salary
	Benefits         []string
	Skills           []string
	Experience       *string
	Education        *string
	Status           *string
}

type JobUsecase interface {
	Create(ctx context.Context, hiringManagerID uuid.UUID, in CreateJobInput) (job.Job, error)
	Get(ctx context.Context, id uuid.UUID) (job.Job, error)
	ListAll(ctx context.Context) ([]job.Job, error)
	ListByManager(ctx context.Context, managerID uuid.UUID) ([]job.Job, error)
	ListActiveByManager(ctx context.Context, managerID uuid.UUID) ([]job.Job, error)
	Update(ctx context.Context, id, callerID uuid.UUID, in UpdateJobInput) (job.Job, error)
	Delete(ctx context.Context, id, callerID uuid.UUID) error
}

type Jobs struct {
	jobs  job.Repository
	cache Cache
}

func NewJobUsecase(jobs job.Repository, cache Cache) *Jobs {
	return &Jobs{jobs: jobs, cache: cache}
}

func (u *Jobs) Create(ctx context.Context, hiringManagerID uuid.UUID, in CreateJobInput) (job.Job, error) {
	if verr := validateCreateJob(in); verr != nil {
		return job.Job{}, verr
	}

	currency := in.Salary.Currency
	if currency == "" {
		currency = job.DefaultCurrency
	}
	status := job.Status(in.Status)
	if in.Status == "" {
		status = job.StatusActive
	}

	j := job.Job{
		ID:               uuid.New(),
		Title:            in.Title,
		Company:          in.Company,
		Location:         in.Location,
		Type:             in.Type,
		Description:      in.Description,
		Requirements:     in.Requirements,
		Responsibilities: in.Responsibilities,
		Salary:           job.Salary{Min: in.Salary.Min, Max: in.Salary.Max, Currency: currency},
		Benefits:         in.Benefits,
		Skills:           in.Skills,
		Experience:       in.Experience,
		Education:        in.Education,
		Status:           status,
		HiringManagerID:  hiringManagerID,
	}
	if j.Benefits == nil {
		j.Benefits = []string{}
	}

	if verr := validateJobEnums(j); verr != nil {
		return job.Job{}, verr
	}

	if err := u.jobs.Create(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}

	u.invalidateListCache(ctx)
	return j, nil
}

func (u *Jobs) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Jobs) ListAll(ctx context.Context) ([]job.Job, error) {
	if u.cache != nil {
		var cached []job.Job
		if ok, err := u.cache.GetJSON(ctx, jobListCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	jobs, err := u.jobs.List(ctx, job.Filter{})
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, jobListCacheKey, jobs, 0)
	}
	return jobs, nil
}

func (u *Jobs) ListByManager(ctx context.Context, managerID uuid.UUID) ([]job.Job, error) {
	jobs, err := u.jobs.List(ctx, job.Filter{HiringManagerID: &managerID})
	if err != nil {
		return nil, ErrInternal
	}
	return jobs, nil
}

func (u *Jobs) ListActiveByManager(ctx context.Context, managerID uuid.UUID) ([]job.Job, error) {
	active := job.StatusActive
	jobs, err := u.jobs.List(ctx, job.Filter{HiringManagerID: &managerID, Status: &active})
	if err != nil {
		return nil, ErrInternal
	}
	return jobs, nil
}

func (u *Jobs) Update(ctx context.Context, id, callerID uuid.UUID, in UpdateJobInput) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}

	if j.HiringManagerID != callerID {
		return job.Job{}, ErrNotJobOwner
	}

	applyJobUpdate(&j, in)

	if verr := validateJobEnums(j); verr != nil {
		return job.Job{}, verr
	}
	if j.Salary.Min <= 0 || j.Salary.Max <= 0 || j.Salary.Currency == "" {
		return job.Job{}, &ValidationError{Message: "Invalid salary information"}
	}

	if err := u.jobs.Update(ctx, j); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, ErrInternal
	}

	u.invalidateListCache(ctx)
	return j, nil
}

func (u *Jobs) Delete(ctx context.Context, id, callerID uuid.UUID) error {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.ErrNotFound
		}
		return ErrInternal
	}

	if j.HiringManagerID != callerID {
		return ErrNotJobOwner
	}

	if err := u.jobs.Delete(ctx, id); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.ErrNotFound
		}
		return ErrInternal
	}

	u.invalidateListCache(ctx)
	return nil
}

func (u *Jobs) invalidateListCache(ctx context.Context) {
	if u.cache == nil {
		return
	}
	_ = u.cache.DeleteByPattern(ctx, "jobs:*")
}

func validateCreateJob(in CreateJobInput) error {
	required := []struct {
		present bool
		label   string
	}{
		{in.Title != "", "Job title"},
		{in.Company != "", "Company name"},
		{in.Location != "", "Location"},
		{in.Type != "", "Job type"},
		{in.Description != "", "Job description"},
		{len(in.Requirements) > 0, "Requirements"},
		{len(in.Responsibilities) > 0, "Responsibilities"},
		{in.Salary != nil, "Salary information"},
		{len(in.Skills) > 0, "Required skills"},
		{in.Experience != "", "Experience level"},
		{in.Education != "", "Education requirement"},
	}

	var missing []string
	for _, f := range required {
		if !f.present {
			missing = append(missing, f.label)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Message: "Missing required fields", Fields: missing}
	}

	if in.Salary.Min <= 0 || in.Salary.Max <= 0 {
		return &ValidationError{Message: "Invalid salary information"}
	}
	if in.Salary.Currency != "" && !contains(job.Currencies, in.Salary.Currency) {
		return &ValidationError{Message: "Invalid salary information"}
	}

	if allBlank(in.Requirements) {
		return &ValidationError{Message: "At least one requirement is needed"}
	}
	if allBlank(in.Responsibilities) {
		return &ValidationError{Message: "At least one responsibility is needed"}
	}
	if allBlank(in.Skills) {
		return &ValidationError{Message: "At least one skill is required"}
	}

	return nil
}

func validateJobEnums(j job.Job) error {
	var details []string
	if !contains(job.Locations, j.Location) {
		details = append(details, "Location")
	}
	if !contains(job.Types, j.Type) {
		details = append(details, "Job type")
	}
	if !contains(job.Experiences, j.Experience) {
		details = append(details, "Experience level")
	}
	if !contains(job.Educations, j.Education) {
		details = append(details, "Education requirement")
	}
	if !j.Status.Valid() {
		details = append(details, "Status")
	}
	if !contains(job.Currencies, j.Salary.Currency) {
		details = append(details, "Currency")
	}
	if len(details) > 0 {
		return &ValidationError{Message: "Validation error", Details: details}
	}
	return nil
}

func applyJobUpdate(j *job.Job, in UpdateJobInput) {
	if in.Title != nil {
		j.Title = *in.Title
	}
	if in.Company != nil {
		j.Company = *in.Company
	}
	if in.Location != nil {
		j.Location = *in.Location
	}
	if in.Type != nil {
		j.Type = *in.Type
	}
	if in.Description != nil {
		j.Description = *in.Description
	}
	if in.Requirements != nil {
		j.Requirements = in.Requirements
	}
	if in.Responsibilities != nil {
		j.Responsibilities = in.Responsibilities
	}
	if in.Salary != nil {
		currency := in.Salary.Currency
		if currency == "" {
			currency = j.Salary.Currency
		}
		j.Salary = job.Salary{Min: in.Salary.Min, Max: in.Salary.Max, Currency: currency}
	}
	if in.Benefits != nil {
		j.Benefits = in.Benefits
	}
	if in.Skills != nil {
		j.Skills = in.Skills
	}
	if in.Experience != nil {
		j.Experience = *in.Experience
	}
	if in.Education != nil {
		j.Education = *in.Education
	}
	if in.Status != nil {
		j.Status = job.Status(*in.Status)
	}
}

func allBlank(items []string) bool {
	for _, s := range items {
		if s != "" {
			return false
		}
	}
	return true
}
