package postgres

import (
	"context"
	"fmt"

	"talenthub/internal/database"
	"talenthub/internal/domain/job"

	"github.com/google/uuid"
)

const jobColumns = `id, title, company, location, type, description,
	requirements, responsibilities, salary_min, salary_max, salary_currency,
	benefits, skills, experience, education, status, hiring_manager_id,
	created_at, updated_at`

type JobRepository struct {
	db database.DB
}

func NewJobRepository(db database.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, j job.Job) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO jobs (
			id, title, company, location, type, description,
			requirements, responsibilities, salary_min, salary_max, salary_currency,
			benefits, skills, experience, education, status, hiring_manager_id
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17
		)`,
		j.ID, j.Title, j.Company, j.Location, j.Type, j.Description,
		j.Requirements, j.Responsibilities, j.Salary.Min, j.Salary.Max, j.Salary.Currency,
		j.Benefits, j.Skills, j.Experience, j.Education, string(j.Status), j.HiringManagerID,
	)
	return err
}

func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM jobs WHERE id = $1`, jobColumns), id)
	return scanJob(row)
}

func (r *JobRepository) List(ctx context.Context, f job.Filter) ([]job.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs`, jobColumns)
	var (
		args  []any
		conds []string
	)
	if f.HiringManagerID != nil {
		args = append(args, *f.HiringManagerID)
		conds = append(conds, fmt.Sprintf("hiring_manager_id = $%d", len(args)))
	}
	if f.Status != nil {
		args = append(args, string(*f.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

func (r *JobRepository) Update(ctx context.Context, j job.Job) error {
	n, err := r.db.Exec(ctx, `
		UPDATE jobs SET
			title = $2, company = $3, location = $4, type = $5, description = $6,
			requirements = $7, responsibilities = $8,
			salary_min = $9, salary_max = $10, salary_currency = $11,
			benefits = $12, skills = $13, experience = $14, education = $15, status = $16,
			updated_at = now()
		WHERE id = $1`,
		j.ID, j.Title, j.Company, j.Location, j.Type, j.Description,
		j.Requirements, j.Responsibilities,
		j.Salary.Min, j.Salary.Max, j.Salary.Currency,
		j.Benefits, j.Skills, j.Experience, j.Education, string(j.Status),
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanJob(row scannable) (job.Job, error) {
	var (
		j      job.Job
		status string
	)
	err := row.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location, &j.Type, &j.Description,
		&j.Requirements, &j.Responsibilities, &j.Salary.Min, &j.Salary.Max, &j.Salary.Currency,
		&j.Benefits, &j.Skills, &j.Experience, &j.Education, &status, &j.HiringManagerID,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	j.Status = job.Status(status)
	return j, nil
}
