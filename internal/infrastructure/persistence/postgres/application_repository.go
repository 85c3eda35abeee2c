package postgres

import (
	"context"
	"fmt"

	"talenthub/internal/database"
	"talenthub/internal/domain/application"

	"github.com/google/uuid"
)

const applicationColumns = `id, job_id, applicant_id, status, cover_letter, resume, created_at, updated_at`

type ApplicationRepository struct {
	db database.DB
}

func NewApplicationRepository(db database.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO applications (id, job_id, applicant_id, status, cover_letter, resume)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		a.ID, a.JobID, a.ApplicantID, string(a.Status), a.CoverLetter, a.Resume,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return application.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM applications WHERE id = $1`, applicationColumns), id)
	return scanApplication(row)
}

func (r *ApplicationRepository) ExistsByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`,
		jobID, applicantID,
	).Scan(&exists)
	return exists, err
}

func (r *ApplicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]application.Application, error) {
	rows, err := r.db.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM applications WHERE applicant_id = $1 ORDER BY created_at DESC`, applicationColumns),
		applicantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *ApplicationRepository) ListByJobIDs(ctx context.Context, jobIDs []uuid.UUID) ([]application.Application, error) {
	if len(jobIDs) == 0 {
		return nil, nil
	}
	rows, err := r.db.Query(ctx,
		fmt.Sprintf(`SELECT %s FROM applications WHERE job_id = ANY($1) ORDER BY created_at DESC`, applicationColumns),
		jobIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectApplications(rows)
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		fmt.Sprintf(`UPDATE applications SET status = $2, updated_at = now()
			WHERE id = $1
			RETURNING %s`, applicationColumns),
		id, string(status),
	)
	return scanApplication(row)
}

func collectApplications(rows database.Rows) ([]application.Application, error) {
	var apps []application.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}

func scanApplication(row scannable) (application.Application, error) {
	var (
		a      application.Application
		status string
	)
	err := row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &status, &a.CoverLetter, &a.Resume, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if isNoRows(err) {
			return application.Application{}, application.ErrNotFound
		}
		return application.Application{}, err
	}
	a.Status = application.Status(status)
	return a, nil
}
