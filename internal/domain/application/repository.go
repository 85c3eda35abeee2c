package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("application not found")
	ErrDuplicate = errors.New("application already exists")
)

type Repository interface {
	// Create inserts the application; a second application by the same
	// applicant for the same job returns ErrDuplicate (store-level unique
	// constraint, so the check holds under concurrent submissions too).
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id uuid.UUID) (Application, error)
	ExistsByJobAndApplicant(ctx context.Context, jobID, applicantID uuid.UUID) (bool, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]Application, error)
	ListByJobIDs(ctx context.Context, jobIDs []uuid.UUID) ([]Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (Application, error)
}
