package dto

import (
	"time"

	"talenthub/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	Job         uuid.UUID `json:"job"`
	Applicant   uuid.UUID `json:"applicant"`
	Status      string    `json:"status"`
	CoverLetter *string   `json:"coverLetter,omitempty"`
	Resume      *string   `json:"resume,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		Job:         a.JobID,
		Applicant:   a.ApplicantID,
		Status:      string(a.Status),
		CoverLetter: a.CoverLetter,
		Resume:      a.Resume,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func NewApplicationResponses(apps []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, NewApplicationResponse(a))
	}
	return out
}
