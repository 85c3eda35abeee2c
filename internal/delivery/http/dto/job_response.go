package dto

import (
	"time"

	"talenthub/internal/domain/job"

	"github.com/google/uuid"
)

type JobResponse struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Company          string     `json:"company"`
	Location         string     `json:"location"`
	Type             string     `json:"type"`
	Description      string     `json:"description"`
	Requirements     []string   `json:"requirements"`
	Responsibilities []string   `json:"responsibilities"`
	Salary           job.Salary `json:"salary"`
	Benefits         []string   `json:"benefits"`
	Skills           []string   `json:"skills"`
	Experience       string     `json:"experience"`
	Education        string     `json:"education"`
	Status           string     `json:"status"`
	HiringManager    uuid.UUID  `json:"hiringManager"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func NewJobResponse(j job.Job) JobResponse {
	return JobResponse{
		ID:               j.ID,
		Title:            j.Title,
		Company:          j.Company,
		Location:         j.Location,
		Type:             j.Type,
		Description:      j.Description,
		Requirements:     j.Requirements,
		Responsibilities: j.Responsibilities,
		Salary:           j.Salary,
		Benefits:         j.Benefits,
		Skills:           j.Skills,
		Experience:       j.Experience,
		Education:        j.Education,
		Status:           string(j.Status),
		HiringManager:    j.HiringManagerID,
		CreatedAt:        j.CreatedAt,
		UpdatedAt:        j.UpdatedAt,
	}
}

func NewJobResponses(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, NewJobResponse(j))
	}
	return out
}
