package job

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusActive Status = "Active"
	StatusClosed Status = "Closed"
	StatusDraft  Status = "Draft"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusClosed || s == StatusDraft
}

var (
	Locations = []string{
		"United Arab Emirates",
		"Saudi Arabia",
		"Qatar",
		"Kuwait",
		"Oman",
		"Bahrain",
	}
	Types       = []string{"Full-time", "Part-time", "Contract", "Internship", "Remote"}
	Experiences = []string{"Entry Level", "Mid Level", "Senior Level", "Executive"}
	Educations  = []string{"High School", "Bachelor's", "Master's", "PhD", "Any"}
	Currencies  = []string{"AED", "SAR", "QAR", "KWD", "BHD", "OMR", "USD", "EUR", "GBP"}
)

const DefaultCurrency = "AED"

type Salary struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

type Job struct {
	ID               uuid.UUID
	Title            string
	Company          string
	Location         string
	Type             string
	Description      string
	Requirements     []string
	Responsibilities []string
	Salary           Salary
	Benefits         []string
	Skills           []string
	Experience       string
	Education        string
	Status           Status
	HiringManagerID  uuid.UUID
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
