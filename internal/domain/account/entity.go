package account

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleJobSeeker     Role = "job_seeker"
	RoleHiringManager Role = "hiring_manager"
)

func (r Role) Valid() bool {
	return r == RoleJobSeeker || r == RoleHiringManager
}

// Address is stored as a single JSONB document on the account row.
type Address struct {
	Street     string `json:"street,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

type Skill struct {
	Name        string `json:"name"`
	Proficiency string `json:"proficiency,omitempty"`
}

// Account covers both roles; the role tag decides which profile fields are
// meaningful. PasswordHash never leaves the persistence boundary unsanitized.
type Account struct {
	ID               uuid.UUID
	Username         string
	Email            string
	FullName         string
	PhoneNumber      string
	PasswordHash     string
	Role             Role
	ProfileCompleted bool
	IsVerified       bool
	VerificationCode *string
	CodeIssuedAt     *time.Time

	// job seeker profile
	Nationality  *string
	DOB          *time.Time
	Education    *string
	Experience   *string
	Skills       []Skill
	Certificates *string
	Fields       *string

	// hiring manager profile
	CurrentPosition *string
	CompanyName     *string
	Department      *string
	OrgRole         *string
	CompanySize     *string
	Industry        *string

	Address *Address

	CreatedAt time.Time
	UpdatedAt time.Time
}
