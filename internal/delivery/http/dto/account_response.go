package dto

import (
	"time"

	"talenthub/internal/domain/account"

	"github.com/google/uuid"
)

// AccountResponse is the serialized account shape. The password hash and any
// outstanding verification code are never part of it.
type AccountResponse struct {
	ID               uuid.UUID        `json:"id"`
	Username         string           `json:"username"`
	FullName         string           `json:"fullName"`
	Email            string           `json:"email"`
	PhoneNumber      string           `json:"phoneNumber"`
	UserType         string           `json:"userType"`
	ProfileCompleted bool             `json:"profileCompleted"`
	IsVerified       bool             `json:"isVerified"`
	Nationality      *string          `json:"nationality,omitempty"`
	DOB              *time.Time       `json:"dob,omitempty"`
	Education        *string          `json:"education,omitempty"`
	Experience       *string          `json:"experience,omitempty"`
	Skills           []account.Skill  `json:"skills,omitempty"`
	Certificates     *string          `json:"certificates,omitempty"`
	Fields           *string          `json:"fields,omitempty"`
	CurrentPosition  *string          `json:"currentPosition,omitempty"`
	Company          *string          `json:"company,omitempty"`
	Department       *string          `json:"department,omitempty"`
	Role             *string          `json:"role,omitempty"`
	CompanySize      *string          `json:"companySize,omitempty"`
	Industry         *string          `json:"industry,omitempty"`
	Address          *account.Address `json:"address,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
}

func NewAccountResponse(a account.Account) AccountResponse {
	return AccountResponse{
		ID:               a.ID,
		Username:         a.Username,
		FullName:         a.FullName,
		Email:            a.Email,
		PhoneNumber:      a.PhoneNumber,
		UserType:         string(a.Role),
		ProfileCompleted: a.ProfileCompleted,
		IsVerified:       a.IsVerified,
		Nationality:      a.Nationality,
		DOB:              a.DOB,
		Education:        a.Education,
		Experience:       a.Experience,
		Skills:           a.Skills,
		Certificates:     a.Certificates,
		Fields:           a.Fields,
		CurrentPosition:  a.CurrentPosition,
		Company:          a.CompanyName,
		Department:       a.Department,
		Role:             a.OrgRole,
		CompanySize:      a.CompanySize,
		Industry:         a.Industry,
		Address:          a.Address,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}
