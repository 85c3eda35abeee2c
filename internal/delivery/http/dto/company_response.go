package dto

import (
	"time"

	"talenthub/internal/domain/company"

	"github.com/google/uuid"
)

type CompanyResponse struct {
	ID                 uuid.UUID `json:"id"`
	CompanyName        string    `json:"companyName"`
	CompanyDescription string    `json:"companyDescription"`
	Country            string    `json:"country"`
	Size               string    `json:"size"`
	Industry           string    `json:"industry"`
	OpenPositions      int       `json:"openPositions"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func NewCompanyResponse(c company.Company) CompanyResponse {
	return CompanyResponse{
		ID:                 c.ID,
		CompanyName:        c.CompanyName,
		CompanyDescription: c.CompanyDescription,
		Country:            c.Country,
		Size:               c.Size,
		Industry:           c.Industry,
		OpenPositions:      c.OpenPositions,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

func NewCompanyResponses(companies []company.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(companies))
	for _, c := range companies {
		out = append(out, NewCompanyResponse(c))
	}
	return out
}

type ListingResponse struct {
	ID                 uuid.UUID  `json:"id"`
	Company            *uuid.UUID `json:"company,omitempty"`
	ListingName        string     `json:"listingName"`
	ListingDescription string     `json:"listingDescription"`
	Requirements       *string    `json:"requirements,omitempty"`
	ListingType        string     `json:"listingType"`
	Salary             *string    `json:"salary,omitempty"`
	Benefits           *string    `json:"benefits,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

func NewListingResponse(l company.Listing) ListingResponse {
	return ListingResponse{
		ID:                 l.ID,
		Company:            l.CompanyID,
		ListingName:        l.ListingName,
		ListingDescription: l.ListingDescription,
		Requirements:       l.Requirements,
		ListingType:        l.ListingType,
		Salary:             l.Salary,
		Benefits:           l.Benefits,
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
	}
}

func NewListingResponses(listings []company.Listing) []ListingResponse {
	out := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, NewListingResponse(l))
	}
	return out
}
