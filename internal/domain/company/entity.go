package company

import (
	"time"

	"github.com/google/uuid"
)

var ListingTypes = []string{"Part-Time", "Full-Time", "Training", "Flex-Time"}

const DefaultListingType = "Part-Time"

type Company struct {
	ID                 uuid.UUID
	CompanyName        string
	CompanyDescription string
	Country            string
	Size               string
	Industry           string
	OpenPositions      int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Listing belongs to zero-or-one company, fixed at creation time. Deleting a
// company leaves its listings orphaned on purpose (no cascade).
type Listing struct {
	ID                 uuid.UUID
	CompanyID          *uuid.UUID
	ListingName        string
	ListingDescription string
	Requirements       *string
	ListingType        string
	Salary             *string
	Benefits           *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
