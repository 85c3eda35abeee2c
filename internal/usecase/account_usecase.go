package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"talenthub/internal/domain/account"

	"github.com/google/uuid"
)

var ErrInvalidProfileInput = errors.New("invalid profile input")

var (
	orgRoles     = []string{"recruiter", "hiring_manager", "talent_acquisition", "hr_manager"}
	companySizes = []string{"1-10", "11-50", "51-200", "201-500", "501-1000", "1000+"}
)

// CompleteProfileInput carries every profile field a caller may send; the
// account's role decides which of them are actually applied. This is the
// explicit per-role update schema: fields outside the role's allow-list are
// silently ignored, never blindly assigned.
type CompleteProfileInput struct {
	FullName    *string
	PhoneNumber *string
	Address     *account.Address

	// job seeker allow-list
	Nationality  *string
	DOB          *time.Time
	Education    *string
	Experience   *string
	Skills       []account.Skill
	Certificates *string
	Fields       *string

	// hiring manager allow-list
	CurrentPosition *string
	CompanyName     *string
	Department      *string
	OrgRole         *string
	CompanySize     *string
	Industry        *string
}

type AccountUsecase interface {
	GetProfile(ctx context.Context, id uuid.UUID) (account.Account, error)
	CompleteProfile(ctx context.Context, id uuid.UUID, in CompleteProfileInput) (account.Account, error)
	DeleteProfile(ctx context.Context, id uuid.UUID) error
}

type Accounts struct {
	accounts account.Repository
}

func NewAccountUsecase(accounts account.Repository) *Accounts {
	return &Accounts{accounts: accounts}
}

func (u *Accounts) GetProfile(ctx context.Context, id uuid.UUID) (account.Account, error) {
	a, err := u.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return account.Account{}, account.ErrNotFound
		}
		return account.Account{}, ErrInternal
	}
	return sanitizeAccount(a), nil
}

func (u *Accounts) CompleteProfile(ctx context.Context, id uuid.UUID, in CompleteProfileInput) (account.Account, error) {
	a, err := u.accounts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return account.Account{}, account.ErrNotFound
		}
		return account.Account{}, ErrInternal
	}

	applyShared(&a, in)

	switch a.Role {
	case account.RoleJobSeeker:
		applyJobSeeker(&a, in)
	case account.RoleHiringManager:
		if err := applyHiringManager(&a, in); err != nil {
			return account.Account{}, err
		}
	default:
		return account.Account{}, ErrInternal
	}

	a.ProfileCompleted = true

	if err := u.accounts.Update(ctx, a); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return account.Account{}, account.ErrNotFound
		}
		return account.Account{}, ErrInternal
	}

	return sanitizeAccount(a), nil
}

func (u *Accounts) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	if _, err := u.accounts.GetByID(ctx, id); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return account.ErrNotFound
		}
		return ErrInternal
	}
	if err := u.accounts.Delete(ctx, id); err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return account.ErrNotFound
		}
		return ErrInternal
	}
	return nil
}

func applyShared(a *account.Account, in CompleteProfileInput) {
	if in.FullName != nil && strings.TrimSpace(*in.FullName) != "" {
		a.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.PhoneNumber != nil && strings.TrimSpace(*in.PhoneNumber) != "" {
		a.PhoneNumber = strings.TrimSpace(*in.PhoneNumber)
	}
	if in.Address != nil {
		a.Address = in.Address
	}
}

func applyJobSeeker(a *account.Account, in CompleteProfileInput) {
	if in.Nationality != nil {
		v := strings.ToLower(strings.TrimSpace(*in.Nationality))
		a.Nationality = &v
	}
	if in.DOB != nil {
		a.DOB = in.DOB
	}
	if in.Education != nil {
		a.Education = in.Education
	}
	if in.Experience != nil {
		a.Experience = in.Experience
	}
	if in.Skills != nil {
		a.Skills = in.Skills
	}
	if in.Certificates != nil {
		a.Certificates = in.Certificates
	}
	if in.Fields != nil {
		a.Fields = in.Fields
	}
}

func applyHiringManager(a *account.Account, in CompleteProfileInput) error {
	if in.OrgRole != nil && !contains(orgRoles, *in.OrgRole) {
		return ErrInvalidProfileInput
	}
	if in.CompanySize != nil && !contains(companySizes, *in.CompanySize) {
		return ErrInvalidProfileInput
	}

	if in.CurrentPosition != nil {
		a.CurrentPosition = in.CurrentPosition
	}
	if in.CompanyName != nil {
		a.CompanyName = in.CompanyName
	}
	if in.Department != nil {
		a.Department = in.Department
	}
	if in.OrgRole != nil {
		a.OrgRole = in.OrgRole
	}
	if in.CompanySize != nil {
		a.CompanySize = in.CompanySize
	}
	if in.Industry != nil {
		a.Industry = in.Industry
	}
	return nil
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func sanitizeAccount(a account.Account) account.Account {
	a.PasswordHash = ""
	a.VerificationCode = nil
	return a
}
