package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"talenthub/internal/domain/account"
	"talenthub/internal/infrastructure/email"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongPortal        = errors.New("wrong login portal for this role")
	ErrNoCodeIssued       = errors.New("no verification code issued")
	ErrCodeExpired        = errors.New("verification code expired")
	ErrIncorrectCode      = errors.New("incorrect code")
	ErrInternal           = errors.New("internal error")
)

// ValidationError itemizes the missing required fields of a signup payload.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

// codeTTL is the verification-code lifetime. The original design had no
// expiry; fifteen minutes is a deliberate hardening choice.
const codeTTL = 15 * time.Minute

var (
	emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneRe = regexp.MustCompile(`^\d{8,15}$`)
)

type SignupInput struct {
	Username    string
	FullName    string
	Email       string
	PhoneNumber string
	Password    string

	Address *account.Address

	// job seeker profile
	Nationality *string
	DOB         *time.Time

	// hiring manager profile
	CurrentPosition *string
	CompanyName     *string
	Department      *string
	OrgRole         *string
	CompanySize     *string
	Industry        *string
}

type LoginInput struct {
	Username string
	Password string
}

type Service struct {
	accounts account.Repository
	mailer   email.Sender

	now func() time.Time
}

func NewService(accounts account.Repository, mailer email.Sender) *Service {
	return &Service{accounts: accounts, mailer: mailer, now: time.Now}
}

// Signup creates an account with the given role, hashes the secret, issues a
// verification code and dispatches it fire-and-forget. The returned account
// has its password hash stripped.
func (s *Service) Signup(ctx context.Context, role account.Role, in SignupInput) (account.Account, error) {
	if !role.Valid() {
		return account.Account{}, ErrInternal
	}

	if verr := validateSignup(role, in); verr != nil {
		return account.Account{}, verr
	}

	username := strings.ToLower(strings.TrimSpace(in.Username))
	emailAddr := strings.ToLower(strings.TrimSpace(in.Email))

	existing, err := s.accounts.FindByUsernameOrEmail(ctx, username, emailAddr)
	if err == nil {
		if strings.EqualFold(existing.Email, emailAddr) {
			return account.Account{}, ErrEmailTaken
		}
		return account.Account{}, ErrUsernameTaken
	}
	if !errors.Is(err, account.ErrNotFound) {
		return account.Account{}, ErrInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return account.Account{}, ErrInternal
	}

	code, err := generateCode()
	if err != nil {
		return account.Account{}, ErrInternal
	}
	issuedAt := s.now().UTC()

	a := account.Account{
		ID:               uuid.New(),
		Username:         username,
		Email:            emailAddr,
		FullName:         strings.TrimSpace(in.FullName),
		PhoneNumber:      strings.TrimSpace(in.PhoneNumber),
		PasswordHash:     string(hash),
		Role:             role,
		VerificationCode: &code,
		CodeIssuedAt:     &issuedAt,

		Address: in.Address,
	}

	// Each portal persists only its own profile fields; cross-role fields
	// in the payload are dropped.
	switch role {
	case account.RoleJobSeeker:
		a.Nationality = lowerPtr(in.Nationality)
		a.DOB = in.DOB
	case account.RoleHiringManager:
		a.CurrentPosition = in.CurrentPosition
		a.CompanyName = in.CompanyName
		a.Department = in.Department
		a.OrgRole = in.OrgRole
		a.CompanySize = in.CompanySize
		a.Industry = in.Industry
	}

	if err := s.accounts.Create(ctx, a); err != nil {
		// Lost the uniqueness race: re-check which constraint tripped.
		if existing, exErr := s.accounts.FindByUsernameOrEmail(ctx, username, emailAddr); exErr == nil {
			if strings.EqualFold(existing.Email, emailAddr) {
				return account.Account{}, ErrEmailTaken
			}
			return account.Account{}, ErrUsernameTaken
		}
		return account.Account{}, ErrInternal
	}

	if s.mailer != nil {
		s.mailer.SendVerificationCode(ctx, a.Email, code)
	}

	return sanitize(a), nil
}

// Login verifies credentials and then the role: wrong password is always
// ErrInvalidCredentials; a valid credential presented to the wrong portal is
// ErrWrongPortal, never success.
func (s *Service) Login(ctx context.Context, role account.Role, in LoginInput) (account.Account, error) {
	username := strings.ToLower(strings.TrimSpace(in.Username))
	if username == "" || in.Password == "" {
		return account.Account{}, ErrInvalidCredentials
	}

	a, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return account.Account{}, ErrInvalidCredentials
		}
		return account.Account{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.Password)); err != nil {
		return account.Account{}, ErrInvalidCredentials
	}

	if a.Role != role {
		return account.Account{}, ErrWrongPortal
	}

	return sanitize(a), nil
}

// VerifyEmail consumes an outstanding verification code. A matched code is
// cleared so it can never be replayed; a mismatch changes nothing.
func (s *Service) VerifyEmail(ctx context.Context, emailAddr, code string) (account.Account, error) {
	emailAddr = strings.ToLower(strings.TrimSpace(emailAddr))

	a, err := s.accounts.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, account.ErrNotFound) {
			return account.Account{}, account.ErrNotFound
		}
		return account.Account{}, ErrInternal
	}

	if a.VerificationCode == nil {
		return account.Account{}, ErrNoCodeIssued
	}
	if a.CodeIssuedAt != nil && s.now().UTC().After(a.CodeIssuedAt.Add(codeTTL)) {
		return account.Account{}, ErrCodeExpired
	}
	if strings.TrimSpace(code) != *a.VerificationCode {
		return account.Account{}, ErrIncorrectCode
	}

	a.IsVerified = true
	a.VerificationCode = nil
	a.CodeIssuedAt = nil

	if err := s.accounts.Update(ctx, a); err != nil {
		return account.Account{}, ErrInternal
	}

	return sanitize(a), nil
}

func validateSignup(role account.Role, in SignupInput) *ValidationError {
	required := []struct {
		value string
		label string
	}{
		{in.Username, "Username"},
		{in.FullName, "Full name"},
		{in.Email, "Email"},
		{in.PhoneNumber, "Phone number"},
		{in.Password, "Password"},
	}

	var missing []string
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.label)
		}
	}

	if role == account.RoleHiringManager {
		managerRequired := []struct {
			value *string
			label string
		}{
			{in.CurrentPosition, "Current position"},
			{in.CompanyName, "Company name"},
			{in.Department, "Department"},
			{in.OrgRole, "Role"},
			{in.CompanySize, "Company size"},
			{in.Industry, "Industry"},
		}
		for _, f := range managerRequired {
			if f.value == nil || strings.TrimSpace(*f.value) == "" {
				missing = append(missing, f.label)
			}
		}
	}

	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}

	if !emailRe.MatchString(strings.TrimSpace(in.Email)) {
		return &ValidationError{Fields: []string{"Email"}}
	}
	if !phoneRe.MatchString(strings.TrimSpace(in.PhoneNumber)) {
		return &ValidationError{Fields: []string{"Phone number"}}
	}

	return nil
}

// generateCode draws a 6-digit code uniformly from 000000-999999.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func lowerPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.ToLower(strings.TrimSpace(*s))
	return &v
}

func sanitize(a account.Account) account.Account {
	a.PasswordHash = ""
	a.VerificationCode = nil
	return a
}
