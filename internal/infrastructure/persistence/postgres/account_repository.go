package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"talenthub/internal/database"
	"talenthub/internal/domain/account"

	"github.com/google/uuid"
)

const accountColumns = `id, username, email, full_name, phone_number, password_hash, role,
	profile_completed, is_verified, verification_code, code_issued_at,
	nationality, dob, education, experience, skills, certificates, fields,
	current_position, company_name, department, org_role, company_size, industry,
	address, created_at, updated_at`

type AccountRepository struct {
	db database.DB
}

func NewAccountRepository(db database.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, a account.Account) error {
	skills, address, err := marshalProfileDocs(a)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO accounts (
			id, username, email, full_name, phone_number, password_hash, role,
			profile_completed, is_verified, verification_code, code_issued_at,
			nationality, dob, education, experience, skills, certificates, fields,
			current_position, company_name, department, org_role, company_size, industry,
			address
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11,
			$12, $13, $14, $15, $16, $17, $18,
			$19, $20, $21, $22, $23, $24,
			$25
		)`,
		a.ID, a.Username, a.Email, a.FullName, a.PhoneNumber, a.PasswordHash, string(a.Role),
		a.ProfileCompleted, a.IsVerified, a.VerificationCode, a.CodeIssuedAt,
		a.Nationality, a.DOB, a.Education, a.Experience, skills, a.Certificates, a.Fields,
		a.CurrentPosition, a.CompanyName, a.Department, a.OrgRole, a.CompanySize, a.Industry,
		address,
	)
	return err
}

func (r *AccountRepository) GetByID(ctx context.Context, id uuid.UUID) (account.Account, error) {
	row := r.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM accounts WHERE id = $1`, accountColumns), id)
	return scanAccount(row)
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (account.Account, error) {
	row := r.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM accounts WHERE lower(email) = lower($1)`, accountColumns), email)
	return scanAccount(row)
}

func (r *AccountRepository) GetByUsername(ctx context.Context, username string) (account.Account, error) {
	row := r.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM accounts WHERE lower(username) = lower($1)`, accountColumns), username)
	return scanAccount(row)
}

func (r *AccountRepository) FindByUsernameOrEmail(ctx context.Context, username, email string) (account.Account, error) {
	row := r.db.QueryRow(ctx,
		fmt.Sprintf(`SELECT %s FROM accounts
			WHERE lower(username) = lower($1) OR lower(email) = lower($2)
			LIMIT 1`, accountColumns),
		username, email)
	return scanAccount(row)
}

func (r *AccountRepository) Update(ctx context.Context, a account.Account) error {
	skills, address, err := marshalProfileDocs(a)
	if err != nil {
		return err
	}

	n, err := r.db.Exec(ctx, `
		UPDATE accounts SET
			full_name = $2, phone_number = $3, password_hash = $4,
			profile_completed = $5, is_verified = $6, verification_code = $7, code_issued_at = $8,
			nationality = $9, dob = $10, education = $11, experience = $12,
			skills = $13, certificates = $14, fields = $15,
			current_position = $16, company_name = $17, department = $18,
			org_role = $19, company_size = $20, industry = $21,
			address = $22,
			updated_at = now()
		WHERE id = $1`,
		a.ID, a.FullName, a.PhoneNumber, a.PasswordHash,
		a.ProfileCompleted, a.IsVerified, a.VerificationCode, a.CodeIssuedAt,
		a.Nationality, a.DOB, a.Education, a.Experience,
		skills, a.Certificates, a.Fields,
		a.CurrentPosition, a.CompanyName, a.Department,
		a.OrgRole, a.CompanySize, a.Industry,
		address,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return account.ErrNotFound
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return account.ErrNotFound
	}
	return nil
}

func marshalProfileDocs(a account.Account) ([]byte, []byte, error) {
	skillsDoc := a.Skills
	if skillsDoc == nil {
		skillsDoc = []account.Skill{}
	}
	skills, err := json.Marshal(skillsDoc)
	if err != nil {
		return nil, nil, err
	}

	var address []byte
	if a.Address != nil {
		address, err = json.Marshal(a.Address)
		if err != nil {
			return nil, nil, err
		}
	}
	return skills, address, nil
}

func scanAccount(row database.Row) (account.Account, error) {
	var (
		a       account.Account
		role    string
		skills  []byte
		address []byte
	)
	err := row.Scan(
		&a.ID, &a.Username, &a.Email, &a.FullName, &a.PhoneNumber, &a.PasswordHash, &role,
		&a.ProfileCompleted, &a.IsVerified, &a.VerificationCode, &a.CodeIssuedAt,
		&a.Nationality, &a.DOB, &a.Education, &a.Experience, &skills, &a.Certificates, &a.Fields,
		&a.CurrentPosition, &a.CompanyName, &a.Department, &a.OrgRole, &a.CompanySize, &a.Industry,
		&address, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return account.Account{}, account.ErrNotFound
		}
		return account.Account{}, err
	}

	a.Role = account.Role(role)
	if len(skills) > 0 {
		if err := json.Unmarshal(skills, &a.Skills); err != nil {
			return account.Account{}, err
		}
	}
	if len(address) > 0 {
		var addr account.Address
		if err := json.Unmarshal(address, &addr); err != nil {
			return account.Account{}, err
		}
		a.Address = &addr
	}
	return a, nil
}
