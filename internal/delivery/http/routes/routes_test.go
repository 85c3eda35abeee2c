package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"talenthub/internal/delivery/http/handler"
	"talenthub/internal/delivery/http/middleware"
	"talenthub/internal/domain/account"
	"talenthub/internal/domain/application"
	"talenthub/internal/domain/company"
	"talenthub/internal/domain/job"
	"talenthub/internal/pkg/jwt"
	"talenthub/internal/usecase"
	ucauth "talenthub/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type memAccounts struct {
	m map[uuid.UUID]account.Account
}

func newMemAccounts() *memAccounts {
	return &memAccounts{m: map[uuid.UUID]account.Account{}}
}

func (r *memAccounts) Create(_ context.Context, a account.Account) error {
	r.m[a.ID] = a
	return nil
}

func (r *memAccounts) GetByID(_ context.Context, id uuid.UUID) (account.Account, error) {
	a, ok := r.m[id]
	if !ok {
		return account.Account{}, account.ErrNotFound
	}
	return a, nil
}

func (r *memAccounts) GetByEmail(_ context.Context, email string) (account.Account, error) {
	for _, a := range r.m {
		if strings.EqualFold(a.Email, email) {
			return a, nil
		}
	}
	return account.Account{}, account.ErrNotFound
}

func (r *memAccounts) GetByUsername(_ context.Context, username string) (account.Account, error) {
	for _, a := range r.m {
		if strings.EqualFold(a.Username, username) {
			return a, nil
		}
	}
	return account.Account{}, account.ErrNotFound
}

func (r *memAccounts) FindByUsernameOrEmail(_ context.Context, username, email string) (account.Account, error) {
	for _, a := range r.m {
		if strings.EqualFold(a.Username, username) || strings.EqualFold(a.Email, email) {
			return a, nil
		}
	}
	return account.Account{}, account.ErrNotFound
}

func (r *memAccounts) Update(_ context.Context, a account.Account) error {
	if _, ok := r.m[a.ID]; !ok {
		return account.ErrNotFound
	}
	r.m[a.ID] = a
	return nil
}

func (r *memAccounts) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.m[id]; !ok {
		return account.ErrNotFound
	}
	delete(r.m, id)
	return nil
}

type memJobs struct {
	m map[uuid.UUID]job.Job
}

func newMemJobs() *memJobs {
	return &memJobs{m: map[uuid.UUID]job.Job{}}
}

func (r *memJobs) Create(_ context.Context, j job.Job) error {
	r.m[j.ID] = j
	return nil
}

func (r *memJobs) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	j, ok := r.m[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (r *memJobs) List(_ context.Context, f job.Filter) ([]job.Job, error) {
	var out []job.Job
	for _, j := range r.m {
		if f.HiringManagerID != nil && j.HiringManagerID != *f.HiringManagerID {
			continue
		}
		if f.Status != nil && j.Status != *f.Status {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (r *memJobs) Update(_ context.Context, j job.Job) error {
	if _, ok := r.m[j.ID]; !ok {
		return job.ErrNotFound
	}
	r.m[j.ID] = j
	return nil
}

func (r *memJobs) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.m[id]; !ok {
		return job.ErrNotFound
	}
	delete(r.m, id)
	return nil
}

type memApplications struct {
	m map[uuid.UUID]application.Application
}

func newMemApplications() *memApplications {
	return &memApplications{m: map[uuid.UUID]application.Application{}}
}

func (r *memApplications) Create(_ context.Context, a application.Application) error {
	for _, ex := range r.m {
		if ex.JobID == a.JobID && ex.ApplicantID == a.ApplicantID {
			return application.ErrDuplicate
		}
	}
	r.m[a.ID] = a
	return nil
}

func (r *memApplications) GetByID(_ context.Context, id uuid.UUID) (application.Application, error) {
	a, ok := r.m[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (r *memApplications) ExistsByJobAndApplicant(_ context.Context, jobID, applicantID uuid.UUID) (bool, error) {
	for _, a := range r.m {
		if a.JobID == jobID && a.ApplicantID == applicantID {
			return true, nil
		}
	}
	return false, nil
}

func (r *memApplications) ListByApplicant(_ context.Context, applicantID uuid.UUID) ([]application.Application, error) {
	var out []application.Application
	for _, a := range r.m {
		if a.ApplicantID == applicantID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *memApplications) ListByJobIDs(_ context.Context, jobIDs []uuid.UUID) ([]application.Application, error) {
	var out []application.Application
	for _, a := range r.m {
		for _, id := range jobIDs {
			if a.JobID == id {
				out = append(out, a)
			}
		}
	}
	return out, nil
}

func (r *memApplications) UpdateStatus(_ context.Context, id uuid.UUID, status application.Status) (application.Application, error) {
	a, ok := r.m[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	a.Status = status
	r.m[id] = a
	return a, nil
}

type memCompanies struct {
	m map[uuid.UUID]company.Company
}

func newMemCompanies() *memCompanies {
	return &memCompanies{m: map[uuid.UUID]company.Company{}}
}

func (r *memCompanies) Create(_ context.Context, c company.Company) error {
	r.m[c.ID] = c
	return nil
}

func (r *memCompanies) GetByID(_ context.Context, id uuid.UUID) (company.Company, error) {
	c, ok := r.m[id]
	if !ok {
		return company.Company{}, company.ErrNotFound
	}
	return c, nil
}

func (r *memCompanies) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, c := range r.m {
		if strings.EqualFold(c.CompanyName, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memCompanies) List(_ context.Context) ([]company.Company, error) {
	var out []company.Company
	for _, c := range r.m {
		out = append(out, c)
	}
	return out, nil
}

func (r *memCompanies) Update(_ context.Context, c company.Company) error {
	if _, ok := r.m[c.ID]; !ok {
		return company.ErrNotFound
	}
	r.m[c.ID] = c
	return nil
}

func (r *memCompanies) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.m[id]; !ok {
		return company.ErrNotFound
	}
	delete(r.m, id)
	return nil
}

type memListings struct {
	m map[uuid.UUID]company.Listing
}

func newMemListings() *memListings {
	return &memListings{m: map[uuid.UUID]company.Listing{}}
}

func (r *memListings) Create(_ context.Context, l company.Listing) error {
	r.m[l.ID] = l
	return nil
}

func (r *memListings) GetByID(_ context.Context, id uuid.UUID) (company.Listing, error) {
	l, ok := r.m[id]
	if !ok {
		return company.Listing{}, company.ErrListingNotFound
	}
	return l, nil
}

func (r *memListings) ExistsByName(_ context.Context, name string) (bool, error) {
	for _, l := range r.m {
		if strings.EqualFold(l.ListingName, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memListings) ListByCompany(_ context.Context, companyID uuid.UUID) ([]company.Listing, error) {
	var out []company.Listing
	for _, l := range r.m {
		if l.CompanyID != nil && *l.CompanyID == companyID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memListings) Update(_ context.Context, l company.Listing) error {
	if _, ok := r.m[l.ID]; !ok {
		return company.ErrListingNotFound
	}
	r.m[l.ID] = l
	return nil
}

func (r *memListings) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.m[id]; !ok {
		return company.ErrListingNotFound
	}
	delete(r.m, id)
	return nil
}

type noopMailer struct{}

func (noopMailer) SendVerificationCode(context.Context, string, string) {}

type noopCache struct{}

func (noopCache) GetJSON(context.Context, string, any) (bool, error)        { return false, nil }
func (noopCache) SetJSON(context.Context, string, any, time.Duration) error { return nil }
func (noopCache) DeleteByPattern(context.Context, string) error             { return nil }

type testEnv struct {
	app      *fiber.App
	jwt      jwt.Service
	accounts *memAccounts
	jobs     *memJobs
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	accounts := newMemAccounts()
	jobs := newMemJobs()
	applications := newMemApplications()
	companies := newMemCompanies()
	listings := newMemListings()

	jwtSvc := jwt.NewHMACService("test-secret", time.Hour)

	authUC := usecase.NewAuthUsecase(ucauth.NewService(accounts, noopMailer{}), jwtSvc)
	accountUC := usecase.NewAccountUsecase(accounts)
	jobUC := usecase.NewJobUsecase(jobs, noopCache{})
	applicationUC := usecase.NewApplicationUsecase(applications, jobs)
	companyUC := usecase.NewCompanyUsecase(companies, listings)

	registry := NewRegistry(
		handler.NewHealthHandler(nil, nil),
		handler.NewJobSeekerAuthHandler(authUC, accountUC),
		handler.NewHiringManagerAuthHandler(authUC, accountUC),
		handler.NewJobHandler(jobUC),
		handler.NewApplicationHandler(applicationUC),
		handler.NewCompanyHandler(companyUC),
		nil,
		middleware.NewAuthMiddleware(jwtSvc),
		middleware.NewRoleMiddleware(accounts),
	)

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())
	registry.Register(app)

	return &testEnv{app: app, jwt: jwtSvc, accounts: accounts, jobs: jobs}
}

func (e *testEnv) seedAccount(t *testing.T, username string, role account.Role) account.Account {
	t.Helper()
	a := account.Account{
		ID:          uuid.New(),
		Username:    username,
		Email:       username + "@example.com",
		FullName:    "Test " + username,
		PhoneNumber: "971501234567",
		Role:        role,
		IsVerified:  true,
	}
	if err := e.accounts.Create(context.Background(), a); err != nil {
		t.Fatalf("seed account: %v", err)
	}
	return a
}

func (e *testEnv) seedJob(t *testing.T, managerID uuid.UUID) job.Job {
	t.Helper()
	j := job.Job{
		ID:               uuid.New(),
		Title:            "Backend Engineer",
		Company:          "Acme",
		Location:         "Qatar",
		Type:             "Full-time",
		Description:      "Build services",
		Requirements:     []string{"Go"},
		Responsibilities: []string{"Ship"},
		Salary:           job.Salary{Min: 10000, Max: 20000, Currency: "QAR"},
		Skills:           []string{"Go"},
		Experience:       "Mid Level",
		Education:        "Bachelor's",
		Status:           job.StatusActive,
		HiringManagerID:  managerID,
	}
	if err := e.jobs.Create(context.Background(), j); err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return j
}

func (e *testEnv) token(t *testing.T, a account.Account) string {
	t.Helper()
	tok, err := e.jwt.Generate(a.ID, string(a.Role))
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return tok
}

func (e *testEnv) request(t *testing.T, method, path, token, body string) (*http.Response, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := e.app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}

	var parsed map[string]any
	dec := json.NewDecoder(res.Body)
	_ = dec.Decode(&parsed)
	_ = res.Body.Close()
	return res, parsed
}

func TestGuardedRoutesRejectMissingToken(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		method string
		path   string
	}{
		{fiber.MethodGet, "/auth/profile"},
		{fiber.MethodPost, "/auth/complete-profile"},
		{fiber.MethodDelete, "/auth/profile"},
		{fiber.MethodGet, "/hiring-manager/profile"},
		{fiber.MethodPost, "/jobs/"},
		{fiber.MethodGet, "/jobs/hiring-manager/me"},
		{fiber.MethodPost, "/applications/"},
		{fiber.MethodGet, "/applications/user"},
		{fiber.MethodGet, "/company/"},
		{fiber.MethodPost, "/company/"},
	}

	for _, tc := range cases {
		res, body := env.request(t, tc.method, tc.path, "", "")
		if res.StatusCode != fiber.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", tc.method, tc.path, res.StatusCode)
		}
		if got := body["message"]; got != "No token provided" {
			t.Fatalf("%s %s: expected %q, got %v", tc.method, tc.path, "No token provided", got)
		}
	}
}

func TestGuardedRoutesRejectInvalidToken(t *testing.T) {
	env := newTestEnv(t)

	res, body := env.request(t, fiber.MethodGet, "/applications/user", "not-a-token", "")
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", res.StatusCode)
	}
	if got := body["message"]; got != "Invalid token" {
		t.Fatalf("expected %q, got %v", "Invalid token", got)
	}
}

func TestProfileWithValidToken(t *testing.T) {
	env := newTestEnv(t)
	seeker := env.seedAccount(t, "amina", account.RoleJobSeeker)

	res, body := env.request(t, fiber.MethodGet, "/auth/profile", env.token(t, seeker), "")
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d (body %v)", res.StatusCode, body)
	}

	user, ok := body["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user object, got %v", body)
	}
	if user["username"] != "amina" {
		t.Fatalf("expected username amina, got %v", user["username"])
	}
}

func TestManagerGateRejectsJobSeeker(t *testing.T) {
	env := newTestEnv(t)
	seeker := env.seedAccount(t, "amina", account.RoleJobSeeker)

	res, body := env.request(t, fiber.MethodPost, "/jobs/", env.token(t, seeker), `{}`)
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d (body %v)", res.StatusCode, body)
	}
	want := "Access denied. Only hiring managers can perform this action."
	if got := body["message"]; got != want {
		t.Fatalf("expected %q, got %v", want, got)
	}
}

func TestJobUpdateOwnership(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedAccount(t, "rashid", account.RoleHiringManager)
	other := env.seedAccount(t, "salma", account.RoleHiringManager)
	j := env.seedJob(t, owner.ID)

	res, body := env.request(t, fiber.MethodPut, "/jobs/"+j.ID.String(), env.token(t, other), `{}`)
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for non-owner, got %d (body %v)", res.StatusCode, body)
	}
	want := "Access denied. You can only update your own jobs."
	if got := body["message"]; got != want {
		t.Fatalf("expected %q, got %v", want, got)
	}

	res, body = env.request(t, fiber.MethodPut, "/jobs/"+j.ID.String(), env.token(t, owner), `{"title":"Staff Engineer"}`)
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for owner, got %d (body %v)", res.StatusCode, body)
	}
	if got := body["message"]; got != "Job updated successfully" {
		t.Fatalf("expected %q, got %v", "Job updated successfully", got)
	}

	updated, err := env.jobs.GetByID(context.Background(), j.ID)
	if err != nil {
		t.Fatalf("reload job: %v", err)
	}
	if updated.Title != "Staff Engineer" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}
}

func TestPublicJobRoutesNeedNoToken(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedAccount(t, "rashid", account.RoleHiringManager)
	j := env.seedJob(t, owner.ID)

	res, body := env.request(t, fiber.MethodGet, "/jobs/"+j.ID.String(), "", "")
	if res.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d (body %v)", res.StatusCode, body)
	}
	wrapped, ok := body["job"].(map[string]any)
	if !ok {
		t.Fatalf("expected job wrapper, got %v", body)
	}
	if wrapped["title"] != "Backend Engineer" {
		t.Fatalf("expected seeded title, got %v", wrapped["title"])
	}
}

func TestDeletedManagerTokenRejected(t *testing.T) {
	env := newTestEnv(t)
	owner := env.seedAccount(t, "rashid", account.RoleHiringManager)
	tok := env.token(t, owner)

	if err := env.accounts.Delete(context.Background(), owner.ID); err != nil {
		t.Fatalf("delete account: %v", err)
	}

	res, body := env.request(t, fiber.MethodPost, "/jobs/", tok, `{}`)
	if res.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 for deleted account, got %d (body %v)", res.StatusCode, body)
	}
	if got := body["message"]; got != "Hiring manager not found" {
		t.Fatalf("expected %q, got %v", "Hiring manager not found", got)
	}
}
