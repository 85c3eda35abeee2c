package handler

import (
	"errors"
	"strings"
	"time"

	"talenthub/internal/delivery/http/dto"
	"talenthub/internal/delivery/http/middleware"
	"talenthub/internal/domain/account"
	"talenthub/internal/pkg/response"
	"talenthub/internal/usecase"
	ucauth "talenthub/internal/usecase/auth"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// AuthHandler serves one signup/login portal. The same handler backs both
// the job seeker routes and the hiring manager routes; the role and the
// portal-specific wording are fixed at construction time.
type AuthHandler struct {
	auth     usecase.AuthUsecase
	accounts usecase.AccountUsecase

	role               account.Role
	createdMessage     string
	wrongPortalMessage string
	notFoundMessage    string
}

func NewJobSeekerAuthHandler(auth usecase.AuthUsecase, accounts usecase.AccountUsecase) *AuthHandler {
	return &AuthHandler{
		auth:               auth,
		accounts:           accounts,
		role:               account.RoleJobSeeker,
		createdMessage:     "User created successfully",
		wrongPortalMessage: "Access denied. This login is for job seekers only. Please use the hiring manager login page.",
		notFoundMessage:    "User not found",
	}
}

func NewHiringManagerAuthHandler(auth usecase.AuthUsecase, accounts usecase.AccountUsecase) *AuthHandler {
	return &AuthHandler{
		auth:               auth,
		accounts:           accounts,
		role:               account.RoleHiringManager,
		createdMessage:     "Hiring manager created successfully",
		wrongPortalMessage: "Access denied. This login is for hiring managers only. Please use the job seeker login page.",
		notFoundMessage:    "Hiring manager not found",
	}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}

	r.Post("/signup", h.Signup)
	r.Post("/login", h.Login)
	r.Post("/authenticate/:email", h.Authenticate)

	// Handlers execute in argument order, so the gate goes first.
	r.Post("/complete-profile", auth, h.CompleteProfile)
	r.Get("/profile", auth, h.GetProfile)
	r.Delete("/profile", auth, h.DeleteProfile)
}

type signupRequest struct {
	Username    string `json:"username"`
	FullName    string `json:"fullName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`

	Nationality *string          `json:"nationality"`
	DOB         *time.Time       `json:"DOB"`
	Address     *account.Address `json:"address"`

	CurrentPosition *string `json:"currentPosition"`
	Company         *string `json:"company"`
	Department      *string `json:"department"`
	Role            *string `json:"role"`
	CompanySize     *string `json:"companySize"`
	Industry        *string `json:"industry"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authenticateRequest struct {
	Code string `json:"code"`
}

type completeProfileRequest struct {
	FullName    *string          `json:"fullName"`
	PhoneNumber *string          `json:"phoneNumber"`
	Address     *account.Address `json:"address"`

	Nationality  *string         `json:"nationality"`
	DOB          *time.Time      `json:"DOB"`
	Education    *string         `json:"education"`
	Experience   *string         `json:"experience"`
	Skills       []account.Skill `json:"skills"`
	Certificates *string         `json:"certificates"`
	Fields       *string         `json:"fields"`

	CurrentPosition *string `json:"currentPosition"`
	Company         *string `json:"company"`
	Department      *string `json:"department"`
	Role            *string `json:"role"`
	CompanySize     *string `json:"companySize"`
	Industry        *string `json:"industry"`
}

func (h *AuthHandler) Signup(c fiber.Ctx) error {
	var req signupRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	acc, token, err := h.auth.Signup(c.Context(), h.role, ucauth.SignupInput{
		Username:        req.Username,
		FullName:        req.FullName,
		Email:           req.Email,
		PhoneNumber:     req.PhoneNumber,
		Password:        req.Password,
		Nationality:     req.Nationality,
		DOB:             req.DOB,
		Address:         req.Address,
		CurrentPosition: req.CurrentPosition,
		CompanyName:     req.Company,
		Department:      req.Department,
		OrgRole:         req.Role,
		CompanySize:     req.CompanySize,
		Industry:        req.Industry,
	})
	if err != nil {
		return h.mapAuthError(err)
	}

	return response.Success(c, fiber.StatusCreated, h.createdMessage, response.Body{
		"token": token,
		"user":  dto.NewAccountResponse(acc),
	})
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	acc, token, err := h.auth.Login(c.Context(), h.role, ucauth.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return h.mapAuthError(err)
	}

	return response.Success(c, fiber.StatusOK, "Login successful", response.Body{
		"token": token,
		"user":  dto.NewAccountResponse(acc),
	})
}

func (h *AuthHandler) Authenticate(c fiber.Ctx) error {
	email := strings.TrimSpace(c.Params("email"))
	if email == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Email is required", nil, nil)
	}

	var req authenticateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	acc, err := h.auth.VerifyEmail(c.Context(), email, req.Code)
	if err != nil {
		return h.mapAuthError(err)
	}

	return response.Success(c, fiber.StatusOK, "Email verified successfully", response.Body{
		"user": dto.NewAccountResponse(acc),
	})
}

func (h *AuthHandler) CompleteProfile(c fiber.Ctx) error {
	accountID, ok := c.Locals(middleware.CtxAccountIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	var req completeProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	acc, err := h.accounts.CompleteProfile(c.Context(), accountID, usecase.CompleteProfileInput{
		FullName:        req.FullName,
		PhoneNumber:     req.PhoneNumber,
		Address:         req.Address,
		Nationality:     req.Nationality,
		DOB:             req.DOB,
		Education:       req.Education,
		Experience:      req.Experience,
		Skills:          req.Skills,
		Certificates:    req.Certificates,
		Fields:          req.Fields,
		CurrentPosition: req.CurrentPosition,
		CompanyName:     req.Company,
		Department:      req.Department,
		OrgRole:         req.Role,
		CompanySize:     req.CompanySize,
		Industry:        req.Industry,
	})
	if err != nil {
		return h.mapAccountError(err)
	}

	return response.Success(c, fiber.StatusOK, "Profile completed successfully", response.Body{
		"user": dto.NewAccountResponse(acc),
	})
}

func (h *AuthHandler) GetProfile(c fiber.Ctx) error {
	accountID, ok := c.Locals(middleware.CtxAccountIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	acc, err := h.accounts.GetProfile(c.Context(), accountID)
	if err != nil {
		return h.mapAccountError(err)
	}

	return response.Raw(c, fiber.StatusOK, fiber.Map{
		"user": dto.NewAccountResponse(acc),
	})
}

func (h *AuthHandler) DeleteProfile(c fiber.Ctx) error {
	accountID, ok := c.Locals(middleware.CtxAccountIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	if err := h.accounts.DeleteProfile(c.Context(), accountID); err != nil {
		return h.mapAccountError(err)
	}

	return response.Success(c, fiber.StatusOK, "Profile deleted successfully", response.Body{
		"success": true,
	})
}

func (h *AuthHandler) mapAuthError(err error) error {
	var verr *ucauth.ValidationError
	if errors.As(err, &verr) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Missing required fields", response.Body{"fields": verr.Fields}, err)
	}

	switch {
	case errors.Is(err, ucauth.ErrEmailTaken):
		return middleware.NewAppError(fiber.StatusBadRequest, "Email already registered", nil, err)
	case errors.Is(err, ucauth.ErrUsernameTaken):
		return middleware.NewAppError(fiber.StatusBadRequest, "Username already taken", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", nil, err)
	case errors.Is(err, ucauth.ErrWrongPortal):
		return middleware.NewAppError(fiber.StatusForbidden, h.wrongPortalMessage, nil, err)
	case errors.Is(err, ucauth.ErrNoCodeIssued):
		return middleware.NewAppError(fiber.StatusBadRequest, "No verification code issued", nil, err)
	case errors.Is(err, ucauth.ErrCodeExpired):
		return middleware.NewAppError(fiber.StatusBadRequest, "Verification code expired", nil, err)
	case errors.Is(err, ucauth.ErrIncorrectCode):
		return middleware.NewAppError(fiber.StatusBadRequest, "Incorrect code", nil, err)
	case errors.Is(err, account.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, h.notFoundMessage, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

func (h *AuthHandler) mapAccountError(err error) error {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		data := response.Body{}
		if len(verr.Fields) > 0 {
			data["fields"] = verr.Fields
		}
		return middleware.NewAppError(fiber.StatusBadRequest, verr.Message, data, err)
	}

	switch {
	case errors.Is(err, account.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, h.notFoundMessage, nil, err)
	case errors.Is(err, usecase.ErrInvalidProfileInput):
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
