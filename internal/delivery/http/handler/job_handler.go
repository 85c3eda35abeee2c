package handler

import (
	"errors"

	"talenthub/internal/delivery/http/dto"
	"talenthub/internal/delivery/http/middleware"
	"talenthub/internal/domain/job"
	"talenthub/internal/pkg/response"
	"talenthub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobHandler struct {
	uc usecase.JobUsecase
}

func NewJobHandler(uc usecase.JobUsecase) *JobHandler {
	return &JobHandler{uc: uc}
}

// RegisterRoutes wires the job endpoints. Reads are public; mutations sit
// behind the auth middleware plus the hiring manager gate.
func (h *JobHandler) RegisterRoutes(r fiber.Router, auth, requireManager fiber.Handler) {
	if r == nil {
		return
	}

	// Handlers execute in argument order, so the gates go first.
	r.Post("/", auth, requireManager, h.Create)
	r.Get("/", h.ListAll)
	r.Get("/hiring-manager/me", auth, requireManager, h.ListMine)
	r.Get("/hiring-manager/:hiringManagerId", h.ListByManager)
	r.Get("/:id", h.Get)
	r.Put("/:id", auth, requireManager, h.Update)
	r.Delete("/:id", auth, requireManager, h.Delete)
}

type salaryRequest struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}

type createJobRequest struct {
	Title            string         `json:"title"`
	Company          string         `json:"company"`
	Location         string         `json:"location"`
	Type             string         `json:"type"`
	Description      string         `json:"description"`
	Requirements     []string       `json:"requirements"`
	Responsibilities []string       `json:"responsibilities"`
	Salary           *salaryRequest `json:"salary"`
	Benefits         []string       `json:"benefits"`
	Skills           []string       `json:"skills"`
	Experience       string         `json:"experience"`
	Education        string         `json:"education"`
	Status           string         `json:"status"`
}

type updateJobRequest struct {
	Title            *string        `json:"title"`
	Company          *string        `json:"company"`
	Location         *string        `json:"location"`
	Type             *string        `json:"type"`
	Description      *string        `json:"description"`
	Requirements     []string       `json:"requirements"`
	Responsibilities []string       `json:"responsibilities"`
	Salary           *salaryRequest `json:"salary"`
	Benefits         []string       `json:"benefits"`
	Skills           []string       `json:"skills"`
	Experience       *string        `json:"experience"`
	Education        *string        `json:"education"`
	Status           *string        `json:"status"`
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	managerID, ok := c.Locals(middleware.CtxAccountIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	var req createJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	created, err := h.uc.Create(c.Context(), managerID, usecase.CreateJobInput{
		Title:            req.Title,
		Company:          req.Company,
		Location:         req.Location,
		Type:             req.Type,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Salary:           toSalary(req.Salary),
		Benefits:         req.Benefits,
		Skills:           req.Skills,
		Experience:       req.Experience,
		Education:        req.Education,
		Status:           req.Status,
	})
	if err != nil {
		return mapJobError(err)
	}

	return response.Success(c, fiber.StatusCreated, "Job created successfully", response.Body{
		"job": dto.NewJobResponse(created),
	})
}

func (h *JobHandler) ListAll(c fiber.Ctx) error {
	jobs, err := h.uc.ListAll(c.Context())
	if err != nil {
		return mapJobError(err)
	}
	return response.Raw(c, fiber.StatusOK, dto.NewJobResponses(jobs))
}

func (h *JobHandler) ListMine(c fiber.Ctx) error {
	managerID, ok := c.Locals(middleware.CtxAccountIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	jobs, err := h.uc.ListByManager(c.Context(), managerID)
	if err != nil {
		return mapJobError(err)
	}
	return response.Raw(c, fiber.StatusOK, dto.NewJobResponses(jobs))
}

// ListByManager is the public view of a manager's postings; only Active
// jobs are exposed.
func (h *JobHandler) ListByManager(c fiber.Ctx) error {
	managerID, err := uuid.Parse(c.Params("hiringManagerId"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid hiring manager ID", nil, err)
	}

	jobs, err := h.uc.ListActiveByManager(c.Context(), managerID)
	if err != nil {
		return mapJobError(err)
	}
	return response.Raw(c, fiber.StatusOK, dto.NewJobResponses(jobs))
}

func (h *JobHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	found, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapJobError(err)
	}
	return response.Raw(c, fiber.StatusOK, fiber.Map{
		"job": dto.NewJobResponse(found),
	})
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	managerID, ok := c.Locals(middleware.CtxAccountIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	var req updateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	updated, err := h.uc.Update(c.Context(), id, managerID, usecase.UpdateJobInput{
		Title:            req.Title,
		Company:          req.Company,
		Location:         req.Location,
		Type:             req.Type,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Salary:           toSalary(req.Salary),
		Benefits:         req.Benefits,
		Skills:           req.Skills,
		Experience:       req.Experience,
		Education:        req.Education,
		Status:           req.Status,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrNotJobOwner) {
			return middleware.NewAppError(fiber.StatusForbidden,
				"Access denied. You can only update your own jobs.", nil, err)
		}
		return mapJobError(err)
	}

	return response.Success(c, fiber.StatusOK, "Job updated successfully", response.Body{
		"job": dto.NewJobResponse(updated),
	})
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	managerID, ok := c.Locals(middleware.CtxAccountIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	if err := h.uc.Delete(c.Context(), id, managerID); err != nil {
		if errors.Is(err, usecase.ErrNotJobOwner) {
			return middleware.NewAppError(fiber.StatusForbidden,
				"Access denied. You can only delete your own jobs.", nil, err)
		}
		return mapJobError(err)
	}

	return response.Success(c, fiber.StatusOK, "Job deleted successfully", nil)
}

func toSalary(s *salaryRequest) *job.Salary {
	if s == nil {
		return nil
	}
	return &job.Salary{Min: s.Min, Max: s.Max, Currency: s.Currency}
}

func mapJobError(err error) error {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		data := response.Body{}
		if len(verr.Fields) > 0 {
			data["fields"] = verr.Fields
		}
		if len(verr.Details) > 0 {
			data["details"] = verr.Details
		}
		return middleware.NewAppError(fiber.StatusBadRequest, verr.Message, data, err)
	}

	switch {
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrNotJobOwner):
		return middleware.NewAppError(fiber.StatusForbidden, response.MessageForbidden, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
