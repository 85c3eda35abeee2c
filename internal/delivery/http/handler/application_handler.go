package handler

import (
	"errors"

	"talenthub/internal/delivery/http/dto"
	"talenthub/internal/delivery/http/middleware"
	"talenthub/internal/domain/application"
	"talenthub/internal/domain/job"
	"talenthub/internal/pkg/response"
	"talenthub/internal/usecase"
	"talenthub/internal/ws"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ApplicationHandler struct {
	uc usecase.ApplicationUsecase
}

func NewApplicationHandler(uc usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

func (h *ApplicationHandler) RegisterRoutes(r fiber.Router, auth, requireManager fiber.Handler) {
	if r == nil {
		return
	}

	// Handlers execute in argument order, so the gates go first.
	r.Post("/", auth, h.Apply)
	r.Get("/user", auth, h.ListMine)
	r.Get("/hiring-manager", auth, requireManager, h.ListForManager)
	r.Get("/:id", auth, h.Get)
	r.Put("/:id", auth, requireManager, h.UpdateStatus)
}

type applyRequest struct {
	Job         string  `json:"job"`
	CoverLetter *string `json:"coverLetter"`
	Resume      *string `json:"resume"`
}

type updateApplicationRequest struct {
	Status string `json:"status"`
}

func (h *ApplicationHandler) Apply(c fiber.Ctx) error {
	applicantID, ok := c.Locals(middleware.CtxAccountIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	if req.Job == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Job ID is required", nil, nil)
	}
	jobID, err := uuid.Parse(req.Job)
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	created, err := h.uc.Apply(c.Context(), applicantID, usecase.ApplyInput{
		JobID:       jobID,
		CoverLetter: req.CoverLetter,
		Resume:      req.Resume,
	})
	if err != nil {
		return mapApplicationError(err)
	}

	ws.NotifyApplicationEvent(ws.ApplicationEvent{
		Type:          ws.EventApplicationSubmitted,
		ApplicationID: created.ID,
		JobID:         created.JobID,
		Status:        string(created.Status),
	})

	return response.Success(c, fiber.StatusCreated, "Application submitted successfully", response.Body{
		"application": dto.NewApplicationResponse(created),
	})
}

func (h *ApplicationHandler) ListMine(c fiber.Ctx) error {
	applicantID, ok := c.Locals(middleware.CtxAccountIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	apps, err := h.uc.ListForApplicant(c.Context(), applicantID)
	if err != nil {
		return mapApplicationError(err)
	}
	return response.Raw(c, fiber.StatusOK, dto.NewApplicationResponses(apps))
}

func (h *ApplicationHandler) ListForManager(c fiber.Ctx) error {
	managerID, ok := c.Locals(middleware.CtxAccountIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	apps, err := h.uc.ListForManager(c.Context(), managerID)
	if err != nil {
		return mapApplicationError(err)
	}
	return response.Raw(c, fiber.StatusOK, dto.NewApplicationResponses(apps))
}

func (h *ApplicationHandler) Get(c fiber.Ctx) error {
	callerID, ok := c.Locals(middleware.CtxAccountIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	}

	found, err := h.uc.Get(c.Context(), id, callerID)
	if err != nil {
		return mapApplicationError(err)
	}
	return response.Raw(c, fiber.StatusOK, dto.NewApplicationResponse(found))
}

func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	managerID, ok := c.Locals(middleware.CtxAccountIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	}

	var req updateApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	updated, err := h.uc.UpdateStatus(c.Context(), id, managerID, req.Status)
	if err != nil {
		return mapApplicationError(err)
	}

	ws.NotifyApplicationEvent(ws.ApplicationEvent{
		Type:          ws.EventApplicationStatusChanged,
		ApplicationID: updated.ID,
		JobID:         updated.JobID,
		Status:        string(updated.Status),
	})

	return response.Raw(c, fiber.StatusOK, dto.NewApplicationResponse(updated))
}

func mapApplicationError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrAlreadyApplied):
		return middleware.NewAppError(fiber.StatusBadRequest, "You have already applied for this job", nil, err)
	case errors.Is(err, usecase.ErrNotApplicationViewer):
		return middleware.NewAppError(fiber.StatusForbidden, "Not authorized to view this application", nil, err)
	case errors.Is(err, usecase.ErrNotApplicationManager):
		return middleware.NewAppError(fiber.StatusForbidden, "Not authorized to update this application", nil, err)
	case errors.Is(err, usecase.ErrInvalidStatus):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid application status", nil, err)
	case errors.Is(err, application.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, job.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
