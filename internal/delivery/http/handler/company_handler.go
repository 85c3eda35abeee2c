package handler

import (
	"errors"

	"talenthub/internal/delivery/http/dto"
	"talenthub/internal/delivery/http/middleware"
	"talenthub/internal/domain/company"
	"talenthub/internal/pkg/response"
	"talenthub/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type CompanyHandler struct {
	uc usecase.CompanyUsecase
}

func NewCompanyHandler(uc usecase.CompanyUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc}
}

// RegisterRoutes wires /company and the nested /company/:companyid/job
// listing endpoints. The whole surface is token gated.
func (h *CompanyHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	if r == nil {
		return
	}

	// The whole surface is token gated, so the gate rides on the group.
	protected := r.Group("", auth)
	protected.Get("/", h.List)
	protected.Post("/", h.Create)
	protected.Get("/:companyid", h.Get)
	protected.Put("/:companyid", h.Update)
	protected.Delete("/:companyid", h.Delete)

	jobs := protected.Group("/:companyid/job")
	jobs.Get("/", h.ListListings)
	jobs.Post("/", h.CreateListing)
	jobs.Get("/:jobid", h.GetListing)
	jobs.Put("/:jobid", h.UpdateListing)
	jobs.Delete("/:jobid", h.DeleteListing)
}

type createCompanyRequest struct {
	CompanyName        string `json:"companyName"`
	CompanyDescription string `json:"companyDescription"`
	Country            string `json:"country"`
	Size               string `json:"size"`
	Industry           string `json:"industry"`
	OpenPositions      int    `json:"openPositions"`
}

type updateCompanyRequest struct {
	CompanyName        *string `json:"companyName"`
	CompanyDescription *string `json:"companyDescription"`
	Country            *string `json:"country"`
	Size               *string `json:"size"`
	Industry           *string `json:"industry"`
	OpenPositions      *int    `json:"openPositions"`
}

type createListingRequest struct {
	ListingName        string  `json:"listingName"`
	ListingDescription string  `json:"listingDescription"`
	Requirements       *string `json:"requirements"`
	ListingType        string  `json:"listingType"`
	Salary             *string `json:"salary"`
	Benefits           *string `json:"benefits"`
}

type updateListingRequest struct {
	ListingName        *string `json:"listingName"`
	ListingDescription *string `json:"listingDescription"`
	Requirements       *string `json:"requirements"`
	ListingType        *string `json:"listingType"`
	Salary             *string `json:"salary"`
	Benefits           *string `json:"benefits"`
}

func (h *CompanyHandler) List(c fiber.Ctx) error {
	companies, err := h.uc.List(c.Context())
	if err != nil {
		return mapCompanyError(err)
	}
	return response.Raw(c, fiber.StatusOK, dto.NewCompanyResponses(companies))
}

func (h *CompanyHandler) Create(c fiber.Ctx) error {
	var req createCompanyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	created, err := h.uc.Create(c.Context(), usecase.CreateCompanyInput{
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		Country:            req.Country,
		Size:               req.Size,
		Industry:           req.Industry,
		OpenPositions:      req.OpenPositions,
	})
	if err != nil {
		return mapCompanyError(err)
	}

	return response.Raw(c, fiber.StatusCreated, dto.NewCompanyResponse(created))
}

func (h *CompanyHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("companyid"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Company not found", nil, err)
	}

	found, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return mapCompanyError(err)
	}
	return response.Raw(c, fiber.StatusOK, dto.NewCompanyResponse(found))
}

func (h *CompanyHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("companyid"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Company not found", nil, err)
	}

	var req updateCompanyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	updated, err := h.uc.Update(c.Context(), id, usecase.UpdateCompanyInput{
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
		Country:            req.Country,
		Size:               req.Size,
		Industry:           req.Industry,
		OpenPositions:      req.OpenPositions,
	})
	if err != nil {
		return mapCompanyError(err)
	}
	return response.Raw(c, fiber.StatusOK, dto.NewCompanyResponse(updated))
}

func (h *CompanyHandler) Delete(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("companyid"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Company not found", nil, err)
	}

	if err := h.uc.Delete(c.Context(), id); err != nil {
		return mapCompanyError(err)
	}
	return response.Success(c, fiber.StatusOK, "Company deleted successfully.", nil)
}

func (h *CompanyHandler) ListListings(c fiber.Ctx) error {
	companyID, err := uuid.Parse(c.Params("companyid"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Company not found", nil, err)
	}

	listings, err := h.uc.ListListings(c.Context(), companyID)
	if err != nil {
		return mapCompanyError(err)
	}
	return response.Raw(c, fiber.StatusOK, dto.NewListingResponses(listings))
}

func (h *CompanyHandler) CreateListing(c fiber.Ctx) error {
	companyID, err := uuid.Parse(c.Params("companyid"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Company not found", nil, err)
	}

	var req createListingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	created, err := h.uc.CreateListing(c.Context(), companyID, usecase.CreateListingInput{
		ListingName:        req.ListingName,
		ListingDescription: req.ListingDescription,
		Requirements:       req.Requirements,
		ListingType:        req.ListingType,
		Salary:             req.Salary,
		Benefits:           req.Benefits,
	})
	if err != nil {
		return mapCompanyError(err)
	}
	return response.Raw(c, fiber.StatusCreated, dto.NewListingResponse(created))
}

func (h *CompanyHandler) GetListing(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("jobid"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	found, err := h.uc.GetListing(c.Context(), id)
	if err != nil {
		return mapCompanyError(err)
	}
	return response.Raw(c, fiber.StatusOK, dto.NewListingResponse(found))
}

func (h *CompanyHandler) UpdateListing(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("jobid"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	var req updateListingRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	updated, err := h.uc.UpdateListing(c.Context(), id, usecase.UpdateListingInput{
		ListingName:        req.ListingName,
		ListingDescription: req.ListingDescription,
		Requirements:       req.Requirements,
		ListingType:        req.ListingType,
		Salary:             req.Salary,
		Benefits:           req.Benefits,
	})
	if err != nil {
		return mapCompanyError(err)
	}
	return response.Raw(c, fiber.StatusOK, dto.NewListingResponse(updated))
}

func (h *CompanyHandler) DeleteListing(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("jobid"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	}

	if err := h.uc.DeleteListing(c.Context(), id); err != nil {
		return mapCompanyError(err)
	}
	return response.Success(c, fiber.StatusOK, "Job deleted successfully.", nil)
}

func mapCompanyError(err error) error {
	var verr *usecase.ValidationError
	if errors.As(err, &verr) {
		data := response.Body{}
		if len(verr.Fields) > 0 {
			data["fields"] = verr.Fields
		}
		return middleware.NewAppError(fiber.StatusBadRequest, verr.Message, data, err)
	}

	switch {
	case errors.Is(err, company.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Company not found", nil, err)
	case errors.Is(err, company.ErrListingNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
