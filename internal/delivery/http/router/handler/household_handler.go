// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"hokhau/internal/delivery/http/response"
	"hokhau/internal/domain/entity"
	"hokhau/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// HouseholdHandler holds dependencies for household-related handlers.
type HouseholdHandler struct {
	uc     usecase.HouseholdUsecase
	logger *slog.Logger
}

// NewHouseholdHandler is the constructor for HouseholdHandler, injected by Fx.
func NewHouseholdHandler(uc usecase.HouseholdUsecase, logger *slog.Logger) *HouseholdHandler {
	return &HouseholdHandler{
		uc:     uc,
		logger: logger,
	}
}

type documentRequest struct {
	Number     string `json:"number"`
	IssueDate  string `json:"issueDate"`
	IssuePlace string `json:"issuePlace"`
}

type citizenRequest struct {
	FullName           string           `json:"fullName" validate:"required"`
	BirthDate          string           `json:"birthDate" validate:"required"`
	Gender             string           `json:"gender"`
	Ethnicity          string           `json:"ethnicity"`
	Nationality        string           `json:"nationality"`
	Occupation         string           `json:"occupation"`
	IdentityDocument   *documentRequest `json:"identityDocument"`
	RelationshipToHead string           `json:"relationshipToHead"`
}

type createHouseholdRequest struct {
	RegistryNumber string         `json:"registryNumber" validate:"required"`
	Address        string         `json:"address" validate:"required"`
	Head           citizenRequest `json:"head" validate:"required"`
}

func (r *citizenRequest) toInput() usecase.CitizenInput {
	input := usecase.CitizenInput{
		FullName:           r.FullName,
		BirthDate:          r.BirthDate,
		Gender:             r.Gender,
		Ethnicity:          r.Ethnicity,
		Nationality:        r.Nationality,
		Occupation:         r.Occupation,
		RelationshipToHead: entity.Relationship(r.RelationshipToHead),
	}
	if r.IdentityDocument != nil {
		input.IdentityDocument = &usecase.DocumentInput{
			Number:     r.IdentityDocument.Number,
			IssueDate:  r.IdentityDocument.IssueDate,
			IssuePlace: r.IdentityDocument.IssuePlace,
		}
	}

	return input
}

// CreateHousehold handles the create-household request: a household plus
// the citizen who becomes its head, created as one operation.
func (h *HouseholdHandler) CreateHousehold(c echo.Context) error {
	var req createHouseholdRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid household input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.CreateHousehold(c.Request().Context(), &usecase.CreateHouseholdInput{
		RegistryNumber: req.RegistryNumber,
		Address:        req.Address,
		Head:           req.Head.toInput(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Household created successfully")
}

// AddMember handles adding a citizen to an existing household.
func (h *HouseholdHandler) AddMember(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid household ID")
	}

	var req citizenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid citizen input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	input := req.toInput()
	view, err := h.uc.AddMember(c.Request().Context(), id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, view, "Member added successfully")
}

// GetHousehold handles a single-household lookup.
func (h *HouseholdHandler) GetHousehold(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid household ID")
	}

	household, err := h.uc.GetHousehold(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, household, "")
}

// ListHouseholds handles the household list request.
func (h *HouseholdHandler) ListHouseholds(c echo.Context) error {
	households, err := h.uc.ListHouseholds(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, households, "")
}

// ListMembers handles the household roster request.
func (h *HouseholdHandler) ListMembers(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid household ID")
	}

	members, err := h.uc.ListMembers(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, members, "")
}

// Overview handles the combined households-and-citizens read.
func (h *HouseholdHandler) Overview(c echo.Context) error {
	output, err := h.uc.Overview(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "")
}

// HealthCheck provides a simple health check endpoint.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
