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

// CitizenHandler holds dependencies for citizen-related handlers.
type CitizenHandler struct {
	uc     usecase.CitizenUsecase
	logger *slog.Logger
}

// NewCitizenHandler is the constructor for CitizenHandler, injected by Fx.
func NewCitizenHandler(uc usecase.CitizenUsecase, logger *slog.Logger) *CitizenHandler {
	return &CitizenHandler{
		uc:     uc,
		logger: logger,
	}
}

type updateCitizenRequest struct {
	FullName           *string          `json:"fullName"`
	BirthDate          *string          `json:"birthDate"`
	Gender             *string          `json:"gender"`
	Ethnicity          *string          `json:"ethnicity"`
	Nationality        *string          `json:"nationality"`
	Occupation         *string          `json:"occupation"`
	IdentityDocument   *documentRequest `json:"identityDocument"`
	ClearDocument      bool             `json:"clearDocument"`
	RelationshipToHead *string          `json:"relationshipToHead"`
	SuccessorID        *uuid.UUID       `json:"successorId"`
}

type windowRequest struct {
	From   string `json:"from" validate:"required"`
	To     string `json:"to"`
	Reason string `json:"reason" validate:"required"`
}

type declareDeathRequest struct {
	Reason string `json:"reason" validate:"required"`
}

func citizenID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("id"))
}

// GetCitizen handles a single-citizen lookup with its derived status.
func (h *CitizenHandler) GetCitizen(c echo.Context) error {
	id, err := citizenID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid citizen ID")
	}

	view, err := h.uc.GetCitizen(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "")
}

// UpdateCitizen handles a citizen profile edit. Omitted fields stay
// untouched; headship changes and document edits go through the engine.
func (h *CitizenHandler) UpdateCitizen(c echo.Context) error {
	id, err := citizenID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid citizen ID")
	}

	var req updateCitizenRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid citizen input")
	}

	input := &usecase.UpdateCitizenInput{
		FullName:      req.FullName,
		BirthDate:     req.BirthDate,
		Gender:        req.Gender,
		Ethnicity:     req.Ethnicity,
		Nationality:   req.Nationality,
		Occupation:    req.Occupation,
		ClearDocument: req.ClearDocument,
		SuccessorID:   req.SuccessorID,
	}
	if req.IdentityDocument != nil {
		input.IdentityDocument = &usecase.DocumentInput{
			Number:     req.IdentityDocument.Number,
			IssueDate:  req.IdentityDocument.IssueDate,
			IssuePlace: req.IdentityDocument.IssuePlace,
		}
	}
	if req.RelationshipToHead != nil {
		rel := entity.Relationship(*req.RelationshipToHead)
		input.RelationshipToHead = &rel
	}

	output, err := h.uc.UpdateCitizen(c.Request().Context(), id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Citizen updated successfully")
}

// DeleteCitizen handles a citizen removal, cascading to the household
// when the roster empties.
func (h *CitizenHandler) DeleteCitizen(c echo.Context) error {
	id, err := citizenID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid citizen ID")
	}

	output, err := h.uc.DeleteCitizen(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Citizen deleted successfully")
}

// PromoteToHead handles the retry of an interrupted succession.
func (h *CitizenHandler) PromoteToHead(c echo.Context) error {
	id, err := citizenID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid citizen ID")
	}

	view, err := h.uc.PromoteToHead(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Citizen promoted to head")
}

func (h *CitizenHandler) bindWindow(c echo.Context) (*usecase.WindowInput, error) {
	var req windowRequest
	if err := c.Bind(&req); err != nil {
		return nil, response.BindingError(c, "INVALID_INPUT", "Invalid window input")
	}
	if err := c.Validate(&req); err != nil {
		return nil, err
	}

	return &usecase.WindowInput{
		From:   req.From,
		To:     req.To,
		Reason: req.Reason,
	}, nil
}

// RegisterTemporaryResidence handles a temporary residence registration.
func (h *CitizenHandler) RegisterTemporaryResidence(c echo.Context) error {
	id, err := citizenID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid citizen ID")
	}

	window, err := h.bindWindow(c)
	if err != nil {
		return err
	}

	view, err := h.uc.RegisterTemporaryResidence(c.Request().Context(), id, window)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Temporary residence registered")
}

// CancelTemporaryResidence handles a temporary residence cancellation.
func (h *CitizenHandler) CancelTemporaryResidence(c echo.Context) error {
	id, err := citizenID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid citizen ID")
	}

	view, err := h.uc.CancelTemporaryResidence(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Temporary residence cancelled")
}

// RegisterTemporaryAbsence handles a temporary absence registration.
func (h *CitizenHandler) RegisterTemporaryAbsence(c echo.Context) error {
	id, err := citizenID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid citizen ID")
	}

	window, err := h.bindWindow(c)
	if err != nil {
		return err
	}

	view, err := h.uc.RegisterTemporaryAbsence(c.Request().Context(), id, window)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Temporary absence registered")
}

// CancelTemporaryAbsence handles a temporary absence cancellation.
func (h *CitizenHandler) CancelTemporaryAbsence(c echo.Context) error {
	id, err := citizenID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid citizen ID")
	}

	view, err := h.uc.CancelTemporaryAbsence(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Temporary absence cancelled")
}

// DeclareDeath handles a death declaration. Declaring again on a
// deceased citizen succeeds without further writes.
func (h *CitizenHandler) DeclareDeath(c echo.Context) error {
	id, err := citizenID(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid citizen ID")
	}

	var req declareDeathRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid death declaration")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	view, err := h.uc.DeclareDeath(c.Request().Context(), id, req.Reason)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Death declared")
}
