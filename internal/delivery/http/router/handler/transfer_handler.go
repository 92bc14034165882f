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

// TransferHandler holds dependencies for transfer-related handlers.
type TransferHandler struct {
	uc     usecase.TransferUsecase
	logger *slog.Logger
}

// NewTransferHandler is the constructor for TransferHandler, injected by Fx.
func NewTransferHandler(uc usecase.TransferUsecase, logger *slog.Logger) *TransferHandler {
	return &TransferHandler{
		uc:     uc,
		logger: logger,
	}
}

type transferRequest struct {
	CitizenID              uuid.UUID  `json:"citizenId" validate:"required"`
	DestinationHouseholdID uuid.UUID  `json:"destinationHouseholdId" validate:"required"`
	NewRelationship        string     `json:"newRelationship" validate:"required"`
	SuccessorID            *uuid.UUID `json:"successorId"`
}

// Transfer handles a transfer request. A last-member move is not
// executed here; it is parked as a proposal and answered with 202.
func (h *TransferHandler) Transfer(c echo.Context) error {
	var req transferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transfer input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Transfer(c.Request().Context(), &usecase.TransferInput{
		CitizenID:              req.CitizenID,
		DestinationHouseholdID: req.DestinationHouseholdID,
		NewRelationship:        entity.Relationship(req.NewRelationship),
		SuccessorID:            req.SuccessorID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	if !output.Executed {
		return response.Success(c, http.StatusAccepted, output, "Transfer requires confirmation")
	}

	return response.Success(c, http.StatusOK, output, "Transfer executed")
}

// ConfirmTransfer commits a previously proposed last-member transfer.
func (h *TransferHandler) ConfirmTransfer(c echo.Context) error {
	proposalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid proposal ID")
	}

	output, err := h.uc.ConfirmTransfer(c.Request().Context(), proposalID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Transfer executed")
}
