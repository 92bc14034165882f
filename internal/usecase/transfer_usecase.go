package usecase

import (
	"context"
	"time"

	"hokhau/internal/domain/entity"

	"github.com/google/uuid"
)

// TransferInput defines a citizen transfer to a different household.
type TransferInput struct {
	CitizenID              uuid.UUID
	DestinationHouseholdID uuid.UUID
	// NewRelationship is the citizen's relationship in the destination
	// household; HEAD is validated against the destination roster.
	NewRelationship entity.Relationship
	// SuccessorID must be set when the transferring citizen heads a
	// source household that keeps other members.
	SuccessorID *uuid.UUID
}

// TransferProposal is the pending half of a two-phase last-member
// transfer. Committing it cascade-deletes the source household, so the
// caller must confirm explicitly before anything is written.
type TransferProposal struct {
	ID         uuid.UUID
	Input      TransferInput
	LastMember bool
	ExpiresAt  time.Time
}

// TransferOutput reports the outcome of a transfer request. When
// Executed is false the transfer is parked behind Proposal and nothing
// has been written yet. Warnings carry reported-but-not-fatal cleanup
// failures.
type TransferOutput struct {
	Executed bool
	Citizen  *CitizenView
	Proposal *TransferProposal
	Warnings []string
}

// TransferUsecase defines the transfer saga of the engine.
type TransferUsecase interface {
	// Transfer executes the move immediately, or returns a proposal to
	// confirm when the citizen is the last non-deceased member of the
	// source household.
	Transfer(ctx context.Context, input *TransferInput) (*TransferOutput, error)

	// ConfirmTransfer commits a previously proposed last-member
	// transfer, then deletes the emptied source household.
	ConfirmTransfer(ctx context.Context, proposalID uuid.UUID) (*TransferOutput, error)
}
