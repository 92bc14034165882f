package usecase

import (
	"context"

	"hokhau/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateCitizenInput defines a citizen profile edit. Nil pointers leave
// the field untouched. Changing RelationshipToHead away from HEAD on
// the current head requires a nominated successor.
type UpdateCitizenInput struct {
	FullName           *string
	BirthDate          *string // date-like value, normalized by the engine
	Gender             *string
	Ethnicity          *string
	Nationality        *string
	Occupation         *string
	IdentityDocument   *DocumentInput // replaces the whole block when set
	ClearDocument      bool           // removes the document block entirely
	RelationshipToHead *entity.Relationship
	SuccessorID        *uuid.UUID // successor to promote when headship is given up
}

// UpdateCitizenOutput returns the updated record plus warnings for
// best-effort secondary writes that did not complete (head-name sync).
type UpdateCitizenOutput struct {
	Citizen  *CitizenView
	Warnings []string
}

// DeleteCitizenOutput reports a deletion and whether the now-empty
// household was cascade-deleted with it.
type DeleteCitizenOutput struct {
	HouseholdDeleted bool
	Warnings         []string
}

// WindowInput defines a temporary residence or absence registration.
type WindowInput struct {
	From   string // date-like value, required
	To     string // date-like value, optional; empty means open-ended
	Reason string
}

// CitizenUsecase defines citizen-side operations of the engine.
type CitizenUsecase interface {
	GetCitizen(ctx context.Context, id uuid.UUID) (*CitizenView, error)

	// UpdateCitizen applies a profile edit, enforcing the document
	// policy, the headship invariant and succession, and the
	// best-effort head-name sync.
	UpdateCitizen(ctx context.Context, id uuid.UUID, input *UpdateCitizenInput) (*UpdateCitizenOutput, error)

	// DeleteCitizen removes a citizen; when the roster empties the
	// owning household is cascade-deleted.
	DeleteCitizen(ctx context.Context, id uuid.UUID) (*DeleteCitizenOutput, error)

	// PromoteToHead re-issues the successor promotion of an
	// interrupted succession. Promoting the current head is a no-op.
	PromoteToHead(ctx context.Context, id uuid.UUID) (*CitizenView, error)

	RegisterTemporaryResidence(ctx context.Context, id uuid.UUID, window *WindowInput) (*CitizenView, error)
	CancelTemporaryResidence(ctx context.Context, id uuid.UUID) (*CitizenView, error)
	RegisterTemporaryAbsence(ctx context.Context, id uuid.UUID, window *WindowInput) (*CitizenView, error)
	CancelTemporaryAbsence(ctx context.Context, id uuid.UUID) (*CitizenView, error)

	// DeclareDeath marks the citizen deceased. Declaring death on an
	// already-deceased citizen is a no-op success.
	DeclareDeath(ctx context.Context, id uuid.UUID, reason string) (*CitizenView, error)
}
