package repository

import (
	"context"
	"errors"

	"hokhau/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCitizenNotFound is returned when a citizen does not exist.
var ErrCitizenNotFound = errors.New("citizen not found")

// CitizenRepository defines the standard operations for citizen
// persistence, including the residency-window and death-declaration
// calls the registry backend exposes as separate endpoints.
type CitizenRepository interface {
	// Create persists a new citizen and assigns their ID.
	Create(ctx context.Context, citizen *entity.Citizen) error

	// FindByID retrieves a single citizen by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Citizen, error)

	// ListByHousehold retrieves the full member roster of a household.
	ListByHousehold(ctx context.Context, householdID uuid.UUID) ([]*entity.Citizen, error)

	// List retrieves all citizens.
	List(ctx context.Context) ([]*entity.Citizen, error)

	// Update modifies an existing citizen's profile fields, household
	// reference and relationship.
	Update(ctx context.Context, citizen *entity.Citizen) error

	// Delete removes a citizen record.
	Delete(ctx context.Context, id uuid.UUID) error

	// RegisterTemporaryResidence sets the citizen's temporary-residence window.
	RegisterTemporaryResidence(ctx context.Context, id uuid.UUID, window *entity.ResidencyWindow) (*entity.Citizen, error)

	// CancelTemporaryResidence clears the citizen's temporary-residence window.
	CancelTemporaryResidence(ctx context.Context, id uuid.UUID) error

	// RegisterTemporaryAbsence sets the citizen's temporary-absence window.
	RegisterTemporaryAbsence(ctx context.Context, id uuid.UUID, window *entity.ResidencyWindow) (*entity.Citizen, error)

	// CancelTemporaryAbsence clears the citizen's temporary-absence window.
	CancelTemporaryAbsence(ctx context.Context, id uuid.UUID) error

	// DeclareDeath marks the citizen deceased with the given reason.
	// The transition is one-way; the store never clears the flag.
	DeclareDeath(ctx context.Context, id uuid.UUID, reason string) (*entity.Citizen, error)
}
