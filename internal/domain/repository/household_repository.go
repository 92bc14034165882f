// Package repository defines the contracts of the household/citizen
// CRUD store the engine consumes. The store commits every call
// independently; there is no transactional envelope across aggregates,
// which is why all cross-aggregate consistency lives in the usecase
// layer's sequencing and compensation logic.
package repository

import (
	"context"
	"errors"

	"hokhau/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrHouseholdNotFound is returned when a household does not exist.
var ErrHouseholdNotFound = errors.New("household not found")

// HouseholdRepository defines the standard operations for household
// persistence. The usecase layer depends on this interface, never on a
// concrete implementation.
type HouseholdRepository interface {
	// Create persists a new household and assigns its ID.
	Create(ctx context.Context, household *entity.Household) error

	// FindByID retrieves a single household by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Household, error)

	// List retrieves all registered households.
	List(ctx context.Context) ([]*entity.Household, error)

	// Update modifies an existing household (address, denormalized head name).
	Update(ctx context.Context, household *entity.Household) error

	// Delete removes a household. Deleting a household that no longer
	// exists is treated as success so compensating deletes can be
	// retried safely.
	Delete(ctx context.Context, id uuid.UUID) error
}
