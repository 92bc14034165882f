// Package entity contains the core business objects of the registry,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Household is the administrative unit a citizen belongs to: an
// address-bound registry record identified by its registry number.
// HeadName is a denormalized copy of the head citizen's full name,
// maintained best-effort by the consistency engine; the citizen record
// remains the source of truth.
type Household struct {
	ID             uuid.UUID // Server-assigned identifier, immutable once created.
	RegistryNumber string    // Unique registry book number, immutable after creation.
	HeadName       string    // Denormalized full name of the current head.
	Address        string    // Registered address of the household.
	MemberCount    int       // Derived member count, not owned by the engine.
	CreatedAt      time.Time // Timestamp of when this household was registered.
	UpdatedAt      time.Time // Timestamp of the last modification.
}
