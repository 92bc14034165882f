// Package usecase contains the application-specific business rules of
// the consistency engine. It orchestrates the domain layer against the
// non-transactional registry store.
package usecase

import (
	"context"
	"time"

	"hokhau/internal/domain/entity"

	"github.com/google/uuid"
)

// CitizenView pairs a citizen record with its residency status derived
// at read time. The status is a function of the clock and is never
// persisted, so every read recomputes it.
type CitizenView struct {
	Citizen       *entity.Citizen
	CurrentStatus entity.ResidencyStatus
}

// NewCitizenView derives the view for the given moment.
func NewCitizenView(citizen *entity.Citizen, now time.Time) *CitizenView {
	return &CitizenView{
		Citizen:       citizen,
		CurrentStatus: citizen.StatusAt(now),
	}
}

// --- Input DTOs ---

// CitizenInput defines the data required to register a citizen.
type CitizenInput struct {
	FullName           string
	BirthDate          string // date-like value, normalized by the engine
	Gender             string
	Ethnicity          string
	Nationality        string
	Occupation         string
	IdentityDocument   *DocumentInput
	RelationshipToHead entity.Relationship
}

// DocumentInput carries candidate identity-document fields.
type DocumentInput struct {
	Number     string
	IssueDate  string // date-like value, normalized by the engine
	IssuePlace string
}

// CreateHouseholdInput defines the data for the create-household saga:
// a new household plus the citizen who becomes its head.
type CreateHouseholdInput struct {
	RegistryNumber string
	Address        string
	Head           CitizenInput
}

// --- Output DTOs ---

// CreateHouseholdOutput returns both aggregates created by the saga.
type CreateHouseholdOutput struct {
	Household *entity.Household
	Head      *CitizenView
}

// OverviewOutput carries the independent read-only lists used to
// populate selectors.
type OverviewOutput struct {
	Households []*entity.Household
	Citizens   []*CitizenView
}

// HouseholdUsecase defines household-side operations of the engine.
type HouseholdUsecase interface {
	// CreateHousehold runs the create-household saga: household first,
	// then its head citizen, with a compensating delete of the
	// household if the head cannot be created.
	CreateHousehold(ctx context.Context, input *CreateHouseholdInput) (*CreateHouseholdOutput, error)

	// AddMember creates a citizen as an additional member of an
	// existing household. The document policy runs first, and a HEAD
	// relationship is validated against the current roster.
	AddMember(ctx context.Context, householdID uuid.UUID, input *CitizenInput) (*CitizenView, error)

	GetHousehold(ctx context.Context, id uuid.UUID) (*entity.Household, error)

	ListHouseholds(ctx context.Context) ([]*entity.Household, error)

	// ListMembers returns the household roster with derived statuses.
	ListMembers(ctx context.Context, householdID uuid.UUID) ([]*CitizenView, error)

	// Overview loads households and citizens concurrently; the two
	// reads are independent and have no ordering requirement.
	Overview(ctx context.Context) (*OverviewOutput, error)
}
