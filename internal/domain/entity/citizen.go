package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdentityDocument holds the citizen's identity papers. The whole block
// is nullable: citizens under fourteen must not carry one, citizens of
// fourteen and over must. The age gate is enforced by the document
// policy before any write reaches the store.
type IdentityDocument struct {
	Number     string    // 9-12 digit document number.
	IssueDate  time.Time // Date of issue, calendar date only.
	IssuePlace string    // Issuing authority or locality.
}

// ResidencyWindow is a time-bounded status override. A nil To means the
// window is open-ended and never expires on its own.
type ResidencyWindow struct {
	From   time.Time
	To     *time.Time
	Reason string
}

// Citizen is a registered person belonging to exactly one household at
// a time. Residency status is never stored on the record; it is derived
// from the death flag and the two optional windows via StatusAt.
type Citizen struct {
	ID                 uuid.UUID
	HouseholdID        uuid.UUID // Exclusive foreign reference to the owning household.
	FullName           string
	BirthDate          time.Time
	Gender             string
	Ethnicity          string
	Nationality        string
	Occupation         string
	IdentityDocument   *IdentityDocument
	RelationshipToHead Relationship
	TemporaryResidence *ResidencyWindow
	TemporaryAbsence   *ResidencyWindow
	Deceased           bool   // Set by the irreversible death declaration.
	DeathReason        string // Reason recorded with the declaration.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// IsHead reports whether the citizen currently holds the head slot of
// their household.
func (c *Citizen) IsHead() bool {
	return c.RelationshipToHead == RelationshipHead
}

// AgeAt returns the citizen's age in whole years at the given date.
// The year only counts once the birthday has passed.
func (c *Citizen) AgeAt(at time.Time) int {
	return AgeAt(c.BirthDate, at)
}

// AgeAt computes an age in whole years between two calendar dates.
func AgeAt(birthDate, at time.Time) int {
	years := at.Year() - birthDate.Year()
	anniversary := birthDate.AddDate(years, 0, 0)
	if beforeDay(at, anniversary) {
		years--
	}

	return years
}

// beforeDay compares two timestamps at calendar-date granularity.
func beforeDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}

	return ad < bd
}
