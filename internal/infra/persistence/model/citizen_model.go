package model

import (
	"time"

	"github.com/google/uuid"
)

// CitizenModel mirrors the 'citizens' table. The identity document and
// the two residency windows are flattened into nullable columns; the
// domain layer reassembles them into their optional blocks.
type CitizenModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	HouseholdID        uuid.UUID `gorm:"type:uuid;not null;index"`
	FullName           string    `gorm:"type:varchar(100);not null"`
	BirthDate          time.Time `gorm:"type:date;not null"`
	Gender             string    `gorm:"type:varchar(20)"`
	Ethnicity          string    `gorm:"type:varchar(50)"`
	Nationality        string    `gorm:"type:varchar(50)"`
	Occupation         string    `gorm:"type:varchar(100)"`
	RelationshipToHead string    `gorm:"type:varchar(20);not null"`

	DocumentNumber     *string    `gorm:"type:varchar(12)"`
	DocumentIssueDate  *time.Time `gorm:"type:date"`
	DocumentIssuePlace *string    `gorm:"type:varchar(100)"`

	TempResidenceFrom   *time.Time `gorm:"type:date"`
	TempResidenceTo     *time.Time `gorm:"type:date"`
	TempResidenceReason *string    `gorm:"type:text"`
	TempAbsenceFrom     *time.Time `gorm:"type:date"`
	TempAbsenceTo       *time.Time `gorm:"type:date"`
	TempAbsenceReason   *string    `gorm:"type:text"`

	Deceased    bool    `gorm:"not null;default:false"`
	DeathReason *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (CitizenModel) TableName() string {
	return "citizens"
}
