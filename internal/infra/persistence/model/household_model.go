package model

import (
	"time"

	"github.com/google/uuid"
)

// HouseholdModel mirrors the 'households' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type HouseholdModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RegistryNumber string    `gorm:"type:varchar(50);unique;not null"`
	HeadName       string    `gorm:"type:varchar(100)"`
	Address        string    `gorm:"type:text;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Members []CitizenModel `gorm:"foreignKey:HouseholdID"`
}

// TableName explicitly sets the table name for GORM.
func (HouseholdModel) TableName() string {
	return "households"
}
