package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PhaseActivities maps the six construction phases to their status.
type PhaseActivities map[string]UnitStatus

type Unit struct {
	gorm.Model
	ProjectID uint `gorm:"not null;index;comment:owning project"`

	UnitNumber string `gorm:"type:varchar(64);not null;comment:unit label, by convention unique within a project"`
	// Type was once a closed enum (Villa, Townhouse, Apartment, Luxury Villa,
	// Infrastructure) and later relaxed to arbitrary text.
	Type     string  `gorm:"type:varchar(64);not null"`
	SubType  *string `gorm:"type:varchar(64)"`
	Bedrooms *int

	Status           UnitStatus `gorm:"type:varchar(32);not null;comment:behind-schedule, in-progress, completed"`
	Progress         int        `gorm:"not null;default:0"`
	TargetCompletion string     `gorm:"type:varchar(32);comment:canonical date 2006-01-02"`
	CurrentPhase     string     `gorm:"type:varchar(128)"`
	LastUpdated      string     `gorm:"type:varchar(32);comment:canonical date 2006-01-02"`

	Activities datatypes.JSONType[PhaseActivities] `gorm:"not null"`
	Challenges datatypes.JSONSlice[string]         `gorm:"not null"`
	Photos     datatypes.JSONSlice[string]         `gorm:"not null"`
}
