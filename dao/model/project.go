package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Project struct {
	gorm.Model
	Name             string        `gorm:"type:varchar(128);not null;comment:project name"`
	Status           ProjectStatus `gorm:"type:varchar(32);not null;comment:planning, in-progress, near-completion, completed"`
	Progress         int           `gorm:"not null;default:0;comment:overall progress percentage"`
	TotalUnits       int           `gorm:"not null;default:0"`
	CompletedUnits   int           `gorm:"not null;default:0"`
	TargetCompletion string        `gorm:"type:varchar(32);comment:canonical date 2006-01-02"`
	CurrentPhase     string        `gorm:"type:varchar(128)"`
	Manager          string        `gorm:"type:varchar(128)"`
	Location         string        `gorm:"type:varchar(256)"`
	StartDate        string        `gorm:"type:varchar(32);comment:canonical date 2006-01-02"`
	Budget           string        `gorm:"type:varchar(128)"`
	TargetMilestone  string        `gorm:"type:text"`

	ActivitiesInProgress datatypes.JSONSlice[string] `gorm:"not null"`
	CompletedActivities  datatypes.JSONSlice[string] `gorm:"not null"`
	Challenges           datatypes.JSONSlice[string] `gorm:"not null"`
	ProgressImages       datatypes.JSONSlice[string] `gorm:"not null"`

	WeeklyNotes  string `gorm:"type:text"`
	MonthlyNotes string `gorm:"type:text"`

	Units []Unit
}
