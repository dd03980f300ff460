package models

import "github.com/bilaad-labs/estate-pulse/dao/model"

// Project is the application-shaped view of one project row plus its units.
// Rows live in dao/model; handlers and the export pipeline work with this shape.
type Project struct {
	ID               uint                `json:"id"`
	Name             string              `json:"name" binding:"required"`
	Status           model.ProjectStatus `json:"status" binding:"omitempty,oneof=planning in-progress near-completion completed"`
	Progress         int                 `json:"progress" binding:"min=0,max=100"`
	TotalUnits       int                 `json:"totalUnits"`
	CompletedUnits   int                 `json:"completedUnits"`
	TargetCompletion string              `json:"targetCompletion"`
	CurrentPhase     string              `json:"currentPhase"`
	Manager          string              `json:"manager"`
	Location         string              `json:"location"`
	StartDate        string              `json:"startDate"`
	Budget           string              `json:"budget"`
	TargetMilestone  string              `json:"targetMilestone"`

	ActivitiesInProgress []string `json:"activitiesInProgress"`
	CompletedActivities  []string `json:"completedActivities"`
	Challenges           []string `json:"challenges"`
	ProgressImages       []string `json:"progressImages"`

	WeeklyNotes  string `json:"weeklyNotes"`
	MonthlyNotes string `json:"monthlyNotes"`

	Units []Unit `json:"units" binding:"omitempty,dive"`
}

type Unit struct {
	ID               uint             `json:"id"`
	ProjectID        uint             `json:"projectId"`
	UnitNumber       string           `json:"unitNumber" binding:"required"`
	Type             string           `json:"type" binding:"required"`
	SubType          *string          `json:"subType,omitempty"`
	Bedrooms         *int             `json:"bedrooms,omitempty"`
	Status           model.UnitStatus `json:"status" binding:"omitempty,oneof=behind-schedule in-progress completed"`
	Progress         int              `json:"progress" binding:"min=0,max=100"`
	TargetCompletion string           `json:"targetCompletion"`
	CurrentPhase     string           `json:"currentPhase"`
	LastUpdated      string           `json:"lastUpdated"`

	Activities model.PhaseActivities `json:"activities"`
	Challenges []string              `json:"challenges"`
	Photos     []string              `json:"photos"`
}

// ProjectUpdate is a sparse patch: only non-nil fields are written, everything
// else keeps its stored value.
type ProjectUpdate struct {
	Name             *string              `json:"name"`
	Status           *model.ProjectStatus `json:"status"`
	Progress         *int                 `json:"progress" binding:"omitempty,min=0,max=100"`
	TotalUnits       *int                 `json:"totalUnits"`
	CompletedUnits   *int                 `json:"completedUnits"`
	TargetCompletion *string              `json:"targetCompletion"`
	CurrentPhase     *string              `json:"currentPhase"`
	Manager          *string              `json:"manager"`
	Location         *string              `json:"location"`
	StartDate        *string              `json:"startDate"`
	Budget           *string              `json:"budget"`
	TargetMilestone  *string              `json:"targetMilestone"`

	ActivitiesInProgress *[]string `json:"activitiesInProgress"`
	CompletedActivities  *[]string `json:"completedActivities"`
	Challenges           *[]string `json:"challenges"`
	ProgressImages       *[]string `json:"progressImages"`

	WeeklyNotes  *string `json:"weeklyNotes"`
	MonthlyNotes *string `json:"monthlyNotes"`
}

type UnitUpdate struct {
	UnitNumber       *string           `json:"unitNumber"`
	Type             *string           `json:"type"`
	SubType          *string           `json:"subType"`
	Bedrooms         *int              `json:"bedrooms"`
	Status           *model.UnitStatus `json:"status"`
	Progress         *int              `json:"progress" binding:"omitempty,min=0,max=100"`
	TargetCompletion *string           `json:"targetCompletion"`
	CurrentPhase     *string           `json:"currentPhase"`
	LastUpdated      *string           `json:"lastUpdated"`

	Activities *model.PhaseActivities `json:"activities"`
	Challenges *[]string              `json:"challenges"`
	Photos     *[]string              `json:"photos"`
}
