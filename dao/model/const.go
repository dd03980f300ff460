package model

// ProjectStatus values are set directly from the dashboard; there is no
// enforced transition order.
type ProjectStatus string

const (
	ProjectPlanning       ProjectStatus = "planning"
	ProjectInProgress     ProjectStatus = "in-progress"
	ProjectNearCompletion ProjectStatus = "near-completion"
	ProjectCompleted      ProjectStatus = "completed"
)

type UnitStatus string

const (
	UnitBehindSchedule UnitStatus = "behind-schedule"
	UnitInProgress     UnitStatus = "in-progress"
	UnitCompleted      UnitStatus = "completed"
)

// PhaseKeys are the six construction phases tracked per unit. Every unit row is
// expected to carry all six keys in its activities column.
var PhaseKeys = []string{"foundation", "structure", "roofing", "mep", "interior", "finishing"}
