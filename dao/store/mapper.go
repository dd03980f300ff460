package store

import (
	"gorm.io/datatypes"

	"github.com/bilaad-labs/estate-pulse/dao/model"
	"github.com/bilaad-labs/estate-pulse/pkg/models"
)

// Row <-> entity mapping for projects and units. The mapping is a 1:1 renaming
// (snake_case columns to camelCase fields); JSON columns pass through
// structurally. No validation happens here: a bad shape is the store's problem
// and its error propagates to the caller untouched.

// RowToProject converts one project row into the application shape and attaches
// an already-fetched unit list. The join itself is the caller's job; the mapper
// is unaware of it.
func RowToProject(row *model.Project, units []models.Unit) models.Project {
	if units == nil {
		units = []models.Unit{}
	}
	return models.Project{
		ID:               row.ID,
		Name:             row.Name,
		Status:           row.Status,
		Progress:         row.Progress,
		TotalUnits:       row.TotalUnits,
		CompletedUnits:   row.CompletedUnits,
		TargetCompletion: row.TargetCompletion,
		CurrentPhase:     row.CurrentPhase,
		Manager:          row.Manager,
		Location:         row.Location,
		StartDate:        row.StartDate,
		Budget:           row.Budget,
		TargetMilestone:  row.TargetMilestone,

		ActivitiesInProgress: emptyIfNil(row.ActivitiesInProgress),
		CompletedActivities:  emptyIfNil(row.CompletedActivities),
		Challenges:           emptyIfNil(row.Challenges),
		ProgressImages:       emptyIfNil(row.ProgressImages),

		WeeklyNotes:  row.WeeklyNotes,
		MonthlyNotes: row.MonthlyNotes,

		Units: units,
	}
}

func RowToUnit(row *model.Unit) models.Unit {
	return models.Unit{
		ID:               row.ID,
		ProjectID:        row.ProjectID,
		UnitNumber:       row.UnitNumber,
		Type:             row.Type,
		SubType:          row.SubType,
		Bedrooms:         row.Bedrooms,
		Status:           row.Status,
		Progress:         row.Progress,
		TargetCompletion: row.TargetCompletion,
		CurrentPhase:     row.CurrentPhase,
		LastUpdated:      row.LastUpdated,

		Activities: row.Activities.Data(),
		Challenges: emptyIfNil(row.Challenges),
		Photos:     emptyIfNil(row.Photos),
	}
}

// ProjectInsertRow builds the row for a create. Unset slice fields become empty
// JSON arrays so the store never receives null for a NOT NULL JSON column.
func ProjectInsertRow(p *models.Project) model.Project {
	return model.Project{
		Name:             p.Name,
		Status:           p.Status,
		Progress:         p.Progress,
		TotalUnits:       p.TotalUnits,
		CompletedUnits:   p.CompletedUnits,
		TargetCompletion: p.TargetCompletion,
		CurrentPhase:     p.CurrentPhase,
		Manager:          p.Manager,
		Location:         p.Location,
		StartDate:        p.StartDate,
		Budget:           p.Budget,
		TargetMilestone:  p.TargetMilestone,

		ActivitiesInProgress: jsonSlice(p.ActivitiesInProgress),
		CompletedActivities:  jsonSlice(p.CompletedActivities),
		Challenges:           jsonSlice(p.Challenges),
		ProgressImages:       jsonSlice(p.ProgressImages),

		WeeklyNotes:  p.WeeklyNotes,
		MonthlyNotes: p.MonthlyNotes,
	}
}

func UnitInsertRow(projectID uint, u *models.Unit) model.Unit {
	return model.Unit{
		ProjectID:        projectID,
		UnitNumber:       u.UnitNumber,
		Type:             u.Type,
		SubType:          u.SubType,
		Bedrooms:         u.Bedrooms,
		Status:           u.Status,
		Progress:         u.Progress,
		TargetCompletion: u.TargetCompletion,
		CurrentPhase:     u.CurrentPhase,
		LastUpdated:      u.LastUpdated,

		Activities: datatypes.NewJSONType(u.Activities),
		Challenges: jsonSlice(u.Challenges),
		Photos:     jsonSlice(u.Photos),
	}
}

// ProjectUpdateColumns builds a sparse patch: only fields present in the update
// emit a column, so omitted fields never overwrite stored values.
func ProjectUpdateColumns(u *models.ProjectUpdate) map[string]any {
	cols := map[string]any{}
	setCol(cols, "name", u.Name)
	setCol(cols, "status", u.Status)
	setCol(cols, "progress", u.Progress)
	setCol(cols, "total_units", u.TotalUnits)
	setCol(cols, "completed_units", u.CompletedUnits)
	setCol(cols, "target_completion", u.TargetCompletion)
	setCol(cols, "current_phase", u.CurrentPhase)
	setCol(cols, "manager", u.Manager)
	setCol(cols, "location", u.Location)
	setCol(cols, "start_date", u.StartDate)
	setCol(cols, "budget", u.Budget)
	setCol(cols, "target_milestone", u.TargetMilestone)
	setJSONCol(cols, "activities_in_progress", u.ActivitiesInProgress)
	setJSONCol(cols, "completed_activities", u.CompletedActivities)
	setJSONCol(cols, "challenges", u.Challenges)
	setJSONCol(cols, "progress_images", u.ProgressImages)
	setCol(cols, "weekly_notes", u.WeeklyNotes)
	setCol(cols, "monthly_notes", u.MonthlyNotes)
	return cols
}

func UnitUpdateColumns(u *models.UnitUpdate) map[string]any {
	cols := map[string]any{}
	setCol(cols, "unit_number", u.UnitNumber)
	setCol(cols, "type", u.Type)
	setCol(cols, "sub_type", u.SubType)
	setCol(cols, "bedrooms", u.Bedrooms)
	setCol(cols, "status", u.Status)
	setCol(cols, "progress", u.Progress)
	setCol(cols, "target_completion", u.TargetCompletion)
	setCol(cols, "current_phase", u.CurrentPhase)
	setCol(cols, "last_updated", u.LastUpdated)
	if u.Activities != nil {
		cols["activities"] = datatypes.NewJSONType(*u.Activities)
	}
	setJSONCol(cols, "challenges", u.Challenges)
	setJSONCol(cols, "photos", u.Photos)
	return cols
}

func emptyIfNil(s datatypes.JSONSlice[string]) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func jsonSlice(s []string) datatypes.JSONSlice[string] {
	if s == nil {
		return datatypes.JSONSlice[string]{}
	}
	return datatypes.NewJSONSlice(s)
}

func setCol[T any](cols map[string]any, name string, v *T) {
	if v != nil {
		cols[name] = *v
	}
}

func setJSONCol(cols map[string]any, name string, v *[]string) {
	if v != nil {
		cols[name] = datatypes.NewJSONSlice(*v)
	}
}
