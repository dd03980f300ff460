// Package export renders projects and units into downloadable artifacts.
// Everything here is pure: entities in, bytes out, no I/O.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bilaad-labs/estate-pulse/pkg/models"
)

var projectCSVHeader = []string{
	"Project Name", "Status", "Progress", "Location", "Manager",
	"Start Date", "Target Completion", "Current Phase", "Budget",
	"Total Units", "Completed Units", "Target Milestone",
	"Weekly Notes", "Monthly Notes", "Challenges",
	"Completed Activities", "Activities in Progress",
}

// ProjectCSV flattens one project into a single CSV record under
// human-readable headers. List fields collapse to one cell joined with "; ";
// percentages render as "<n>%".
func ProjectCSV(p *models.Project) ([]byte, error) {
	record := []string{
		p.Name,
		string(p.Status),
		fmt.Sprintf("%d%%", p.Progress),
		p.Location,
		p.Manager,
		p.StartDate,
		p.TargetCompletion,
		p.CurrentPhase,
		p.Budget,
		fmt.Sprintf("%d", p.TotalUnits),
		fmt.Sprintf("%d", p.CompletedUnits),
		p.TargetMilestone,
		p.WeeklyNotes,
		p.MonthlyNotes,
		strings.Join(p.Challenges, "; "),
		strings.Join(p.CompletedActivities, "; "),
		strings.Join(p.ActivitiesInProgress, "; "),
	}
	return writeCSV(projectCSVHeader, [][]string{record})
}

var unitsCSVHeader = []string{
	"Unit Number", "Type", "Sub Type", "Bedrooms", "Status", "Progress",
	"Target Completion", "Current Phase", "Last Updated", "Activities",
	"Challenges", "Photos Count",
}

// UnitsCSV writes one record per unit. The activities map is kept as compact
// JSON in a single cell.
func UnitsCSV(units []models.Unit) ([]byte, error) {
	records := make([][]string, 0, len(units))
	for i := range units {
		u := &units[i]
		activities, err := json.Marshal(u.Activities)
		if err != nil {
			return nil, err
		}
		subType := ""
		if u.SubType != nil {
			subType = *u.SubType
		}
		bedrooms := ""
		if u.Bedrooms != nil {
			bedrooms = fmt.Sprintf("%d", *u.Bedrooms)
		}
		records = append(records, []string{
			u.UnitNumber,
			u.Type,
			subType,
			bedrooms,
			string(u.Status),
			fmt.Sprintf("%d%%", u.Progress),
			u.TargetCompletion,
			u.CurrentPhase,
			u.LastUpdated,
			string(activities),
			strings.Join(u.Challenges, "; "),
			fmt.Sprintf("%d", len(u.Photos)),
		})
	}
	return writeCSV(unitsCSVHeader, records)
}

func writeCSV(header []string, records [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, record := range records {
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
