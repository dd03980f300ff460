package store

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"k8s.io/utils/ptr"

	"github.com/bilaad-labs/estate-pulse/dao/model"
	"github.com/bilaad-labs/estate-pulse/pkg/models"
)

func fullProject() models.Project {
	return models.Project{
		Name:             "Garden City",
		Status:           model.ProjectInProgress,
		Progress:         45,
		TotalUnits:       120,
		CompletedUnits:   30,
		TargetCompletion: "2026-06-30",
		CurrentPhase:     "Structure",
		Manager:          "A. Bello",
		Location:         "Abuja",
		StartDate:        "2024-01-15",
		Budget:           "N2.5B",
		TargetMilestone:  "Phase 2 handover",

		ActivitiesInProgress: []string{"Block work", "Roofing"},
		CompletedActivities:  []string{"Foundation"},
		Challenges:           []string{"Rainy season delays"},
		ProgressImages:       []string{"https://cdn.example/p/1.jpg"},

		WeeklyNotes:  "Good pace this week.",
		MonthlyNotes: "On track overall.",
	}
}

func TestProjectMapping(t *testing.T) {
	Convey("a fully populated project survives the row round trip", t, func() {
		p := fullProject()
		row := ProjectInsertRow(&p)
		back := RowToProject(&row, nil)

		// The store assigns ID and timestamps; everything else must match.
		p.Units = []models.Unit{}
		So(back, ShouldResemble, p)
	})

	Convey("nil JSON columns map to empty sequences, not nil", t, func() {
		row := model.Project{Name: "Bare", Status: model.ProjectPlanning}
		p := RowToProject(&row, nil)

		So(p.Challenges, ShouldNotBeNil)
		So(p.Challenges, ShouldBeEmpty)
		So(p.ActivitiesInProgress, ShouldBeEmpty)
		So(p.CompletedActivities, ShouldBeEmpty)
		So(p.ProgressImages, ShouldBeEmpty)
		So(p.Units, ShouldBeEmpty)
	})

	Convey("insert rows default unset slice fields to empty JSON arrays", t, func() {
		p := models.Project{Name: "Bare", Status: model.ProjectPlanning}
		row := ProjectInsertRow(&p)

		So(row.Challenges, ShouldNotBeNil)
		So(row.ActivitiesInProgress, ShouldNotBeNil)
		So(row.CompletedActivities, ShouldNotBeNil)
		So(row.ProgressImages, ShouldNotBeNil)
	})
}

func TestUnitMapping(t *testing.T) {
	Convey("a fully populated unit survives the row round trip", t, func() {
		u := models.Unit{
			ProjectID:        7,
			UnitNumber:       "V-012",
			Type:             "Villa",
			SubType:          ptr.To("Detached"),
			Bedrooms:         ptr.To(4),
			Status:           model.UnitInProgress,
			Progress:         60,
			TargetCompletion: "2025-12-01",
			CurrentPhase:     "MEP",
			LastUpdated:      "2025-08-20",
			Activities: model.PhaseActivities{
				"foundation": model.UnitCompleted,
				"structure":  model.UnitCompleted,
				"roofing":    model.UnitInProgress,
				"mep":        model.UnitInProgress,
				"interior":   model.UnitBehindSchedule,
				"finishing":  model.UnitBehindSchedule,
			},
			Challenges: []string{"Material delivery"},
			Photos:     []string{"https://cdn.example/u/1.jpg"},
		}
		row := UnitInsertRow(7, &u)
		So(RowToUnit(&row), ShouldResemble, u)
	})

	Convey("nil photos and challenges become empty sequences", t, func() {
		row := model.Unit{ProjectID: 1, UnitNumber: "A-001", Type: "Apartment", Status: model.UnitInProgress}
		u := RowToUnit(&row)

		So(u.Photos, ShouldNotBeNil)
		So(u.Photos, ShouldBeEmpty)
		So(u.Challenges, ShouldBeEmpty)
	})
}

func TestSparseUpdate(t *testing.T) {
	Convey("a patch with only progress emits exactly one column", t, func() {
		cols := ProjectUpdateColumns(&models.ProjectUpdate{Progress: ptr.To(42)})

		So(cols, ShouldHaveLength, 1)
		So(cols["progress"], ShouldEqual, 42)
	})

	Convey("an empty patch emits no columns", t, func() {
		So(ProjectUpdateColumns(&models.ProjectUpdate{}), ShouldBeEmpty)
		So(UnitUpdateColumns(&models.UnitUpdate{}), ShouldBeEmpty)
	})

	Convey("slice fields patch as JSON columns", t, func() {
		cols := ProjectUpdateColumns(&models.ProjectUpdate{
			Challenges: ptr.To([]string{"A", "B"}),
		})
		So(cols, ShouldHaveLength, 1)
		So(cols, ShouldContainKey, "challenges")
	})

	Convey("unit patches emit only the named columns", t, func() {
		cols := UnitUpdateColumns(&models.UnitUpdate{
			Status:   ptr.To(model.UnitCompleted),
			Progress: ptr.To(100),
		})
		So(cols, ShouldHaveLength, 2)
		So(cols["status"], ShouldEqual, model.UnitCompleted)
		So(cols["progress"], ShouldEqual, 100)
	})
}
