package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"k8s.io/utils/ptr"

	"github.com/bilaad-labs/estate-pulse/dao/model"
	"github.com/bilaad-labs/estate-pulse/pkg/models"
)

func parseCSV(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	return records
}

func TestProjectCSV(t *testing.T) {
	p := models.Project{
		Name:           "Garden City",
		Status:         model.ProjectInProgress,
		Progress:       45,
		Location:       "Abuja",
		Manager:        "A. Bello",
		TotalUnits:     120,
		CompletedUnits: 30,
		Challenges:     []string{"Rainy season", "Late supply"},
	}

	Convey("the record lines up under the header", t, func() {
		data, err := ProjectCSV(&p)
		So(err, ShouldBeNil)

		records := parseCSV(t, data)
		So(records, ShouldHaveLength, 2)
		So(records[0], ShouldResemble, projectCSVHeader)
		So(records[1], ShouldHaveLength, len(projectCSVHeader))
		So(records[1][0], ShouldEqual, "Garden City")
		So(records[1][2], ShouldEqual, "45%")
	})

	Convey("list fields collapse to one cell joined with '; '", t, func() {
		data, err := ProjectCSV(&p)
		So(err, ShouldBeNil)

		records := parseCSV(t, data)
		So(records[1][14], ShouldEqual, "Rainy season; Late supply")
	})

	Convey("commas, quotes and newlines in fields survive a parse round trip", t, func() {
		tricky := p
		tricky.Name = `Garden "Phase 2", Extension`
		tricky.WeeklyNotes = "line one\nline two"

		data, err := ProjectCSV(&tricky)
		So(err, ShouldBeNil)

		records := parseCSV(t, data)
		So(records[1][0], ShouldEqual, tricky.Name)
		So(records[1][12], ShouldEqual, tricky.WeeklyNotes)
	})
}

func TestUnitsCSV(t *testing.T) {
	units := []models.Unit{
		{
			UnitNumber: "A-001",
			Type:       "Apartment",
			SubType:    ptr.To("Duplex"),
			Bedrooms:   ptr.To(3),
			Status:     model.UnitInProgress,
			Progress:   60,
			Activities: model.PhaseActivities{"foundation": model.UnitCompleted},
			Photos:     []string{"a.jpg", "b.jpg"},
		},
		{
			UnitNumber: "A-002",
			Type:       "Apartment",
			Status:     model.UnitBehindSchedule,
			Progress:   10,
		},
	}

	Convey("one record per unit, optional fields blank when unset", t, func() {
		data, err := UnitsCSV(units)
		So(err, ShouldBeNil)

		records := parseCSV(t, data)
		So(records, ShouldHaveLength, 3)
		So(records[0], ShouldResemble, unitsCSVHeader)

		So(records[1][0], ShouldEqual, "A-001")
		So(records[1][2], ShouldEqual, "Duplex")
		So(records[1][3], ShouldEqual, "3")
		So(records[1][11], ShouldEqual, "2")

		So(records[2][2], ShouldEqual, "")
		So(records[2][3], ShouldEqual, "")
		So(records[2][5], ShouldEqual, "10%")
	})

	Convey("the activities cell carries compact JSON", t, func() {
		data, err := UnitsCSV(units)
		So(err, ShouldBeNil)

		records := parseCSV(t, data)
		So(records[1][9], ShouldEqual, `{"foundation":"completed"}`)
	})

	Convey("an empty unit list still emits the header", t, func() {
		data, err := UnitsCSV(nil)
		So(err, ShouldBeNil)
		So(parseCSV(t, data), ShouldHaveLength, 1)
	})
}
