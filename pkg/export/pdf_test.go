package export

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/bilaad-labs/estate-pulse/dao/model"
	"github.com/bilaad-labs/estate-pulse/pkg/models"
)

func TestSectionOmission(t *testing.T) {
	Convey("an empty text section renders nothing at all", t, func() {
		d := newPDFDoc()
		y := d.pdf.GetY()

		d.textSection("Weekly Notes", "")
		So(d.pdf.GetY(), ShouldEqual, y)
		So(d.pdf.PageNo(), ShouldEqual, 1)
	})

	Convey("an empty bullet section renders nothing at all", t, func() {
		d := newPDFDoc()
		y := d.pdf.GetY()

		d.bulletSection("Project Challenges", nil)
		So(d.pdf.GetY(), ShouldEqual, y)
	})

	Convey("a populated section advances the cursor", t, func() {
		d := newPDFDoc()
		y := d.pdf.GetY()

		d.textSection("Weekly Notes", "Block work continued on street 4.")
		So(d.pdf.GetY(), ShouldBeGreaterThan, y)
	})
}

func TestMeasuredPageBreak(t *testing.T) {
	Convey("a section taller than the remaining space starts a new page whole", t, func() {
		d := newPDFDoc()

		// Walk the cursor near the bottom, then write a block that cannot fit.
		d.pdf.SetY(d.limit - 20)
		long := strings.Repeat("The structure phase is progressing across all streets. ", 20)
		d.textSection("Monthly Summary", long)

		So(d.pdf.PageNo(), ShouldEqual, 2)
	})

	Convey("a section that fits stays on the current page", t, func() {
		d := newPDFDoc()
		d.textSection("Monthly Summary", "Short note.")
		So(d.pdf.PageNo(), ShouldEqual, 1)
	})

	Convey("a section taller than a full page flows across pages, never off the edge", t, func() {
		d := newPDFDoc()
		huge := strings.Repeat("Weekly progress notes accumulated over the rainy season. ", 120)
		d.textSection("Weekly Notes", huge)

		So(d.pdf.PageNo(), ShouldBeGreaterThanOrEqualTo, 2)
		// The cursor sits one trailing section gap past the last text line;
		// the text itself never crosses the break limit.
		So(d.pdf.GetY()-sectionGap, ShouldBeLessThanOrEqualTo, d.limit)
	})
}

func TestProjectPDF(t *testing.T) {
	Convey("a minimal project renders a well-formed document", t, func() {
		p := models.Project{Name: "Garden City", Status: model.ProjectPlanning}
		data, err := ProjectPDF(&p)

		So(err, ShouldBeNil)
		So(bytes.HasPrefix(data, []byte("%PDF")), ShouldBeTrue)
	})
}

func TestUnitsPDF(t *testing.T) {
	Convey("many units with long challenge lists spill onto extra pages", t, func() {
		units := make([]models.Unit, 0, 30)
		for i := 0; i < 30; i++ {
			units = append(units, models.Unit{
				UnitNumber: "A-001",
				Type:       "Apartment",
				Status:     model.UnitInProgress,
				Challenges: []string{strings.Repeat("Access road flooding near the site entrance. ", 3)},
			})
		}

		data, err := UnitsPDF(units, "Garden City")
		So(err, ShouldBeNil)
		So(bytes.HasPrefix(data, []byte("%PDF")), ShouldBeTrue)
		// Well over one page of content.
		So(bytes.Count(data, []byte("/Page")), ShouldBeGreaterThan, 2)
	})
}
