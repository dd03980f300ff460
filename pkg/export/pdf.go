package export

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/bilaad-labs/estate-pulse/pkg/models"
)

const (
	pdfMargin     = 20.0
	titleSize     = 20.0
	headingSize   = 14.0
	infoSize      = 12.0
	bodySize      = 10.0
	infoLineH     = 7.0
	bodyLineH     = 5.0
	headingGap    = 8.0
	sectionGap    = 10.0
	bottomReserve = 15.0
)

type pdfDoc struct {
	pdf   *fpdf.Fpdf
	tr    func(string) string
	width float64 // usable text width
	limit float64 // y past which a new page is needed
}

func newPDFDoc() *pdfDoc {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	// Auto page break keeps a block taller than one page flowing onto the
	// next instead of running off the bottom edge; ensureRoom still keeps
	// sections that fit on a single page together.
	pdf.SetAutoPageBreak(true, bottomReserve)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	return &pdfDoc{
		pdf:   pdf,
		tr:    pdf.UnicodeTranslatorFromDescriptor(""),
		width: pageW - 2*pdfMargin,
		limit: pageH - bottomReserve,
	}
}

func (d *pdfDoc) title(text string) {
	d.pdf.SetFont("Helvetica", "B", titleSize)
	d.pdf.CellFormat(d.width, 10, d.tr(text), "", 1, "C", false, 0, "")
	d.pdf.Ln(8)
}

func (d *pdfDoc) heading(text string, size float64) {
	d.pdf.SetFont("Helvetica", "B", size)
	d.pdf.Cell(d.width, 6, d.tr(text))
	d.pdf.Ln(headingGap)
}

func (d *pdfDoc) line(text string, size, lineH, indent float64) {
	d.pdf.SetFont("Helvetica", "", size)
	d.pdf.SetX(pdfMargin + indent)
	d.pdf.Cell(d.width-indent, lineH, d.tr(text))
	d.pdf.Ln(lineH)
}

// wrapped writes a text block wrapped to the usable width.
func (d *pdfDoc) wrapped(text string, indent float64) {
	d.pdf.SetFont("Helvetica", "", bodySize)
	d.pdf.SetX(pdfMargin + indent)
	d.pdf.MultiCell(d.width-indent, bodyLineH, d.tr(text), "", "L", false)
}

// wrappedHeight measures a block before it is written, so page breaks are
// decided on the real rendered height rather than a fixed threshold.
func (d *pdfDoc) wrappedHeight(text string, indent float64) float64 {
	d.pdf.SetFont("Helvetica", "", bodySize)
	lines := d.pdf.SplitText(d.tr(text), d.width-indent)
	return float64(len(lines)) * bodyLineH
}

// ensureRoom starts a fresh page when the upcoming block would overflow.
func (d *pdfDoc) ensureRoom(height float64) {
	if d.pdf.GetY()+height > d.limit {
		d.pdf.AddPage()
	}
}

func (d *pdfDoc) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// textSection renders a heading plus one wrapped text block, breaking the page
// first if the whole section will not fit. Empty sources render nothing, not
// an empty section.
func (d *pdfDoc) textSection(heading, text string) {
	if text == "" {
		return
	}
	d.ensureRoom(headingGap + d.wrappedHeight(text, 0) + sectionGap)
	d.heading(heading, headingSize)
	d.wrapped(text, 0)
	d.pdf.Ln(sectionGap)
}

func (d *pdfDoc) bulletSection(heading string, items []string) {
	if len(items) == 0 {
		return
	}
	height := headingGap
	for _, item := range items {
		height += d.wrappedHeight("• "+item, 5) + 3
	}
	d.ensureRoom(height)
	d.heading(heading, headingSize)
	for _, item := range items {
		d.wrapped("• "+item, 5)
		d.pdf.Ln(3)
	}
}

// ProjectPDF renders the project report: title, the "Project Information"
// key/value block, then each optional section only when its field is set.
func ProjectPDF(p *models.Project) ([]byte, error) {
	d := newPDFDoc()
	d.title(fmt.Sprintf("%s Estate - Project Report", p.Name))

	d.heading("Project Information", 16)
	info := []string{
		fmt.Sprintf("Status: %s", p.Status),
		fmt.Sprintf("Progress: %d%%", p.Progress),
		fmt.Sprintf("Location: %s", p.Location),
		fmt.Sprintf("Manager: %s", p.Manager),
		fmt.Sprintf("Start Date: %s", p.StartDate),
		fmt.Sprintf("Target Completion: %s", p.TargetCompletion),
		fmt.Sprintf("Current Phase: %s", p.CurrentPhase),
		fmt.Sprintf("Budget: %s", p.Budget),
		fmt.Sprintf("Total Units: %d", p.TotalUnits),
		fmt.Sprintf("Completed Units: %d", p.CompletedUnits),
	}
	for _, line := range info {
		d.line(line, infoSize, infoLineH, 0)
	}
	d.pdf.Ln(sectionGap)

	d.textSection("Target Milestone", p.TargetMilestone)
	d.textSection("Weekly Notes", p.WeeklyNotes)
	d.textSection("Monthly Summary", p.MonthlyNotes)
	d.bulletSection("Project Challenges", p.Challenges)

	return d.bytes()
}

// UnitsPDF renders one sub-section per unit, with the same measured overflow
// check applied per unit block.
func UnitsPDF(units []models.Unit, projectName string) ([]byte, error) {
	d := newPDFDoc()
	d.title(fmt.Sprintf("%s - Units Report", projectName))

	for i := range units {
		u := &units[i]
		subType := "N/A"
		if u.SubType != nil && *u.SubType != "" {
			subType = *u.SubType
		}
		bedrooms := "N/A"
		if u.Bedrooms != nil {
			bedrooms = fmt.Sprintf("%d", *u.Bedrooms)
		}
		info := []string{
			fmt.Sprintf("Sub Type: %s", subType),
			fmt.Sprintf("Bedrooms: %s", bedrooms),
			fmt.Sprintf("Status: %s", u.Status),
			fmt.Sprintf("Progress: %d%%", u.Progress),
			fmt.Sprintf("Target Completion: %s", u.TargetCompletion),
			fmt.Sprintf("Current Phase: %s", u.CurrentPhase),
			fmt.Sprintf("Last Updated: %s", u.LastUpdated),
		}

		height := sectionGap + float64(len(info))*6
		if len(u.Challenges) > 0 {
			height += 5 + 6
			for _, challenge := range u.Challenges {
				height += d.wrappedHeight("• "+challenge, 10)
			}
		}
		d.ensureRoom(height + sectionGap)

		d.heading(fmt.Sprintf("Unit %s - %s", u.UnitNumber, u.Type), headingSize)
		for _, line := range info {
			d.line(line, bodySize, 6, 5)
		}

		if len(u.Challenges) > 0 {
			d.pdf.Ln(5)
			d.pdf.SetFont("Helvetica", "B", bodySize)
			d.pdf.SetX(pdfMargin + 5)
			d.pdf.Cell(d.width-5, 6, "Challenges:")
			d.pdf.Ln(6)
			for _, challenge := range u.Challenges {
				d.wrapped("• "+challenge, 10)
			}
		}
		d.pdf.Ln(sectionGap)
	}

	return d.bytes()
}
