package report

import (
	"fmt"
	"io"

	"github.com/phpdave11/gofpdf"
)

// WritePDF renders r on A4 pages.
func WritePDF(w io.Writer, r Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(title, true)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("%s - page %d", r.ID, pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Report ID: %s", r.ID))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", r.Date.Format("2006-01-02")))
	pdf.Ln(6)
	if r.Meta.Project != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Project: %s", r.Meta.Project)))
		pdf.Ln(6)
	}
	if r.Meta.Engineer != "" {
		pdf.Cell(0, 6, tr(fmt.Sprintf("Engineer: %s", r.Meta.Engineer)))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	for _, s := range r.Sections() {
		heading(pdf, s.Title)
		pdf.SetFont("Helvetica", "", 10)
		for _, kv := range s.Rows {
			pdf.CellFormat(90, 6, tr(kv[0]), "1", 0, "L", false, 0, "")
			pdf.CellFormat(60, 6, tr(kv[1]), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(4)
	}

	dist := r.Result.Distribution
	heading(pdf, fmt.Sprintf("Ball size distribution: %s", dist.Name))
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, h := range []string{"Ball size (mm)", "Share (%)", "Cumulative (%)"} {
		pdf.CellFormat(50, 6, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	for _, pt := range dist.Points() {
		pdf.CellFormat(50, 6, num(pt.SizeMM), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, num(pt.Percentage), "1", 0, "C", false, 0, "")
		pdf.CellFormat(50, 6, num(pt.Cumulative), "1", 1, "C", false, 0, "")
	}

	if r.Meta.Notes != "" {
		pdf.Ln(4)
		heading(pdf, "Notes")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(r.Meta.Notes), "", "L", false)
	}
	return pdf.Output(w)
}

func heading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, text)
	pdf.Ln(8)
}
