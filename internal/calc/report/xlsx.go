package report

import (
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	reportSheet       = "Report"
	distributionSheet = "Distribution"
)

// WriteXLSX writes the report rows to one sheet and the ball size
// distribution to a second.
func WriteXLSX(w io.Writer, r Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	sections := map[string]bool{title: true}
	for _, s := range r.Sections() {
		sections[s.Title] = true
	}
	for i, row := range r.Rows() {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		values := make([]interface{}, len(row))
		for j, v := range row {
			values[j] = v
		}
		if err := f.SetSheetRow(reportSheet, cell, &values); err != nil {
			return err
		}
		if len(row) == 1 && sections[row[0]] {
			f.SetCellStyle(reportSheet, cell, cell, bold)
		}
	}
	f.SetColWidth(reportSheet, "A", "A", 32)
	f.SetColWidth(reportSheet, "B", "B", 18)

	if _, err := f.NewSheet(distributionSheet); err != nil {
		return err
	}
	dist := r.Result.Distribution
	f.SetCellValue(distributionSheet, "A1", dist.Name)
	f.SetCellStyle(distributionSheet, "A1", "A1", bold)
	header := []interface{}{"Ball size (mm)", "Share (%)", "Cumulative (%)"}
	f.SetSheetRow(distributionSheet, "A2", &header)
	f.SetCellStyle(distributionSheet, "A2", "C2", bold)
	for i, pt := range dist.Points() {
		cell, _ := excelize.CoordinatesToCellName(1, i+3)
		row := []interface{}{pt.SizeMM, pt.Percentage, pt.Cumulative}
		if err := f.SetSheetRow(distributionSheet, cell, &row); err != nil {
			return err
		}
	}
	f.SetColWidth(distributionSheet, "A", "C", 16)

	_, err = f.WriteTo(w)
	return err
}
