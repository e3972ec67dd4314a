// Package importer reads mill parameter rows from an xlsx workbook.
package importer

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"Millcalc/internal/calc/mill"

	"github.com/xuri/excelize/v2"
)

var ErrEmptySheet = errors.New("sheet has no data rows")

// Columns is the expected layout of the first sheet. The header row is
// skipped; the material column may be left blank.
var Columns = append(mill.FieldNames(), "material")

type Row struct {
	Row    int           `json:"row"`
	Result mill.Response `json:"result"`
}

type RowError struct {
	Row    int               `json:"row"`
	Error  string            `json:"error"`
	Fields []mill.FieldIssue `json:"fields,omitempty"`
}

type Result struct {
	Count   int        `json:"count"`
	Results []Row      `json:"results"`
	Errors  []RowError `json:"errors"`
}

// Import calculates every data row of the first sheet. Rows that fail are
// reported by their sheet row number; blank rows are skipped.
func Import(r io.Reader) (Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Result{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return Result{}, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return Result{}, ErrEmptySheet
	}

	out := Result{Results: []Row{}, Errors: []RowError{}}
	for i := 1; i < len(rows); i++ {
		cells := rows[i]
		if blank(cells) {
			continue
		}
		n := i + 1
		raw := make(map[string]string, len(Columns))
		for c, name := range Columns {
			if c < len(cells) {
				raw[name] = strings.TrimSpace(cells[c])
			}
		}
		p, err := mill.ParseStrings(raw)
		if err == nil {
			var resp mill.Response
			resp, err = mill.Evaluate(p, raw["material"])
			if err == nil {
				out.Results = append(out.Results, Row{Row: n, Result: resp})
				continue
			}
		}
		out.Errors = append(out.Errors, RowError{Row: n, Error: err.Error(), Fields: mill.Issues(err)})
	}
	out.Count = len(out.Results)
	return out, nil
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
