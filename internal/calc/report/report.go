// Package report renders a mill calculation as PDF, CSV or XLSX.
package report

import (
	"fmt"
	"strconv"
	"time"

	"Millcalc/internal/calc/mill"
)

const title = "Ball Mill Design Report"

// Meta is the free-form header of a report.
type Meta struct {
	Project  string `json:"project"`
	Engineer string `json:"engineer"`
	Notes    string `json:"notes"`
}

type Report struct {
	ID   string
	Date time.Time
	Meta Meta
	mill.Response
}

// New stamps resp with a report id derived from now.
func New(resp mill.Response, meta Meta, now time.Time) Report {
	return Report{ID: ID(now), Date: now, Meta: meta, Response: resp}
}

// ID is "BMC-" followed by the last six digits of the millisecond clock.
func ID(now time.Time) string {
	return fmt.Sprintf("BMC-%06d", now.UnixMilli()%1000000)
}

// Section is a titled block of label/value rows.
type Section struct {
	Title string
	Rows  [][2]string
}

// Sections lists the report body in print order. The material block is
// present only when a catalog material was selected.
func (r Report) Sections() []Section {
	p, d := r.Params, r.Display
	out := []Section{
		{Title: "Input parameters", Rows: [][2]string{
			{"Mill diameter (m)", num(p.D)},
			{"Mill length (m)", num(p.L)},
			{"Work index (kWh/t)", num(p.Wi)},
			{"Feed size F80 (um)", num(p.F80)},
			{"Ball charge (%)", num(p.BallCharge)},
			{"Ball density (t/m3)", num(p.BallDensity)},
			{"Charge porosity (%)", num(p.Porosity)},
			{"Ore specific gravity", num(p.Sg)},
			{"Size reduction constant k", num(p.K)},
			{"Critical speed (%)", num(p.Cs)},
		}},
		{Title: "Calculated results", Rows: [][2]string{
			{"Mill volume (m3)", d.MillVolume},
			{"Charge volume (m3)", d.ChargeVolume},
			{"Ball volume (m3)", d.BallVolume},
			{"Ball mass (t)", d.BallMass},
			{"Optimal ball size (mm)", d.BallSize},
			{"Overall efficiency (%)", d.OverallEfficiency},
		}},
		{Title: "Operating parameters", Rows: [][2]string{
			{"Critical speed (rpm)", d.CriticalSpeed},
			{"Operating speed (rpm)", d.OperatingSpeed},
			{"Total power (kW)", mill.ToFixed(r.Result.TotalPower, 2)},
			{"Throughput (t/h)", d.Throughput},
			{"Specific energy (kWh/t)", d.SpecificEnergy},
			{"Product size P80 (um)", d.P80},
		}},
	}
	if m := r.Material; m != nil {
		out = append(out, Section{Title: "Material", Rows: [][2]string{
			{"Name", m.Name},
			{"Category", m.Category},
			{"Hardness", string(m.Hardness)},
			{"Grindability", string(m.Grindability)},
		}})
	}
	return out
}

// Rows flattens the report into the spreadsheet layout: title, header
// block, then each section separated by an empty row.
func (r Report) Rows() [][]string {
	rows := [][]string{
		{title},
		{"Report ID", r.ID},
		{"Date", r.Date.Format("2006-01-02")},
	}
	if r.Meta.Project != "" {
		rows = append(rows, []string{"Project", r.Meta.Project})
	}
	if r.Meta.Engineer != "" {
		rows = append(rows, []string{"Engineer", r.Meta.Engineer})
	}
	for _, s := range r.Sections() {
		rows = append(rows, []string{""}, []string{s.Title})
		for _, kv := range s.Rows {
			rows = append(rows, []string{kv[0], kv[1]})
		}
	}
	return rows
}

func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
