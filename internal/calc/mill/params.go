package mill

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"Millcalc/internal/catalog/material"
)

// Params is one snapshot of mill geometry and ore properties.
type Params struct {
	D           float64 `json:"D"`              // inside diameter, m
	L           float64 `json:"L"`              // effective length, m
	Wi          float64 `json:"Wi"`             // Bond work index, kWh/t
	F80         float64 `json:"F80"`            // feed size, um
	BallCharge  float64 `json:"darsad_bar"`     // % of mill volume
	BallDensity float64 `json:"chegali_golole"` // t/m3
	Porosity    float64 `json:"takhalkhol"`     // % voids in the charge
	Sg          float64 `json:"Sg"`
	K           float64 `json:"k"`
	Cs          float64 `json:"Cs"` // % of critical speed
}

// DefaultParams is a 3 x 4 m mill on medium hardness ore.
func DefaultParams() Params {
	return Params{
		D: 3.0, L: 4.0, Wi: 15.0, F80: 2000,
		BallCharge: 40, BallDensity: 7.8, Porosity: 40,
		Sg: 2.7, K: 400, Cs: 72,
	}
}

// WithMaterial copies the catalog work index, specific gravity and k into p.
func (p Params) WithMaterial(m material.Material) Params {
	p.Wi = m.Wi
	p.Sg = m.Sg
	p.K = m.RecommendedK
	return p
}

type field struct {
	name string
	ptr  func(*Params) *float64
}

var fields = []field{
	{"D", func(p *Params) *float64 { return &p.D }},
	{"L", func(p *Params) *float64 { return &p.L }},
	{"Wi", func(p *Params) *float64 { return &p.Wi }},
	{"F80", func(p *Params) *float64 { return &p.F80 }},
	{"darsad_bar", func(p *Params) *float64 { return &p.BallCharge }},
	{"chegali_golole", func(p *Params) *float64 { return &p.BallDensity }},
	{"takhalkhol", func(p *Params) *float64 { return &p.Porosity }},
	{"Sg", func(p *Params) *float64 { return &p.Sg }},
	{"k", func(p *Params) *float64 { return &p.K }},
	{"Cs", func(p *Params) *float64 { return &p.Cs }},
}

// FieldNames lists the parameter keys in form order.
func FieldNames() []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.name
	}
	return out
}

// ParseInput builds Params from loosely typed form data. Values may be JSON
// numbers or numeric strings; every missing or unparsable field is reported.
func ParseInput(raw map[string]any) (Params, error) {
	var p Params
	var issues []FieldIssue
	for _, f := range fields {
		v, ok := raw[f.name]
		if !ok || v == nil {
			issues = append(issues, FieldIssue{f.name, "missing"})
			continue
		}
		n, err := toNumber(v)
		if err != nil {
			issues = append(issues, FieldIssue{f.name, err.Error()})
			continue
		}
		*f.ptr(&p) = n
	}
	if len(issues) > 0 {
		return Params{}, &ValidationError{Issues: issues}
	}
	return p, nil
}

// ParseStrings is ParseInput for spreadsheet cells and query values.
func ParseStrings(raw map[string]string) (Params, error) {
	m := make(map[string]any, len(raw))
	for k, v := range raw {
		if strings.TrimSpace(v) == "" {
			continue
		}
		m[k] = v
	}
	return ParseInput(m)
}

func toNumber(v any) (float64, error) {
	var n float64
	switch t := v.(type) {
	case float64:
		n = t
	case int:
		n = float64(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, fmt.Errorf("missing")
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("not a number")
		}
		n = f
	default:
		return 0, fmt.Errorf("not a number")
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, fmt.Errorf("not a number")
	}
	return n, nil
}

func (p Params) validate() error {
	var issues []FieldIssue
	for _, f := range fields {
		n := *f.ptr(&p)
		if math.IsNaN(n) || math.IsInf(n, 0) {
			issues = append(issues, FieldIssue{f.name, "not a number"})
		}
	}
	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}

	positive := []struct {
		name string
		v    float64
	}{
		{"D", p.D}, {"L", p.L}, {"Wi", p.Wi}, {"F80", p.F80},
		{"chegali_golole", p.BallDensity}, {"Sg", p.Sg}, {"Cs", p.Cs},
	}
	for _, c := range positive {
		if c.v <= 0 {
			issues = append(issues, FieldIssue{c.name, "must be greater than zero"})
		}
	}
	if p.K < 0 {
		issues = append(issues, FieldIssue{"k", "must not be negative"})
	}
	if p.BallCharge < 0 || p.BallCharge > 100 {
		issues = append(issues, FieldIssue{"darsad_bar", "must be between 0 and 100"})
	}
	if p.Porosity < 0 || p.Porosity > 100 {
		issues = append(issues, FieldIssue{"takhalkhol", "must be between 0 and 100"})
	}
	if len(issues) > 0 {
		return &DomainError{Issues: issues}
	}
	return nil
}
