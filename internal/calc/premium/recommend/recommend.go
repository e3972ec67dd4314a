// Package recommend turns a generated design option into mill parameters
// and runs the full calculation on them.
package recommend

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"Millcalc/internal/calc/mill"
	"Millcalc/internal/calc/premium/autodesign"
	"Millcalc/internal/catalog/material"
)

var ErrUnknownOption = errors.New("unknown design option")

type ApplyInput struct {
	Requirements autodesign.Requirements `json:"requirements"`
	// OptionID selects the option to apply; empty means the recommended one.
	OptionID string `json:"option_id"`
	// Base overrides the engine defaults for fields the option leaves alone.
	Base json.RawMessage `json:"base,omitempty"`
}

type ApplyResult struct {
	Option autodesign.Option `json:"option"`
	Mill   mill.Response     `json:"mill"`
}

// Params maps o onto base. Diameter and length are rounded to one decimal
// the way the calculator form shows them; Wi, Sg and k come from m when set.
func Params(o autodesign.Option, base mill.Params, m *material.Material) mill.Params {
	p := base
	p.D = round1(o.Diameter)
	p.L = round1(o.Length)
	if m != nil {
		if m.Wi > 0 {
			p.Wi = m.Wi
		}
		if m.Sg > 0 {
			p.Sg = m.Sg
		}
		if m.RecommendedK > 0 {
			p.K = m.RecommendedK
		}
	}
	p.BallCharge = o.BallCharge
	p.Cs = o.CriticalSpeed
	return p
}

func round1(x float64) float64 {
	v, _ := strconv.ParseFloat(mill.ToFixed(x, 1), 64)
	return v
}

// Apply regenerates the options for in.Requirements, picks one and
// calculates the resulting mill.
func Apply(in ApplyInput, d autodesign.Defaults) (ApplyResult, error) {
	design, err := autodesign.Build(in.Requirements, d)
	if err != nil {
		return ApplyResult{}, err
	}
	var (
		o  autodesign.Option
		ok bool
	)
	if in.OptionID == "" {
		o, ok = autodesign.Recommended(design.Options)
	} else {
		o, ok = autodesign.Find(design.Options, in.OptionID)
	}
	if !ok {
		return ApplyResult{}, fmt.Errorf("%w: %q", ErrUnknownOption, in.OptionID)
	}

	base := mill.DefaultParams()
	if len(in.Base) > 0 {
		if err := json.Unmarshal(in.Base, &base); err != nil {
			return ApplyResult{}, fmt.Errorf("%w: base: %v", mill.ErrInvalidInput, err)
		}
	}
	p := Params(o, base, design.Material)
	resp, err := mill.Evaluate(p, design.Requirements.Material)
	if err != nil {
		return ApplyResult{}, err
	}
	return ApplyResult{Option: o, Mill: resp}, nil
}
