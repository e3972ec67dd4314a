// Package autodesign proposes ball mill designs from plant requirements.
// Generation is deterministic: four archetypes scaled against a Bond
// baseline, adjusted for site context, then scored and ranked.
package autodesign

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"Millcalc/internal/calc/mill"
	"Millcalc/internal/catalog/material"
)

const (
	Conservative = "conservative"
	Balanced     = "balanced"
	Aggressive   = "aggressive"
	Modular      = "modular"
)

// Priority values.
const (
	PriorityCost        = "cost"
	PriorityBalanced    = "balanced"
	PriorityEfficiency  = "efficiency"
	PriorityReliability = "reliability"
)

// Location values.
const (
	LocationUrban      = "urban"
	LocationIndustrial = "industrial"
	LocationRemote     = "remote"
)

// Environmental strictness values.
const (
	EnvStandard = "standard"
	EnvStrict   = "strict"
)

var ErrInvalidRequirements = errors.New("invalid design requirements")

// Defaults replace zero-valued sizing requirements.
type Defaults struct {
	Capacity    float64
	FeedSize    float64
	ProductSize float64
	Budget      float64
}

func DefaultDefaults() Defaults {
	return Defaults{Capacity: 100, FeedSize: 2000, ProductSize: 150, Budget: 1e6}
}

const (
	defaultWi         = 15.0
	defaultSg         = 2.7
	defaultWearFactor = 1.0
)

type Requirements struct {
	Capacity      float64 `json:"capacity"`
	FeedSize      float64 `json:"feed_size"`
	ProductSize   float64 `json:"product_size"`
	Budget        float64 `json:"budget"`
	Material      string  `json:"material"`
	Priority      string  `json:"priority"`
	Environmental string  `json:"environmental"`
	Location      string  `json:"location"`

	// Informational; echoed back with the options.
	Availability   float64 `json:"availability"`
	OperatingHours float64 `json:"operating_hours"`
	Timeline       float64 `json:"timeline_months"`
	Maintenance    string  `json:"maintenance"`
	Automation     string  `json:"automation"`
	Expansion      string  `json:"expansion"`
}

// Normalize fills zero fields from d and the form defaults.
func (r Requirements) Normalize(d Defaults) Requirements {
	if r.Capacity == 0 {
		r.Capacity = d.Capacity
	}
	if r.FeedSize == 0 {
		r.FeedSize = d.FeedSize
	}
	if r.ProductSize == 0 {
		r.ProductSize = d.ProductSize
	}
	if r.Budget == 0 {
		r.Budget = d.Budget
	}
	if r.Priority == "" {
		r.Priority = PriorityBalanced
	}
	if r.Environmental == "" {
		r.Environmental = EnvStandard
	}
	if r.Location == "" {
		r.Location = LocationIndustrial
	}
	if r.Availability == 0 {
		r.Availability = 95
	}
	if r.OperatingHours == 0 {
		r.OperatingHours = 8000
	}
	if r.Timeline == 0 {
		r.Timeline = 12
	}
	if r.Maintenance == "" {
		r.Maintenance = "standard"
	}
	if r.Automation == "" {
		r.Automation = "semi"
	}
	if r.Expansion == "" {
		r.Expansion = "no"
	}
	return r
}

func (r Requirements) validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"capacity", r.Capacity},
		{"feed_size", r.FeedSize},
		{"product_size", r.ProductSize},
		{"budget", r.Budget},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) || f.v <= 0 {
			return fmt.Errorf("%w: %s must be a positive number", ErrInvalidRequirements, f.name)
		}
	}
	if r.ProductSize >= r.FeedSize {
		return fmt.Errorf("%w: product_size must be smaller than feed_size", ErrInvalidRequirements)
	}
	switch r.Priority {
	case PriorityCost, PriorityBalanced, PriorityEfficiency, PriorityReliability:
	default:
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidRequirements, r.Priority)
	}
	switch r.Location {
	case LocationUrban, LocationIndustrial, LocationRemote:
	default:
		return fmt.Errorf("%w: unknown location %q", ErrInvalidRequirements, r.Location)
	}
	switch r.Environmental {
	case EnvStandard, EnvStrict:
	default:
		return fmt.Errorf("%w: unknown environmental level %q", ErrInvalidRequirements, r.Environmental)
	}
	return nil
}

type Option struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Diameter          float64  `json:"diameter"`
	Length            float64  `json:"length"`
	Power             float64  `json:"power"`
	Cost              float64  `json:"cost"`
	Efficiency        float64  `json:"efficiency"`
	Reliability       float64  `json:"reliability"`
	Environmental     float64  `json:"environmental"`
	Maintenance       float64  `json:"maintenance"`
	Description       string   `json:"description"`
	Advantages        []string `json:"advantages"`
	Disadvantages     []string `json:"disadvantages"`
	Suitability       string   `json:"suitability"`
	PaybackPeriod     float64  `json:"payback_period"`
	OperatingCost     float64  `json:"operating_cost"`
	BallCharge        float64  `json:"ball_charge"`
	CriticalSpeed     float64  `json:"critical_speed"`
	Throughput        float64  `json:"throughput"`
	EnergyConsumption float64  `json:"energy_consumption"`

	Score       int  `json:"score"`
	Recommended bool `json:"recommended"`
}

// Baseline is the Bond sizing every archetype scales.
type Baseline struct {
	Power    float64 `json:"power"`
	Diameter float64 `json:"diameter"`
	Length   float64 `json:"length"`
	// Wi and Sg are the values the baseline was computed with.
	Wi float64 `json:"wi"`
	Sg float64 `json:"sg"`
}

func baseline(req Requirements, m *material.Material) Baseline {
	wi := defaultWi
	sg := defaultSg
	if m != nil {
		if m.Wi > 0 {
			wi = m.Wi
		}
		if m.Sg > 0 {
			sg = m.Sg
		}
	}
	d := math.Pow(req.Capacity/50, 0.3) * 3.0
	return Baseline{
		Power:    wi * req.Capacity * (1/math.Sqrt(req.ProductSize) - 1/math.Sqrt(req.FeedSize)),
		Diameter: d,
		Length:   d * 1.2,
		Wi:       wi,
		Sg:       sg,
	}
}

// Generate returns exactly four options in archetype order, unscored.
// req must already be normalized.
func Generate(req Requirements, m *material.Material) ([]Option, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	base := baseline(req, m)
	if field := mill.NonFinite(base); field != "" {
		return nil, fmt.Errorf("%w: baseline %s is not finite", ErrInvalidRequirements, field)
	}
	wear := defaultWearFactor
	if m != nil && m.WearFactor > 0 {
		wear = m.WearFactor
	}

	options := make([]Option, 0, len(archetypes))
	for _, a := range archetypes {
		o := Option{
			ID:                a.id,
			Name:              a.name,
			Diameter:          base.Diameter * a.diameter,
			Length:            base.Length * a.length,
			Power:             base.Power * a.power,
			Cost:              req.Budget * a.cost,
			Efficiency:        a.efficiency,
			Reliability:       a.reliability,
			Environmental:     a.environment,
			Maintenance:       a.maintenance,
			Description:       a.description,
			Advantages:        append([]string(nil), a.advantages...),
			Disadvantages:     append([]string(nil), a.disadvantages...),
			Suitability:       a.suitability,
			PaybackPeriod:     a.payback,
			OperatingCost:     req.Capacity * a.opCost,
			BallCharge:        a.ballCharge,
			CriticalSpeed:     a.critical,
			Throughput:        req.Capacity * a.throughput,
			EnergyConsumption: base.Power * a.energy,
		}
		adjust(&o, req, wear)
		if field := mill.NonFinite(o); field != "" {
			return nil, fmt.Errorf("%w: %s option %s is not finite", ErrInvalidRequirements, o.ID, field)
		}
		options = append(options, o)
	}
	return options, nil
}

// adjust applies site context; the steps compound, so order matters.
func adjust(o *Option, req Requirements, wear float64) {
	switch req.Location {
	case LocationRemote:
		o.Reliability += 5
		o.Maintenance += 8
		o.Cost *= 1.15
	case LocationUrban:
		o.Environmental += 10
		o.Cost *= 1.08
	}

	switch req.Priority {
	case PriorityCost:
		o.Cost *= 0.9
		o.Efficiency -= 3
	case PriorityEfficiency:
		o.Efficiency += 5
		o.Cost *= 1.1
	case PriorityReliability:
		o.Reliability += 8
		o.Cost *= 1.12
	}

	if req.Environmental == EnvStrict {
		o.Environmental += 10
		o.Cost *= 1.08
		o.EnergyConsumption *= 0.92
	}

	o.Maintenance -= roundHalfUp((wear - 1) * 10)
	o.OperatingCost *= wear

	o.Efficiency = clamp(o.Efficiency, 75, 96)
	o.Reliability = clamp(o.Reliability, 70, 98)
	o.Environmental = clamp(o.Environmental, 65, 95)
	o.Maintenance = clamp(o.Maintenance, 65, 95)
}

// Weights are the scoring weights for one set of requirements.
type Weights struct {
	Cost          float64 `json:"cost"`
	Efficiency    float64 `json:"efficiency"`
	Reliability   float64 `json:"reliability"`
	Environmental float64 `json:"environmental"`
	Maintenance   float64 `json:"maintenance"`
}

func WeightsFor(req Requirements) Weights {
	w := Weights{Cost: 0.25, Efficiency: 0.25, Reliability: 0.25, Environmental: 0.15, Maintenance: 0.1}
	switch req.Priority {
	case PriorityCost:
		w.Cost = 0.35
	case PriorityEfficiency:
		w.Efficiency = 0.35
	case PriorityReliability:
		w.Reliability = 0.35
	}
	if req.Environmental == EnvStrict {
		w.Environmental = 0.3
	}
	return w
}

// CostScore maps capital cost onto 0-100, lower cost scoring higher.
func CostScore(cost float64) float64 {
	return math.Max(0, 100-cost/1e6*50)
}

// Score is the weighted mean of the option's dimensions, rounded.
func Score(o Option, req Requirements) int {
	w := WeightsFor(req)
	sum := CostScore(o.Cost)*w.Cost +
		o.Efficiency*w.Efficiency +
		o.Reliability*w.Reliability +
		o.Environmental*w.Environmental +
		o.Maintenance*w.Maintenance
	total := w.Cost + w.Efficiency + w.Reliability + w.Environmental + w.Maintenance
	return int(roundHalfUp(sum / total))
}

// Rank scores every option and flags the best one as recommended. The
// slice keeps archetype order; on equal scores the earlier archetype wins.
func Rank(options []Option, req Requirements) {
	best := -1
	for i := range options {
		options[i].Score = Score(options[i], req)
		options[i].Recommended = false
		if best < 0 || options[i].Score > options[best].Score {
			best = i
		}
	}
	if best >= 0 {
		options[best].Recommended = true
	}
}

// ByScore returns a copy of options ordered best first, stable on ties.
func ByScore(options []Option) []Option {
	out := append([]Option(nil), options...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Recommended returns the flagged option of a ranked slice.
func Recommended(options []Option) (Option, bool) {
	for _, o := range options {
		if o.Recommended {
			return o, true
		}
	}
	return Option{}, false
}

// Find returns the option with the given id.
func Find(options []Option, id string) (Option, bool) {
	for _, o := range options {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

func clamp(v, lo, hi float64) float64 { return math.Min(hi, math.Max(lo, v)) }

func roundHalfUp(x float64) float64 { return math.Floor(x + 0.5) }
