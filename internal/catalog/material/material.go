// Package material holds the read-only ore and mineral table used by the mill
// calculator and the design assistant. Values follow the SME Mineral Processing
// Handbook figures the calculator was calibrated against.
package material

import (
	"errors"
	"fmt"
	"sort"
)

var ErrNotFound = errors.New("material not found")

type Hardness string

const (
	VerySoft Hardness = "very-soft"
	Soft     Hardness = "soft"
	Medium   Hardness = "medium"
	Hard     Hardness = "hard"
	VeryHard Hardness = "very-hard"
)

type Abrasiveness string

const (
	AbrasiveVeryLow  Abrasiveness = "very-low"
	AbrasiveLow      Abrasiveness = "low"
	AbrasiveMedium   Abrasiveness = "medium"
	AbrasiveHigh     Abrasiveness = "high"
	AbrasiveVeryHigh Abrasiveness = "very-high"
)

type Grindability string

const (
	GrindExcellent Grindability = "excellent"
	GrindGood      Grindability = "good"
	GrindMedium    Grindability = "medium"
	GrindHard      Grindability = "hard"
	GrindPoor      Grindability = "poor"
)

type Material struct {
	Key                string       `json:"key"`
	Name               string       `json:"name"`
	Category           string       `json:"category"`
	Subcategory        string       `json:"subcategory"`
	Description        string       `json:"description"`
	Wi                 float64      `json:"wi"`
	Sg                 float64      `json:"sg"`
	Hardness           Hardness     `json:"hardness"`
	Abrasiveness       Abrasiveness `json:"abrasiveness"`
	RecommendedK       float64      `json:"recommended_k"`
	Grindability       Grindability `json:"grindability"`
	CapacityRange      [2]float64   `json:"capacity_range_tph"`
	OptimalDiameter    [2]float64   `json:"optimal_diameter_m"`
	BondFc             float64      `json:"bond_fc"`
	BondMaxBallSize    float64      `json:"bond_max_ball_mm"`
	CostFactor         float64      `json:"cost_factor"`
	WearFactor         float64      `json:"wear_factor"`
	CriticalSize       float64      `json:"critical_size_um"`
	Competency         float64      `json:"competency"`
	OreType            string       `json:"ore_type"`
	LiberationSize     float64      `json:"liberation_size_um"`
	Regions            []string     `json:"regions"`
	GradeRange         [2]float64   `json:"grade_range"`
	FlotationRecovery  float64      `json:"flotation_recovery"`
	MagneticSeparation bool         `json:"magnetic_separation"`
	GravitySeparation  bool         `json:"gravity_separation"`
}

// Get returns a copy of the catalog entry for key.
func Get(key string) (Material, error) {
	m, ok := catalog[key]
	if !ok {
		return Material{}, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	m.Key = key
	m.Regions = append([]string(nil), m.Regions...)
	return m, nil
}

// Lookup is Get for optional keys: an empty key yields nil, nil.
func Lookup(key string) (*Material, error) {
	if key == "" {
		return nil, nil
	}
	m, err := Get(key)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func Keys() []string {
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All enumerates the catalog ordered by key.
func All() []Material {
	out := make([]Material, 0, len(catalog))
	for _, k := range Keys() {
		m, _ := Get(k)
		out = append(out, m)
	}
	return out
}

func Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, m := range All() {
		if !seen[m.Category] {
			seen[m.Category] = true
			out = append(out, m.Category)
		}
	}
	sort.Strings(out)
	return out
}

// Stars maps grindability to the 1-5 rating shown next to each entry.
func (m Material) Stars() int {
	switch m.Grindability {
	case GrindExcellent:
		return 5
	case GrindGood:
		return 4
	case GrindMedium:
		return 3
	case GrindHard:
		return 2
	default:
		return 1
	}
}

// CapacityClass buckets the mean of the typical throughput range.
func (m Material) CapacityClass() string {
	avg := (m.CapacityRange[0] + m.CapacityRange[1]) / 2
	switch {
	case avg < 200:
		return "small"
	case avg < 1000:
		return "medium"
	case avg < 5000:
		return "large"
	default:
		return "very-large"
	}
}

func (m Material) Complexity() string {
	n := 0
	if m.Wi > 15 {
		n++
	}
	if m.Abrasiveness == AbrasiveHigh || m.Abrasiveness == AbrasiveVeryHigh {
		n++
	}
	if m.LiberationSize < 50 {
		n++
	}
	if m.FlotationRecovery < 80 {
		n++
	}
	switch {
	case n >= 3:
		return "complex"
	case n >= 2:
		return "moderate"
	default:
		return "simple"
	}
}
