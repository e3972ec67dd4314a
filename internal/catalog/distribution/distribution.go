// Package distribution is the catalog of ball size distribution templates and
// the policy choosing one for a grinding duty.
package distribution

import (
	"errors"
	"fmt"

	"Millcalc/internal/catalog/material"
)

var ErrNotFound = errors.New("distribution not found")

const (
	UltraFine  = "ultra-fine"
	Fine       = "fine"
	Medium     = "medium"
	Coarse     = "coarse"
	VeryCoarse = "very-coarse"
	HardOres   = "hard-ores"
	SoftOres   = "soft-ores"
)

// Template pairs ball sizes (mm, ascending) with mass percentages summing to 100.
type Template struct {
	Key             string     `json:"key"`
	Name            string     `json:"name"`
	Sizes           []float64  `json:"sizes_mm"`
	Percentages     []float64  `json:"percentages"`
	Applications    []string   `json:"applications"`
	OptimalF80Range [2]float64 `json:"optimal_f80_range_um"`
	PowerIntensity  string     `json:"power_intensity"`
}

type Point struct {
	SizeMM     float64 `json:"size_mm"`
	Percentage float64 `json:"percentage"`
	Cumulative float64 `json:"cumulative"`
}

var order = []string{UltraFine, Fine, Medium, Coarse, VeryCoarse, HardOres, SoftOres}

var catalog = map[string]Template{
	UltraFine: {
		Name:            "Ultra-fine (cement finish grinding)",
		Sizes:           []float64{12.7, 19.1, 25.4, 31.8},
		Percentages:     []float64{25, 35, 25, 15},
		Applications:    []string{"finish cement", "ultra-fine calcium carbonate", "industrial powders"},
		OptimalF80Range: [2]float64{50, 200},
		PowerIntensity:  "high",
	},
	Fine: {
		Name:            "Fine (regrind circuits)",
		Sizes:           []float64{19.1, 25.4, 31.8, 38.1, 44.5},
		Percentages:     []float64{15, 25, 30, 20, 10},
		Applications:    []string{"gold regrind", "copper regrind", "concentrate reprocessing"},
		OptimalF80Range: [2]float64{100, 500},
		PowerIntensity:  "medium-high",
	},
	Medium: {
		Name:            "Medium (secondary grinding)",
		Sizes:           []float64{25.4, 31.8, 38.1, 44.5, 50.8, 63.5},
		Percentages:     []float64{12, 18, 22, 20, 15, 13},
		Applications:    []string{"secondary copper grinding", "secondary iron grinding", "phosphate rock"},
		OptimalF80Range: [2]float64{500, 2000},
		PowerIntensity:  "medium",
	},
	Coarse: {
		Name:            "Coarse (primary grinding)",
		Sizes:           []float64{38.1, 44.5, 50.8, 63.5, 76.2, 88.9, 101.6},
		Percentages:     []float64{10, 15, 18, 20, 15, 12, 10},
		Applications:    []string{"primary copper grinding", "primary iron grinding", "construction materials"},
		OptimalF80Range: [2]float64{2000, 8000},
		PowerIntensity:  "low-medium",
	},
	VeryCoarse: {
		Name:            "Very coarse (large primary mills)",
		Sizes:           []float64{63.5, 76.2, 88.9, 101.6, 114.3, 127.0},
		Percentages:     []float64{15, 20, 22, 18, 15, 10},
		Applications:    []string{"large mining mills", "limestone", "raw clinker"},
		OptimalF80Range: [2]float64{5000, 15000},
		PowerIntensity:  "low",
	},
	HardOres: {
		Name:            "Hard ores",
		Sizes:           []float64{31.8, 38.1, 44.5, 50.8, 63.5, 76.2, 88.9, 101.6},
		Percentages:     []float64{8, 12, 15, 18, 17, 15, 10, 5},
		Applications:    []string{"quartz", "refractory gold", "silicate rock"},
		OptimalF80Range: [2]float64{1000, 5000},
		PowerIntensity:  "high",
	},
	SoftOres: {
		Name:            "Soft ores",
		Sizes:           []float64{19.1, 25.4, 31.8, 38.1, 44.5, 50.8, 63.5},
		Percentages:     []float64{18, 22, 20, 15, 12, 8, 5},
		Applications:    []string{"phosphate", "bauxite", "coal", "carbonates"},
		OptimalF80Range: [2]float64{500, 3000},
		PowerIntensity:  "low",
	},
}

// Get returns a copy of the template stored under key.
func Get(key string) (Template, error) {
	t, ok := catalog[key]
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	t.Key = key
	t.Sizes = append([]float64(nil), t.Sizes...)
	t.Percentages = append([]float64(nil), t.Percentages...)
	t.Applications = append([]string(nil), t.Applications...)
	return t, nil
}

// All lists the templates from finest to coarsest, then the ore-specific ones.
func All() []Template {
	out := make([]Template, 0, len(order))
	for _, k := range order {
		t, _ := Get(k)
		out = append(out, t)
	}
	return out
}

// Select applies the selection policy. A selected material's hardness wins over
// the product size bucket; without a material the work index stands in for it.
func Select(p80, wi float64, m *material.Material) Template {
	t, _ := Get(selectKey(p80, wi, m))
	return t
}

func selectKey(p80, wi float64, m *material.Material) string {
	if m != nil {
		switch m.Hardness {
		case material.Hard, material.VeryHard:
			return HardOres
		case material.Soft, material.VerySoft:
			return SoftOres
		}
	} else {
		if wi > 16 {
			return HardOres
		}
		if wi < 10 {
			return SoftOres
		}
	}

	switch {
	case p80 < 25:
		return UltraFine
	case p80 < 75:
		return Fine
	case p80 < 150:
		return Medium
	case p80 < 300:
		return Coarse
	default:
		return VeryCoarse
	}
}

func (t Template) Points() []Point {
	out := make([]Point, len(t.Sizes))
	cum := 0.0
	for i, size := range t.Sizes {
		cum += t.Percentages[i]
		out[i] = Point{SizeMM: size, Percentage: t.Percentages[i], Cumulative: cum}
	}
	return out
}

// InOptimalRange reports whether the feed size falls inside the template's design window.
func (t Template) InOptimalRange(f80 float64) bool {
	return f80 >= t.OptimalF80Range[0] && f80 <= t.OptimalF80Range[1]
}
