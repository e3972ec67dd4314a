package distribution

import (
	"errors"
	"testing"

	"Millcalc/internal/catalog/material"
)

func TestTemplatesSumToHundred(t *testing.T) {
	for _, tpl := range All() {
		if len(tpl.Sizes) != len(tpl.Percentages) {
			t.Errorf("%s: %d sizes vs %d percentages", tpl.Key, len(tpl.Sizes), len(tpl.Percentages))
		}
		sum := 0.0
		for _, p := range tpl.Percentages {
			sum += p
		}
		if sum != 100 {
			t.Errorf("%s sums to %v", tpl.Key, sum)
		}
		for i := 1; i < len(tpl.Sizes); i++ {
			if tpl.Sizes[i] <= tpl.Sizes[i-1] {
				t.Errorf("%s sizes not ascending at %d", tpl.Key, i)
			}
		}
	}
}

func TestSelect(t *testing.T) {
	hard := &material.Material{Hardness: material.Hard}
	veryHard := &material.Material{Hardness: material.VeryHard}
	soft := &material.Material{Hardness: material.Soft}
	verySoft := &material.Material{Hardness: material.VerySoft}
	medium := &material.Material{Hardness: material.Medium}

	tests := []struct {
		name string
		p80  float64
		wi   float64
		m    *material.Material
		want string
	}{
		{"hard material beats ultra-fine bucket", 10, 12, hard, HardOres},
		{"very hard material", 500, 12, veryHard, HardOres},
		{"soft material beats coarse bucket", 250, 20, soft, SoftOres},
		{"very soft material", 10, 20, verySoft, SoftOres},
		{"medium material ignores Wi", 250, 20, medium, Coarse},
		{"medium material ignores low Wi", 20, 5, medium, UltraFine},
		{"no material high Wi", 10, 20, nil, HardOres},
		{"no material low Wi", 1000, 8, nil, SoftOres},
		{"Wi 16 is not hard", 250, 16, nil, Coarse},
		{"Wi 10 is not soft", 250, 10, nil, Coarse},
		{"ultra-fine", 24.9, 12, nil, UltraFine},
		{"fine lower edge", 25, 12, nil, Fine},
		{"medium lower edge", 75, 12, nil, Medium},
		{"coarse lower edge", 150, 12, nil, Coarse},
		{"very coarse lower edge", 300, 12, nil, VeryCoarse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Select(tt.p80, tt.wi, tt.m); got.Key != tt.want {
				t.Errorf("Select(%v, %v) = %s, want %s", tt.p80, tt.wi, got.Key, tt.want)
			}
		})
	}
}

func TestSelectReturnsCatalogEntry(t *testing.T) {
	got := Select(250, 15, nil)
	want, _ := Get(Coarse)
	if got.Name != want.Name || len(got.Sizes) != len(want.Sizes) {
		t.Fatalf("Select returned %+v", got)
	}
	got.Percentages[0] = 99
	again, _ := Get(Coarse)
	if again.Percentages[0] != 10 {
		t.Error("mutating a selected template leaked into the catalog")
	}
}

func TestPoints(t *testing.T) {
	tpl, _ := Get(Fine)
	pts := tpl.Points()
	if len(pts) != 5 {
		t.Fatalf("len = %d", len(pts))
	}
	if pts[0].Cumulative != 15 || pts[2].Cumulative != 70 || pts[4].Cumulative != 100 {
		t.Errorf("cumulative = %+v", pts)
	}
}

func TestInOptimalRange(t *testing.T) {
	tpl, _ := Get(HardOres)
	if !tpl.InOptimalRange(2000) || tpl.InOptimalRange(500) {
		t.Error("optimal F80 window check failed")
	}
}

func TestGetUnknown(t *testing.T) {
	if _, err := Get("gravel"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
}
