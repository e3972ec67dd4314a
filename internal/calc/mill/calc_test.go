package mill

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"Millcalc/internal/catalog/distribution"
	"Millcalc/internal/catalog/material"
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestCalculateReferenceMill(t *testing.T) {
	r, err := Calculate(DefaultParams(), nil)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"mill volume", r.MillVolume, 28.274333882308138},
		{"charge volume", r.ChargeVolume, 11.309733552923255},
		{"ball volume", r.BallVolume, 6.785840131753953},
		{"ball mass", r.BallMass, 52.92955302768083},
		{"P80", r.P80, 250},
		{"bond", r.BondBallSize, 83.75870934393917},
		{"morrell", r.MorrellBallSize, 11.032503065489578},
		{"austin", r.AustinBallSize, 55.103357810725925},
		{"blend", r.BallSize, 56.20977715376165},
		{"specific energy", r.SpecificEnergy, 0.6132731014255454},
		{"critical speed", r.CriticalSpeed, 24.42191638672117},
		{"operating speed", r.OperatingSpeed, 17.58377979843924},
		{"power no load", r.PowerNoLoad, 52.04815346726301},
		{"power balls", r.PowerBalls, 171.22593805975973},
		{"total power", r.TotalPower, 223.27409152702273},
		{"net power", r.NetPower, 167.45556864526705},
		{"throughput", r.Throughput, 273.0521985327887},
		{"wear rate", r.BallWearRate, 0.009923483549473242},
		{"milling efficiency", r.MillingEfficiency, 83.5},
		{"power efficiency", r.PowerEfficiency, 75},
		{"overall efficiency", r.OverallEfficiency, 79.25},
	}
	for _, c := range checks {
		if !near(c.got, c.want, 1e-9*math.Max(1, math.Abs(c.want))) {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	// Wi 15 with no material falls through to the P80 bucket: 250 um is coarse.
	if r.Distribution.Key != distribution.Coarse {
		t.Errorf("distribution = %s, want coarse", r.Distribution.Key)
	}
}

func TestDisplayReferenceMill(t *testing.T) {
	r, err := Calculate(DefaultParams(), nil)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	want := Display{
		MillVolume:        "28.274",
		ChargeVolume:      "11.310",
		BallVolume:        "6.786",
		BallMass:          "52.930",
		BallSize:          "56.21",
		BondBallSize:      "83.76",
		MorrellBallSize:   "11.03",
		AustinBallSize:    "55.10",
		CriticalSpeed:     "24.4",
		OperatingSpeed:    "17.6",
		PowerNoLoad:       "52",
		PowerBalls:        "171",
		TotalPower:        "223",
		NetPower:          "167",
		Throughput:        "273.1",
		BallWearRate:      "0.010",
		SpecificEnergy:    "0.61",
		MillingEfficiency: "83.5",
		PowerEfficiency:   "75.0",
		OverallEfficiency: "79.3",
		P80:               "250",
	}
	if got := r.Display(); !reflect.DeepEqual(got, want) {
		t.Errorf("Display mismatch\n got %+v\nwant %+v", got, want)
	}
}

func TestBlendIsWeightedMean(t *testing.T) {
	p := Params{D: 4.2, L: 6.1, Wi: 13.3, F80: 3500, BallCharge: 35, BallDensity: 7.7, Porosity: 38, Sg: 3.1, K: 420, Cs: 76}
	r, err := Calculate(p, nil)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	bond := BondBallSize(p.D, p.Sg, p.Wi, p.F80, p.Cs)
	morrell := MorrellBallSize(p.D, p.Wi, p.F80, p.Cs, p.K)
	austin := AustinBallSize(bond, SpecificEnergy(p.Wi, p.F80/8, p.F80))
	if r.BallSize != 0.5*bond+0.3*morrell+0.2*austin {
		t.Errorf("blend = %v, want %v", r.BallSize, 0.5*bond+0.3*morrell+0.2*austin)
	}
}

func TestMorrellDefaultK(t *testing.T) {
	if MorrellBallSize(3, 15, 2000, 72, 0) != MorrellBallSize(3, 15, 2000, 72, 350) {
		t.Error("k = 0 should fall back to 350")
	}
	p := DefaultParams()
	p.K = 0
	if _, err := Calculate(p, nil); err != nil {
		t.Errorf("k = 0 must be accepted: %v", err)
	}
}

func TestMillVolumeMonotonic(t *testing.T) {
	prev := 0.0
	for d := 0.5; d <= 8; d += 0.5 {
		p := DefaultParams()
		p.D = d
		r, err := Calculate(p, nil)
		if err != nil {
			t.Fatalf("D=%v: %v", d, err)
		}
		if r.MillVolume <= prev {
			t.Fatalf("volume not increasing in D at %v", d)
		}
		prev = r.MillVolume
	}
	prev = 0
	for l := 0.5; l <= 12; l += 0.5 {
		p := DefaultParams()
		p.L = l
		r, _ := Calculate(p, nil)
		if r.MillVolume <= prev {
			t.Fatalf("volume not increasing in L at %v", l)
		}
		prev = r.MillVolume
	}
}

func TestResultsFiniteAndNonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	between := func(lo, hi float64) float64 { return lo + rng.Float64()*(hi-lo) }
	for i := 0; i < 500; i++ {
		p := Params{
			D: between(0.5, 8), L: between(0.5, 12), Wi: between(3, 30), F80: between(50, 20000),
			BallCharge: between(0, 100), BallDensity: between(1, 9), Porosity: between(0, 100),
			Sg: between(1, 7), K: between(0, 600), Cs: between(10, 110),
		}
		r, err := Calculate(p, nil)
		if err != nil {
			t.Fatalf("%+v: %v", p, err)
		}
		v := reflect.ValueOf(r)
		for j := 0; j < v.NumField(); j++ {
			if v.Field(j).Kind() != reflect.Float64 {
				continue
			}
			f := v.Field(j).Float()
			if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
				t.Fatalf("%s = %v for %+v", v.Type().Field(j).Name, f, p)
			}
		}
		if r.Throughput < 0.1 {
			t.Fatalf("throughput below floor: %v", r.Throughput)
		}
		if r.MillingEfficiency < 65 || r.MillingEfficiency > 95 || r.PowerEfficiency > 90 {
			t.Fatalf("efficiency out of bounds: %+v", r)
		}
	}
}

func TestDistributionFollowsMaterial(t *testing.T) {
	p := DefaultParams()
	p.F80 = 80 // P80 = 10 um, ultra-fine on size alone
	hard, _ := material.Lookup("refractory_gold")
	r, err := Calculate(p, hard)
	if err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	if r.Distribution.Key != distribution.HardOres {
		t.Errorf("hard material selected %s", r.Distribution.Key)
	}

	p = DefaultParams()
	p.Wi = 20
	for _, f80 := range []float64{100, 2000, 50000} {
		p.F80 = f80
		r, _ := Calculate(p, nil)
		if r.Distribution.Key != distribution.HardOres {
			t.Errorf("Wi=20 F80=%v selected %s", f80, r.Distribution.Key)
		}
	}
}

func TestFeedInOptimalRange(t *testing.T) {
	p := DefaultParams()
	p.Wi = 20 // hard ores, 1000-5000 um window
	tests := []struct {
		f80  float64
		want bool
	}{
		{100, false},
		{1000, true},
		{2000, true},
		{5000, true},
		{50000, false},
	}
	for _, tt := range tests {
		p.F80 = tt.f80
		r, err := Calculate(p, nil)
		if err != nil {
			t.Fatalf("F80=%v: %v", tt.f80, err)
		}
		if r.FeedInOptimalRange != tt.want {
			t.Errorf("F80=%v in range = %v, want %v", tt.f80, r.FeedInOptimalRange, tt.want)
		}
	}
}

func TestCalculateDomainErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Params)
		field  string
	}{
		{"zero diameter", func(p *Params) { p.D = 0 }, "D"},
		{"negative diameter", func(p *Params) { p.D = -3 }, "D"},
		{"zero critical speed", func(p *Params) { p.Cs = 0 }, "Cs"},
		{"zero feed", func(p *Params) { p.F80 = 0 }, "F80"},
		{"zero length", func(p *Params) { p.L = 0 }, "L"},
		{"negative k", func(p *Params) { p.K = -1 }, "k"},
		{"charge above 100", func(p *Params) { p.BallCharge = 120 }, "darsad_bar"},
		{"negative porosity", func(p *Params) { p.Porosity = -5 }, "takhalkhol"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.mutate(&p)
			_, err := Calculate(p, nil)
			var de *DomainError
			if !errors.As(err, &de) {
				t.Fatalf("err = %v, want DomainError", err)
			}
			if !errors.Is(err, ErrInvalidInput) {
				t.Error("DomainError should match ErrInvalidInput")
			}
			if len(de.Issues) != 1 || de.Issues[0].Field != tt.field {
				t.Errorf("issues = %+v, want field %s", de.Issues, tt.field)
			}
		})
	}
}

func TestCalculateRejectsNaN(t *testing.T) {
	p := DefaultParams()
	p.Wi = math.NaN()
	_, err := Calculate(p, nil)
	var ve *ValidationError
	if !errors.As(err, &ve) || ve.Issues[0].Field != "Wi" {
		t.Fatalf("err = %v, want ValidationError on Wi", err)
	}
}

func TestParseInput(t *testing.T) {
	raw := map[string]any{
		"D": "3.0", "L": 4.0, "Wi": " 15 ", "F80": 2000.0, "darsad_bar": "40",
		"chegali_golole": 7.8, "takhalkhol": "40", "Sg": 2.7, "k": "400", "Cs": 72.0,
	}
	p, err := ParseInput(raw)
	if err != nil {
		t.Fatalf("ParseInput: %v", err)
	}
	if p != DefaultParams() {
		t.Errorf("p = %+v", p)
	}
}

func TestParseInputReportsEveryBadField(t *testing.T) {
	raw := map[string]any{
		"L": 4.0, "Wi": "abc", "F80": 2000.0, "darsad_bar": "",
		"chegali_golole": 7.8, "takhalkhol": true, "Sg": 2.7, "k": "400", "Cs": "NaN",
	}
	_, err := ParseInput(raw)
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	want := []FieldIssue{
		{"D", "missing"},
		{"Wi", "not a number"},
		{"darsad_bar", "missing"},
		{"takhalkhol", "not a number"},
		{"Cs", "not a number"},
	}
	if !reflect.DeepEqual(ve.Issues, want) {
		t.Errorf("issues = %+v\nwant %+v", ve.Issues, want)
	}
}

func TestParseStrings(t *testing.T) {
	raw := map[string]string{}
	for _, name := range FieldNames() {
		raw[name] = "1"
	}
	raw["Cs"] = ""
	_, err := ParseStrings(raw)
	if issues := Issues(err); len(issues) != 1 || issues[0].Field != "Cs" {
		t.Fatalf("issues = %+v", issues)
	}
}

func TestToFixed(t *testing.T) {
	tests := []struct {
		x      float64
		digits int
		want   string
	}{
		{79.25, 1, "79.3"},
		{0.125, 2, "0.13"},
		{1.005, 2, "1.00"},
		{2.5, 0, "3"},
		{9.996, 2, "10.00"},
		{999.5, 0, "1000"},
		{-1.25, 1, "-1.3"},
		{-0.001, 1, "0.0"},
		{0, 3, "0.000"},
		{28.274333882308138, 3, "28.274"},
	}
	for _, tt := range tests {
		if got := ToFixed(tt.x, tt.digits); got != tt.want {
			t.Errorf("ToFixed(%v, %d) = %q, want %q", tt.x, tt.digits, got, tt.want)
		}
	}
}

func TestWithMaterial(t *testing.T) {
	m, _ := material.Get("magnetite")
	p := DefaultParams().WithMaterial(m)
	if p.Wi != 10.2 || p.Sg != 5.1 || p.K != 340 {
		t.Errorf("p = %+v", p)
	}
	if p.D != 3.0 || p.Cs != 72 {
		t.Error("geometry must be left alone")
	}
}

func TestNonFinite(t *testing.T) {
	type sample struct {
		A float64 `json:"a"`
		B float64 `json:"b,omitempty"`
		C bool    `json:"c"`
	}
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"finite", sample{A: 1, B: 2}, ""},
		{"inf", sample{A: 1, B: math.Inf(1)}, "b"},
		{"first wins", &sample{A: math.NaN(), B: math.Inf(-1)}, "a"},
		{"not a struct", 3.0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NonFinite(tt.v); got != tt.want {
				t.Errorf("NonFinite = %q, want %q", got, tt.want)
			}
		})
	}
}
