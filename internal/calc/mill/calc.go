package mill

import (
	"math"
	"reflect"
	"strings"

	"Millcalc/internal/catalog/distribution"
	"Millcalc/internal/catalog/material"
)

const (
	reductionRatio       = 8.0  // P80 = F80 / 8
	defaultK             = 350.0
	mechanicalEfficiency = 0.75
	minThroughput        = 0.1

	bondWeight    = 0.5
	morrellWeight = 0.3
	austinWeight  = 0.2
)

type Result struct {
	MillVolume   float64 `json:"mill_volume_m3"`
	ChargeVolume float64 `json:"charge_volume_m3"`
	BallVolume   float64 `json:"ball_volume_m3"`
	BallMass     float64 `json:"ball_mass_t"`
	P80          float64 `json:"p80_um"`

	BondBallSize    float64 `json:"bond_ball_size_mm"`
	MorrellBallSize float64 `json:"morrell_ball_size_mm"`
	AustinBallSize  float64 `json:"austin_ball_size_mm"`
	BallSize        float64 `json:"ball_size_mm"`

	SpecificEnergy  float64 `json:"specific_energy_kwh_t"`
	WorkIndexFactor float64 `json:"work_index_factor"`
	CriticalSpeed   float64 `json:"critical_speed_rpm"`
	OperatingSpeed  float64 `json:"operating_speed_rpm"`

	PowerNoLoad float64 `json:"power_no_load_kw"`
	PowerBalls  float64 `json:"power_balls_kw"`
	TotalPower  float64 `json:"total_power_kw"`
	NetPower    float64 `json:"net_power_kw"`
	Throughput  float64 `json:"throughput_tph"`

	BallWearRate      float64 `json:"ball_wear_rate"`
	MillingEfficiency float64 `json:"milling_efficiency"`
	PowerEfficiency   float64 `json:"power_efficiency"`
	OverallEfficiency float64 `json:"overall_efficiency"`

	Distribution distribution.Template `json:"distribution"`
	// FeedInOptimalRange is whether F80 sits inside Distribution's design window.
	FeedInOptimalRange bool `json:"feed_in_optimal_range"`
}

// Calculate runs the full sizing chain for one parameter snapshot. m is the
// selected catalog material, nil when the ore was entered by hand.
func Calculate(p Params, m *material.Material) (Result, error) {
	if err := p.validate(); err != nil {
		return Result{}, err
	}

	var r Result
	r.MillVolume = math.Pi * p.D * p.D * p.L / 4
	r.ChargeVolume = p.BallCharge / 100 * r.MillVolume
	r.BallVolume = r.ChargeVolume * (1 - p.Porosity/100)
	r.BallMass = r.BallVolume * p.BallDensity
	r.P80 = p.F80 / reductionRatio

	r.SpecificEnergy = SpecificEnergy(p.Wi, r.P80, p.F80)
	r.BondBallSize = BondBallSize(p.D, p.Sg, p.Wi, p.F80, p.Cs)
	r.MorrellBallSize = MorrellBallSize(p.D, p.Wi, p.F80, p.Cs, p.K)
	r.AustinBallSize = AustinBallSize(r.BondBallSize, r.SpecificEnergy)
	r.BallSize = BlendBallSize(r.BondBallSize, r.MorrellBallSize, r.AustinBallSize)

	r.CriticalSpeed = CriticalSpeed(p.D)
	r.OperatingSpeed = p.Cs / 100 * r.CriticalSpeed

	jb := p.BallCharge / 100
	speed := math.Sqrt(p.Cs / 100)
	r.PowerNoLoad = 1.68 * math.Pow(p.D, 2.05) * p.L * (1 - 0.1*jb) * speed
	r.PowerBalls = 10.6 * math.Pow(p.D, 1.35) * p.L * jb * p.Sg * speed
	r.TotalPower = r.PowerNoLoad + r.PowerBalls
	r.NetPower = r.TotalPower * mechanicalEfficiency

	r.WorkIndexFactor = math.Pow(10, 0.4*math.Log10(p.Wi)-1.33)
	r.Throughput = math.Max(minThroughput, r.NetPower/SpecificEnergy(p.Wi, r.P80, p.F80))

	speedRatio := r.OperatingSpeed / r.CriticalSpeed
	r.BallWearRate = 0.024 * r.SpecificEnergy * math.Pow(speedRatio, 1.2) * (p.Sg / 2.7)

	r.MillingEfficiency = clamp(85-math.Abs(speedRatio-0.75)*50, 65, 95)
	r.PowerEfficiency = math.Min(90, r.NetPower/r.TotalPower*100)
	r.OverallEfficiency = (r.MillingEfficiency + r.PowerEfficiency) / 2

	r.Distribution = distribution.Select(r.P80, p.Wi, m)
	r.FeedInOptimalRange = r.Distribution.InOptimalRange(p.F80)

	if field := NonFinite(r); field != "" {
		return Result{}, &DomainError{Issues: []FieldIssue{{Field: field, Reason: "result is not finite for these parameters"}}}
	}
	return r, nil
}

// SpecificEnergy is Bond's law between feed and product size, kWh/t.
func SpecificEnergy(wi, p80, f80 float64) float64 {
	return wi * (1/math.Sqrt(p80) - 1/math.Sqrt(f80))
}

// BondBallSize is Bond's top-size equation with D converted to feet, mm.
func BondBallSize(d, sg, wi, f80, cs float64) float64 {
	return 25.4 * math.Pow((sg*wi*(f80/1000))/((cs/100)*math.Sqrt(d*3.281)), 1.0/3)
}

// MorrellBallSize uses k = 350 when no material constant is given.
func MorrellBallSize(d, wi, f80, cs, k float64) float64 {
	if k == 0 {
		k = defaultK
	}
	return (k / 1000) * math.Sqrt((wi*f80)/(math.Sqrt(d*1000)*(cs/100)))
}

func AustinBallSize(bond, specificEnergy float64) float64 {
	return bond * math.Pow(specificEnergy/10, 0.15)
}

func BlendBallSize(bond, morrell, austin float64) float64 {
	return bondWeight*bond + morrellWeight*morrell + austinWeight*austin
}

// CriticalSpeed in rpm for an inside diameter in metres.
func CriticalSpeed(d float64) float64 {
	return 42.3 / math.Sqrt(d)
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}

// NonFinite returns the json name of the first NaN or infinite float64
// field of the struct v, or "" when every field is finite.
func NonFinite(v any) string {
	rv := reflect.Indirect(reflect.ValueOf(v))
	if rv.Kind() != reflect.Struct {
		return ""
	}
	return nonFinite(rv)
}

func nonFinite(v reflect.Value) string {
	t := v.Type()
	for i := 0; i < v.NumField(); i++ {
		if v.Field(i).Kind() != reflect.Float64 {
			continue
		}
		f := v.Field(i).Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
			return name
		}
	}
	return ""
}
