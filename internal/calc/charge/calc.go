// Package charge models charge motion inside the mill and the operating
// curves drawn around the chosen speed and filling.
package charge

import (
	"math"

	"Millcalc/internal/calc/mill"
)

const (
	shoulderParam  = 0.3
	shoulderOffset = 74.0 // degrees between toe and shoulder
	hoursPerMonth  = 730.0
)

type Motion struct {
	CenterHeightM    float64 `json:"center_height_m"`
	ToeAngleDeg      float64 `json:"toe_angle_deg"`
	ShoulderAngleDeg float64 `json:"shoulder_angle_deg"`
}

type SpeedPoint struct {
	SpeedPct   float64 `json:"speed_pct"`
	Efficiency float64 `json:"efficiency"`
	PowerKW    float64 `json:"power_kw"`
}

type ChargePoint struct {
	ChargePct       float64 `json:"charge_pct"`
	ThroughputIndex float64 `json:"throughput_index"`
	PowerKW         float64 `json:"power_kw"`
}

type WearPoint struct {
	Month         int     `json:"month"`
	WearFactorPct float64 `json:"wear_factor_pct"`
	MakeupBallsT  float64 `json:"makeup_balls_t"`
	AverageSizeMM float64 `json:"average_size_mm"`
}

type Result struct {
	Motion      Motion        `json:"motion"`
	SpeedCurve  []SpeedPoint  `json:"speed_curve"`
	ChargeCurve []ChargePoint `json:"charge_curve"`
	Wear        []WearPoint   `json:"wear"`
}

// Calculate derives charge motion and curves from an engine result for p.
func Calculate(p mill.Params, r mill.Result) (Result, error) {
	if !(p.D > 0) {
		return Result{}, &mill.DomainError{Issues: []mill.FieldIssue{
			{Field: "D", Reason: "must be greater than 0"},
		}}
	}
	jb := p.BallCharge / 100
	radius := p.D / 2
	center := radius * (1 - 2*jb + shoulderParam*jb)
	cosToe := (center - radius) / radius
	if cosToe < -1 {
		return Result{}, &mill.DomainError{Issues: []mill.FieldIssue{
			{Field: "darsad_bar", Reason: "charge too high for the toe angle model"},
		}}
	}
	toe := math.Acos(cosToe) * 180 / math.Pi

	return Result{
		Motion: Motion{
			CenterHeightM:    center,
			ToeAngleDeg:      toe,
			ShoulderAngleDeg: toe + shoulderOffset,
		},
		SpeedCurve:  speedCurve(r.TotalPower),
		ChargeCurve: chargeCurve(r.TotalPower),
		Wear:        wearProjection(r),
	}, nil
}

func speedCurve(power float64) []SpeedPoint {
	out := make([]SpeedPoint, 20)
	for i := range out {
		speed := 60 + float64(i)*2
		out[i] = SpeedPoint{
			SpeedPct:   speed,
			Efficiency: math.Max(0, 100*math.Exp(-math.Pow((speed-75)/15, 2))),
			PowerKW:    power * (speed / 75) * 1.2,
		}
	}
	return out
}

func chargeCurve(power float64) []ChargePoint {
	out := make([]ChargePoint, 15)
	for i := range out {
		c := 25 + float64(i)*2
		out[i] = ChargePoint{
			ChargePct:       c,
			ThroughputIndex: math.Max(0, 100*(1-math.Pow((c-40)/25, 2))),
			PowerKW:         power * (0.5 + c/80),
		}
	}
	return out
}

// wearProjection assumes the average ball loses 5% of its size per month.
func wearProjection(r mill.Result) []WearPoint {
	out := make([]WearPoint, 12)
	for i := range out {
		wf := 1 - float64(i)*0.05
		out[i] = WearPoint{
			Month:         i + 1,
			WearFactorPct: wf * 100,
			MakeupBallsT:  r.BallWearRate * r.Throughput * hoursPerMonth * float64(i+1) / 1000,
			AverageSizeMM: r.BallSize * wf,
		}
	}
	return out
}
