// Package economics estimates annual operating cost and checks the bearing
// load for a sized mill.
package economics

import (
	"math"

	"Millcalc/internal/calc/mill"
)

// Assumptions are site cost inputs; see conf/millcalc.ini.
type Assumptions struct {
	PowerCost          float64 `json:"power_cost_per_kwh"`
	OperatingHours     float64 `json:"operating_hours"`
	BallConsumption    float64 `json:"ball_consumption_kg_t"`
	BallCost           float64 `json:"ball_cost_per_kg"`
	MaxBearingPressure float64 `json:"max_bearing_pressure"`
}

func DefaultAssumptions() Assumptions {
	return Assumptions{
		PowerCost:          0.12,
		OperatingHours:     8000,
		BallConsumption:    0.5,
		BallCost:           0.8,
		MaxBearingPressure: 800,
	}
}

const (
	bearingWidth    = 0.15 // m
	minSafetyFactor = 1.5
)

type Result struct {
	BondEnergy      float64 `json:"bond_energy_kwh_t"`
	TotalEnergy     float64 `json:"total_energy_kwh_t"`
	MotorEnergy     float64 `json:"motor_energy_kwh_t"`
	Throughput      float64 `json:"throughput_tph"`
	AnnualTonnage   float64 `json:"annual_tonnage_t"`
	AnnualPowerCost float64 `json:"annual_power_cost"`
	AnnualBallCost  float64 `json:"annual_ball_cost"`
	AnnualTotalCost float64 `json:"annual_total_cost"`
	PowerCostPerT   float64 `json:"power_cost_per_t"`
	TotalCostPerT   float64 `json:"total_cost_per_t"`
	PowerShare      float64 `json:"power_share_pct"`
	BallShare       float64 `json:"ball_share_pct"`

	MillingEfficiency float64 `json:"milling_efficiency"`
	PowerEfficiency   float64 `json:"power_efficiency"`

	BearingPressure float64 `json:"bearing_pressure_kg_m2"`
	// SafetyFactor is zero when the mill carries no ball charge.
	SafetyFactor  float64 `json:"safety_factor"`
	SafetyOK      bool    `json:"safety_ok"`
	SpeedInRange  bool    `json:"speed_in_range"`
	ChargeInRange bool    `json:"charge_in_range"`
}

// Analyze uses the Rowland-Kjos capacity estimate rather than the engine's
// power based throughput, matching how cost sheets are usually quoted. Inputs
// large enough to overflow any figure are reported as a domain error.
func Analyze(p mill.Params, ballMass float64, a Assumptions) (Result, error) {
	p80 := p.F80 / 8
	bond := 10 * p.Wi * (1/math.Sqrt(p80) - 1/math.Sqrt(p.F80))
	total := bond * 1.2
	jb := p.BallCharge / 100

	nc := mill.CriticalSpeed(p.D)
	n := p.Cs / 100 * nc
	ratio := n / nc
	throughput := 0.35 * math.Pow(p.D, 2.5) * p.L * math.Sqrt(ratio) * (1 - jb) * 0.6

	var res Result
	res.BondEnergy = bond
	res.TotalEnergy = total
	res.MotorEnergy = total * 1.15
	res.Throughput = throughput
	res.AnnualTonnage = throughput * a.OperatingHours
	res.AnnualPowerCost = total * res.AnnualTonnage * a.PowerCost
	res.AnnualBallCost = a.BallConsumption * res.AnnualTonnage * a.BallCost
	res.AnnualTotalCost = res.AnnualPowerCost + res.AnnualBallCost
	if res.AnnualTonnage > 0 {
		res.PowerCostPerT = res.AnnualPowerCost / res.AnnualTonnage
		res.TotalCostPerT = res.AnnualTotalCost / res.AnnualTonnage
	}
	if res.AnnualTotalCost > 0 {
		res.PowerShare = res.AnnualPowerCost / res.AnnualTotalCost * 100
		res.BallShare = res.AnnualBallCost / res.AnnualTotalCost * 100
	}

	res.MillingEfficiency = math.Min(95, 75+(ratio-0.65)*100)
	res.PowerEfficiency = math.Min(90, bond/total*100)

	res.BearingPressure = ballMass * 1000 / (math.Pi * p.D * bearingWidth)
	if res.BearingPressure > 0 {
		res.SafetyFactor = a.MaxBearingPressure / res.BearingPressure
	}
	res.SafetyOK = res.BearingPressure <= a.MaxBearingPressure && (res.SafetyFactor == 0 || res.SafetyFactor >= minSafetyFactor)
	res.SpeedInRange = p.Cs >= 65 && p.Cs <= 78
	res.ChargeInRange = p.BallCharge >= 35 && p.BallCharge <= 45

	if field := mill.NonFinite(res); field != "" {
		return Result{}, &mill.DomainError{Issues: []mill.FieldIssue{
			{Field: field, Reason: "result is not finite for these parameters"},
		}}
	}
	return res, nil
}
