package mill

import (
	"math"
	"math/big"
	"strings"
)

// Display is the result rounded the way the calculator prints it.
type Display struct {
	MillVolume        string `json:"mill_volume_m3"`
	ChargeVolume      string `json:"charge_volume_m3"`
	BallVolume        string `json:"ball_volume_m3"`
	BallMass          string `json:"ball_mass_t"`
	BallSize          string `json:"ball_size_mm"`
	BondBallSize      string `json:"bond_ball_size_mm"`
	MorrellBallSize   string `json:"morrell_ball_size_mm"`
	AustinBallSize    string `json:"austin_ball_size_mm"`
	CriticalSpeed     string `json:"critical_speed_rpm"`
	OperatingSpeed    string `json:"operating_speed_rpm"`
	PowerNoLoad       string `json:"power_no_load_kw"`
	PowerBalls        string `json:"power_balls_kw"`
	TotalPower        string `json:"total_power_kw"`
	NetPower          string `json:"net_power_kw"`
	Throughput        string `json:"throughput_tph"`
	BallWearRate      string `json:"ball_wear_rate"`
	SpecificEnergy    string `json:"specific_energy_kwh_t"`
	MillingEfficiency string `json:"milling_efficiency"`
	PowerEfficiency   string `json:"power_efficiency"`
	OverallEfficiency string `json:"overall_efficiency"`
	P80               string `json:"p80_um"`
}

func (r Result) Display() Display {
	return Display{
		MillVolume:        ToFixed(r.MillVolume, 3),
		ChargeVolume:      ToFixed(r.ChargeVolume, 3),
		BallVolume:        ToFixed(r.BallVolume, 3),
		BallMass:          ToFixed(r.BallMass, 3),
		BallSize:          ToFixed(r.BallSize, 2),
		BondBallSize:      ToFixed(r.BondBallSize, 2),
		MorrellBallSize:   ToFixed(r.MorrellBallSize, 2),
		AustinBallSize:    ToFixed(r.AustinBallSize, 2),
		CriticalSpeed:     ToFixed(r.CriticalSpeed, 1),
		OperatingSpeed:    ToFixed(r.OperatingSpeed, 1),
		PowerNoLoad:       ToFixed(r.PowerNoLoad, 0),
		PowerBalls:        ToFixed(r.PowerBalls, 0),
		TotalPower:        ToFixed(r.TotalPower, 0),
		NetPower:          ToFixed(r.NetPower, 0),
		Throughput:        ToFixed(r.Throughput, 1),
		BallWearRate:      ToFixed(r.BallWearRate, 3),
		SpecificEnergy:    ToFixed(r.SpecificEnergy, 2),
		MillingEfficiency: ToFixed(r.MillingEfficiency, 1),
		PowerEfficiency:   ToFixed(r.PowerEfficiency, 1),
		OverallEfficiency: ToFixed(r.OverallEfficiency, 1),
		P80:               ToFixed(r.P80, 0),
	}
}

// ToFixed formats x with the given number of decimals, rounding exact halves
// away from zero. strconv rounds halves to even, which prints 79.25 as 79.2.
func ToFixed(x float64, digits int) string {
	if x < 0 {
		s := ToFixed(-x, digits)
		if strings.Trim(s, "0.") == "" {
			return s
		}
		return "-" + s
	}
	// 1100 decimals hold any float64 exactly.
	exact := new(big.Float).SetFloat64(math.Abs(x)).Text('f', 1100)
	dot := strings.IndexByte(exact, '.')
	whole, frac := exact[:dot], exact[dot+1:]

	digitsStr := whole + frac[:digits]
	if frac[digits] >= '5' {
		digitsStr = increment(digitsStr)
	}
	if digits == 0 {
		return digitsStr
	}
	cut := len(digitsStr) - digits
	return digitsStr[:cut] + "." + digitsStr[cut:]
}

func increment(s string) string {
	b := []byte(s)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] < '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}
