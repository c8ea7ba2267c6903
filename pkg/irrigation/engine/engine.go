// Package engine holds the deterministic core of the recommender: the
// day-by-day tank reconstruction and the decision rules. It never touches
// storage or the network; callers feed it fully resolved day inputs.
package engine

import (
	"fmt"
	"math"

	"etflow/pkg/irrigation/types"
	"etflow/pkg/soil"
)

// DayInput is one resolved day of the lookback window.
type DayInput struct {
	Date          string
	ETo           float64
	GrossRainMM   float64
	EffRainMM     float64
	NetIrrigation float64 // already efficiency-adjusted
	Kc            float64
	EtoMethod     string
}

// DayState is the tank after applying one day's balance.
type DayState struct {
	DayInput
	ETc        float64
	TankMM     float64
	DrainageMM float64
}

// Simulate replays the window in chronological order, starting the tank at
// field capacity. Each day's update depends on the previous clamped value, so
// the loop is strictly sequential.
func Simulate(limits soil.Limits, days []DayInput) ([]DayState, error) {
	tank := limits.FieldCapacityMM
	out := make([]DayState, 0, len(days))
	for _, d := range days {
		etc := d.ETo * d.Kc
		tank = tank - etc + d.EffRainMM + d.NetIrrigation
		if math.IsNaN(tank) || math.IsInf(tank, 0) {
			return nil, fmt.Errorf("water balance diverged on %s (eto=%.2f kc=%.2f)", d.Date, d.ETo, d.Kc)
		}
		clamped, drainage := limits.Clamp(tank)
		tank = clamped
		out = append(out, DayState{DayInput: d, ETc: etc, TankMM: tank, DrainageMM: drainage})
	}
	return out, nil
}

// Decision statuses.
const (
	StatusWaterStress   = "Water Stress"
	StatusSlightDeficit = "Normal (slight deficit)"
	StatusNormal        = "Normal"
	StatusSaturated     = "Saturated"
)

// deficits below this are measurement noise, not an irrigation trigger
const deficitDeadBandMM = 3.0

// efficiency floor keeps gross depth from blowing up on degenerate configs
const minEfficiency = 0.1

// Decide turns a tank state into a status and an irrigation recommendation.
// Pure function of its inputs; volumes use 1 mm over 1 ha = 10 m3.
func Decide(limits soil.Limits, tank, efficiency, areaHa float64) (string, float64, types.Recommendation) {
	deficit := limits.FieldCapacityMM - tank
	depletionPct := 0.0
	if limits.TotalAvailableMM > 0 {
		depletionPct = 100 - (tank-limits.WiltingPointMM)/limits.TotalAvailableMM*100
	}

	var status, msg string
	var net float64
	switch {
	case tank < limits.CriticalMM:
		status = StatusWaterStress
		net = deficit
		msg = fmt.Sprintf("Root zone depleted %.0f%%, below the critical threshold. Irrigate now to refill the profile.", depletionPct)
	case deficit > 0 && deficit < deficitDeadBandMM:
		status = StatusSlightDeficit
		msg = "Slight deficit within the comfort band. No irrigation needed."
	case deficit > 0:
		status = StatusNormal
		net = deficit
		msg = "Moisture is adequate. An optional top-up would return the profile to field capacity."
	default:
		status = StatusSaturated
		msg = "Profile at or above field capacity. Hold irrigation."
	}

	if efficiency < minEfficiency {
		efficiency = minEfficiency
	}
	gross := net / efficiency
	volM3 := gross * areaHa * 10

	rec := types.Recommendation{
		NetMM:        round2(net),
		GrossMM:      round2(gross),
		VolumeM3:     round2(volM3),
		VolumeLiters: round2(volM3 * 1000),
		Message:      msg,
	}
	return status, round2(depletionPct), rec
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
