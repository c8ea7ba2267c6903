// Package soil derives the root-zone water tank limits from a soil profile.
package soil

import "etflow/entities"

// RootDepthM is the assumed effective root depth used when converting
// volumetric water content into a depth of water over the root zone.
const RootDepthM = 0.6

// Defaults applied when the profile lacks physical properties. Missing soil
// data is common and non-fatal to a rough estimate.
const (
	DefaultFieldCapacityPct = 25.0
	DefaultWiltingPointPct  = 12.0
	DefaultBulkDensity      = 1.2
)

// Limits are the fixed reference points of the tank, all in mm of water over
// the root zone.
type Limits struct {
	FieldCapacityMM    float64 `json:"field_capacity_mm"`
	WiltingPointMM     float64 `json:"wilting_point_mm"`
	TotalAvailableMM   float64 `json:"total_available_mm"`
	ReadilyAvailableMM float64 `json:"readily_available_mm"`
	CriticalMM         float64 `json:"critical_mm"`
}

// LimitsFromProfile computes the tank limits at the reference root depth,
// with a 50% management-allowable depletion for the critical threshold.
func LimitsFromProfile(p *entities.SoilProfile) Limits {
	fc, wp, bd := DefaultFieldCapacityPct, DefaultWiltingPointPct, DefaultBulkDensity
	if p != nil {
		if p.FieldCapacityPct > 0 {
			fc = p.FieldCapacityPct
		}
		if p.WiltingPointPct > 0 {
			wp = p.WiltingPointPct
		}
		if p.BulkDensity > 0 {
			bd = p.BulkDensity
		}
	}

	fcMM := fc / 100 * bd * RootDepthM * 1000
	wpMM := wp / 100 * bd * RootDepthM * 1000
	taw := fcMM - wpMM
	raw := 0.5 * taw

	return Limits{
		FieldCapacityMM:    fcMM,
		WiltingPointMM:     wpMM,
		TotalAvailableMM:   taw,
		ReadilyAvailableMM: raw,
		CriticalMM:         fcMM - raw,
	}
}

// Clamp keeps a tank level inside the physical band. The amount shaved off
// the top is returned as drainage; the low side is simply pinned at wilting
// point.
func (l Limits) Clamp(tank float64) (clamped, drainage float64) {
	if tank > l.FieldCapacityMM {
		return l.FieldCapacityMM, tank - l.FieldCapacityMM
	}
	if tank < l.WiltingPointMM {
		return l.WiltingPointMM, 0
	}
	return tank, 0
}
