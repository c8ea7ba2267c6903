package types

// Recommendation is the actionable block of a payload: how much to apply, in
// depth and in volume for the planting's area.
type Recommendation struct {
	NetMM        float64 `json:"net_mm"`
	GrossMM      float64 `json:"gross_mm"`
	VolumeM3     float64 `json:"volume_m3"`
	VolumeLiters float64 `json:"volume_liters"`
	Message      string  `json:"message"`
}

// YesterdaySnapshot is the audit record for the most recent fully simulated
// day, so the user can see what drove today's tank state.
type YesterdaySnapshot struct {
	Date    string  `json:"date"`
	ETo     float64 `json:"eto"`
	RainMM  float64 `json:"rain_mm"`
	Kc      float64 `json:"kc"`
	ETc     float64 `json:"etc"`
	Method  string  `json:"method,omitempty"`
}

// RecommendationPayload is the full answer to "should I irrigate today".
type RecommendationPayload struct {
	Date    string  `json:"date"`
	AgeDays int     `json:"age_days"`
	Kc      float64 `json:"kc"`

	Yesterday *YesterdaySnapshot `json:"yesterday,omitempty"`

	TankMM           float64 `json:"tank_mm"`
	FieldCapacityMM  float64 `json:"field_capacity_mm"`
	WiltingPointMM   float64 `json:"wilting_point_mm"`
	CriticalMM       float64 `json:"critical_mm"`
	TotalAvailableMM float64 `json:"total_available_mm"`
	DeficitMM        float64 `json:"deficit_mm"`
	DepletionPct     float64 `json:"depletion_pct"`

	Status        string  `json:"status"`
	EfficiencyPct float64 `json:"efficiency_pct"`

	Recommendation Recommendation `json:"recommendation"`
}

// BalanceDay is one point of the reconstructed series for charting.
type BalanceDay struct {
	Date            string  `json:"date"`
	WaterLevelMM    float64 `json:"water_level_mm"`
	FieldCapacityMM float64 `json:"field_capacity_mm"`
	CriticalMM      float64 `json:"critical_mm"`
	WiltingPointMM  float64 `json:"wilting_point_mm"`
	RainMM          float64 `json:"rain_mm"`
	IrrigationMM    float64 `json:"irrigation_mm"`
	DrainageMM      float64 `json:"drainage_mm"`
}
