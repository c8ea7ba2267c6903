package entities

import "time"

// Planting ties a crop template to a soil profile and a rain station for one
// cultivated plot.
type Planting struct {
	PlantingID uint   `gorm:"primaryKey" json:"planting_id"`
	UserID     string `json:"user_id" gorm:"index"`

	CropTemplateID uint `json:"crop_template_id" gorm:"index"`
	SoilProfileID  uint `json:"soil_profile_id"`
	StationID      uint `json:"station_id"`

	SowingDate time.Time `json:"sowing_date"`
	AreaHa     float64   `json:"area_ha"`
	Active     bool      `json:"active" gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IrrigationExecution logs one applied irrigation in gross depth. The plant
// only receives the efficiency-adjusted fraction; that conversion happens in
// the simulator, not here.
type IrrigationExecution struct {
	ExecutionID     uint    `gorm:"primaryKey" json:"execution_id"`
	PlantingID      uint    `json:"planting_id" gorm:"index"`
	Date            string  `json:"date" gorm:"index"`
	AppliedMM       float64 `json:"applied_mm"`
	SystemSuggested bool    `json:"system_suggested"`

	CreatedAt time.Time
}
