package entities

import "time"

// Station is a precipitation measurement point owned by a user.
type Station struct {
	StationID uint    `gorm:"primaryKey" json:"station_id"`
	UserID    string  `json:"user_id" gorm:"index"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PrecipitationObservation holds gross and effective rain for one station-day.
// Effective defaults to the gross value until a conversion method has been
// applied at ingestion.
type PrecipitationObservation struct {
	PrecipID  uint   `gorm:"primaryKey" json:"precip_id"`
	StationID uint   `json:"station_id" gorm:"index:idx_precip_station_date,unique"`
	Date      string `json:"date" gorm:"index:idx_precip_station_date,unique"`

	GrossMM     float64 `json:"gross_mm"`
	EffectiveMM float64 `json:"effective_mm"`
	Source      string  `json:"source"` // chirps|manual

	CreatedAt time.Time
	UpdatedAt time.Time
}
