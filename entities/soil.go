package entities

import "time"

// SoilProfile carries the physical properties the tank model needs.
// Invariant: FieldCapacityPct > WiltingPointPct > 0.
type SoilProfile struct {
	SoilID uint   `gorm:"primaryKey" json:"soil_id"`
	UserID string `json:"user_id" gorm:"index"`
	Name   string `json:"name"`

	FieldCapacityPct float64 `json:"field_capacity_pct"` // % volumetric
	WiltingPointPct  float64 `json:"wilting_point_pct"`  // % volumetric
	BulkDensity      float64 `json:"bulk_density"`       // g/cm3

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
