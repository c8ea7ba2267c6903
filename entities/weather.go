package entities

import "time"

// WeatherObservation is one day of meteorological data for a user's location,
// plus the ETo derived from it. Date is stored as YYYY-MM-DD so the
// (user_id, date) pair can act as a natural key.
type WeatherObservation struct {
	WeatherID uint   `gorm:"primaryKey" json:"weather_id"`
	UserID    string `json:"user_id" gorm:"index:idx_weather_user_date,unique"`
	Date      string `json:"date" gorm:"index:idx_weather_user_date,unique"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation"`

	TempMax   float64  `json:"temp_max"`
	TempMin   float64  `json:"temp_min"`
	Humidity  float64  `json:"humidity"`
	WindSpeed float64  `json:"wind_speed"`
	Radiation float64  `json:"radiation"` // MJ/m2/day
	Pressure  *float64 `json:"pressure,omitempty"`

	ETo    float64 `json:"eto"`
	Method string  `json:"method"` // formula actually used for ETo
	Source string  `json:"source"` // nasa_power|manual

	// Once a user edits a day by hand the record is pinned: automated
	// refresh must leave it alone.
	ManualOverride bool `json:"manual_override"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
