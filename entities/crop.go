package entities

import "time"

// CropTemplate is an FAO-56 crop row: coefficient values plus the four
// phenological stage lengths in days. Templates are shared across users and
// can be seeded from the bundled CSV/XLSX tables.
type CropTemplate struct {
	CropID uint   `gorm:"primaryKey" json:"crop_id"`
	Name   string `json:"name" gorm:"uniqueIndex"`

	KcIni float64 `json:"kc_ini"`
	KcMid float64 `json:"kc_mid"`
	KcEnd float64 `json:"kc_end"`

	StageInitialDays int `json:"stage_initial_days"`
	StageDevDays     int `json:"stage_dev_days"`
	StageMidDays     int `json:"stage_mid_days"`
	StageLateDays    int `json:"stage_late_days"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
