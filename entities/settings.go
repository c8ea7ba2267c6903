package entities

import "time"

// IrrigationSettings is the per-user calculator configuration. One row per
// user, created lazily with defaults (PENMAN, USDA, efficiency 0.90).
type IrrigationSettings struct {
	SettingsID uint   `gorm:"primaryKey" json:"settings_id"`
	UserID     string `json:"user_id" gorm:"uniqueIndex"`

	EtoMethod      string  `json:"eto_method"`
	RainfallMethod string  `json:"rainfall_method"`
	Efficiency     float64 `json:"efficiency"` // fraction in (0,1]

	CreatedAt time.Time
	UpdatedAt time.Time
}
