package service

import (
	"context"
	"errors"

	"etflow/entities"
)

// ErrNotFound is returned by the strict policy when no observation is stored
// for the requested day. The date is carried in the wrapping message so the
// caller can say exactly which day to backfill.
var ErrNotFound = errors.New("weather observation not found")

// Coordinates locate the acquisition point for hybrid fetches.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Elevation float64 `json:"elevation"`
}

// WeatherService hands out one day of weather under two policies: strict
// reads the store only and fails loudly on a gap; hybrid reads through to the
// remote source, computes ETo, persists and returns.
type WeatherService interface {
	GetStrict(uid, date string) (*entities.WeatherObservation, error)
	GetHybrid(ctx context.Context, uid, date string, c Coordinates) (*entities.WeatherObservation, error)
	Range(uid, from, to string) ([]entities.WeatherObservation, error)
	// SaveManual stores a hand-entered day. A nil eto means "derive it from
	// the fields"; a non-nil eto is stored verbatim, zero included.
	SaveManual(o *entities.WeatherObservation, eto *float64) error
}
