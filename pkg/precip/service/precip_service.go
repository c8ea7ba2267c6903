package service

import (
	"context"
	"errors"

	"etflow/entities"
)

// ErrNotFound is the strict-policy gap signal; the wrapping message names the
// missing date.
var ErrNotFound = errors.New("precipitation observation not found")

// PrecipService hands out one day of rain for a station under the strict and
// hybrid policies. Effective precipitation is computed once, at ingestion.
type PrecipService interface {
	GetStrict(st *entities.Station, date string) (*entities.PrecipitationObservation, error)
	GetHybrid(ctx context.Context, st *entities.Station, date string) (*entities.PrecipitationObservation, error)
	Range(stationID uint, from, to string) ([]entities.PrecipitationObservation, error)
	SaveManual(o *entities.PrecipitationObservation, uid string) error
}
