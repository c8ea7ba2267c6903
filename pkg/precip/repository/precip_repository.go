package repository

import "etflow/entities"

type StationRepository interface {
	Create(st *entities.Station) error
	FindByID(id uint, uid string) (*entities.Station, error)
	ListByUser(uid string) ([]entities.Station, error)
	Delete(id uint, uid string) error
}

type PrecipRepository interface {
	FindByStationAndDate(stationID uint, date string) (*entities.PrecipitationObservation, error)
	Range(stationID uint, from, to string) ([]entities.PrecipitationObservation, error)
	Upsert(o *entities.PrecipitationObservation) (*entities.PrecipitationObservation, error)
}
