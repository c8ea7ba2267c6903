package repository

import "etflow/entities"

type WeatherRepository interface {
	FindByUserAndDate(uid, date string) (*entities.WeatherObservation, error)
	Range(uid, from, to string) ([]entities.WeatherObservation, error)
	// Upsert writes an automated acquisition. A manually overridden row is
	// left untouched and returned as-is.
	Upsert(o *entities.WeatherObservation) (*entities.WeatherObservation, error)
	// SaveManual writes a user-entered row and pins it against refresh.
	SaveManual(o *entities.WeatherObservation) error
}
