package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"etflow/entities"
	"etflow/pkg/precip/repository"
)

type stationRepo struct{ db *gorm.DB }

func NewStation(db *gorm.DB) repository.StationRepository { return &stationRepo{db} }

func (r *stationRepo) Create(st *entities.Station) error { return r.db.Create(st).Error }

func (r *stationRepo) FindByID(id uint, uid string) (*entities.Station, error) {
	var st entities.Station
	if err := r.db.Where("station_id = ? AND user_id = ?", id, uid).First(&st).Error; err != nil { return nil, err }
	return &st, nil
}

func (r *stationRepo) ListByUser(uid string) ([]entities.Station, error) {
	var out []entities.Station
	return out, r.db.Where("user_id = ?", uid).Order("station_id asc").Find(&out).Error
}

func (r *stationRepo) Delete(id uint, uid string) error {
	return r.db.Where("station_id = ? AND user_id = ?", id, uid).Delete(&entities.Station{}).Error
}

type precipRepo struct{ db *gorm.DB }

func NewPrecip(db *gorm.DB) repository.PrecipRepository { return &precipRepo{db} }

func (r *precipRepo) FindByStationAndDate(stationID uint, date string) (*entities.PrecipitationObservation, error) {
	var o entities.PrecipitationObservation
	if err := r.db.Where("station_id = ? AND date = ?", stationID, date).First(&o).Error; err != nil { return nil, err }
	return &o, nil
}

func (r *precipRepo) Range(stationID uint, from, to string) ([]entities.PrecipitationObservation, error) {
	var out []entities.PrecipitationObservation
	q := r.db.Where("station_id = ?", stationID)
	if from != "" {
		q = q.Where("date >= ?", from)
	}
	if to != "" {
		q = q.Where("date <= ?", to)
	}
	return out, q.Order("date asc").Find(&out).Error
}

func (r *precipRepo) Upsert(o *entities.PrecipitationObservation) (*entities.PrecipitationObservation, error) {
	var cur entities.PrecipitationObservation
	err := r.db.Where("station_id = ? AND date = ?", o.StationID, o.Date).First(&cur).Error
	switch {
	case err == nil:
		o.PrecipID = cur.PrecipID
		o.CreatedAt = cur.CreatedAt
		return o, r.db.Save(o).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return o, r.db.Create(o).Error
	default:
		return nil, err
	}
}
