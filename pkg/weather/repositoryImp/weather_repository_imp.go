package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"etflow/entities"
	"etflow/pkg/weather/repository"
)

type weatherRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.WeatherRepository { return &weatherRepo{db} }

func (r *weatherRepo) FindByUserAndDate(uid, date string) (*entities.WeatherObservation, error) {
	var o entities.WeatherObservation
	if err := r.db.Where("user_id = ? AND date = ?", uid, date).First(&o).Error; err != nil { return nil, err }
	return &o, nil
}

func (r *weatherRepo) Range(uid, from, to string) ([]entities.WeatherObservation, error) {
	var out []entities.WeatherObservation
	q := r.db.Where("user_id = ?", uid)
	if from != "" {
		q = q.Where("date >= ?", from)
	}
	if to != "" {
		q = q.Where("date <= ?", to)
	}
	return out, q.Order("date asc").Find(&out).Error
}

func (r *weatherRepo) Upsert(o *entities.WeatherObservation) (*entities.WeatherObservation, error) {
	var cur entities.WeatherObservation
	err := r.db.Where("user_id = ? AND date = ?", o.UserID, o.Date).First(&cur).Error
	switch {
	case err == nil:
		if cur.ManualOverride {
			// pinned by the user, refresh must not touch it
			return &cur, nil
		}
		o.WeatherID = cur.WeatherID
		o.CreatedAt = cur.CreatedAt
		return o, r.db.Save(o).Error
	case errors.Is(err, gorm.ErrRecordNotFound):
		return o, r.db.Create(o).Error
	default:
		return nil, err
	}
}

func (r *weatherRepo) SaveManual(o *entities.WeatherObservation) error {
	o.Source = "manual"
	o.ManualOverride = true
	var cur entities.WeatherObservation
	err := r.db.Where("user_id = ? AND date = ?", o.UserID, o.Date).First(&cur).Error
	if err == nil {
		o.WeatherID = cur.WeatherID
		o.CreatedAt = cur.CreatedAt
		return r.db.Save(o).Error
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(o).Error
	}
	return err
}
