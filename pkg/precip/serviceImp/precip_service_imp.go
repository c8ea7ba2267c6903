package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"etflow/entities"
	"etflow/pkg/precip/chirps"
	"etflow/pkg/precip/repository"
	"etflow/pkg/precip/service"
	"etflow/pkg/rainfall"
)

type remoteSource interface {
	FetchDay(ctx context.Context, lat, lon float64, date time.Time) (float64, error)
}

// methodProvider yields the user's effective-rainfall method key.
type methodProvider interface {
	RainfallMethod(uid string) (string, error)
}

type precipSvc struct {
	repo    repository.PrecipRepository
	remote  remoteSource
	methods methodProvider
}

func New(repo repository.PrecipRepository, remote remoteSource, methods methodProvider) service.PrecipService {
	return &precipSvc{repo: repo, remote: remote, methods: methods}
}

func (s *precipSvc) GetStrict(st *entities.Station, date string) (*entities.PrecipitationObservation, error) {
	o, err := s.repo.FindByStationAndDate(st.StationID, date)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: station %d on %s", service.ErrNotFound, st.StationID, date)
	}
	return o, err
}

func (s *precipSvc) GetHybrid(ctx context.Context, st *entities.Station, date string) (*entities.PrecipitationObservation, error) {
	o, err := s.repo.FindByStationAndDate(st.StationID, date)
	if err == nil {
		return o, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("bad date %q: %w", date, err)
	}
	gross, err := s.remote.FetchDay(ctx, st.Latitude, st.Longitude, day)
	if err != nil {
		if errors.Is(err, chirps.ErrNotAvailable) {
			return nil, fmt.Errorf("%w: %s (%v)", service.ErrNotFound, date, err)
		}
		return nil, fmt.Errorf("precipitation upstream failure for %s: %w", date, err)
	}

	eff, err := s.effective(st.UserID, gross)
	if err != nil {
		return nil, err
	}
	return s.repo.Upsert(&entities.PrecipitationObservation{
		StationID:   st.StationID,
		Date:        date,
		GrossMM:     gross,
		EffectiveMM: eff,
		Source:      "chirps",
	})
}

func (s *precipSvc) effective(uid string, gross float64) (float64, error) {
	key, err := s.methods.RainfallMethod(uid)
	if err != nil {
		return 0, err
	}
	m, err := rainfall.ParseMethod(key)
	if err != nil {
		return 0, err
	}
	return rainfall.Effective(m, gross), nil
}

func (s *precipSvc) Range(stationID uint, from, to string) ([]entities.PrecipitationObservation, error) {
	return s.repo.Range(stationID, from, to)
}

func (s *precipSvc) SaveManual(o *entities.PrecipitationObservation, uid string) error {
	if o.Date == "" {
		return errors.New("date is required")
	}
	o.Source = "manual"
	eff, err := s.effective(uid, o.GrossMM)
	if err != nil {
		return err
	}
	o.EffectiveMM = eff
	_, err = s.repo.Upsert(o)
	return err
}
