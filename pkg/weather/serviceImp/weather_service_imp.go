package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"etflow/entities"
	"etflow/pkg/eto"
	"etflow/pkg/weather/nasapower"
	"etflow/pkg/weather/repository"
	"etflow/pkg/weather/service"
)

// remoteSource is what the hybrid policy needs from the acquisition client.
type remoteSource interface {
	FetchDay(ctx context.Context, lat, lon float64, date time.Time) (*nasapower.Day, error)
}

// methodProvider yields the user's preferred ETo formula key.
type methodProvider interface {
	EtoMethod(uid string) (string, error)
}

type weatherSvc struct {
	repo    repository.WeatherRepository
	remote  remoteSource
	methods methodProvider
}

func New(repo repository.WeatherRepository, remote remoteSource, methods methodProvider) service.WeatherService {
	return &weatherSvc{repo: repo, remote: remote, methods: methods}
}

func (s *weatherSvc) GetStrict(uid, date string) (*entities.WeatherObservation, error) {
	o, err := s.repo.FindByUserAndDate(uid, date)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", service.ErrNotFound, date)
	}
	return o, err
}

func (s *weatherSvc) GetHybrid(ctx context.Context, uid, date string, c service.Coordinates) (*entities.WeatherObservation, error) {
	o, err := s.repo.FindByUserAndDate(uid, date)
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
	raw, err := s.remote.FetchDay(ctx, c.Latitude, c.Longitude, day)
	if err != nil {
		if errors.Is(err, nasapower.ErrNotAvailable) {
			return nil, fmt.Errorf("%w: %s (%v)", service.ErrNotFound, date, err)
		}
		return nil, fmt.Errorf("weather upstream failure for %s: %w", date, err)
	}

	obs := &entities.WeatherObservation{
		UserID:    uid,
		Date:      date,
		Latitude:  c.Latitude,
		Longitude: c.Longitude,
		Elevation: c.Elevation,
		TempMax:   raw.TempMax,
		TempMin:   raw.TempMin,
		Humidity:  raw.Humidity,
		WindSpeed: raw.WindSpeed,
		Radiation: raw.Radiation,
		Source:    "nasa_power",
	}
	if err := s.deriveETo(obs, uid, day); err != nil {
		return nil, err
	}
	return s.repo.Upsert(obs)
}

// deriveETo runs the user's preferred formula over the acquired day, walking
// the explicit fallback chain when inputs are short, and records on the row
// which method actually produced the value.
func (s *weatherSvc) deriveETo(o *entities.WeatherObservation, uid string, day time.Time) error {
	key, err := s.methods.EtoMethod(uid)
	if err != nil {
		return err
	}
	preferred, err := eto.ParseMethod(key)
	if err != nil {
		return err
	}

	doy := day.YearDay()
	tavg := (o.TempMax + o.TempMin) / 2
	in := eto.Inputs{
		TempMax:   &o.TempMax,
		TempMin:   &o.TempMin,
		TempAvg:   &tavg,
		Humidity:  &o.Humidity,
		WindSpeed: &o.WindSpeed,
		Radiation: &o.Radiation,
		Latitude:  &o.Latitude,
		DayOfYear: &doy,
		Elevation: &o.Elevation,
	}
	v, used, err := eto.ComputeWithFallback(eto.FallbackChain(preferred), in)
	if err != nil {
		return fmt.Errorf("eto computation for %s: %w", o.Date, err)
	}
	if used != preferred {
		log.Printf("[weather] %s %s: fell back to %s", uid, o.Date, used)
	}
	o.ETo = v
	o.Method = used.String()
	return nil
}

func (s *weatherSvc) Range(uid, from, to string) ([]entities.WeatherObservation, error) {
	return s.repo.Range(uid, from, to)
}

func (s *weatherSvc) SaveManual(o *entities.WeatherObservation, eto *float64) error {
	if o.Date == "" {
		return errors.New("date is required")
	}
	if eto != nil {
		o.ETo = *eto
	} else {
		day, err := time.Parse("2006-01-02", o.Date)
		if err != nil {
			return fmt.Errorf("bad date %q: %w", o.Date, err)
		}
		if err := s.deriveETo(o, o.UserID, day); err != nil {
			return err
		}
	}
	return s.repo.SaveManual(o)
}
