package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"gorm.io/gorm"

	"etflow/entities"
	"etflow/pkg/crop"
	croprepo "etflow/pkg/crop/repository"
	"etflow/pkg/irrigation/engine"
	"etflow/pkg/irrigation/service"
	"etflow/pkg/irrigation/types"
	plantrepo "etflow/pkg/planting/repository"
	preciprepo "etflow/pkg/precip/repository"
	psvc "etflow/pkg/precip/service"
	"etflow/pkg/rainfall"
	"etflow/pkg/soil"
	soilrepo "etflow/pkg/soilprofile/repository"
	wsvc "etflow/pkg/weather/service"
)

const dateLayout = "2006-01-02"

// lookbackDays caps the reconstruction window; the tank is assumed full at
// the window start (or at sowing, whichever is later).
const lookbackDays = 30

// weatherSource and rainSource are the slices of the data-access services the
// simulator needs, kept local so tests can stand in fakes.
type weatherSource interface {
	GetStrict(uid, date string) (*entities.WeatherObservation, error)
	GetHybrid(ctx context.Context, uid, date string, c wsvc.Coordinates) (*entities.WeatherObservation, error)
}

type rainSource interface {
	GetStrict(st *entities.Station, date string) (*entities.PrecipitationObservation, error)
	GetHybrid(ctx context.Context, st *entities.Station, date string) (*entities.PrecipitationObservation, error)
}

type settingsSource interface {
	Get(uid string) (*entities.IrrigationSettings, error)
}

type irrigationSvc struct {
	policy    service.Policy
	plantings plantrepo.PlantingRepository
	soils     soilrepo.SoilRepository
	stations  preciprepo.StationRepository
	crops     croprepo.CropRepository
	weather   weatherSource
	rain      rainSource
	settings  settingsSource
}

func New(
	policy service.Policy,
	plantings plantrepo.PlantingRepository,
	soils soilrepo.SoilRepository,
	stations preciprepo.StationRepository,
	crops croprepo.CropRepository,
	weather weatherSource,
	rain rainSource,
	settings settingsSource,
) service.IrrigationService {
	return &irrigationSvc{
		policy:    policy,
		plantings: plantings,
		soils:     soils,
		stations:  stations,
		crops:     crops,
		weather:   weather,
		rain:      rain,
		settings:  settings,
	}
}

// simContext is everything resolved up front for one invocation. Each call
// owns its own copy, so concurrent simulations share no mutable state.
type simContext struct {
	planting *entities.Planting
	station  *entities.Station
	stages   crop.Stages
	limits   soil.Limits
	cfg      *entities.IrrigationSettings
	rainMeth rainfall.Method
	coords   wsvc.Coordinates
	execs    map[string]float64 // date -> gross applied mm
}

func (s *irrigationSvc) Recommend(ctx context.Context, plantingID uint, uid string, today time.Time) (*types.RecommendationPayload, error) {
	sc, err := s.prepare(plantingID, uid)
	if err != nil {
		return nil, err
	}

	today = midnight(today)
	start := windowStart(sc.planting.SowingDate, today)
	if err := s.loadExecs(sc, start, today); err != nil {
		return nil, err
	}

	days, err := s.resolveWindow(ctx, sc, uid, start, today, false)
	if err != nil {
		return nil, err
	}
	states, err := engine.Simulate(sc.limits, days)
	if err != nil {
		return nil, fmt.Errorf("computation error: %w", err)
	}

	tank := sc.limits.FieldCapacityMM
	var yesterday *types.YesterdaySnapshot
	if n := len(states); n > 0 {
		last := states[n-1]
		tank = last.TankMM
		yesterday = &types.YesterdaySnapshot{
			Date:   last.Date,
			ETo:    last.ETo,
			RainMM: last.GrossRainMM,
			Kc:     last.Kc,
			ETc:    last.ETc,
			Method: last.EtoMethod,
		}
	}

	status, depletion, rec := engine.Decide(sc.limits, tank, sc.cfg.Efficiency, sc.planting.AreaHa)
	age := ageDays(sc.planting.SowingDate, today)
	log.Printf("[sim] planting=%d user=%s tank=%.1f/%.1f status=%q", plantingID, uid, tank, sc.limits.FieldCapacityMM, status)

	return &types.RecommendationPayload{
		Date:             today.Format(dateLayout),
		AgeDays:          age,
		Kc:               sc.stages.Kc(age),
		Yesterday:        yesterday,
		TankMM:           round2(tank),
		FieldCapacityMM:  round2(sc.limits.FieldCapacityMM),
		WiltingPointMM:   round2(sc.limits.WiltingPointMM),
		CriticalMM:       round2(sc.limits.CriticalMM),
		TotalAvailableMM: round2(sc.limits.TotalAvailableMM),
		DeficitMM:        round2(sc.limits.FieldCapacityMM - tank),
		DepletionPct:     depletion,
		Status:           status,
		EfficiencyPct:    round2(sc.cfg.Efficiency * 100),
		Recommendation:   rec,
	}, nil
}

func (s *irrigationSvc) HistoricalBalance(ctx context.Context, plantingID uint, uid string, windowDays int, today time.Time) ([]types.BalanceDay, error) {
	sc, err := s.prepare(plantingID, uid)
	if err != nil {
		return nil, err
	}

	if windowDays <= 0 || windowDays > 90 {
		windowDays = lookbackDays
	}
	today = midnight(today)
	start := midnight(today.AddDate(0, 0, -windowDays))
	if sow := midnight(sc.planting.SowingDate); sow.After(start) {
		start = sow
	}
	if err := s.loadExecs(sc, start, today); err != nil {
		return nil, err
	}

	days, err := s.resolveWindow(ctx, sc, uid, start, today, true)
	if err != nil {
		return nil, err
	}
	states, err := engine.Simulate(sc.limits, days)
	if err != nil {
		return nil, fmt.Errorf("computation error: %w", err)
	}

	out := make([]types.BalanceDay, 0, len(states))
	for _, st := range states {
		out = append(out, types.BalanceDay{
			Date:            st.Date,
			WaterLevelMM:    round2(st.TankMM),
			FieldCapacityMM: round2(sc.limits.FieldCapacityMM),
			CriticalMM:      round2(sc.limits.CriticalMM),
			WiltingPointMM:  round2(sc.limits.WiltingPointMM),
			RainMM:          round2(st.EffRainMM),
			IrrigationMM:    round2(st.NetIrrigation),
			DrainageMM:      round2(st.DrainageMM),
		})
	}
	return out, nil
}

// prepare resolves the planting and all its collaborators, failing before any
// simulation work when a prerequisite is missing.
func (s *irrigationSvc) prepare(plantingID uint, uid string) (*simContext, error) {
	p, err := s.plantings.FindByID(plantingID, uid)
	if err != nil {
		return nil, err
	}

	if p.SoilProfileID == 0 {
		return nil, service.ErrMissingSoil
	}
	profile, err := s.soils.FindByID(p.SoilProfileID, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrMissingSoil
		}
		return nil, err
	}

	if p.StationID == 0 {
		return nil, service.ErrMissingStation
	}
	station, err := s.stations.FindByID(p.StationID, uid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, service.ErrMissingStation
		}
		return nil, err
	}

	tmpl, err := s.crops.FindByID(p.CropTemplateID)
	if err != nil {
		return nil, fmt.Errorf("crop template: %w", err)
	}
	cfg, err := s.settings.Get(uid)
	if err != nil {
		return nil, err
	}
	rainMeth, err := rainfall.ParseMethod(cfg.RainfallMethod)
	if err != nil {
		return nil, err
	}

	coords := wsvc.Coordinates{Latitude: station.Latitude, Longitude: station.Longitude}
	if profile.Latitude != nil && profile.Longitude != nil {
		coords.Latitude = *profile.Latitude
		coords.Longitude = *profile.Longitude
	}

	return &simContext{
		planting: p,
		station:  station,
		stages:   crop.StagesFromTemplate(tmpl),
		limits:   soil.LimitsFromProfile(profile),
		cfg:      cfg,
		rainMeth: rainMeth,
		coords:   coords,
	}, nil
}

// loadExecs preloads the irrigation log for the window so the day loop does a
// map lookup instead of a query per day.
func (s *irrigationSvc) loadExecs(sc *simContext, start, today time.Time) error {
	execs, err := s.plantings.ExecutionsInRange(sc.planting.PlantingID, start.Format(dateLayout), today.Format(dateLayout))
	if err != nil {
		return err
	}
	sc.execs = make(map[string]float64, len(execs))
	for _, e := range execs {
		sc.execs[e.Date] += e.AppliedMM
	}
	return nil
}

// resolveWindow builds the engine inputs day by day, in chronological order.
// Under the strict policy the first unresolvable day aborts with the exact
// date; with lenient set (charting) missing days collapse to a neutral zero.
func (s *irrigationSvc) resolveWindow(ctx context.Context, sc *simContext, uid string, start, today time.Time, lenient bool) ([]engine.DayInput, error) {
	var days []engine.DayInput
	for d := start; d.Before(today); d = d.AddDate(0, 0, 1) {
		date := d.Format(dateLayout)

		var etoVal float64
		var method string
		wo, err := s.weatherDay(ctx, uid, date, sc.coords, lenient)
		switch {
		case err == nil:
			etoVal = wo.ETo
			method = wo.Method
		case lenient && isGap(err):
			// chart keeps going with a flat day
		case isGap(err):
			return nil, &service.MissingObservationError{Date: date, Domain: "weather", Err: err}
		default:
			return nil, err
		}

		var gross float64
		po, err := s.rainDay(ctx, sc.station, date, lenient)
		switch {
		case err == nil:
			gross = po.GrossMM
		case lenient && isGap(err):
		case isGap(err):
			return nil, &service.MissingObservationError{Date: date, Domain: "precipitation", Err: err}
		default:
			return nil, err
		}

		age := ageDays(sc.planting.SowingDate, d)
		days = append(days, engine.DayInput{
			Date:          date,
			ETo:           etoVal,
			GrossRainMM:   gross,
			EffRainMM:     rainfall.Effective(sc.rainMeth, gross),
			NetIrrigation: sc.execs[date] * sc.cfg.Efficiency,
			Kc:            sc.stages.Kc(age),
			EtoMethod:     method,
		})
	}
	return days, nil
}

// weatherDay dispatches on the configured policy. Lenient (charting) reads
// never reach out to the remote source.
func (s *irrigationSvc) weatherDay(ctx context.Context, uid, date string, c wsvc.Coordinates, lenient bool) (*entities.WeatherObservation, error) {
	if lenient || s.policy == service.PolicyStrict {
		return s.weather.GetStrict(uid, date)
	}
	return s.weather.GetHybrid(ctx, uid, date, c)
}

func (s *irrigationSvc) rainDay(ctx context.Context, st *entities.Station, date string, lenient bool) (*entities.PrecipitationObservation, error) {
	if lenient || s.policy == service.PolicyStrict {
		return s.rain.GetStrict(st, date)
	}
	return s.rain.GetHybrid(ctx, st, date)
}

// isGap recognizes "no data for this day" from either domain, as opposed to
// transport or storage faults.
func isGap(err error) bool {
	return errors.Is(err, wsvc.ErrNotFound) ||
		errors.Is(err, psvc.ErrNotFound) ||
		errors.Is(err, gorm.ErrRecordNotFound)
}

func windowStart(sowing, today time.Time) time.Time {
	start := midnight(today.AddDate(0, 0, -lookbackDays))
	if sow := midnight(sowing); sow.After(start) {
		return sow
	}
	return start
}

func ageDays(sowing, day time.Time) int {
	return int(midnight(day).Sub(midnight(sowing)).Hours() / 24)
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
