package serviceImp

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"etflow/entities"
	"etflow/pkg/irrigation/service"
	psvc "etflow/pkg/precip/service"
	wsvc "etflow/pkg/weather/service"
)

var (
	testToday  = time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	testSowing = time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC)
)

type stubPlantings struct {
	planting *entities.Planting
	execs    []entities.IrrigationExecution
}

func (s *stubPlantings) Create(*entities.Planting) error { return nil }
func (s *stubPlantings) FindByID(id uint, uid string) (*entities.Planting, error) {
	if s.planting == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.planting, nil
}
func (s *stubPlantings) ListByUser(string) ([]entities.Planting, error)  { return nil, nil }
func (s *stubPlantings) SetActive(uint, string, bool) error              { return nil }
func (s *stubPlantings) AddExecution(*entities.IrrigationExecution) error { return nil }
func (s *stubPlantings) ExecutionsInRange(plantingID uint, from, to string) ([]entities.IrrigationExecution, error) {
	return s.execs, nil
}

type stubSoils struct{ profile *entities.SoilProfile }

func (s *stubSoils) Create(*entities.SoilProfile) error { return nil }
func (s *stubSoils) FindByID(id uint, uid string) (*entities.SoilProfile, error) {
	if s.profile == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.profile, nil
}
func (s *stubSoils) ListByUser(string) ([]entities.SoilProfile, error) { return nil, nil }
func (s *stubSoils) Update(*entities.SoilProfile) error                { return nil }
func (s *stubSoils) Delete(uint, string) error                         { return nil }

type stubStations struct{ station *entities.Station }

func (s *stubStations) Create(*entities.Station) error { return nil }
func (s *stubStations) FindByID(id uint, uid string) (*entities.Station, error) {
	if s.station == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return s.station, nil
}
func (s *stubStations) ListByUser(string) ([]entities.Station, error) { return nil, nil }
func (s *stubStations) Delete(uint, string) error                     { return nil }

type stubCrops struct{ tmpl *entities.CropTemplate }

func (s *stubCrops) FindByID(uint) (*entities.CropTemplate, error) { return s.tmpl, nil }
func (s *stubCrops) List() ([]entities.CropTemplate, error)        { return nil, nil }
func (s *stubCrops) Seed([]entities.CropTemplate) error            { return nil }

// fakeWeather keeps a date-keyed store. Hybrid reads fall through to a fixed
// fetched value and count how often that happened.
type fakeWeather struct {
	stored  map[string]float64 // date -> eto
	fetched float64
	fetches int
}

func (f *fakeWeather) GetStrict(uid, date string) (*entities.WeatherObservation, error) {
	if eto, ok := f.stored[date]; ok {
		return &entities.WeatherObservation{UserID: uid, Date: date, ETo: eto, Method: "PENMAN"}, nil
	}
	return nil, fmt.Errorf("%w: %s", wsvc.ErrNotFound, date)
}

func (f *fakeWeather) GetHybrid(ctx context.Context, uid, date string, c wsvc.Coordinates) (*entities.WeatherObservation, error) {
	if o, err := f.GetStrict(uid, date); err == nil {
		return o, nil
	}
	f.fetches++
	return &entities.WeatherObservation{UserID: uid, Date: date, ETo: f.fetched, Method: "HARGREAVES"}, nil
}

type fakeRain struct {
	stored map[string]float64 // date -> gross mm
}

func (f *fakeRain) GetStrict(st *entities.Station, date string) (*entities.PrecipitationObservation, error) {
	if g, ok := f.stored[date]; ok {
		return &entities.PrecipitationObservation{StationID: st.StationID, Date: date, GrossMM: g, EffectiveMM: g}, nil
	}
	return nil, fmt.Errorf("%w: %s", psvc.ErrNotFound, date)
}

func (f *fakeRain) GetHybrid(ctx context.Context, st *entities.Station, date string) (*entities.PrecipitationObservation, error) {
	if o, err := f.GetStrict(st, date); err == nil {
		return o, nil
	}
	return &entities.PrecipitationObservation{StationID: st.StationID, Date: date}, nil
}

type stubSettings struct{}

func (stubSettings) Get(uid string) (*entities.IrrigationSettings, error) {
	return &entities.IrrigationSettings{UserID: uid, EtoMethod: "PENMAN", RainfallMethod: "USDA", Efficiency: 0.9}, nil
}

// fixture: 10-day-old planting, default soil, flat Kc = 1
func fixture() (*stubPlantings, *stubSoils, *stubStations, *stubCrops, *fakeWeather, *fakeRain) {
	plantings := &stubPlantings{planting: &entities.Planting{
		PlantingID: 1, UserID: "U1", CropTemplateID: 1, SoilProfileID: 1, StationID: 1,
		SowingDate: testSowing, AreaHa: 2, Active: true,
	}}
	soils := &stubSoils{profile: &entities.SoilProfile{SoilID: 1, UserID: "U1", FieldCapacityPct: 25, WiltingPointPct: 12, BulkDensity: 1.2}}
	stations := &stubStations{station: &entities.Station{StationID: 1, UserID: "U1", Latitude: 13.75, Longitude: 100.5}}
	crops := &stubCrops{tmpl: &entities.CropTemplate{CropID: 1, Name: "Flat", KcIni: 1, KcMid: 1, KcEnd: 1, StageInitialDays: 20, StageDevDays: 30, StageMidDays: 40, StageLateDays: 30}}

	weather := &fakeWeather{stored: map[string]float64{}, fetched: 5}
	rain := &fakeRain{stored: map[string]float64{}}
	for d := testSowing; d.Before(testToday); d = d.AddDate(0, 0, 1) {
		weather.stored[d.Format("2006-01-02")] = 5
		rain.stored[d.Format("2006-01-02")] = 0
	}
	return plantings, soils, stations, crops, weather, rain
}

func TestRecommendStrictFullWindow(t *testing.T) {
	plantings, soils, stations, crops, weather, rain := fixture()
	svc := New(service.PolicyStrict, plantings, soils, stations, crops, weather, rain, stubSettings{})

	p, err := svc.Recommend(context.Background(), 1, "U1", testToday)
	require.NoError(t, err)

	assert.Equal(t, "2026-09-01", p.Date)
	assert.Equal(t, 10, p.AgeDays)
	assert.Equal(t, 1.0, p.Kc)

	// ten days at ETc 5 from a full tank: 180 - 50 = 130, below critical 133.2
	assert.InDelta(t, 130.0, p.TankMM, 1e-9)
	assert.Equal(t, "Water Stress", p.Status)
	assert.InDelta(t, 50.0, p.DeficitMM, 1e-9)
	assert.InDelta(t, 50.0, p.Recommendation.NetMM, 1e-9)
	assert.InDelta(t, 55.56, p.Recommendation.GrossMM, 1e-9)
	assert.InDelta(t, 1111.11, p.Recommendation.VolumeM3, 1e-9)
	assert.InDelta(t, 90.0, p.EfficiencyPct, 1e-9)

	require.NotNil(t, p.Yesterday)
	assert.Equal(t, "2026-08-31", p.Yesterday.Date)
	assert.Equal(t, 5.0, p.Yesterday.ETo)
	assert.Equal(t, 5.0, p.Yesterday.ETc)
	assert.Equal(t, "PENMAN", p.Yesterday.Method)
}

func TestRecommendStrictAbortsOnGap(t *testing.T) {
	plantings, soils, stations, crops, weather, rain := fixture()
	gapDate := testSowing.AddDate(0, 0, 2).Format("2006-01-02")
	delete(weather.stored, gapDate)

	svc := New(service.PolicyStrict, plantings, soils, stations, crops, weather, rain, stubSettings{})
	_, err := svc.Recommend(context.Background(), 1, "U1", testToday)
	require.Error(t, err)

	var missing *service.MissingObservationError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, gapDate, missing.Date)
	assert.Equal(t, "weather", missing.Domain)
}

func TestRecommendStrictAbortsOnRainGap(t *testing.T) {
	plantings, soils, stations, crops, weather, rain := fixture()
	gapDate := testSowing.AddDate(0, 0, 4).Format("2006-01-02")
	delete(rain.stored, gapDate)

	svc := New(service.PolicyStrict, plantings, soils, stations, crops, weather, rain, stubSettings{})
	_, err := svc.Recommend(context.Background(), 1, "U1", testToday)

	var missing *service.MissingObservationError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, gapDate, missing.Date)
	assert.Equal(t, "precipitation", missing.Domain)
}

func TestRecommendHybridFillsGaps(t *testing.T) {
	plantings, soils, stations, crops, weather, rain := fixture()
	delete(weather.stored, testSowing.AddDate(0, 0, 2).Format("2006-01-02"))
	delete(weather.stored, testSowing.AddDate(0, 0, 6).Format("2006-01-02"))

	svc := New(service.PolicyHybrid, plantings, soils, stations, crops, weather, rain, stubSettings{})
	p, err := svc.Recommend(context.Background(), 1, "U1", testToday)
	require.NoError(t, err)
	assert.Equal(t, 2, weather.fetches)
	assert.InDelta(t, 130.0, p.TankMM, 1e-9)
}

func TestRecommendAppliesRainAndIrrigation(t *testing.T) {
	plantings, soils, stations, crops, weather, rain := fixture()
	day4 := testSowing.AddDate(0, 0, 4).Format("2006-01-02")
	rain.stored[day4] = 10 // USDA effective: 10*(125-2)/125 = 9.84
	plantings.execs = []entities.IrrigationExecution{{PlantingID: 1, Date: day4, AppliedMM: 10}}

	svc := New(service.PolicyStrict, plantings, soils, stations, crops, weather, rain, stubSettings{})
	p, err := svc.Recommend(context.Background(), 1, "U1", testToday)
	require.NoError(t, err)

	// net irrigation 10*0.9 = 9, so tank = 130 + 9.84 + 9 = 148.84
	assert.InDelta(t, 148.84, p.TankMM, 1e-9)
	assert.Equal(t, "Normal", p.Status)
}

func TestRecommendMissingPrerequisites(t *testing.T) {
	plantings, soils, stations, crops, weather, rain := fixture()

	plantings.planting.SoilProfileID = 0
	svc := New(service.PolicyStrict, plantings, soils, stations, crops, weather, rain, stubSettings{})
	_, err := svc.Recommend(context.Background(), 1, "U1", testToday)
	assert.ErrorIs(t, err, service.ErrMissingSoil)

	plantings.planting.SoilProfileID = 1
	plantings.planting.StationID = 0
	_, err = svc.Recommend(context.Background(), 1, "U1", testToday)
	assert.ErrorIs(t, err, service.ErrMissingStation)
}

func TestRecommendUnknownPlanting(t *testing.T) {
	_, soils, stations, crops, weather, rain := fixture()
	svc := New(service.PolicyStrict, &stubPlantings{}, soils, stations, crops, weather, rain, stubSettings{})

	_, err := svc.Recommend(context.Background(), 99, "U1", testToday)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestHistoricalBalanceToleratesGaps(t *testing.T) {
	plantings, soils, stations, crops, weather, rain := fixture()
	gapDate := testSowing.AddDate(0, 0, 3).Format("2006-01-02")
	delete(weather.stored, gapDate)
	delete(rain.stored, gapDate)

	svc := New(service.PolicyStrict, plantings, soils, stations, crops, weather, rain, stubSettings{})
	series, err := svc.HistoricalBalance(context.Background(), 1, "U1", 30, testToday)
	require.NoError(t, err)
	require.Len(t, series, 10, "window truncated at sowing")

	// gap day is a flat day: no ETo draw, no rain
	assert.Equal(t, gapDate, series[3].Date)
	assert.Equal(t, series[2].WaterLevelMM, series[3].WaterLevelMM)
	assert.Equal(t, 0.0, series[3].RainMM)

	for _, d := range series {
		assert.InDelta(t, 180.0, d.FieldCapacityMM, 1e-9)
		assert.InDelta(t, 133.2, d.CriticalMM, 1e-9)
		assert.InDelta(t, 86.4, d.WiltingPointMM, 1e-9)
		assert.GreaterOrEqual(t, d.WaterLevelMM, 86.4)
		assert.LessOrEqual(t, d.WaterLevelMM, 180.0)
	}
}

func TestHistoricalBalanceNeverFetches(t *testing.T) {
	plantings, soils, stations, crops, weather, rain := fixture()
	delete(weather.stored, testSowing.AddDate(0, 0, 5).Format("2006-01-02"))

	svc := New(service.PolicyHybrid, plantings, soils, stations, crops, weather, rain, stubSettings{})
	_, err := svc.HistoricalBalance(context.Background(), 1, "U1", 30, testToday)
	require.NoError(t, err)
	assert.Equal(t, 0, weather.fetches, "charting reads are store-only even under hybrid")
}

func TestHistoricalBalanceWindowCap(t *testing.T) {
	plantings, soils, stations, crops, weather, rain := fixture()
	svc := New(service.PolicyStrict, plantings, soils, stations, crops, weather, rain, stubSettings{})

	for _, days := range []int{-1, 0, 400} {
		series, err := svc.HistoricalBalance(context.Background(), 1, "U1", days, testToday)
		require.NoError(t, err)
		assert.Len(t, series, 10, "bad window %d falls back to the default lookback", days)
	}
}

func TestGapDetection(t *testing.T) {
	assert.True(t, isGap(fmt.Errorf("wrap: %w", wsvc.ErrNotFound)))
	assert.True(t, isGap(fmt.Errorf("wrap: %w", psvc.ErrNotFound)))
	assert.True(t, isGap(gorm.ErrRecordNotFound))
	assert.False(t, isGap(errors.New("disk on fire")))
}
