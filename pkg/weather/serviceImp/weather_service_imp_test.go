package serviceImp

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"etflow/entities"
	"etflow/pkg/weather/nasapower"
	"etflow/pkg/weather/repositoryImp"
	"etflow/pkg/weather/service"
)

type fakeRemote struct {
	day   *nasapower.Day
	err   error
	calls int
}

func (f *fakeRemote) FetchDay(ctx context.Context, lat, lon float64, date time.Time) (*nasapower.Day, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.day, nil
}

type fixedMethod string

func (m fixedMethod) EtoMethod(uid string) (string, error) { return string(m), nil }

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.WeatherObservation{}))
	return db
}

func goodDay() *nasapower.Day {
	return &nasapower.Day{TempMax: 32, TempMin: 24, Humidity: 70, WindSpeed: 1.8, Radiation: 19.5}
}

func fp(v float64) *float64 { return &v }

func TestGetStrictMiss(t *testing.T) {
	svc := New(repositoryImp.New(testDB(t)), &fakeRemote{}, fixedMethod("PENMAN"))

	_, err := svc.GetStrict("U1", "2026-08-10")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.Contains(t, err.Error(), "2026-08-10")
}

func TestGetHybridReadThrough(t *testing.T) {
	remote := &fakeRemote{day: goodDay()}
	svc := New(repositoryImp.New(testDB(t)), remote, fixedMethod("PENMAN"))
	coords := service.Coordinates{Latitude: 13.75, Longitude: 100.5, Elevation: 4}

	o, err := svc.GetHybrid(context.Background(), "U1", "2026-08-10", coords)
	require.NoError(t, err)
	assert.Equal(t, "nasa_power", o.Source)
	assert.Equal(t, "PENMAN", o.Method)
	assert.Greater(t, o.ETo, 0.0)
	assert.Equal(t, 1, remote.calls)

	// second read must come from the store
	again, err := svc.GetHybrid(context.Background(), "U1", "2026-08-10", coords)
	require.NoError(t, err)
	assert.Equal(t, o.WeatherID, again.WeatherID)
	assert.Equal(t, 1, remote.calls)
}

func TestGetHybridRemoteNotAvailable(t *testing.T) {
	remote := &fakeRemote{err: nasapower.ErrNotAvailable}
	svc := New(repositoryImp.New(testDB(t)), remote, fixedMethod("PENMAN"))

	_, err := svc.GetHybrid(context.Background(), "U1", "2026-08-10", service.Coordinates{})
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNotFound, "not-yet-published data reads as a gap")
}

func TestGetHybridTransportFailure(t *testing.T) {
	remote := &fakeRemote{err: errors.New("connection reset")}
	svc := New(repositoryImp.New(testDB(t)), remote, fixedMethod("PENMAN"))

	_, err := svc.GetHybrid(context.Background(), "U1", "2026-08-10", service.Coordinates{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrNotFound)
	assert.Contains(t, err.Error(), "upstream failure")
}

func TestSaveManualDerivesEToAndPins(t *testing.T) {
	db := testDB(t)
	svc := New(repositoryImp.New(db), &fakeRemote{day: goodDay()}, fixedMethod("HARGREAVES"))

	o := &entities.WeatherObservation{
		UserID: "U1", Date: "2026-08-10",
		Latitude: 13.75, Longitude: 100.5,
		TempMax: 33, TempMin: 25, Humidity: 65, WindSpeed: 2, Radiation: 20,
	}
	require.NoError(t, svc.SaveManual(o, nil))
	assert.True(t, o.ManualOverride)
	assert.Equal(t, "manual", o.Source)
	assert.Greater(t, o.ETo, 0.0)
	assert.Equal(t, "HARGREAVES", o.Method)
}

func TestManualOverrideSurvivesHybridRefresh(t *testing.T) {
	db := testDB(t)
	remote := &fakeRemote{day: goodDay()}
	svc := New(repositoryImp.New(db), remote, fixedMethod("HARGREAVES"))

	manual := &entities.WeatherObservation{
		UserID: "U1", Date: "2026-08-10",
		TempMax: 40, TempMin: 30, Latitude: 13.75, Method: "PENMAN",
	}
	require.NoError(t, svc.SaveManual(manual, fp(9.99)))

	// wipe the row's pin path: a hybrid read hits the store first and never
	// reaches the remote
	o, err := svc.GetHybrid(context.Background(), "U1", "2026-08-10", service.Coordinates{})
	require.NoError(t, err)
	assert.Equal(t, 9.99, o.ETo)
	assert.Equal(t, 0, remote.calls)
}

func TestUpsertLeavesPinnedRowAlone(t *testing.T) {
	db := testDB(t)
	repo := repositoryImp.New(db)
	svc := New(repo, &fakeRemote{day: goodDay()}, fixedMethod("HARGREAVES"))

	manual := &entities.WeatherObservation{
		UserID: "U1", Date: "2026-08-10",
		TempMax: 40, TempMin: 30, Latitude: 13.75,
	}
	require.NoError(t, svc.SaveManual(manual, fp(9.99)))

	// a direct automated upsert must return the pinned row untouched
	got, err := repo.Upsert(&entities.WeatherObservation{
		UserID: "U1", Date: "2026-08-10", TempMax: 31, TempMin: 22, ETo: 4.5, Source: "nasa_power",
	})
	require.NoError(t, err)
	assert.Equal(t, 9.99, got.ETo)
	assert.True(t, got.ManualOverride)
}

func TestSaveManualKeepsExplicitETo(t *testing.T) {
	svc := New(repositoryImp.New(testDB(t)), &fakeRemote{}, fixedMethod("PENMAN"))

	o := &entities.WeatherObservation{UserID: "U1", Date: "2026-08-10", Method: "PENMAN", TempMax: 30, TempMin: 22}
	require.NoError(t, svc.SaveManual(o, fp(5.5)))
	assert.Equal(t, 5.5, o.ETo)
}

func TestSaveManualKeepsExplicitZeroETo(t *testing.T) {
	db := testDB(t)
	svc := New(repositoryImp.New(db), &fakeRemote{}, fixedMethod("PENMAN"))

	// a frost-capped day can legitimately evaporate nothing; an explicit 0
	// must be stored as 0, not rederived
	o := &entities.WeatherObservation{UserID: "U1", Date: "2026-08-10", Method: "PENMAN", TempMax: 1, TempMin: -4}
	require.NoError(t, svc.SaveManual(o, fp(0)))
	assert.Equal(t, 0.0, o.ETo)

	got, err := repositoryImp.New(db).FindByUserAndDate("U1", "2026-08-10")
	require.NoError(t, err)
	assert.Equal(t, 0.0, got.ETo)
	assert.Equal(t, "PENMAN", got.Method)
}
