package serviceImp

import (
	"context"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"etflow/entities"
	"etflow/pkg/precip/chirps"
	"etflow/pkg/precip/repositoryImp"
	"etflow/pkg/precip/service"
)

type fakeRemote struct {
	mm    float64
	err   error
	calls int
}

func (f *fakeRemote) FetchDay(ctx context.Context, lat, lon float64, date time.Time) (float64, error) {
	f.calls++
	return f.mm, f.err
}

type fixedMethod string

func (m fixedMethod) RainfallMethod(uid string) (string, error) { return string(m), nil }

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Station{}, &entities.PrecipitationObservation{}))
	return db
}

func testStation() *entities.Station {
	return &entities.Station{StationID: 1, UserID: "U1", Latitude: 13.75, Longitude: 100.5}
}

func TestGetStrictMiss(t *testing.T) {
	svc := New(repositoryImp.NewPrecip(testDB(t)), &fakeRemote{}, fixedMethod("USDA"))

	_, err := svc.GetStrict(testStation(), "2026-08-10")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.Contains(t, err.Error(), "2026-08-10")
}

func TestGetHybridFetchesAndDerivesEffective(t *testing.T) {
	remote := &fakeRemote{mm: 100}
	svc := New(repositoryImp.NewPrecip(testDB(t)), remote, fixedMethod("USDA"))

	o, err := svc.GetHybrid(context.Background(), testStation(), "2026-08-10")
	require.NoError(t, err)
	assert.Equal(t, 100.0, o.GrossMM)
	assert.InDelta(t, 84.0, o.EffectiveMM, 1e-9)
	assert.Equal(t, "chirps", o.Source)

	again, err := svc.GetHybrid(context.Background(), testStation(), "2026-08-10")
	require.NoError(t, err)
	assert.Equal(t, o.PrecipID, again.PrecipID)
	assert.Equal(t, 1, remote.calls, "second read hits the store")
}

func TestGetHybridRemoteNotAvailable(t *testing.T) {
	remote := &fakeRemote{err: chirps.ErrNotAvailable}
	svc := New(repositoryImp.NewPrecip(testDB(t)), remote, fixedMethod("USDA"))

	_, err := svc.GetHybrid(context.Background(), testStation(), "2026-08-10")
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestSaveManual(t *testing.T) {
	svc := New(repositoryImp.NewPrecip(testDB(t)), &fakeRemote{}, fixedMethod("FIXED_PERCENTAGE"))

	o := &entities.PrecipitationObservation{StationID: 1, Date: "2026-08-10", GrossMM: 50}
	require.NoError(t, svc.SaveManual(o, "U1"))
	assert.Equal(t, "manual", o.Source)
	assert.InDelta(t, 40.0, o.EffectiveMM, 1e-9)
}

func TestSaveManualRequiresDate(t *testing.T) {
	svc := New(repositoryImp.NewPrecip(testDB(t)), &fakeRemote{}, fixedMethod("USDA"))
	err := svc.SaveManual(&entities.PrecipitationObservation{StationID: 1, GrossMM: 5}, "U1")
	require.Error(t, err)
}
