package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"etflow/pkg/soil"
)

// default profile: FC 180 mm, WP 86.4 mm, TAW 93.6 mm, critical 133.2 mm
func defLimits() soil.Limits { return soil.LimitsFromProfile(nil) }

func TestSimulateDailyBalance(t *testing.T) {
	l := defLimits()
	days := []DayInput{
		{Date: "2026-08-01", ETo: 5, Kc: 1},
		{Date: "2026-08-02", ETo: 5, Kc: 1, EffRainMM: 100},
		{Date: "2026-08-03", ETo: 4, Kc: 0.5, NetIrrigation: 2},
	}

	states, err := Simulate(l, days)
	require.NoError(t, err)
	require.Len(t, states, 3)

	assert.InDelta(t, 175.0, states[0].TankMM, 1e-9)
	assert.Equal(t, 0.0, states[0].DrainageMM)

	// 175 - 5 + 100 = 270, clamped to field capacity
	assert.InDelta(t, 180.0, states[1].TankMM, 1e-9)
	assert.InDelta(t, 90.0, states[1].DrainageMM, 1e-9)

	assert.InDelta(t, 2.0, states[2].ETc, 1e-9)
	assert.InDelta(t, 180.0, states[2].TankMM, 1e-9)
	assert.Equal(t, 0.0, states[2].DrainageMM)
}

func TestSimulateClampsAtWiltingPoint(t *testing.T) {
	l := defLimits()
	states, err := Simulate(l, []DayInput{{Date: "2026-08-01", ETo: 200, Kc: 1}})
	require.NoError(t, err)
	assert.InDelta(t, l.WiltingPointMM, states[0].TankMM, 1e-9)
	assert.Equal(t, 0.0, states[0].DrainageMM)
}

func TestSimulateRejectsNonFinite(t *testing.T) {
	_, err := Simulate(defLimits(), []DayInput{{Date: "2026-08-01", ETo: math.NaN(), Kc: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2026-08-01")
}

func TestSimulateDeterministic(t *testing.T) {
	l := defLimits()
	days := []DayInput{
		{Date: "2026-08-01", ETo: 6, Kc: 1.1, EffRainMM: 3},
		{Date: "2026-08-02", ETo: 5.5, Kc: 1.1},
	}
	a, err := Simulate(l, days)
	require.NoError(t, err)
	b, err := Simulate(l, days)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDecideWaterStress(t *testing.T) {
	l := defLimits()
	status, depletion, rec := Decide(l, 100, 0.9, 2)

	assert.Equal(t, StatusWaterStress, status)
	assert.InDelta(t, 85.47, depletion, 0.01)
	assert.InDelta(t, 80.0, rec.NetMM, 1e-9)
	assert.InDelta(t, 88.89, rec.GrossMM, 1e-9)
	assert.InDelta(t, 1777.78, rec.VolumeM3, 1e-9)
	assert.InDelta(t, 1777777.78, rec.VolumeLiters, 1e-9)
	assert.Contains(t, rec.Message, "critical")
}

func TestDecideSlightDeficitInsideDeadBand(t *testing.T) {
	l := defLimits()
	status, _, rec := Decide(l, 178, 0.9, 2)

	assert.Equal(t, StatusSlightDeficit, status)
	assert.Equal(t, 0.0, rec.NetMM)
	assert.Equal(t, 0.0, rec.GrossMM)
}

func TestDecideOptionalTopUp(t *testing.T) {
	l := defLimits()
	status, _, rec := Decide(l, 140, 0.9, 1)

	assert.Equal(t, StatusNormal, status)
	assert.InDelta(t, 40.0, rec.NetMM, 1e-9)
	assert.InDelta(t, 44.44, rec.GrossMM, 1e-9)
	assert.InDelta(t, 444.44, rec.VolumeM3, 1e-9)
}

func TestDecideSaturated(t *testing.T) {
	l := defLimits()
	status, depletion, rec := Decide(l, l.FieldCapacityMM, 0.9, 1)

	assert.Equal(t, StatusSaturated, status)
	assert.Equal(t, 0.0, depletion)
	assert.Equal(t, 0.0, rec.NetMM)
}

func TestDecideEfficiencyFloor(t *testing.T) {
	l := defLimits()
	_, _, rec := Decide(l, 100, 0.01, 1)
	// floor at 0.1 keeps gross bounded
	assert.InDelta(t, 800.0, rec.GrossMM, 1e-9)
}
