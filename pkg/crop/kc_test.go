package crop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var maize = Stages{
	KcIni: 0.3, KcMid: 1.2, KcEnd: 0.6,
	InitialDays: 20, DevDays: 30, MidDays: 40, LateDays: 30,
}

func TestKcStages(t *testing.T) {
	assert.Equal(t, 0.3, maize.Kc(0))
	assert.Equal(t, 0.3, maize.Kc(20))

	// midpoint of development
	assert.InDelta(t, 0.75, maize.Kc(35), 1e-9)
	assert.InDelta(t, 1.2, maize.Kc(50), 1e-9)

	assert.Equal(t, 1.2, maize.Kc(70))
	assert.Equal(t, 1.2, maize.Kc(90))

	assert.Equal(t, 0.6, maize.Kc(91))
	assert.Equal(t, 0.6, maize.Kc(500))
}

func TestKcZeroDevDays(t *testing.T) {
	s := maize
	s.DevDays = 0
	assert.Equal(t, 1.2, s.Kc(21))
}

func TestSeasonDays(t *testing.T) {
	assert.Equal(t, 120, maize.SeasonDays())
}
