package rainfall

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUSDAValues(t *testing.T) {
	assert.Equal(t, 0.0, Effective(USDA, 0))
	assert.InDelta(t, 9.84, Effective(USDA, 10), 1e-9)
	assert.InDelta(t, 84.0, Effective(USDA, 100), 1e-9)
	assert.InDelta(t, 155.0, Effective(USDA, 300), 1e-9)
}

func TestUSDAContinuousAtBranchPoint(t *testing.T) {
	below := Effective(USDA, 249.999)
	at := Effective(USDA, 250)
	assert.InDelta(t, 150.0, at, 1e-9)
	assert.InDelta(t, at, below, 0.01)
}

func TestEffectiveNeverExceedsGross(t *testing.T) {
	for _, m := range []Method{USDA, FixedPercentage, Dependable} {
		for _, gross := range []float64{0, 0.5, 5, 25, 125, 250, 400} {
			eff := Effective(m, gross)
			assert.GreaterOrEqual(t, eff, 0.0, "%s gross=%v", m, gross)
			assert.LessOrEqual(t, eff, gross, "%s gross=%v", m, gross)
		}
	}
}

func TestFixedAndDependable(t *testing.T) {
	assert.InDelta(t, 80.0, Effective(FixedPercentage, 100), 1e-9)
	assert.InDelta(t, 75.0, Effective(Dependable, 100), 1e-9)
}

func TestNegativeGrossIsZero(t *testing.T) {
	assert.Equal(t, 0.0, Effective(USDA, -3))
}

func TestParseMethod(t *testing.T) {
	m, err := ParseMethod("usda")
	require.NoError(t, err)
	assert.Equal(t, USDA, m)

	_, err = ParseMethod("CROPWAT")
	assert.ErrorIs(t, err, ErrUnknownMethod)
}
