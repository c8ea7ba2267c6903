// Package rainfall converts gross daily precipitation into the fraction the
// root zone can actually use.
package rainfall

import (
	"errors"
	"fmt"
	"strings"
)

type Method int

const (
	// USDA is the Soil Conservation Service curve: losses to runoff and deep
	// percolation grow with rainfall intensity, flattening above 250 mm.
	USDA Method = iota
	// FixedPercentage keeps a flat 80% of gross.
	FixedPercentage
	// Dependable is the conservative 75% fallback.
	Dependable
)

var methodKeys = map[Method]string{
	USDA:            "USDA",
	FixedPercentage: "FIXED_PERCENTAGE",
	Dependable:      "DEPENDABLE",
}

var ErrUnknownMethod = errors.New("unknown rainfall method")

func (m Method) String() string { return methodKeys[m] }

func ParseMethod(key string) (Method, error) {
	k := strings.ToUpper(strings.TrimSpace(key))
	for m, mk := range methodKeys {
		if mk == k {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, key)
}

// Effective maps gross precipitation (mm) to plant-available precipitation.
// The result is never negative and never exceeds the gross value.
func Effective(m Method, gross float64) float64 {
	if gross <= 0 {
		return 0
	}
	var eff float64
	switch m {
	case USDA:
		if gross < 250 {
			eff = gross * (125 - 0.2*gross) / 125
		} else {
			eff = 125 + 0.1*gross
		}
	case FixedPercentage:
		eff = 0.80 * gross
	default:
		eff = 0.75 * gross
	}
	if eff < 0 {
		return 0
	}
	if eff > gross {
		return gross
	}
	return eff
}
