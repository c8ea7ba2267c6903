package eto

import (
	"errors"
	"fmt"
	"strings"
)

// Method is the closed set of supported reference-evapotranspiration
// formulas. Selecting by key goes through ParseMethod so an unsupported name
// fails at construction time, not inside a simulation loop.
type Method int

const (
	Penman Method = iota
	Hargreaves
	Turc
	Makkink
	MakkinkAbstew
	PriestleyTaylor
	Ivanov
	Christiansen
	SimpleAbstew
)

var methodKeys = map[Method]string{
	Penman:          "PENMAN",
	Hargreaves:      "HARGREAVES",
	Turc:            "TURC",
	Makkink:         "MAKKINK",
	MakkinkAbstew:   "MAKKINK_ABSTEW",
	PriestleyTaylor: "PRIESTLEY",
	Ivanov:          "IVANOV",
	Christiansen:    "CHRISTIANSEN",
	SimpleAbstew:    "SIMPLE_ABSTEW",
}

var methodLabels = map[Method]string{
	Penman:          "Penman-Monteith (FAO-56)",
	Hargreaves:      "Hargreaves-Samani",
	Turc:            "Turc (humid zones)",
	Makkink:         "Makkink (radiation)",
	MakkinkAbstew:   "Makkink-Abstew (calibrated)",
	PriestleyTaylor: "Priestley-Taylor (no wind)",
	Ivanov:          "Ivanov (humidity and temperature)",
	Christiansen:    "Christiansen (full data)",
	SimpleAbstew:    "Simple Abstew",
}

var ErrUnknownMethod = errors.New("unknown eto method")

func (m Method) String() string { return methodKeys[m] }

func (m Method) Label() string { return methodLabels[m] }

// Methods returns every supported method in a stable order.
func Methods() []Method {
	return []Method{Penman, Hargreaves, Turc, Makkink, MakkinkAbstew, PriestleyTaylor, Ivanov, Christiansen, SimpleAbstew}
}

func ParseMethod(key string) (Method, error) {
	k := strings.ToUpper(strings.TrimSpace(key))
	for m, mk := range methodKeys {
		if mk == k {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, key)
}

// FallbackChain lists the methods to try in order when the preferred one is
// missing inputs. Hargreaves closes the chain because it only needs
// temperatures and location, which every acquired observation carries.
func FallbackChain(preferred Method) []Method {
	if preferred == Hargreaves {
		return []Method{Hargreaves}
	}
	return []Method{preferred, Hargreaves}
}
