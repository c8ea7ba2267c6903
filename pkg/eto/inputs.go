package eto

import (
	"errors"
	"fmt"
	"strings"
)

// Inputs is the pool of daily meteorological scalars a formula may draw from.
// Fields are pointers so "absent" is distinguishable from a legitimate zero;
// each method declares which fields it requires and validation rejects a call
// that leaves one of them nil. Radiation is MJ/m2/day, wind is m/s at 2 m,
// temperatures are degrees C.
type Inputs struct {
	TempMax   *float64
	TempMin   *float64
	TempAvg   *float64
	Humidity  *float64
	WindSpeed *float64
	Radiation *float64
	Latitude  *float64
	DayOfYear *int
	Elevation *float64
}

// ErrInvalidInput marks precondition failures: missing required fields or
// out-of-range values. Formulas never silently default around them.
var ErrInvalidInput = errors.New("invalid formula input")

// ErrMissingInput is the subset of ErrInvalidInput that a fallback chain may
// recover from. Out-of-range values are corrupt data and never fall back.
var ErrMissingInput = fmt.Errorf("%w: missing required field", ErrInvalidInput)

var requirements = map[Method][]string{
	Penman:          {"temp_max", "temp_min", "humidity", "wind_speed", "radiation", "latitude", "day_of_year", "elevation"},
	Hargreaves:      {"temp_max", "temp_min", "temp_avg", "latitude", "day_of_year"},
	Turc:            {"temp_avg", "humidity", "radiation"},
	Makkink:         {"temp_avg", "radiation", "elevation"},
	MakkinkAbstew:   {"temp_avg", "radiation", "elevation"},
	PriestleyTaylor: {"temp_avg", "radiation", "elevation"},
	Ivanov:          {"temp_avg", "humidity"},
	Christiansen:    {"temp_max", "temp_min", "humidity", "wind_speed", "radiation", "latitude", "day_of_year", "elevation"},
	SimpleAbstew:    {"temp_max", "temp_min", "radiation"},
}

// Requirements reports the named inputs a method needs.
func Requirements(m Method) []string {
	req := requirements[m]
	out := make([]string, len(req))
	copy(out, req)
	return out
}

func (in Inputs) has(field string) bool {
	switch field {
	case "temp_max":
		return in.TempMax != nil
	case "temp_min":
		return in.TempMin != nil
	case "temp_avg":
		return in.TempAvg != nil
	case "humidity":
		return in.Humidity != nil
	case "wind_speed":
		return in.WindSpeed != nil
	case "radiation":
		return in.Radiation != nil
	case "latitude":
		return in.Latitude != nil
	case "day_of_year":
		return in.DayOfYear != nil
	case "elevation":
		return in.Elevation != nil
	}
	return false
}

// Validate checks that every required field for m is present and in range.
func Validate(m Method, in Inputs) error {
	var missing []string
	for _, f := range requirements[m] {
		if !in.has(f) {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s needs %s", ErrMissingInput, m, strings.Join(missing, ", "))
	}
	if in.Humidity != nil && (*in.Humidity < 0 || *in.Humidity > 100) {
		return fmt.Errorf("%w: humidity %.1f outside [0,100]", ErrInvalidInput, *in.Humidity)
	}
	if in.WindSpeed != nil && *in.WindSpeed < 0 {
		return fmt.Errorf("%w: negative wind speed %.2f", ErrInvalidInput, *in.WindSpeed)
	}
	if m == Ivanov && *in.TempAvg <= -25 {
		return fmt.Errorf("%w: temperature too low for Ivanov", ErrInvalidInput)
	}
	return nil
}
