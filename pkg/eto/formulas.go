package eto

import (
	"errors"
	"fmt"
	"math"
)

// Every formula is a pure function returning mm/day, clamped at 0 and rounded
// to two decimals. Preconditions (presence and ranges) are checked by
// Compute/Validate, not inside the formula bodies.

// Compute dispatches to the formula for m after validating its inputs. A NaN
// or infinite result is surfaced as an error, never masked as zero.
func Compute(m Method, in Inputs) (float64, error) {
	if err := Validate(m, in); err != nil {
		return 0, err
	}
	var v float64
	switch m {
	case Penman:
		v = PenmanMonteith(*in.TempMax, *in.TempMin, *in.Humidity, *in.WindSpeed, *in.Radiation, *in.Latitude, *in.DayOfYear, *in.Elevation)
	case Hargreaves:
		v = HargreavesSamani(*in.TempMax, *in.TempMin, *in.TempAvg, *in.Latitude, *in.DayOfYear)
	case Turc:
		v = TurcFormula(*in.TempAvg, *in.Humidity, *in.Radiation)
	case Makkink:
		v = MakkinkFormula(*in.TempAvg, *in.Radiation, *in.Elevation)
	case MakkinkAbstew:
		v = MakkinkAbstewFormula(*in.TempAvg, *in.Radiation, *in.Elevation)
	case PriestleyTaylor:
		v = PriestleyTaylorFormula(*in.TempAvg, *in.Radiation, *in.Elevation)
	case Ivanov:
		v = IvanovFormula(*in.TempAvg, *in.Humidity)
	case Christiansen:
		v = ChristiansenFormula(*in.TempMax, *in.TempMin, *in.Humidity, *in.WindSpeed, *in.Radiation, *in.Latitude, *in.DayOfYear, *in.Elevation)
	case SimpleAbstew:
		v = SimpleAbstewFormula(*in.TempMax, *in.TempMin, *in.Radiation)
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("eto %s: non-finite result", m)
	}
	return v, nil
}

// ComputeWithFallback walks an explicit method list and returns the first
// result whose inputs are satisfied, along with the method that produced it.
// Only missing-input failures advance the chain; range violations and
// computation errors stop it.
func ComputeWithFallback(chain []Method, in Inputs) (float64, Method, error) {
	var lastErr error
	for _, m := range chain {
		v, err := Compute(m, in)
		if err == nil {
			return v, m, nil
		}
		if !errors.Is(err, ErrMissingInput) {
			return 0, 0, err
		}
		lastErr = err
	}
	return 0, 0, lastErr
}

// PenmanMonteith is the FAO-56 reference equation with the full net-radiation
// balance (shortwave at albedo 0.23 plus Stefan-Boltzmann longwave with
// cloudiness correction). G is zero for daily steps.
func PenmanMonteith(tmax, tmin, humidity, windSpeed, radiation, latitude float64, dayOfYear int, elevation float64) float64 {
	tavg := (tmax + tmin) / 2

	gamma := psychrometricConstant(elevation)
	delta := vaporPressureSlope(tavg)

	es := (saturationVaporPressure(tmax) + saturationVaporPressure(tmin)) / 2
	ea := es * humidity / 100

	ra := extraterrestrialRadiation(latitude, dayOfYear)
	rn := netRadiation(radiation, ra, elevation, tmax, tmin, ea)

	termRad := 0.408 * delta * rn
	termAero := gamma * (900 / (tavg + 273)) * windSpeed * (es - ea)
	etoVal := (termRad + termAero) / (delta + gamma*(1+0.34*windSpeed))

	return round2(clampNonNegative(etoVal))
}

// HargreavesSamani (1985) needs only temperatures and location. The 0.408
// factor converts Ra from MJ/m2/day to mm/day equivalent; without it the
// result is off by a factor of ~2.45.
func HargreavesSamani(tmax, tmin, tavg, latitude float64, dayOfYear int) float64 {
	ra := extraterrestrialRadiation(latitude, dayOfYear)
	etoVal := 0.0023 * (tavg + 17.8) * math.Sqrt(tmax-tmin) * ra * 0.408
	return round2(clampNonNegative(etoVal))
}

// TurcFormula applies the dryness correction only below 50% humidity.
func TurcFormula(tavg, humidity, radiation float64) float64 {
	etoVal := 0.013 * (tavg / (tavg + 15)) * (23.8856*radiation + 50)
	if humidity < 50 {
		etoVal *= 1 + (50-humidity)/70
	}
	return round2(clampNonNegative(etoVal))
}

// MakkinkFormula (1957), radiation driven.
func MakkinkFormula(tavg, radiation, elevation float64) float64 {
	gamma := psychrometricConstant(elevation)
	delta := vaporPressureSlope(tavg)
	etoVal := 0.61*(delta/(delta+gamma))*(radiation/latentHeat) - 0.12
	return round2(clampNonNegative(etoVal))
}

// MakkinkAbstewFormula is Makkink with Abstew's calibrated coefficients.
func MakkinkAbstewFormula(tavg, radiation, elevation float64) float64 {
	gamma := psychrometricConstant(elevation)
	delta := vaporPressureSlope(tavg)
	etoVal := 0.65*(delta/(delta+gamma))*(radiation/latentHeat) - 0.05
	return round2(clampNonNegative(etoVal))
}

// PriestleyTaylorFormula approximates net radiation as 0.77*Rs.
func PriestleyTaylorFormula(tavg, radiation, elevation float64) float64 {
	gamma := psychrometricConstant(elevation)
	delta := vaporPressureSlope(tavg)
	rn := 0.77 * radiation
	etoVal := 1.26 * (delta / (delta + gamma)) * (rn / latentHeat)
	return round2(clampNonNegative(etoVal))
}

// SimpleAbstewFormula (1996), from temperatures and radiation only.
func SimpleAbstewFormula(tmax, tmin, radiation float64) float64 {
	tavg := (tmax + tmin) / 2
	etoVal := 0.0031 * (tavg + 17.8) * math.Sqrt(tmax-tmin) * radiation / latentHeat
	return round2(clampNonNegative(etoVal))
}

// IvanovFormula (1954). Returns 0 at or below freezing.
func IvanovFormula(tavg, humidity float64) float64 {
	if tavg <= 0 {
		return 0
	}
	etoVal := 0.0018 * math.Pow(tavg+25, 2) * (100 - humidity) / 100
	return round2(clampNonNegative(etoVal))
}

// ChristiansenFormula combines a normalized radiation term with a wind/VPD
// term at fixed 0.37/0.63 weights, scaled by delta/(delta+gamma).
func ChristiansenFormula(tmax, tmin, humidity, windSpeed, radiation, latitude float64, dayOfYear int, elevation float64) float64 {
	tavg := (tmax + tmin) / 2

	gamma := psychrometricConstant(elevation)
	delta := vaporPressureSlope(tavg)

	es := saturationVaporPressure(tavg)
	ea := es * humidity / 100
	vpd := es - ea

	radiationFactor := radiation / 15.39
	windFactor := 0.27 * (1 + windSpeed/3.0)
	tempFactor := (tavg + 17.8) / 21.1

	etoVal := (0.37*radiationFactor*tempFactor + 0.63*windFactor*vpd) * (delta / (delta + gamma))
	return round2(clampNonNegative(etoVal))
}
