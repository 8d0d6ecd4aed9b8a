package aprs

import "math"

// Unit conversions between the measurements a station reports and the
// units the APRS weather format requires. All of these are total for
// finite inputs.

func CelsiusToFahrenheit(c float64) float64 {
	return c*9.0/5.0 + 32
}

func InchesHgToHectopascals(p float64) float64 {
	return p * 33.8639
}

func MetersPerSecondToMph(v float64) float64 {
	return v * 2.23694
}

func KilometersPerHourToMph(v float64) float64 {
	return v * 0.621371
}

func MillimetersToInches(v float64) float64 {
	return v * 0.0393701
}

// CorrectPressureForElevation adjusts a station pressure reading in
// hPa to sea level for a station at the given elevation in meters.
// Stations at or below sea level report their pressure unadjusted.
func CorrectPressureForElevation(p, elevationMeters float64) float64 {
	if elevationMeters <= 0 {
		return p
	}
	return p * math.Pow(1.0+0.000084229*(elevationMeters/math.Pow(p, 0.19028)), 5.2553)
}

// PressureTenths scales a pressure in hPa to the integer tenths of hPa
// the APRS "b" field carries. The fraction is truncated, not rounded.
func PressureTenths(p float64) int64 {
	return int64(p * 10)
}
