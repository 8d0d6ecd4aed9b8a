package aprs

import (
	"math"
	"testing"
)

func TestTemperatureConversion(t *testing.T) {
	tests := []struct {
		name     string
		celsius  float64
		expected float64
	}{
		{"freezing point", 0, 32},
		{"boiling point", 100, 212},
		{"room temperature", 20, 68},
		{"below zero", -40, -40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CelsiusToFahrenheit(tt.celsius)
			if math.Abs(got-tt.expected) > 0.001 {
				t.Errorf("CelsiusToFahrenheit(%v) = %v, want %v", tt.celsius, got, tt.expected)
			}
		})
	}
}

func TestWindConversion(t *testing.T) {
	if got := KilometersPerHourToMph(100); math.Abs(got-62.14) > 0.01 {
		t.Errorf("KilometersPerHourToMph(100) = %v, want 62.14 ±0.01", got)
	}
	if got := MetersPerSecondToMph(10); math.Abs(got-22.3694) > 0.001 {
		t.Errorf("MetersPerSecondToMph(10) = %v, want 22.3694", got)
	}
}

func TestRainConversion(t *testing.T) {
	if got := MillimetersToInches(25.4); math.Abs(got-1.0) > 0.001 {
		t.Errorf("MillimetersToInches(25.4) = %v, want 1.0", got)
	}
}

func TestPressureConversion(t *testing.T) {
	if got := InchesHgToHectopascals(29.92); math.Abs(got-1013.21) > 0.01 {
		t.Errorf("InchesHgToHectopascals(29.92) = %v, want 1013.21 ±0.01", got)
	}
}

func TestCorrectPressureForElevation(t *testing.T) {
	// Stations at or below sea level report unadjusted pressure.
	if got := CorrectPressureForElevation(1000, 0); got != 1000 {
		t.Errorf("CorrectPressureForElevation(1000, 0) = %v, want 1000", got)
	}
	if got := CorrectPressureForElevation(1000, -10); got != 1000 {
		t.Errorf("CorrectPressureForElevation(1000, -10) = %v, want 1000", got)
	}

	// A station 200m up reports about 24 hPa higher at sea level.
	got := CorrectPressureForElevation(1013, 200)
	if math.Abs(got-1037.26) > 0.05 {
		t.Errorf("CorrectPressureForElevation(1013, 200) = %v, want 1037.26 ±0.05", got)
	}
}

func TestPressureTenthsTruncates(t *testing.T) {
	tests := []struct {
		pressure float64
		expected int64
	}{
		{1013.29, 10132},
		{999.99, 9999},
		{1037.264, 10372},
	}

	for _, tt := range tests {
		if got := PressureTenths(tt.pressure); got != tt.expected {
			t.Errorf("PressureTenths(%v) = %d, want %d", tt.pressure, got, tt.expected)
		}
	}
}
