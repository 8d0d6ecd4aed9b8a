package aprs

import (
	"strings"
	"testing"
	"time"
)

var testStation = Station{
	Latitude:  52.25,
	Longitude: 21.0,
	Symbol:    '#',
}

var testTime = time.Date(2026, time.March, 9, 12, 34, 0, 0, time.UTC)

func TestEncodePacketAllFieldsAbsent(t *testing.T) {
	got := EncodePacket(testStation, Observation{}, testTime)

	expected := "@091234z5215.00N/02100.00E_.../...g...t...P...h..b.....#"
	if got != expected {
		t.Errorf("EncodePacket() = %q, want %q", got, expected)
	}
}

func TestEncodePacketEndToEnd(t *testing.T) {
	// A station at 200m elevation reading 20°C, 1013 hPa, 65% humidity.
	obs := Observation{
		TemperatureF:      Float(CelsiusToFahrenheit(20)),
		PressureTenthsHPa: Int(PressureTenths(CorrectPressureForElevation(1013, 200))),
		HumidityPct:       Float(65),
	}

	got := EncodePacket(testStation, obs, testTime)

	expected := "@091234z5215.00N/02100.00E_.../...g...t068P...h65b10372#"
	if got != expected {
		t.Errorf("EncodePacket() = %q, want %q", got, expected)
	}
}

func TestEncodePacketConstantLength(t *testing.T) {
	observations := []Observation{
		{},
		{TemperatureF: Float(68)},
		{
			WindDirectionDeg:    Int(270),
			WindSpeedMph:        Float(5.2),
			WindGustMph:         Float(9.8),
			TemperatureF:        Float(68),
			RainSinceMidnightIn: Float(0.12),
			HumidityPct:         Float(65),
			PressureTenthsHPa:   Int(10132),
		},
		{HumidityPct: Float(100)},
	}

	want := len(EncodePacket(testStation, Observation{}, testTime))
	for i, obs := range observations {
		got := EncodePacket(testStation, obs, testTime)
		if len(got) != want {
			t.Errorf("observation %d: packet %q is %d bytes, want %d", i, got, len(got), want)
		}
	}
}

func TestEncodePacketHumidityWrap(t *testing.T) {
	obs := Observation{HumidityPct: Float(100)}
	got := EncodePacket(testStation, obs, testTime)

	if !strings.Contains(got, "h00b") {
		t.Errorf("packet %q should carry 100%% humidity as h00", got)
	}
}

func TestEncodePacketTimestampIsZulu(t *testing.T) {
	// 00:30 in UTC+2 is 22:30 zulu, still the previous day.
	warsaw := time.FixedZone("CEST", 2*60*60)
	local := time.Date(2026, time.June, 10, 0, 30, 0, 0, warsaw)

	got := EncodePacket(testStation, Observation{}, local)
	if !strings.HasPrefix(got, "@092230z") {
		t.Errorf("packet %q should start with @092230z", got)
	}
}

func TestEncodePacketFieldRoundTrip(t *testing.T) {
	obs := Observation{
		WindDirectionDeg:  Int(180),
		WindSpeedMph:      Float(4.6),
		TemperatureF:      Float(67.6),
		HumidityPct:       Float(65),
		PressureTenthsHPa: Int(10132),
	}

	got := EncodePacket(testStation, obs, testTime)

	// Fixed positions after "@DDHHMMz" (8) + lat (8) + "/" + lon (9) + "_"
	fields := got[27:]
	checks := []struct {
		name     string
		substr   string
		expected string
	}{
		{"wind direction", fields[0:3], "180"},
		{"wind speed", fields[4:7], "005"},
		{"gust placeholder", fields[8:11], "..."},
		{"temperature", fields[12:15], "068"},
		{"rain placeholder", fields[16:19], "..."},
		{"humidity", fields[20:22], "65"},
		{"pressure", fields[23:28], "10132"},
	}

	for _, c := range checks {
		if c.substr != c.expected {
			t.Errorf("%s field = %q, want %q (packet %q)", c.name, c.substr, c.expected, got)
		}
	}
}
