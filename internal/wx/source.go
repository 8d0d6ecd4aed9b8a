// Package wx reads raw station measurement records and normalizes
// them into the units the APRS weather format requires.
package wx

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/filipsPL/aprs-is-wx/internal/aprs"
)

// Source reads one observation file per run. Two formats are
// supported: a JSON record with optional named fields and optional
// per-field unit tags, and the legacy three-line format (temperature
// °C, pressure hPa, humidity %).
type Source struct {
	path      string
	elevation float64
	logger    *zap.SugaredLogger
}

func NewSource(path string, elevationMeters float64, logger *zap.SugaredLogger) *Source {
	return &Source{
		path:      path,
		elevation: elevationMeters,
		logger:    logger,
	}
}

// Read loads and normalizes the observation. Missing fields stay
// absent end to end; they are never defaulted to zero.
func (s *Source) Read() (aprs.Observation, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return aprs.Observation{}, fmt.Errorf("reading observation file: %w", err)
	}

	if strings.HasSuffix(s.path, ".json") {
		return s.parseJSON(data)
	}
	return s.parseLines(data)
}

// measurement is a raw field value with an optional unit tag. It
// accepts either a bare number or a {"value": N, "unit": "..."} object.
type measurement struct {
	Value float64
	Unit  string
}

func (m *measurement) UnmarshalJSON(b []byte) error {
	trimmed := strings.TrimSpace(string(b))
	if strings.HasPrefix(trimmed, "{") {
		var obj struct {
			Value *float64 `json:"value"`
			Unit  string   `json:"unit"`
		}
		if err := json.Unmarshal(b, &obj); err != nil {
			return err
		}
		if obj.Value == nil {
			return errors.New("measurement object is missing a value")
		}
		m.Value = *obj.Value
		m.Unit = obj.Unit
		return nil
	}
	return json.Unmarshal(b, &m.Value)
}

func (s *Source) parseJSON(data []byte) (aprs.Observation, error) {
	var record struct {
		Temperature       *measurement `json:"temperature"`
		Pressure          *measurement `json:"pressure"`
		Humidity          *measurement `json:"humidity"`
		WindDirection     *measurement `json:"wind_direction"`
		WindSpeed         *measurement `json:"wind_speed"`
		WindGust          *measurement `json:"wind_gust"`
		RainSinceMidnight *measurement `json:"rain_since_midnight"`
	}

	if err := json.Unmarshal(data, &record); err != nil {
		return aprs.Observation{}, fmt.Errorf("parsing observation record: %w", err)
	}

	var obs aprs.Observation
	var err error

	if record.Temperature != nil {
		if obs.TemperatureF, err = temperatureF(*record.Temperature); err != nil {
			return aprs.Observation{}, err
		}
	}
	if record.Pressure != nil {
		if obs.PressureTenthsHPa, err = s.pressureTenths(*record.Pressure); err != nil {
			return aprs.Observation{}, err
		}
	}
	if record.Humidity != nil {
		obs.HumidityPct = aprs.Float(record.Humidity.Value)
	}
	if record.WindDirection != nil {
		obs.WindDirectionDeg = aprs.Int(int64(math.Round(record.WindDirection.Value)))
	}
	if record.WindSpeed != nil {
		if obs.WindSpeedMph, err = windMph(*record.WindSpeed); err != nil {
			return aprs.Observation{}, err
		}
	}
	if record.WindGust != nil {
		if obs.WindGustMph, err = windMph(*record.WindGust); err != nil {
			return aprs.Observation{}, err
		}
	}
	if record.RainSinceMidnight != nil {
		if obs.RainSinceMidnightIn, err = rainInches(*record.RainSinceMidnight); err != nil {
			return aprs.Observation{}, err
		}
	}

	s.logger.Debugf("read observation: %+v", obs)
	return obs, nil
}

// parseLines handles the legacy meteo.txt layout: one value per line,
// in fixed order, no unit tags.
func (s *Source) parseLines(data []byte) (aprs.Observation, error) {
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) < 3 {
		return aprs.Observation{}, fmt.Errorf("observation file has %d lines, want at least 3", len(lines))
	}

	temp, err := strconv.ParseFloat(strings.TrimSpace(lines[0]), 64)
	if err != nil {
		return aprs.Observation{}, fmt.Errorf("parsing temperature: %w", err)
	}
	pressure, err := strconv.ParseFloat(strings.TrimSpace(lines[1]), 64)
	if err != nil {
		return aprs.Observation{}, fmt.Errorf("parsing pressure: %w", err)
	}
	humidity, err := strconv.ParseFloat(strings.TrimSpace(lines[2]), 64)
	if err != nil {
		return aprs.Observation{}, fmt.Errorf("parsing humidity: %w", err)
	}

	obs := aprs.Observation{
		TemperatureF:      aprs.Float(aprs.CelsiusToFahrenheit(temp)),
		PressureTenthsHPa: aprs.Int(aprs.PressureTenths(aprs.CorrectPressureForElevation(pressure, s.elevation))),
		HumidityPct:       aprs.Float(humidity),
	}

	s.logger.Debugf("read observation: %+v", obs)
	return obs, nil
}

func temperatureF(m measurement) (aprs.Value, error) {
	switch m.Unit {
	case "", "C":
		return aprs.Float(aprs.CelsiusToFahrenheit(m.Value)), nil
	case "F":
		return aprs.Float(m.Value), nil
	default:
		return aprs.Absent, fmt.Errorf("unknown temperature unit %q", m.Unit)
	}
}

func (s *Source) pressureTenths(m measurement) (aprs.Value, error) {
	var hpa float64
	switch m.Unit {
	case "", "hPa":
		hpa = m.Value
	case "inHg":
		hpa = aprs.InchesHgToHectopascals(m.Value)
	default:
		return aprs.Absent, fmt.Errorf("unknown pressure unit %q", m.Unit)
	}
	return aprs.Int(aprs.PressureTenths(aprs.CorrectPressureForElevation(hpa, s.elevation))), nil
}

func windMph(m measurement) (aprs.Value, error) {
	switch m.Unit {
	case "", "mph":
		return aprs.Float(m.Value), nil
	case "m/s":
		return aprs.Float(aprs.MetersPerSecondToMph(m.Value)), nil
	case "km/h":
		return aprs.Float(aprs.KilometersPerHourToMph(m.Value)), nil
	default:
		return aprs.Absent, fmt.Errorf("unknown wind unit %q", m.Unit)
	}
}

func rainInches(m measurement) (aprs.Value, error) {
	switch m.Unit {
	case "", "in":
		return aprs.Float(m.Value), nil
	case "mm":
		return aprs.Float(aprs.MillimetersToInches(m.Value)), nil
	default:
		return aprs.Absent, fmt.Errorf("unknown rain unit %q", m.Unit)
	}
}
