package config

import (
	"os"

	"github.com/pelletier/go-toml/v2"
)

// TOMLProvider implements ConfigProvider for TOML configuration files.
// The original tool shipped with an INI file; TOML keeps that shape.
type TOMLProvider struct {
	filename string
}

// NewTOMLProvider creates a new TOML configuration provider
func NewTOMLProvider(filename string) *TOMLProvider {
	return &TOMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from TOML file
func (p *TOMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(p.filename)
	if err != nil {
		return nil, err
	}

	var tomlConfig struct {
		Station struct {
			Elevation float64 `toml:"elevation"`
			Lat       float64 `toml:"lat"`
			Lon       float64 `toml:"lon"`
			Symbol    string  `toml:"symbol"`
		} `toml:"station"`
		APRSIS struct {
			Host     string `toml:"host"`
			Port     int    `toml:"port"`
			User     string `toml:"user"`
			Passcode string `toml:"passcode"`
			Callsign string `toml:"callsign"`
		} `toml:"aprs-is"`
		Retry struct {
			MaxAttempts  int `toml:"max-attempts"`
			DelaySeconds int `toml:"delay-seconds"`
		} `toml:"retry"`
	}

	if err := toml.Unmarshal(cfgFile, &tomlConfig); err != nil {
		return nil, err
	}

	config := &ConfigData{
		Station: StationData{
			ElevationMeters: tomlConfig.Station.Elevation,
			Latitude:        tomlConfig.Station.Lat,
			Longitude:       tomlConfig.Station.Lon,
			Symbol:          tomlConfig.Station.Symbol,
		},
		APRSIS: APRSISData{
			Host:     tomlConfig.APRSIS.Host,
			Port:     tomlConfig.APRSIS.Port,
			User:     tomlConfig.APRSIS.User,
			Passcode: tomlConfig.APRSIS.Passcode,
			Callsign: tomlConfig.APRSIS.Callsign,
		},
		Retry: RetryData{
			MaxAttempts:  tomlConfig.Retry.MaxAttempts,
			DelaySeconds: tomlConfig.Retry.DelaySeconds,
		},
	}

	return config, nil
}

// Close is a no-op for file-backed providers
func (p *TOMLProvider) Close() error {
	return nil
}
