package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		Station struct {
			Elevation float64 `yaml:"elevation"`
			Lat       float64 `yaml:"lat"`
			Lon       float64 `yaml:"lon"`
			Symbol    string  `yaml:"symbol"`
		} `yaml:"station"`
		APRSIS struct {
			Host     string `yaml:"host"`
			Port     int    `yaml:"port"`
			User     string `yaml:"user"`
			Passcode string `yaml:"passcode"`
			Callsign string `yaml:"callsign"`
		} `yaml:"aprs-is"`
		Retry struct {
			MaxAttempts  int `yaml:"max-attempts"`
			DelaySeconds int `yaml:"delay-seconds"`
		} `yaml:"retry"`
	}

	err = yaml.Unmarshal(cfgFile, &yamlConfig)
	if err != nil {
		return nil, err
	}

	// Convert to our internal format
	config := &ConfigData{
		Station: StationData{
			ElevationMeters: yamlConfig.Station.Elevation,
			Latitude:        yamlConfig.Station.Lat,
			Longitude:       yamlConfig.Station.Lon,
			Symbol:          yamlConfig.Station.Symbol,
		},
		APRSIS: APRSISData{
			Host:     yamlConfig.APRSIS.Host,
			Port:     yamlConfig.APRSIS.Port,
			User:     yamlConfig.APRSIS.User,
			Passcode: yamlConfig.APRSIS.Passcode,
			Callsign: yamlConfig.APRSIS.Callsign,
		},
		Retry: RetryData{
			MaxAttempts:  yamlConfig.Retry.MaxAttempts,
			DelaySeconds: yamlConfig.Retry.DelaySeconds,
		},
	}

	return config, nil
}

// Close is a no-op for file-backed providers
func (y *YAMLProvider) Close() error {
	return nil
}
