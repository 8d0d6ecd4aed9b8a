// Package config loads station and APRS-IS settings from YAML, TOML,
// or SQLite sources behind a common provider interface.
package config

import (
	"fmt"
	"math"
	"net"
	"strconv"
	"time"
)

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	Close() error
}

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Station StationData `json:"station"`
	APRSIS  APRSISData  `json:"aprs_is"`
	Retry   RetryData   `json:"retry,omitempty"`
}

// StationData holds the physical station parameters
type StationData struct {
	ElevationMeters float64 `json:"elevation_meters"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Symbol          string  `json:"symbol"`
}

// APRSISData holds the APRS-IS connection parameters
type APRSISData struct {
	Host     string `json:"host,omitempty"`
	Port     int    `json:"port,omitempty"`
	User     string `json:"user"`
	Passcode string `json:"passcode"`
	Callsign string `json:"callsign"`
}

// RetryData bounds the publish retry loop
type RetryData struct {
	MaxAttempts  int `json:"max_attempts,omitempty"`
	DelaySeconds int `json:"delay_seconds,omitempty"`
}

// Server returns the host:port dial address.
func (a APRSISData) Server() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Delay returns the inter-retry delay as a duration.
func (r RetryData) Delay() time.Duration {
	return time.Duration(r.DelaySeconds) * time.Second
}

// Validate fills defaults and checks the invariants the rest of the
// program relies on. It is called once at startup; a failure here is
// fatal before any network activity.
func (c *ConfigData) Validate() error {
	if c.APRSIS.Host == "" {
		c.APRSIS.Host = "noam.aprs2.net"
	}
	if c.APRSIS.Port == 0 {
		c.APRSIS.Port = 14580
	}
	if c.APRSIS.User == "" {
		c.APRSIS.User = c.APRSIS.Callsign
	}
	if c.Retry.MaxAttempts == 0 {
		c.Retry.MaxAttempts = 3
	}
	if c.Retry.DelaySeconds == 0 {
		c.Retry.DelaySeconds = 5
	}

	if c.APRSIS.Callsign == "" {
		return fmt.Errorf("you must provide a callsign in the configuration file")
	}
	if c.APRSIS.Passcode == "" {
		return fmt.Errorf("you must provide an APRS-IS passcode in the configuration file")
	}
	if c.Station.Latitude == 0 && c.Station.Longitude == 0 {
		return fmt.Errorf("you must provide a latitude and longitude for your station in the configuration file")
	}
	if math.Abs(c.Station.Latitude) > 90 {
		return fmt.Errorf("station latitude %v is out of range", c.Station.Latitude)
	}
	if math.Abs(c.Station.Longitude) > 180 {
		return fmt.Errorf("station longitude %v is out of range", c.Station.Longitude)
	}
	if len(c.Station.Symbol) != 1 {
		return fmt.Errorf("station symbol must be a single character, got %q", c.Station.Symbol)
	}
	if c.Retry.MaxAttempts < 1 {
		return fmt.Errorf("retry max-attempts must be at least 1, got %d", c.Retry.MaxAttempts)
	}

	return nil
}
