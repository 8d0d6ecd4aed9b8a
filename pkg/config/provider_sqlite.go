package config

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteProvider implements ConfigProvider for SQLite database
// configuration. Expected schema:
//
//	CREATE TABLE station (elevation REAL, latitude REAL, longitude REAL, symbol TEXT);
//	CREATE TABLE aprs_is (host TEXT, port INTEGER, user TEXT, passcode TEXT, callsign TEXT);
//	CREATE TABLE retry (max_attempts INTEGER, delay_seconds INTEGER);
//
// station and aprs_is must each hold one row; retry may be empty.
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// LoadConfig loads the complete configuration from the database
func (s *SQLiteProvider) LoadConfig() (*ConfigData, error) {
	config := &ConfigData{}

	err := s.db.QueryRow(
		"SELECT elevation, latitude, longitude, symbol FROM station LIMIT 1",
	).Scan(
		&config.Station.ElevationMeters,
		&config.Station.Latitude,
		&config.Station.Longitude,
		&config.Station.Symbol,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load station configuration: %w", err)
	}

	err = s.db.QueryRow(
		"SELECT host, port, user, passcode, callsign FROM aprs_is LIMIT 1",
	).Scan(
		&config.APRSIS.Host,
		&config.APRSIS.Port,
		&config.APRSIS.User,
		&config.APRSIS.Passcode,
		&config.APRSIS.Callsign,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load APRS-IS configuration: %w", err)
	}

	err = s.db.QueryRow(
		"SELECT max_attempts, delay_seconds FROM retry LIMIT 1",
	).Scan(
		&config.Retry.MaxAttempts,
		&config.Retry.DelaySeconds,
	)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to load retry configuration: %w", err)
	}

	return config, nil
}

// Close closes the database connection
func (s *SQLiteProvider) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
