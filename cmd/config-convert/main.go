// config-convert converts a YAML or TOML configuration file into the
// SQLite database layout the sqlite config backend reads.
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/filipsPL/aprs-is-wx/pkg/config"
)

func main() {
	var (
		inFile  = flag.String("in", "", "Path to YAML or TOML configuration file (required)")
		outFile = flag.String("sqlite", "", "Path to SQLite database file to create (required)")
		force   = flag.Bool("force", false, "Overwrite existing SQLite database")
	)
	flag.Parse()

	if *inFile == "" || *outFile == "" {
		fmt.Fprintf(os.Stderr, "Usage: %s -in <config.yaml|config.toml> -sqlite <config.db>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	if _, err := os.Stat(*outFile); err == nil && !*force {
		fmt.Fprintf(os.Stderr, "Error: SQLite file already exists: %s\n", *outFile)
		fmt.Fprintf(os.Stderr, "Use -force to overwrite or choose a different filename\n")
		os.Exit(1)
	}

	var provider config.ConfigProvider
	switch strings.ToLower(filepath.Ext(*inFile)) {
	case ".toml", ".ini":
		provider = config.NewTOMLProvider(*inFile)
	default:
		provider = config.NewYAMLProvider(*inFile)
	}

	cfgData, err := provider.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	provider.Close()

	if err := cfgData.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: configuration is not valid: %v\n", err)
		os.Exit(1)
	}

	if *force {
		if err := os.Remove(*outFile); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error removing existing SQLite file: %v\n", err)
			os.Exit(1)
		}
	}

	if err := writeDatabase(*outFile, cfgData); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing SQLite database: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", *outFile)
}

func writeDatabase(path string, cfg *config.ConfigData) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return err
	}
	defer db.Close()

	statements := []string{
		"CREATE TABLE station (elevation REAL, latitude REAL, longitude REAL, symbol TEXT)",
		"CREATE TABLE aprs_is (host TEXT, port INTEGER, user TEXT, passcode TEXT, callsign TEXT)",
		"CREATE TABLE retry (max_attempts INTEGER, delay_seconds INTEGER)",
	}
	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}

	if _, err := db.Exec(
		"INSERT INTO station VALUES (?, ?, ?, ?)",
		cfg.Station.ElevationMeters, cfg.Station.Latitude, cfg.Station.Longitude, cfg.Station.Symbol,
	); err != nil {
		return err
	}
	if _, err := db.Exec(
		"INSERT INTO aprs_is VALUES (?, ?, ?, ?, ?)",
		cfg.APRSIS.Host, cfg.APRSIS.Port, cfg.APRSIS.User, cfg.APRSIS.Passcode, cfg.APRSIS.Callsign,
	); err != nil {
		return err
	}
	if _, err := db.Exec(
		"INSERT INTO retry VALUES (?, ?)",
		cfg.Retry.MaxAttempts, cfg.Retry.DelaySeconds,
	); err != nil {
		return err
	}

	return nil
}
