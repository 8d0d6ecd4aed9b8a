package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/filipsPL/aprs-is-wx/internal/app"
	"github.com/filipsPL/aprs-is-wx/internal/constants"
	"github.com/filipsPL/aprs-is-wx/internal/log"
	"github.com/filipsPL/aprs-is-wx/pkg/config"
)

func main() {
	cfgFile := flag.String("config", "aprs-is-wx.yaml", "Path to configuration source:\n\t\t\t  YAML: aprs-is-wx.yaml\n\t\t\t  TOML: aprs-is-wx.toml\n\t\t\t  SQLite: aprs-is-wx.db")
	cfgBackend := flag.String("config-backend", "", "Configuration backend type: 'yaml', 'toml' or 'sqlite' (default: guessed from the file extension)")
	wxFile := flag.String("wx", "meteo.txt", "Path to the weather observation file (JSON or line-based)")
	debug := flag.Bool("debug", false, "Turn on debugging output")
	showVersion := flag.Bool("version", false, "Show version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("aprs-is-wx %s\n", constants.Version)
		os.Exit(0)
	}

	// Set up logging
	if err := log.Init(*debug); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Load configuration
	cfgData, err := loadConfig(*cfgFile, *cfgBackend)
	if err != nil {
		log.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}

	// Create and run the application
	application, err := app.New(cfgData, *wxFile, log.GetSugaredLogger())
	if err != nil {
		log.Errorf("Invalid configuration: %v", err)
		os.Exit(1)
	}

	if err := application.Run(context.Background()); err != nil {
		log.Errorf("Application error: %v", err)
		os.Exit(1)
	}
}

func loadConfig(cfgFile, cfgBackend string) (*config.ConfigData, error) {
	filename, _ := filepath.Abs(cfgFile)

	if cfgBackend == "" {
		cfgBackend = guessBackend(filename)
	}

	var provider config.ConfigProvider
	var err error

	switch cfgBackend {
	case "yaml":
		provider = config.NewYAMLProvider(filename)
	case "toml":
		provider = config.NewTOMLProvider(filename)
	case "sqlite":
		provider, err = config.NewSQLiteProvider(filename)
		if err != nil {
			return nil, fmt.Errorf("error creating SQLite provider: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported configuration backend: %s. Use 'yaml', 'toml' or 'sqlite'", cfgBackend)
	}
	defer provider.Close()

	cfgData, err := provider.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error reading config file. Did you pass the -config flag? Run with -h for help: %w", err)
	}

	return cfgData, nil
}

func guessBackend(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml", ".ini":
		return "toml"
	case ".db", ".sqlite", ".sqlite3":
		return "sqlite"
	default:
		return "yaml"
	}
}
