package app

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/filipsPL/aprs-is-wx/pkg/config"
)

func testConfig() *config.ConfigData {
	return &config.ConfigData{
		Station: config.StationData{
			ElevationMeters: 200,
			Latitude:        52.25,
			Longitude:       21.0,
			Symbol:          "#",
		},
		APRSIS: config.APRSISData{
			Host:     "127.0.0.1",
			Port:     14580,
			Passcode: "12345",
			Callsign: "N0CALL-13",
		},
		Retry: config.RetryData{MaxAttempts: 1, DelaySeconds: 1},
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.APRSIS.Callsign = ""

	_, err := New(cfg, "meteo.txt", zap.NewNop().Sugar())
	require.Error(t, err)
}

func TestRunFailsWithoutObservationFile(t *testing.T) {
	application, err := New(testConfig(), filepath.Join(t.TempDir(), "missing.json"), zap.NewNop().Sugar())
	require.NoError(t, err)

	err = application.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading weather observation")
}

func TestRunFailsWhenPublishExhaustsRetries(t *testing.T) {
	// Point the publisher at a port with no listener.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	obsPath := filepath.Join(t.TempDir(), "meteo.txt")
	require.NoError(t, os.WriteFile(obsPath, []byte("20\n1013\n65\n"), 0o644))

	cfg := testConfig()
	cfg.APRSIS.Port = port

	application, err := New(cfg, obsPath, zap.NewNop().Sugar())
	require.NoError(t, err)

	err = application.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sending weather packet")
}
