// Package app wires the observation source, packet encoder, and
// APRS-IS publisher into one submission run.
package app

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/filipsPL/aprs-is-wx/internal/aprs"
	"github.com/filipsPL/aprs-is-wx/internal/aprsis"
	"github.com/filipsPL/aprs-is-wx/internal/uptime"
	"github.com/filipsPL/aprs-is-wx/internal/wx"
	"github.com/filipsPL/aprs-is-wx/pkg/config"
)

// App represents one weather packet submission run
type App struct {
	cfg        *config.ConfigData
	wxPath     string
	uptimePath string
	clock      clockwork.Clock
	logger     *zap.SugaredLogger
}

// New validates the configuration and creates an application instance
func New(cfg *config.ConfigData, wxPath string, logger *zap.SugaredLogger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &App{
		cfg:        cfg,
		wxPath:     wxPath,
		uptimePath: uptime.ProcPath,
		clock:      clockwork.NewRealClock(),
		logger:     logger,
	}, nil
}

// Run reads the current observation, encodes it, and publishes it to
// APRS-IS. On success it additionally sends an uptime status line;
// status failures are logged but never fail the run.
func (a *App) Run(ctx context.Context) error {
	source := wx.NewSource(a.wxPath, a.cfg.Station.ElevationMeters, a.logger)
	obs, err := source.Read()
	if err != nil {
		return fmt.Errorf("reading weather observation: %w", err)
	}

	station := aprs.Station{
		Latitude:  a.cfg.Station.Latitude,
		Longitude: a.cfg.Station.Longitude,
		Symbol:    a.cfg.Station.Symbol[0],
	}
	packet := aprs.EncodePacket(station, obs, a.clock.Now())
	a.logger.Infof("weather packet: %s", packet)

	session := aprsis.NewSession(aprsis.Config{
		Server:   a.cfg.APRSIS.Server(),
		User:     a.cfg.APRSIS.User,
		Passcode: a.cfg.APRSIS.Passcode,
		Callsign: a.cfg.APRSIS.Callsign,
	}, a.clock, a.logger)

	publisher := aprsis.NewPublisher(session, a.clock, a.logger)
	policy := aprsis.RetryPolicy{
		MaxAttempts: a.cfg.Retry.MaxAttempts,
		Delay:       a.cfg.Retry.Delay(),
	}

	if err := publisher.Publish(ctx, packet, policy); err != nil {
		return fmt.Errorf("sending weather packet: %w", err)
	}

	a.sendUptimeStatus(ctx, publisher, policy)
	return nil
}

// sendUptimeStatus is the one place a failure is deliberately
// swallowed: the weather packet already made it out.
func (a *App) sendUptimeStatus(ctx context.Context, publisher *aprsis.Publisher, policy aprsis.RetryPolicy) {
	up, err := uptime.ReadFile(a.uptimePath)
	if err != nil {
		a.logger.Errorf("error reading uptime: %v", err)
		return
	}

	status := uptime.StatusText(up)
	a.logger.Infof("sending status: %s", status)

	if err := publisher.Publish(ctx, status, policy); err != nil {
		a.logger.Errorf("error sending uptime status: %v", err)
	}
}
