package aprsis

import (
	"context"
	"fmt"
	"net"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/filipsPL/aprs-is-wx/internal/constants"
)

const (
	// DefaultConnectTimeout bounds the TCP connect and the writes.
	DefaultConnectTimeout = 30 * time.Second

	// DefaultDrainDelay is how long we give the server to consume the
	// data before the socket is torn down. APRS-IS sends no ack on
	// this path, so a fixed grace period stands in for one.
	DefaultDrainDelay = 3 * time.Second
)

// Config holds the connection parameters for one APRS-IS session.
type Config struct {
	Server         string // host:port
	User           string
	Passcode       string
	Callsign       string
	ConnectTimeout time.Duration
	DrainDelay     time.Duration
}

// Session owns the TCP connection lifecycle for a single APRS-IS
// exchange: connect, login, publish one line, drain, close. Sessions
// are not reused across packets.
type Session struct {
	cfg    Config
	clock  clockwork.Clock
	logger *zap.SugaredLogger
}

// NewSession creates a session for the given server. Zero timeout and
// drain values take the defaults.
func NewSession(cfg Config, clock clockwork.Clock, logger *zap.SugaredLogger) *Session {
	if cfg.ConnectTimeout == 0 {
		cfg.ConnectTimeout = DefaultConnectTimeout
	}
	if cfg.DrainDelay == 0 {
		cfg.DrainDelay = DefaultDrainDelay
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &Session{
		cfg:    cfg,
		clock:  clock,
		logger: logger,
	}
}

// Send runs one full session traversal for a single payload line.
// Exactly two lines go over the wire: the login line and the packet.
// No server response is read; the login is fire-and-forget.
func (s *Session) Send(ctx context.Context, line string) error {
	dialer := net.Dialer{
		Timeout: s.cfg.ConnectTimeout,
	}

	conn, err := dialer.DialContext(ctx, "tcp", s.cfg.Server)
	if err != nil {
		return &NetworkError{Op: "connect", Addr: s.cfg.Server, Err: err}
	}
	// The socket must be released on every exit path.
	defer conn.Close()

	if err := conn.SetDeadline(time.Now().Add(s.cfg.ConnectTimeout)); err != nil {
		return &NetworkError{Op: "deadline", Addr: s.cfg.Server, Err: err}
	}

	login := fmt.Sprintf("user %s pass %s vers %s\n", s.cfg.User, s.cfg.Passcode, constants.ClientID)
	if _, err := conn.Write([]byte(login)); err != nil {
		return &NetworkError{Op: "login", Addr: s.cfg.Server, Err: err}
	}

	packet := fmt.Sprintf("%s>APRS:%s\n", s.cfg.Callsign, line)
	if _, err := conn.Write([]byte(packet)); err != nil {
		return &NetworkError{Op: "publish", Addr: s.cfg.Server, Err: err}
	}

	s.logger.Debugf("sent to APRS-IS: %s", line)

	// Give the server time to consume the data before teardown
	s.clock.Sleep(s.cfg.DrainDelay)

	// Graceful shutdown of both directions before the deferred close
	if tc, ok := conn.(*net.TCPConn); ok {
		tc.CloseWrite()
		tc.CloseRead()
	}

	return nil
}
