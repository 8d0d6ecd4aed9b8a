package aprsis

import (
	"bufio"
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// startTestServer accepts a single connection and returns every
// newline-terminated line it receives.
func startTestServer(t *testing.T) (addr string, lines <-chan string) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	ch := make(chan string, 16)
	go func() {
		defer close(ch)
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		scanner := bufio.NewScanner(conn)
		for scanner.Scan() {
			ch <- scanner.Text()
		}
	}()

	return ln.Addr().String(), ch
}

func TestSessionSendsLoginAndPacket(t *testing.T) {
	addr, lines := startTestServer(t)

	session := NewSession(Config{
		Server:     addr,
		User:       "N0CALL",
		Passcode:   "12345",
		Callsign:   "N0CALL-13",
		DrainDelay: time.Millisecond,
	}, nil, zap.NewNop().Sugar())

	err := session.Send(context.Background(), "@091234z5215.00N/02100.00E_.../...g...t068P...h65b10372#")
	require.NoError(t, err)

	var received []string
	for line := range lines {
		received = append(received, line)
	}

	require.Len(t, received, 2, "exactly two lines go over the wire")
	assert.True(t, strings.HasPrefix(received[0], "user N0CALL pass 12345 vers aprs-is-wx-"),
		"unexpected login line: %q", received[0])
	assert.Equal(t, "N0CALL-13>APRS:@091234z5215.00N/02100.00E_.../...g...t068P...h65b10372#", received[1])
}

func TestSessionConnectRefusedIsNetworkError(t *testing.T) {
	// Grab a port that nothing is listening on.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	session := NewSession(Config{
		Server:     addr,
		User:       "N0CALL",
		Passcode:   "12345",
		Callsign:   "N0CALL-13",
		DrainDelay: time.Millisecond,
	}, nil, zap.NewNop().Sugar())

	err = session.Send(context.Background(), "test")
	require.Error(t, err)
	assert.True(t, IsNetworkError(err), "connect refusal should classify as a network error, got %v", err)
}
