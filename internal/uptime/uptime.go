// Package uptime reads the system elapsed time for the APRS status line.
package uptime

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// ProcPath is the uptime source on Linux.
const ProcPath = "/proc/uptime"

// Read returns the system uptime from /proc/uptime.
func Read() (time.Duration, error) {
	return ReadFile(ProcPath)
}

// ReadFile parses an uptime file: whitespace-separated floats, the
// first being seconds since boot.
func ReadFile(path string) (time.Duration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading uptime: %w", err)
	}

	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0, fmt.Errorf("uptime file %s is empty", path)
	}

	seconds, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("parsing uptime: %w", err)
	}

	return time.Duration(seconds * float64(time.Second)), nil
}

// StatusText renders the free-text APRS status line for an uptime.
func StatusText(d time.Duration) string {
	return fmt.Sprintf(">Uptime: %s", d.Truncate(time.Second))
}
