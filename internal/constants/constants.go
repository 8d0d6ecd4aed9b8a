// Package constants defines application-wide constants and version information.
package constants

import "runtime"

// Version holds the application version information
const Version = "2.0-" + runtime.GOOS + "/" + runtime.GOARCH

// ClientID identifies this software on the APRS-IS login line.
const ClientID = "aprs-is-wx-" + Version
