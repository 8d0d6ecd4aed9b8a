package aprs

import (
	"fmt"
	"math"
)

// ConvertLatitudeToAPRSFormat renders a decimal-degree latitude as the
// fixed-width APRS "DDMM.mmH" directional string.
func ConvertLatitudeToAPRSFormat(l float64) string {
	var dir byte
	if l < 0 {
		dir = 'S'
		l = math.Abs(l)
	} else {
		dir = 'N'
	}

	degrees := int(l)
	minutes := (l - float64(degrees)) * 60

	return fmt.Sprintf("%02d%05.2f%c", degrees, minutes, dir)
}

// ConvertLongitudeToAPRSFormat renders a decimal-degree longitude as
// the fixed-width APRS "DDDMM.mmH" directional string.
func ConvertLongitudeToAPRSFormat(l float64) string {
	var dir byte
	if l < 0 {
		dir = 'W'
		l = math.Abs(l)
	} else {
		dir = 'E'
	}

	degrees := int(l)
	minutes := (l - float64(degrees)) * 60

	return fmt.Sprintf("%03d%05.2f%c", degrees, minutes, dir)
}
