package aprs

import (
	"bytes"
	"time"
)

// Observation holds one station weather reading, already normalized to
// the units APRS requires. Fields left as Absent render as placeholder
// dots in the packet.
type Observation struct {
	WindDirectionDeg    Value
	WindSpeedMph        Value
	WindGustMph         Value
	TemperatureF        Value
	RainSinceMidnightIn Value
	HumidityPct         Value
	PressureTenthsHPa   Value
}

// Station describes the reporting station for packet assembly. The
// caller guarantees the coordinates fit the fixed-width format.
type Station struct {
	Latitude  float64
	Longitude float64
	Symbol    byte
}

// EncodePacket assembles the payload of a timestamped APRS weather
// report. The packet length is constant regardless of which
// measurements are present.
func EncodePacket(st Station, obs Observation, now time.Time) string {
	var buffer bytes.Buffer

	buffer.WriteByte('@')
	buffer.WriteString(now.UTC().Format("021504"))
	buffer.WriteByte('z')

	buffer.WriteString(ConvertLatitudeToAPRSFormat(st.Latitude))
	buffer.WriteByte('/')
	buffer.WriteString(ConvertLongitudeToAPRSFormat(st.Longitude))

	// The underscore marks this as a weather report
	buffer.WriteByte('_')
	buffer.WriteString(obs.WindDirectionDeg.fixedWidth(3))
	buffer.WriteByte('/')
	buffer.WriteString(obs.WindSpeedMph.fixedWidth(3))

	buffer.WriteByte('g')
	buffer.WriteString(obs.WindGustMph.fixedWidth(3))

	buffer.WriteByte('t')
	buffer.WriteString(obs.TemperatureF.fixedWidth(3))

	buffer.WriteByte('P')
	buffer.WriteString(obs.RainSinceMidnightIn.fixedWidth(3))

	buffer.WriteByte('h')
	buffer.WriteString(obs.HumidityPct.fixedWidth(2))

	buffer.WriteByte('b')
	buffer.WriteString(obs.PressureTenthsHPa.fixedWidth(5))

	// Station symbol selects the weather-station icon
	buffer.WriteByte(st.Symbol)

	return buffer.String()
}
