// Package aprs assembles APRS-IS weather report payloads from
// normalized station measurements.
package aprs

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type valueKind int

const (
	kindAbsent valueKind = iota
	kindInt
	kindFloat
)

// Value is a single weather measurement that is either absent or
// carries an integer or floating-point quantity. Absent values render
// as placeholder dots in the packet while zero renders as digits, so
// the two must never be conflated.
type Value struct {
	kind valueKind
	i    int64
	f    float64
}

// Absent is the zero Value; it renders as a run of placeholder dots.
var Absent = Value{}

// Int returns a Value carrying an integer quantity.
func Int(v int64) Value {
	return Value{kind: kindInt, i: v}
}

// Float returns a Value carrying a floating-point quantity.
func Float(v float64) Value {
	return Value{kind: kindFloat, f: v}
}

// IsAbsent reports whether v carries no measurement.
func (v Value) IsAbsent() bool {
	return v.kind == kindAbsent
}

// fixedWidth renders v as a fixed-width APRS numeric field. Floats are
// rounded to the nearest integer. The digits are zero-filled from the
// left; if they overflow the field, the leading digits are dropped,
// which is how a humidity of 100% becomes "00" in the two-digit field.
func (v Value) fixedWidth(width int) string {
	var s string

	switch v.kind {
	case kindAbsent:
		return strings.Repeat(".", width)
	case kindInt:
		s = strconv.FormatInt(v.i, 10)
	case kindFloat:
		s = strconv.FormatInt(int64(math.Round(v.f)), 10)
	default:
		panic(fmt.Sprintf("aprs: unsupported value kind %d", v.kind))
	}

	return zfill(s, width)
}

// zfill left-pads s with zeros to width, keeping a leading minus sign
// in front of the padding, and drops leading digits on overflow so the
// result is always exactly width bytes.
func zfill(s string, width int) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
		width--
	}

	for len(s) < width {
		s = "0" + s
	}
	if len(s) > width {
		s = s[len(s)-width:]
	}

	if neg {
		return "-" + s
	}
	return s
}
