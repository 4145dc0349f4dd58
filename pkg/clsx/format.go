package clsx

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// numberString returns the canonical decimal form of a numeric argument.
func (a Arg) numberString() string {
	switch a.num {
	case numInt:
		return strconv.FormatInt(int64(a.bits), 10)
	case numUint:
		return strconv.FormatUint(a.bits, 10)
	default:
		return formatFloat(math.Float64frombits(a.bits))
	}
}

// formatFloat renders f the way class-name producers conventionally do:
// shortest round-trip digits, no trailing fractional zeros, -0 → 0,
// "Infinity" and "NaN" for the special values, and exponent notation only
// outside [1e-6, 1e21).
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}

	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		// 1e-07 → 1e-7
		if i := strings.IndexByte(s, 'e'); i >= 0 && i+2 < len(s) {
			s = s[:i+2] + strings.TrimLeft(s[i+2:], "0")
		}
		return s
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// otherString returns the string form of an Other argument.
func (a Arg) otherString() string {
	if a.opaque == nil {
		return ""
	}
	return fmt.Sprint(a.opaque)
}
