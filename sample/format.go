package sample

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// formatStatistic renders v in fixed-point notation with exactly precision
// digits after the decimal point. The shortest decimal that round-trips v is
// rounded half away from zero, so 208.25 at one digit is "208.3". A negative
// value that rounds to zero keeps its sign.
func formatStatistic(v float64, precision int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
	s := decimal.NewFromFloat(v).StringFixed(int32(precision))
	if math.Signbit(v) && !strings.HasPrefix(s, "-") {
		s = "-" + s
	}
	return s
}

// formatObservation renders v as the shortest decimal that round-trips,
// always keeping a fractional part ("3.0", not "3"). Magnitudes outside
// [1e-3, 1e7) use scientific notation such as "1.0E7" or "2.5E-4".
func formatObservation(v float64) string {
	abs := math.Abs(v)
	if abs == 0 || (abs >= 1e-3 && abs < 1e7) {
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}

	s := strconv.FormatFloat(v, 'E', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "E")
	if !strings.Contains(mantissa, ".") {
		mantissa += ".0"
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mantissa + "E" + strconv.Itoa(e)
}
