package clock

import (
	"time"

	"golang.org/x/exp/constraints"
)

// Conversion factors between adjacent units. These are fixed; months and years are the average
// Gregorian approximations, not calendar arithmetic.
const (
	NanosecondsPerMicrosecond  = 1000
	MicrosecondsPerMillisecond = 1000
	MillisecondsPerSecond      = 1000
	SecondsPerMinute           = 60
	MinutesPerHour             = 60
	HoursPerDay                = 24
	DaysPerWeek                = 7
	DaysPerYear                = 365.24
	MonthsPerYear              = 12
)

// Number is the set of numeric types a converted reading may be expressed in.
type Number interface {
	constraints.Integer | constraints.Float
}

// Convert expresses a nanosecond duration in the specified precision as a float64.
func Convert(d time.Duration, precision Precision) float64 {
	return ConvertAs[float64](d, precision)
}

// ConvertAs expresses a nanosecond duration in the specified precision as a T.
//
// Integer results are derived by successive truncating division in int64, float results by
// successive division in float64; the result is converted to T once, at the end. Months and years
// are always derived from days in floating point. An unknown precision converts as Nanoseconds. A
// result that does not fit in T wraps.
func ConvertAs[T Number](d time.Duration, precision Precision) T {
	var one T = 1
	if one/2 == 0 {
		return cascade[T](int64(d), precision)
	}

	return cascade[T](float64(d), precision)
}

// cascade converts nanoseconds into the precision, dividing in the wide type W.
func cascade[T Number, W int64 | float64](nanos W, precision Precision) T {
	if precision == Nanoseconds || !precision.Valid() {
		return T(nanos)
	}

	micros := nanos / NanosecondsPerMicrosecond
	millis := micros / MicrosecondsPerMillisecond
	secs := millis / MillisecondsPerSecond
	mins := secs / SecondsPerMinute
	hours := mins / MinutesPerHour
	days := hours / HoursPerDay

	switch precision {
	case Microseconds:
		return T(micros)
	case Milliseconds:
		return T(millis)
	case Seconds:
		return T(secs)
	case Minutes:
		return T(mins)
	case Hours:
		return T(hours)
	case Days:
		return T(days)
	case Weeks:
		return T(days / DaysPerWeek)
	}

	years := float64(days) / DaysPerYear
	if precision == Months {
		return T(years / MonthsPerYear)
	}

	return T(years)
}
