//go:generate go run golang.org/x/tools/cmd/stringer -type=Precision -linecomment=true

package clock

import (
	"strings"
)

// Precision enumerates the units into which a duration can be converted.
type Precision int8

const (
	// Nanoseconds is the raw unit of every reading and the fallback for unknown precisions.
	Nanoseconds Precision = iota // nanoseconds
	// Microseconds are thousandths of a millisecond.
	Microseconds // microseconds
	// Milliseconds are thousandths of a second.
	Milliseconds // milliseconds
	// Seconds are SI seconds.
	Seconds // seconds
	// Minutes are SecondsPerMinute seconds.
	Minutes // minutes
	// Hours are MinutesPerHour minutes.
	Hours // hours
	// Days are HoursPerDay hours.
	Days // days
	// Weeks are DaysPerWeek days.
	Weeks // weeks
	// Months are a twelfth of a year.
	Months // months
	// Years are DaysPerYear days.
	Years // years
)

var shortPrecisionNames = map[string]Precision{
	"ns": Nanoseconds,
	"us": Microseconds,
	"ms": Milliseconds,
	"s":  Seconds,
	"m":  Minutes,
	"h":  Hours,
	"d":  Days,
	"w":  Weeks,
	"mo": Months,
	"y":  Years,
}

// Precisions returns every known precision, from finest to coarsest.
func Precisions() []Precision {
	return []Precision{
		Nanoseconds,
		Microseconds,
		Milliseconds,
		Seconds,
		Minutes,
		Hours,
		Days,
		Weeks,
		Months,
		Years,
	}
}

// ParsePrecision looks up a Precision constant by its stringified (case-insensitive)
// representation, or by its short unit symbol (ns, us, ms, s, m, h, d, w, mo, y). Unknown names
// yield Nanoseconds and false.
func ParsePrecision(precision string) (Precision, bool) {
	normalized := strings.ToLower(strings.TrimSpace(precision))

	if known, ok := shortPrecisionNames[normalized]; ok {
		return known, true
	}

	for _, known := range Precisions() {
		if normalized == known.String() {
			return known, true
		}
	}

	return Nanoseconds, false
}

// Valid indicates whether the precision is one of the enumerated constants.
func (p Precision) Valid() bool {
	return p >= Nanoseconds && p <= Years
}
