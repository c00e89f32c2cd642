//go:generate go run golang.org/x/tools/cmd/stringer -type=Level -linecomment=true

package log

import (
	"strings"
)

// Level parametrizes supported log verbosity levels.
type Level int

const (
	// Debug messages trace individual timer readings and configuration decisions.
	Debug Level = iota // DEBUG
	// Info messages convey measurement results and reporting destinations.
	Info // INFO
	// Warn messages describe non-erroring divergences, such as falling back to a default unit.
	Warn // WARN
	// Error messages indicate a measurement or report that could not be completed.
	Error // ERROR
)

// ParseLevel looks up a Level constant by its stringified (case-insensitive) representation.
// Unknown names yield Error and false.
func ParseLevel(level string) (Level, bool) {
	for _, known := range []Level{Debug, Info, Warn, Error} {
		if strings.EqualFold(strings.TrimSpace(level), known.String()) {
			return known, true
		}
	}

	return Error, false
}

// Enables indicates whether the current log level enables logging at another level.
//
// For example,
//	Debug enables Debug, Info, Warn, and Error
//	Info enables Info, Warn, and Error, but not Debug
//	Error enables Error, but not Debug, Info, or Warn
func (l Level) Enables(other Level) bool {
	return l <= other
}
