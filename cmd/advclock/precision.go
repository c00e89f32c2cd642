package main

import (
	"advclock/internal/clock"
)

// resolvePrecision applies a precision supplied on the command line over the configured one. An
// empty name keeps the configured precision; so does an unknown name, reported by ok being false.
func resolvePrecision(configured clock.Precision, supplied string) (precision clock.Precision, ok bool) {
	if supplied == "" {
		return configured, true
	}

	parsed, ok := clock.ParsePrecision(supplied)
	if !ok {
		return configured, false
	}

	return parsed, true
}
