// Package metrics reports timer readings to external aggregation backends. Supported backends are
// statsd, over UDP, and Prometheus, via a registry that can be serialized to a node_exporter
// textfile.
//
// Readings are produced at arbitrary points in a measured program. The emissions in this package
// are therefore structured around hooks: a hook interface defines the events a Stopwatch raises
// as it is lapped and tared, and implementations of the interface ship those events to a backend.
// Measuring time is decoupled from the responsibility of reporting it; a Stopwatch with a noop
// hook is an ordinary timer.
package metrics
