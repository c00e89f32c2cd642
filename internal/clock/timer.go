package clock

import (
	"time"
)

// Timer measures durations from a start instant. It is not safe for concurrent mutation; callers
// sharing a Timer across goroutines must synchronize externally.
type Timer struct {
	epoch *Epoch
	start time.Time
}

// New creates and starts a timer against the process-wide default epoch.
func New() *Timer {
	return NewWithEpoch(DefaultEpoch())
}

// NewWithEpoch creates and starts a timer against the specified epoch, sampling instants from the
// epoch's source.
func NewWithEpoch(epoch *Epoch) *Timer {
	return &Timer{
		epoch: epoch,
		start: epoch.source.Now(),
	}
}

// Epoch returns the epoch the timer reads against.
func (t *Timer) Epoch() *Epoch {
	return t.epoch
}

// Tare resets the start instant to now.
func (t *Timer) Tare() {
	t.start = t.epoch.source.Now()
}

// BeginDuration returns the offset of the start instant from the epoch.
func (t *Timer) BeginDuration() time.Duration {
	return t.epoch.Since(t.start)
}

// NowDuration returns the offset of the current instant from the epoch.
func (t *Timer) NowDuration() time.Duration {
	return t.epoch.Uptime()
}

// ElapsedDuration returns the time elapsed since the start instant. If tareAfter is set, the
// timer is restarted at the same instant the reading was taken, so consecutive tare-on-read
// readings partition time without gaps.
func (t *Timer) ElapsedDuration(tareAfter bool) time.Duration {
	now := t.epoch.source.Now()
	elapsed := now.Sub(t.start)

	if tareAfter {
		t.start = now
	}

	return elapsed
}

// Elapsed returns the time elapsed since the start instant in the specified precision, optionally
// restarting the timer.
func (t *Timer) Elapsed(precision Precision, tareAfter bool) float64 {
	return ElapsedAs[float64](t, precision, tareAfter)
}

// Begin returns the offset of the start instant from the epoch in the specified precision.
func (t *Timer) Begin(precision Precision) float64 {
	return BeginAs[float64](t, precision)
}

// Now returns the offset of the current instant from the epoch in the specified precision.
func (t *Timer) Now(precision Precision) float64 {
	return NowAs[float64](t, precision)
}

// ElapsedAs is Timer.Elapsed with a caller-selected numeric result type.
func ElapsedAs[T Number](t *Timer, precision Precision, tareAfter bool) T {
	return ConvertAs[T](t.ElapsedDuration(tareAfter), precision)
}

// BeginAs is Timer.Begin with a caller-selected numeric result type.
func BeginAs[T Number](t *Timer, precision Precision) T {
	return ConvertAs[T](t.BeginDuration(), precision)
}

// NowAs is Timer.Now with a caller-selected numeric result type.
func NowAs[T Number](t *Timer, precision Precision) T {
	return ConvertAs[T](t.NowDuration(), precision)
}
