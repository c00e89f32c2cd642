package metrics

import (
	"time"

	"advclock/internal/clock"
)

// Stopwatch is a named timer whose readings are reported through a hook.
type Stopwatch struct {
	name  string
	timer *clock.Timer
	hook  TimerHook
}

// NewStopwatch creates and starts a stopwatch against the process-wide default epoch.
func NewStopwatch(name string, hook TimerHook) *Stopwatch {
	return NewStopwatchWithEpoch(name, hook, clock.DefaultEpoch())
}

// NewStopwatchWithEpoch creates and starts a stopwatch against the specified epoch.
func NewStopwatchWithEpoch(name string, hook TimerHook, epoch *clock.Epoch) *Stopwatch {
	return &Stopwatch{
		name:  name,
		timer: clock.NewWithEpoch(epoch),
		hook:  hook,
	}
}

// Name returns the name under which readings are reported.
func (s *Stopwatch) Name() string {
	return s.name
}

// Timer exposes the underlying timer for readings in other units.
func (s *Stopwatch) Timer() *clock.Timer {
	return s.timer
}

// Elapsed returns the amount of time that has elapsed since the stopwatch was started or last
// tared, without reporting it.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.timer.ElapsedDuration(false)
}

// Lap reports and returns the time elapsed since the previous lap, restarting the stopwatch.
func (s *Stopwatch) Lap() time.Duration {
	elapsed := s.timer.ElapsedDuration(true)
	s.hook.EmitElapsed(s.name, elapsed)

	return elapsed
}

// Tare restarts the stopwatch without reporting a reading.
func (s *Stopwatch) Tare() {
	s.timer.Tare()
	s.hook.EmitTare(s.name)
}
