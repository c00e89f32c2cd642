package metrics

import (
	"fmt"
	"os"
	"sync"
	"time"
)

// TimerHook is a metrics hook interface for reporting events raised by a named timer.
type TimerHook interface {
	// EmitElapsed reports a duration measured by the named timer.
	EmitElapsed(name string, elapsed time.Duration)

	// EmitTare reports the event that the named timer was reset.
	EmitTare(name string)
}

// AsyncStatsdTimerHook is an implementation of TimerHook that outputs metrics asynchronously to
// statsd.
type AsyncStatsdTimerHook struct {
	client  *StatsdClient
	pending sync.WaitGroup
}

// NoopTimerHook implements the TimerHook interface but noops on all emissions.
type NoopTimerHook struct{}

// MultiTimerHook implements the TimerHook interface by forwarding every emission to each of a
// fixed set of hooks, in order.
type MultiTimerHook struct {
	hooks []TimerHook
}

// NewAsyncStatsdTimerHook creates a new hook with the specified statsd address and sample rate.
func NewAsyncStatsdTimerHook(addr string, sampleRate float32) (*AsyncStatsdTimerHook, error) {
	client, err := statsdClientFactory(addr, sampleRate)
	if err != nil {
		return nil, err
	}

	return &AsyncStatsdTimerHook{client: client}, nil
}

// EmitElapsed statsd implementation.
func (h *AsyncStatsdTimerHook) EmitElapsed(name string, elapsed time.Duration) {
	h.emit(func() {
		h.client.Timing(fmt.Sprintf("latency.%s.elapsed", name), elapsed, nil)
	})
}

// EmitTare statsd implementation.
func (h *AsyncStatsdTimerHook) EmitTare(name string) {
	h.emit(func() {
		h.client.Count(fmt.Sprintf("event.%s.tare", name), 1, nil)
	})
}

// EmitExitCode reports the exit status of the process measured by the named timer.
func (h *AsyncStatsdTimerHook) EmitExitCode(name string, code int) {
	h.emit(func() {
		h.client.Gauge(fmt.Sprintf("status.%s.exit_code", name), int64(code), nil)
	})
}

// Close waits for in-flight emissions to complete and releases the statsd client. The hook must
// not be used afterwards.
func (h *AsyncStatsdTimerHook) Close() error {
	h.pending.Wait()
	return h.client.Close()
}

// emit runs a single emission in the background, tracking it until completion.
func (h *AsyncStatsdTimerHook) emit(emission func()) {
	h.pending.Add(1)

	go func() {
		defer h.pending.Done()
		emission()
	}()
}

// NewNoopTimerHook creates a noop implementation of TimerHook.
func NewNoopTimerHook() TimerHook {
	return &NoopTimerHook{}
}

// EmitElapsed noops.
func (h *NoopTimerHook) EmitElapsed(name string, elapsed time.Duration) {}

// EmitTare noops.
func (h *NoopTimerHook) EmitTare(name string) {}

// NewMultiTimerHook creates a hook that fans out to all of the specified hooks. With no hooks, it
// behaves like a noop hook.
func NewMultiTimerHook(hooks ...TimerHook) TimerHook {
	return &MultiTimerHook{
		hooks: append([]TimerHook(nil), hooks...),
	}
}

// EmitElapsed forwards the emission to every hook.
func (h *MultiTimerHook) EmitElapsed(name string, elapsed time.Duration) {
	for _, hook := range h.hooks {
		hook.EmitElapsed(name, elapsed)
	}
}

// EmitTare forwards the emission to every hook.
func (h *MultiTimerHook) EmitTare(name string) {
	for _, hook := range h.hooks {
		hook.EmitTare(name)
	}
}

// statsdClientFactory creates a configured StatsdClient with reasonable defaults for the given
// statsd server address and sample rate.
func statsdClientFactory(addr string, sampleRate float32) (*StatsdClient, error) {
	hostname, err := os.Hostname()
	if err != nil {
		return nil, err
	}

	defaultTags := map[string]string{
		"host": hostname,
	}

	return NewStatsdClient(addr, "advclock", defaultTags, sampleRate)
}
