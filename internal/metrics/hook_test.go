package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"advclock/internal/clock"
)

// recordingTimerHook captures emissions synchronously.
type recordingTimerHook struct {
	elapsed []time.Duration
	tares   int
}

func (h *recordingTimerHook) EmitElapsed(name string, elapsed time.Duration) {
	h.elapsed = append(h.elapsed, elapsed)
}

func (h *recordingTimerHook) EmitTare(name string) {
	h.tares++
}

func TestMultiTimerHookFansOut(t *testing.T) {
	first := &recordingTimerHook{}
	second := &recordingTimerHook{}
	hook := NewMultiTimerHook(first, NewNoopTimerHook(), second)

	hook.EmitElapsed("x", time.Second)
	hook.EmitTare("x")

	for _, recorder := range []*recordingTimerHook{first, second} {
		assert.Equal(t, []time.Duration{time.Second}, recorder.elapsed)
		assert.Equal(t, 1, recorder.tares)
	}

	// An empty fan-out is a noop.
	NewMultiTimerHook().EmitElapsed("x", time.Second)
}

func TestPrometheusTimerHook(t *testing.T) {
	hook := NewPrometheusTimerHook("advclock")

	hook.EmitElapsed("build", 1500*time.Millisecond)
	hook.EmitElapsed("build", 500*time.Millisecond)
	hook.EmitElapsed("deploy", time.Minute)
	hook.EmitTare("build")
	hook.EmitTare("build")

	assert.Equal(t, 2.0, testutil.ToFloat64(hook.tares.WithLabelValues("build")))
	assert.Equal(t, 2, testutil.CollectAndCount(hook.elapsed))

	expected := `
# HELP advclock_tares_total Number of times each named timer was reset.
# TYPE advclock_tares_total counter
advclock_tares_total{timer="build"} 2
`
	require.NoError(t, testutil.GatherAndCompare(
		hook.Gatherer(),
		strings.NewReader(expected),
		"advclock_tares_total",
	))
}

func TestPrometheusTimerHookWriteTextfile(t *testing.T) {
	hook := NewPrometheusTimerHook("advclock")
	hook.EmitElapsed("build", 2*time.Second)

	path := filepath.Join(t.TempDir(), "advclock.prom")
	require.NoError(t, hook.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `advclock_elapsed_seconds_sum{timer="build"} 2`)
	assert.Contains(t, string(data), `advclock_elapsed_seconds_count{timer="build"} 1`)

	assert.Error(t, hook.WriteTextfile(filepath.Join(t.TempDir(), "missing", "advclock.prom")))
}

func TestStopwatch(t *testing.T) {
	source := clock.NewManualSource(time.Unix(0, 0))
	epoch := clock.NewEpoch(source)
	hook := &recordingTimerHook{}
	stopwatch := NewStopwatchWithEpoch("build", hook, epoch)

	assert.Equal(t, "build", stopwatch.Name())

	source.Advance(3 * time.Second)
	assert.Equal(t, 3*time.Second, stopwatch.Elapsed())
	assert.Empty(t, hook.elapsed)

	assert.Equal(t, 3*time.Second, stopwatch.Lap())
	source.Advance(time.Second)
	assert.Equal(t, time.Second, stopwatch.Lap())
	assert.Equal(t, []time.Duration{3 * time.Second, time.Second}, hook.elapsed)

	source.Advance(time.Minute)
	stopwatch.Tare()
	assert.Equal(t, 1, hook.tares)
	assert.Equal(t, time.Duration(0), stopwatch.Elapsed())
	assert.Equal(t, 64.0, stopwatch.Timer().Begin(clock.Seconds))
}
