package clock

import (
	"strings"
	"sync"
	"time"

	"github.com/aristanetworks/goarista/monotime"
)

// Source is a provider of monotonic instants. Successive calls to Now must never return an
// instant earlier than a previous call.
type Source interface {
	// Now returns the current instant.
	Now() time.Time
}

// SystemSource reads the host's monotonic clock through the runtime. The instants it returns carry
// a monotonic reading, so differences between them are unaffected by wall clock adjustments.
type SystemSource struct{}

// Now returns time.Now().
func (SystemSource) Now() time.Time {
	return time.Now()
}

// MonotimeSource reads the runtime's raw monotonic nanosecond counter directly. The instants it
// returns carry no wall clock meaning; they are only useful relative to one another.
type MonotimeSource struct{}

// Now returns the monotonic counter as an instant after the Unix epoch.
func (MonotimeSource) Now() time.Time {
	return time.Unix(0, int64(monotime.Now()))
}

// ParseSource looks up a host clock source by its (case-insensitive) name: "system" for
// SystemSource, "monotime" for MonotimeSource. Unknown names yield SystemSource and false.
func ParseSource(name string) (Source, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "system":
		return SystemSource{}, true
	case "monotime":
		return MonotimeSource{}, true
	default:
		return SystemSource{}, false
	}
}

// ManualSource is a Source whose instant only moves when explicitly advanced. It is safe for
// concurrent use.
type ManualSource struct {
	now   time.Time
	mutex sync.Mutex
}

// NewManualSource creates a ManualSource frozen at the specified instant.
func NewManualSource(start time.Time) *ManualSource {
	return &ManualSource{now: start}
}

// Now returns the current, frozen instant.
func (s *ManualSource) Now() time.Time {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return s.now
}

// Advance moves the source forward by the specified duration. Negative durations are ignored so
// that the source stays monotonic.
func (s *ManualSource) Advance(d time.Duration) {
	if d <= 0 {
		return
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.now = s.now.Add(d)
}
