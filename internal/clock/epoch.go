package clock

import (
	"sync"
	"time"
)

// Epoch is a fixed origin instant against which timer readings are expressed. It is immutable
// once created and safe to share between goroutines.
type Epoch struct {
	source Source
	origin time.Time
}

var (
	defaultEpoch     *Epoch
	defaultEpochOnce sync.Once
)

// NewEpoch captures a new origin from the specified source.
func NewEpoch(source Source) *Epoch {
	return &Epoch{
		source: source,
		origin: source.Now(),
	}
}

// DefaultEpoch returns the process-wide epoch over the system monotonic clock. The origin is
// captured on the first call; every subsequent call, from any goroutine, returns the same Epoch.
func DefaultEpoch() *Epoch {
	defaultEpochOnce.Do(func() {
		defaultEpoch = NewEpoch(SystemSource{})
	})

	return defaultEpoch
}

// Since returns the offset of an instant from the epoch origin.
func (e *Epoch) Since(instant time.Time) time.Duration {
	return instant.Sub(e.origin)
}

// Uptime returns the time elapsed since the epoch origin.
func (e *Epoch) Uptime() time.Duration {
	return e.Since(e.source.Now())
}
