package gameloop

import "time"

// Clock is the driver's time source. Only differences between two Now values
// are used, so implementations must be monotonic.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now. The returned values carry Go's monotonic clock
// reading, so Sub between them is unaffected by wall-clock adjustments.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// ManualClock is a Clock that only moves when told to. It is used by tests
// and by simulated runs that replay a fixed frame cadence without sleeping.
type ManualClock struct {
	now time.Time
}

// NewManualClock returns a ManualClock reading start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the clock's current reading.
func (c *ManualClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d. Negative values are ignored.
func (c *ManualClock) Advance(d time.Duration) {
	if d > 0 {
		c.now = c.now.Add(d)
	}
}
