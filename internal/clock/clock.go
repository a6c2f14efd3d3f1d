package clock

import "time"

// Clock supplies the instant a run is rendered at.
// Everything in worldclock reads time through this interface instead of time.Now(),
// so a single invocation sees exactly one instant.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock delegates to the standard time package.
type RealClock struct{}

func NewRealClock() *RealClock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}
