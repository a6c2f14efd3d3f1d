package clock

import "time"

// VirtualClock is pinned to a fixed instant, which makes the rendered
// table deterministic in tests and embeddings.
type VirtualClock struct {
	current time.Time
}

// NewVirtualClock creates a VirtualClock that always reports at.
func NewVirtualClock(at time.Time) *VirtualClock {
	return &VirtualClock{
		current: at,
	}
}

// Now returns the pinned instant.
func (c *VirtualClock) Now() time.Time {
	return c.current
}
