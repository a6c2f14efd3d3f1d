package clock

import (
	"time"

	internalclock "github.com/SmitUplenchwar2687/worldclock/internal/clock"
)

// Clock supplies the instant a run is rendered at.
type Clock = internalclock.Clock

// RealClock delegates to the standard time package.
type RealClock = internalclock.RealClock

// VirtualClock is a clock pinned to a fixed instant.
type VirtualClock = internalclock.VirtualClock

// NewRealClock creates a real wall-clock implementation.
func NewRealClock() *RealClock {
	return internalclock.NewRealClock()
}

// NewVirtualClock creates a virtual clock pinned to the given time.
func NewVirtualClock(at time.Time) *VirtualClock {
	return internalclock.NewVirtualClock(at)
}
