package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func TestClockImplementations(t *testing.T) {
	var _ Clock = NewRealClock()
	var _ Clock = NewVirtualClock(epoch)
}

func TestVirtualClock_Now(t *testing.T) {
	vc := NewVirtualClock(epoch)
	if got := vc.Now(); !got.Equal(epoch) {
		t.Errorf("Now() = %v, want %v", got, epoch)
	}
}

func TestVirtualClock_NowIsStable(t *testing.T) {
	vc := NewVirtualClock(epoch)
	first := vc.Now()
	time.Sleep(time.Millisecond)
	second := vc.Now()
	if !first.Equal(second) {
		t.Errorf("Now() moved: %v then %v", first, second)
	}
}

func TestRealClock_Now(t *testing.T) {
	before := time.Now()
	got := NewRealClock().Now()
	after := time.Now()

	if got.Before(before) || got.After(after) {
		t.Errorf("Now() = %v, want between %v and %v", got, before, after)
	}
}
