package sandbox

import "time"

// Timer counts simulated time in whole ticks.
type Timer struct {
	currentTime time.Duration
	targetTime  time.Duration
	tick        time.Duration
}

func NewTimer(target time.Duration) *Timer {
	return &Timer{
		currentTime: 0,
		targetTime:  target,
		tick:        time.Second / TicksPerSecond,
	}
}

func (t *Timer) Update() {
	t.currentTime += t.tick
}

func (t *Timer) IsReady() bool {
	return t.currentTime >= t.targetTime
}

func (t *Timer) Reset() {
	t.currentTime = 0
}
